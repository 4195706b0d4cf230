// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadTSV reads a set of taxa
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - taxon, the taxonomic name of the taxon
//
// Optionally it can contain the field:
//
//   - color, the color used to highlight the taxon
//
// Here is an example file:
//
//	taxon	color
//	Homo sapiens	red
//	Mus musculus	blue
//	Danio rerio
func ReadTSV(r io.Reader) (*Set, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.FieldsPerRecord = -1

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	if _, ok := fields["taxon"]; !ok {
		return nil, fmt.Errorf("expecting field %q", "taxon")
	}

	s := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "taxon"
		tax := canon(row[fields[f]])
		if tax == "" {
			continue
		}

		var color string
		f = "color"
		if i, ok := fields[f]; ok && i < len(row) {
			color = row[i]
		}
		s.Add(tax, color)
	}
	return s, nil
}

// TSV writes a set of taxa as a TSV file.
func (s *Set) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	// header
	header := []string{"taxon", "color"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tx := range s.Taxa() {
		row := []string{
			tx,
			s.taxon[tx],
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
