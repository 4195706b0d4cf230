// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package annot

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// A FormatError is an error produced
// when reading a malformed annotation.
type FormatError struct {
	// Record is the index of the record,
	// or -1 if the whole payload is invalid.
	Record int

	Msg string
}

func (e *FormatError) Error() string {
	if e.Record < 0 {
		return fmt.Sprintf("annot: %s", e.Msg)
	}
	return fmt.Sprintf("annot: record %d: %s", e.Record, e.Msg)
}

type jsonRecord struct {
	Name            *string         `json:"name"`
	SeqLength       json.RawMessage `json:"seq_length"`
	AlignmentLength json.RawMessage `json:"alignment_length"`
	Sequence        json.RawMessage `json:"sequence"`
	Domains         []jsonDomain    `json:"domains"`
}

type jsonDomain struct {
	Start json.RawMessage `json:"start"`
	End   json.RawMessage `json:"end"`
	Label string          `json:"label"`
	Name  string          `json:"name"`
	Color string          `json:"color"`
}

// Read reads annotation records
// from a JSON array.
//
// Each record can have the following fields:
//
//   - name, the name of the annotated leaf
//   - seq_length or alignment_length,
//     the length of the sequence
//   - sequence, the aligned sequence,
//     either as a string or as an array of tokens
//   - domains, an array of protein domains,
//     each one with the fields start, end,
//     label (or name) and color
//
// Here is an example:
//
//	[
//		{"name": "ENSP01", "alignment_length": 4, "sequence": "MK-L"},
//		{"name": "ENSP02", "seq_length": 300, "domains": [
//			{"start": 10, "end": 80, "label": "PF00001"}
//		]}
//	]
//
// Records without a name are dropped,
// and their errors are kept in the Errs field
// of the set.
func Read(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Record: -1, Msg: err.Error()}
	}

	s := &Set{}
	for i, rr := range raw {
		rec, err := readRecord(rr)
		if err != nil {
			s.Errs = append(s.Errs, &FormatError{Record: i, Msg: err.Error()})
			continue
		}
		s.recs = append(s.recs, rec)
	}
	return s, nil
}

func readRecord(raw json.RawMessage) (*Record, error) {
	var jr jsonRecord
	if err := json.Unmarshal(raw, &jr); err != nil {
		return nil, err
	}
	if jr.Name == nil || strings.TrimSpace(*jr.Name) == "" {
		return nil, fmt.Errorf("expecting field %q", "name")
	}

	rec := &Record{
		Name: strings.TrimSpace(*jr.Name),
	}

	seq, err := readSequence(jr.Sequence)
	if err != nil {
		return nil, fmt.Errorf("field %q: %v", "sequence", err)
	}
	rec.Sequence = seq
	if len(seq) > 0 {
		rec.Kind = Alignment
	}

	for i, jd := range jr.Domains {
		start, err := readInt(jd.Start)
		if err != nil {
			return nil, fmt.Errorf("domain %d: start: %v", i, err)
		}
		end, err := readInt(jd.End)
		if err != nil {
			return nil, fmt.Errorf("domain %d: end: %v", i, err)
		}
		if end < start {
			return nil, fmt.Errorf("domain %d: end %d before start %d", i, end, start)
		}
		label := jd.Label
		if label == "" {
			label = jd.Name
		}
		rec.Domains = append(rec.Domains, Domain{
			Start: start,
			End:   end,
			Label: label,
			Color: jd.Color,
		})
	}
	if len(rec.Domains) > 0 {
		rec.Kind = Domains
	}

	lr := jr.SeqLength
	if isNull(lr) {
		lr = jr.AlignmentLength
	}
	if !isNull(lr) {
		l, err := readInt(lr)
		if err != nil {
			return nil, fmt.Errorf("sequence length: %v", err)
		}
		rec.Length = l
	} else {
		rec.Length = len(rec.Sequence)
	}

	return rec, nil
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

// readInt reads an integer
// encoded either as a number or a string.
func readInt(raw json.RawMessage) (int, error) {
	if isNull(raw) {
		return 0, fmt.Errorf("undefined value")
	}
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(v)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return int(v), nil
}

func readSequence(raw json.RawMessage) ([]string, error) {
	if isNull(raw) {
		return nil, nil
	}
	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		if v == "" {
			return nil, nil
		}
		return strings.Split(v, ""), nil
	}

	var tokens []string
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}
