// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of PhyView project files.
//
// A PhyView project is a tab-delimited file (TSV)
// used to store the sources of the data
// (trees and annotations)
// of a tree view.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a data source in a project.
type Dataset string

// Valid dataset types.
const (
	// Source of the aligned sequences
	// of the gene tree leaves.
	Alignment Dataset = "alignment"

	// Source of the protein domains
	// of the gene tree leaves.
	Domains Dataset = "domains"

	// Source of the gene tree.
	GeneTree Dataset = "genetree"

	// File for the taxa retained
	// when pruning the gene tree.
	Keep Dataset = "keep"

	// Source of the species tree.
	SpeciesTree Dataset = "speciestree"
)

// A Project represents a collection of paths
// for particular datasets.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{
		name:  "",
		paths: make(map[Dataset]string),
	}
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a project file from a TSV file.
//
// The TSV must contain the following fields:
//
//   - dataset, for the kind of data
//   - path, for the path or URL of the source
//
// Here is an example file:
//
//	# phyview project files
//	dataset	path
//	genetree	gene-tree.json
//	speciestree	https://example.org/trees/species.nh
//	domains	domains.json
//	keep	model-organisms.tab
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tsv := csv.NewReader(f)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("on file %q: header: %v", name, err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on file %q: expecting field %q", name, h)
		}
	}

	p := New()
	p.name = name
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
		}

		f := "dataset"
		s := Dataset(strings.ToLower(strings.TrimSpace(row[fields[f]])))
		if !s.valid() {
			return nil, fmt.Errorf("on file %q: on row %d: unknown dataset %q", name, ln, s)
		}

		f = "path"
		path := strings.TrimSpace(row[fields[f]])
		if path == "" {
			continue
		}
		p.paths[s] = path
	}

	return p, nil
}

// Add adds a filepath of a dataset to a given project.
// It returns the previous value
// for the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}

	p.paths[set] = path
	return prev
}

func (d Dataset) valid() bool {
	switch d {
	case Alignment, Domains, GeneTree, Keep, SpeciesTree:
		return true
	}
	return false
}

// ParseDataset returns the dataset
// with the given keyword.
func ParseDataset(name string) (Dataset, error) {
	d := Dataset(strings.ToLower(strings.TrimSpace(name)))
	if !d.valid() {
		return "", fmt.Errorf("unknown dataset %q", name)
	}
	return d, nil
}

// Name returns the file name of the project.
func (p *Project) Name() string {
	return p.name
}

// Path returns the path of the given dataset.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// Sets returns the datasets defined on a project.
func (p *Project) Sets() []Dataset {
	var sets []Dataset
	for s := range p.paths {
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project into a file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# phyview project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", p.name, err)
	}

	sets := p.Sets()
	for _, s := range sets {
		row := []string{
			string(s),
			p.paths[s],
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", p.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	return nil
}
