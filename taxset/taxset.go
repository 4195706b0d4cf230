// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxset provides a set of taxa
// to be retained when pruning a tree,
// with an optional highlight color for each taxon.
package taxset

import (
	"slices"
	"strings"
)

// Set is a collection of taxa.
type Set struct {
	taxon map[string]string
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		taxon: make(map[string]string),
	}
}

// ModelOrganisms returns the default set of taxa,
// made of common model organisms.
func ModelOrganisms() *Set {
	s := New()
	s.Add("Homo_sapiens", "red")
	s.Add("Pan_troglodytes", "red")

	s.Add("Mus_musculus", "blue")
	s.Add("Xenopus_tropicalis", "blue")
	s.Add("Gallus_gallus", "blue")
	s.Add("Drosophila_melanogaster", "blue")
	s.Add("Arabidopsis_thaliana", "blue")
	s.Add("Caenorhabditis_elegans", "blue")
	return s
}

// Add adds a taxon to the set,
// with an optional color.
// If the taxon is already in the set,
// the color is replaced,
// unless the new color is empty.
func (s *Set) Add(taxon, color string) {
	taxon = canon(taxon)
	if taxon == "" {
		return
	}
	color = strings.ToLower(strings.TrimSpace(color))
	if prev, ok := s.taxon[taxon]; ok && color == "" {
		color = prev
	}
	s.taxon[taxon] = color
}

// Has returns true if the taxon is in the set.
func (s *Set) Has(taxon string) bool {
	_, ok := s.taxon[canon(taxon)]
	return ok
}

// Color returns the color of a taxon.
func (s *Set) Color(taxon string) string {
	return s.taxon[canon(taxon)]
}

// Keep returns the set as a map of taxon names.
func (s *Set) Keep() map[string]bool {
	k := make(map[string]bool, len(s.taxon))
	for tx := range s.taxon {
		k[tx] = true
	}
	return k
}

// Len returns the number of taxa in the set.
func (s *Set) Len() int {
	return len(s.taxon)
}

// Taxa returns the taxa in the set.
func (s *Set) Taxa() []string {
	taxa := make([]string, 0, len(s.taxon))
	for tx := range s.taxon {
		taxa = append(taxa, tx)
	}
	slices.Sort(taxa)
	return taxa
}

// canon returns a taxon name
// in its canonical form,
// with underscores instead of spaces.
func canon(name string) string {
	return strings.Join(strings.Fields(name), "_")
}
