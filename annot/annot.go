// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package annot implements reading of per-leaf annotations
// (sequence alignments and protein domains).
//
// Annotations are keyed by the name of a leaf,
// and are independent of the shape of a tree.
package annot

import (
	"fmt"
	"image/color"

	"github.com/js-arias/blind"
)

// Kind is the kind of data of an annotation record.
type Kind int

// Valid annotation kinds.
const (
	// A record without sequence data.
	Empty Kind = iota

	// A record with an aligned sequence.
	Alignment

	// A record with protein domains.
	Domains
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Alignment:
		return "alignment"
	case Domains:
		return "domains"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Domain is an interval of a sequence.
type Domain struct {
	Start int
	End   int
	Label string

	// Color is an optional color for the domain.
	Color string
}

// A Record is the annotation of a leaf.
type Record struct {
	// Name of the leaf.
	Name string

	// Length of the sequence.
	Length int

	Kind     Kind
	Sequence []string
	Domains  []Domain
}

// A Set is an ordered collection of records.
type Set struct {
	recs []*Record

	// Errs are the errors of the dropped records.
	Errs []error
}

// Records returns the records of the set
// in input order.
func (s *Set) Records() []*Record {
	return s.recs
}

// Len returns the number of records.
func (s *Set) Len() int {
	return len(s.recs)
}

// Dropped returns the number of records
// dropped because of format errors.
func (s *Set) Dropped() int {
	return len(s.Errs)
}

// Index returns the records of the set
// indexed by name.
// If a name is repeated,
// the last record is used.
func (s *Set) Index() map[string]*Record {
	idx := make(map[string]*Record, len(s.recs))
	for _, r := range s.recs {
		idx[r.Name] = r
	}
	return idx
}

// MaxLength returns the length of the longest sequence
// in the set.
func (s *Set) MaxLength() int {
	max := 0
	for _, r := range s.recs {
		if r.Length > max {
			max = r.Length
		}
	}
	return max
}

// DomainColor returns the default color
// of the i-th domain
// out of n domains.
func DomainColor(i, n int) color.Color {
	if n < 2 {
		return blind.Sequential(blind.Iridescent, 0.5)
	}
	v := float64(i) / float64(n-1)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return blind.Sequential(blind.Iridescent, v)
}
