// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package annot_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phyview/annot"
)

func TestRead(t *testing.T) {
	in := `[
	{"name": "ENSP01", "alignment_length": 4, "sequence": "MK-L"},
	{"name": "ENSP02", "seq_length": "300", "domains": [
		{"start": 10, "end": 80, "label": "PF00001"},
		{"start": "120", "end": 200, "name": "PF00002", "color": "#ff0000"}
	]},
	{"name": "ENSP03", "sequence": ["M", "K", "-", "-"]},
	{"name": " ENSP04 "}
]`
	s, err := annot.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Dropped() != 0 {
		t.Errorf("dropped: got %d, want %d: %v", s.Dropped(), 0, s.Errs)
	}

	want := []*annot.Record{
		{
			Name:     "ENSP01",
			Length:   4,
			Kind:     annot.Alignment,
			Sequence: []string{"M", "K", "-", "L"},
		},
		{
			Name:   "ENSP02",
			Length: 300,
			Kind:   annot.Domains,
			Domains: []annot.Domain{
				{Start: 10, End: 80, Label: "PF00001"},
				{Start: 120, End: 200, Label: "PF00002", Color: "#ff0000"},
			},
		},
		{
			Name:     "ENSP03",
			Length:   4,
			Kind:     annot.Alignment,
			Sequence: []string{"M", "K", "-", "-"},
		},
		{
			Name: "ENSP04",
			Kind: annot.Empty,
		},
	}
	testRecords(t, s, want)

	if got := s.MaxLength(); got != 300 {
		t.Errorf("max length: got %d, want %d", got, 300)
	}
}

func TestReadDropped(t *testing.T) {
	in := `[
	{"name": "ENSP01", "sequence": "MKL"},
	{"sequence": "MKL"},
	{"name": ""},
	{"name": "ENSP02", "domains": [{"start": 80, "end": 10}]},
	{"name": "ENSP03", "domains": [{"start": "x", "end": 10}]},
	42,
	{"name": "ENSP04", "seq_length": 5}
]`
	s, err := annot.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, r := range s.Records() {
		names = append(names, r.Name)
	}
	if want := []string{"ENSP01", "ENSP04"}; !reflect.DeepEqual(names, want) {
		t.Errorf("records: got %v, want %v", names, want)
	}
	if s.Dropped() != 5 {
		t.Errorf("dropped: got %d, want %d", s.Dropped(), 5)
	}

	wantIdx := []int{1, 2, 3, 4, 5}
	for i, err := range s.Errs {
		var fe *annot.FormatError
		if !errors.As(err, &fe) {
			t.Errorf("error %d: got %T, want *annot.FormatError", i, err)
			continue
		}
		if fe.Record != wantIdx[i] {
			t.Errorf("error %d: record %d, want %d", i, fe.Record, wantIdx[i])
		}
	}
}

func TestReadError(t *testing.T) {
	tests := map[string]string{
		"empty":     "",
		"object":    `{"name": "ENSP01"}`,
		"truncated": `[{"name": "ENSP01"`,
	}

	for name, in := range tests {
		s, err := annot.Read(strings.NewReader(in))
		if err == nil {
			t.Errorf("%s: expecting error", name)
			continue
		}
		if s != nil {
			t.Errorf("%s: set returned on error", name)
		}
		var fe *annot.FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%s: got %T, want *annot.FormatError", name, err)
			continue
		}
		if fe.Record != -1 {
			t.Errorf("%s: record %d, want %d", name, fe.Record, -1)
		}
	}
}

func TestIndex(t *testing.T) {
	in := `[
	{"name": "ENSP01", "sequence": "MK"},
	{"name": "ENSP02", "sequence": "ML"},
	{"name": "ENSP01", "sequence": "MKLV"}
]`
	s, err := annot.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx := s.Index()
	if len(idx) != 2 {
		t.Errorf("index size: got %d, want %d", len(idx), 2)
	}
	if r := idx["ENSP01"]; r == nil || r.Length != 4 {
		t.Errorf("repeated name: got %+v, want last record", r)
	}
}

func TestDomainColor(t *testing.T) {
	if annot.DomainColor(0, 1) == nil {
		t.Errorf("nil color for a single domain")
	}
	first := annot.DomainColor(0, 5)
	last := annot.DomainColor(4, 5)
	if reflect.DeepEqual(first, last) {
		t.Errorf("first and last domain with the same color %v", first)
	}
}

func testRecords(t testing.TB, s *annot.Set, want []*annot.Record) {
	t.Helper()

	if s.Len() != len(want) {
		t.Fatalf("records: got %d, want %d", s.Len(), len(want))
	}
	for i, r := range s.Records() {
		if !reflect.DeepEqual(r, want[i]) {
			t.Errorf("record %d: got %+v, want %+v", i, r, want[i])
		}
	}
}
