// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phyview/tree"
)

func TestReadJSON(t *testing.T) {
	in := `{
	"name": "E",
	"branch_length": 0,
	"children": [
		{"name": "A", "taxon": "A", "branch_length": 1},
		{
			"name": "D",
			"branch_length": "0.5",
			"children": [
				{"name": "B", "taxon": "B", "branch_length": 0.005},
				{"name": "C", "taxon": "C", "branch_length": 3}
			]
		}
	]
}`
	root, err := tree.ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := shapeOf(root); !reflect.DeepEqual(got, exampleShape) {
		t.Errorf("tree: got %+v, want %+v", got, exampleShape)
	}
	testParents(t, "json", root)
}

func TestReadJSONUndefinedLength(t *testing.T) {
	in := `{"name": "root", "branch_length": "N/A", "bootstrap": 87, "children": [
		{"name": "Homo_sapiens_1", "taxon": "Homo_sapiens", "branch_length": null},
		{"name": "Mus_musculus_1", "taxon": "Mus_musculus"}
	]}`
	root, err := tree.ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := shape{
		Name: "root",
		Children: []shape{
			{Name: "Homo_sapiens_1", Taxon: "Homo_sapiens"},
			{Name: "Mus_musculus_1", Taxon: "Mus_musculus"},
		},
	}
	if got := shapeOf(root); !reflect.DeepEqual(got, want) {
		t.Errorf("tree: got %+v, want %+v", got, want)
	}
	if root.Support != "87" {
		t.Errorf("support: got %q, want %q", root.Support, "87")
	}
}

func TestReadJSONBranchSet(t *testing.T) {
	in := `{"branchset": [{"name": "A", "length": 1}, {"name": "B", "length": 2}]}`
	root, err := tree.ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := shape{
		Children: []shape{
			{Name: "A", Length: 1, Defined: true},
			{Name: "B", Length: 2, Defined: true},
		},
	}
	if got := shapeOf(root); !reflect.DeepEqual(got, want) {
		t.Errorf("tree: got %+v, want %+v", got, want)
	}
}

func TestReadJSONError(t *testing.T) {
	tests := map[string]struct {
		in   string
		path string
	}{
		"empty":          {in: "  "},
		"null":           {in: "null"},
		"syntax":         {in: `{"name": "A", "children": [}`},
		"invalid length": {in: `{"name": "A", "children": [{"name": "B", "branch_length": "long"}]}`, path: "root.children[0]"},
		"null child":     {in: `{"name": "A", "children": [{"name": "B"}, null]}`, path: "root"},
	}

	for name, test := range tests {
		root, err := tree.ReadJSON(strings.NewReader(test.in))
		if err == nil {
			t.Errorf("%s: expecting error", name)
			continue
		}
		if root != nil {
			t.Errorf("%s: tree returned on error", name)
		}
		var pe *tree.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s: got error %T, want *tree.ParseError", name, err)
			continue
		}
		if pe.Path != test.path {
			t.Errorf("%s: error path: got %q, want %q", name, pe.Path, test.path)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	root, err := tree.ReadNewick(strings.NewReader("(A:1,(B:0.005,C)D:0.5)E;"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var w bytes.Buffer
	if err := tree.WriteJSON(&w, root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(w.String(), `"N/A"`) {
		t.Errorf("undefined length not written as %q:\n%s", "N/A", w.String())
	}

	nr, err := tree.ReadJSON(&w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(shapeOf(nr), shapeOf(root)) {
		t.Errorf("round trip: got %+v, want %+v", shapeOf(nr), shapeOf(root))
	}
}
