// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/js-arias/timetree"
)

// Format is a tree file format.
type Format int

// Valid tree formats.
const (
	// Nested JSON objects.
	JSON Format = iota

	// Newick (New Hampshire) parenthetical format.
	Newick

	// Tab-delimited time calibrated trees.
	TimeTree
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case Newick:
		return "newick"
	case TimeTree:
		return "timetree"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format
// with the given name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "newick", "nh", "nhx", "nwk", "tre":
		return Newick, nil
	case "timetree", "tsv", "tab":
		return TimeTree, nil
	}
	return 0, fmt.Errorf("unknown tree format %q", name)
}

// FormatFromPath returns the format of a file
// based on the file extension.
// Files without a known extension
// are assumed to be Newick files.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return JSON
	case ".tab", ".tsv":
		return TimeTree
	}
	return Newick
}

// Parse reads a tree in the given format.
// On error,
// no tree is returned.
func Parse(r io.Reader, f Format) (*Node, error) {
	switch f {
	case JSON:
		return ReadJSON(r)
	case Newick:
		return ReadNewick(r)
	case TimeTree:
		return ReadTimeTree(r, "")
	}
	return nil, fmt.Errorf("unknown tree format %v", f)
}

const millionYears = 1_000_000

// ReadTimeTree reads a tree from a tab-delimited
// collection of time calibrated trees.
// If name is empty,
// the first tree of the collection is returned.
func ReadTimeTree(r io.Reader, name string) (*Node, error) {
	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}
	names := c.Names()
	if len(names) == 0 {
		return nil, &ParseError{Msg: "empty tree"}
	}
	if name == "" {
		name = names[0]
	}
	t := c.Tree(name)
	if t == nil {
		return nil, &ParseError{Msg: fmt.Sprintf("tree %q not found", name)}
	}
	return FromTimeTree(t), nil
}

// FromTimeTree copies a time calibrated tree.
// Branch lengths are set in million years.
func FromTimeTree(t *timetree.Tree) *Node {
	nodes := t.Nodes()
	ids := make(map[int]*Node, len(nodes))
	for _, id := range nodes {
		tax := t.Taxon(id)
		ids[id] = &Node{
			Name:  tax,
			Taxon: tax,
		}
	}

	var root *Node
	for _, id := range nodes {
		n := ids[id]
		p := t.Parent(id)
		if p < 0 {
			root = n
			continue
		}
		ids[p].Add(n)
		n.SetLength(float64(t.Age(p)-t.Age(id)) / millionYears)
	}
	return root
}
