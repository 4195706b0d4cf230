// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxrank implements the ordering of sibling nodes
// using a fixed table of taxonomic ranks.
package taxrank

import (
	"regexp"
	"slices"

	"github.com/js-arias/phyview/tree"
)

// Unknown is the rank of a taxon
// not found in the rank table.
// It sorts after any known taxon.
const Unknown = int(^uint(0) >> 1)

// Rank returns the rank of a taxon.
// If the taxon is not in the table,
// it returns Unknown and false.
func Rank(name string) (int, bool) {
	r, ok := ranks[name]
	if !ok {
		return Unknown, false
	}
	return r, true
}

// Len returns the number of taxa
// in the rank table.
func Len() int {
	return len(ranks)
}

var suffix = regexp.MustCompile(`_\d+`)

// Key returns the name used to rank a node.
// Inner nodes use the node name
// without numeric suffixes
// (e.g., "Mammalia_12" is ranked as "Mammalia");
// leaves use the taxon,
// or the name if the taxon is undefined.
func Key(n *tree.Node) string {
	if !n.IsLeaf() {
		return suffix.ReplaceAllString(n.Name, "")
	}
	return n.Label()
}

// Compare compares two nodes by their rank.
// It returns a negative value if a ranks before b,
// a positive value if b ranks before a,
// and 0 if both have the same rank
// (including if both are unknown).
func Compare(a, b *tree.Node) int {
	ra, _ := Rank(Key(a))
	rb, _ := Rank(Key(b))
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	}
	return 0
}

// Sort sorts the children of each node in a tree
// by their rank.
// Nodes with the same rank keep their input order.
func Sort(root *tree.Node) {
	tree.Walk(root, func(n *tree.Node) bool {
		slices.SortStableFunc(n.Children, Compare)
		return true
	})
}

// SortNames sorts taxon names by their rank.
// Names with the same rank keep their input order.
func SortNames(names []string) {
	slices.SortStableFunc(names, func(a, b string) int {
		ra, _ := Rank(a)
		rb, _ := Rank(b)
		switch {
		case ra < rb:
			return -1
		case ra > rb:
			return 1
		}
		return 0
	})
}
