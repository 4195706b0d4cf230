// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reconcile matches the leaves of a gene tree
// with the nodes of a species tree,
// so shared taxa can be connected in a drawing.
package reconcile

import "github.com/js-arias/phyview/tree"

// A Point is the coordinate of a node in a layout.
type Point struct {
	X float64
	Y float64
}

// PointOf returns the coordinate of a node.
func PointOf(n *tree.Node) Point {
	return Point{X: n.X, Y: n.Depth}
}

// Key returns the taxon used to match
// a species tree node.
// If the node has no taxon,
// its name is used.
func Key(n *tree.Node) string {
	return n.Label()
}

// Reconcile returns the coordinates of the gene tree leaves,
// indexed by taxon,
// for the taxa found in the species tree.
// If more than one leaf has the same taxon,
// the last one is used.
//
// The species tree is not modified.
func Reconcile(geneLeaves, speciesNodes []*tree.Node) map[string]Point {
	species := make(map[string]bool, len(speciesNodes))
	for _, sn := range speciesNodes {
		species[Key(sn)] = true
	}

	m := make(map[string]Point)
	for _, l := range geneLeaves {
		if l.Taxon == "" || !species[l.Taxon] {
			continue
		}
		m[l.Taxon] = PointOf(l)
	}
	return m
}

// A Link connects a species tree node
// with a gene tree leaf.
type Link struct {
	Taxon   string
	Species Point
	Gene    Point
}

// Links returns the links between the species tree nodes
// and the reconciled gene tree leaves,
// in the order of the species tree nodes.
func Links(rec map[string]Point, speciesNodes []*tree.Node) []Link {
	var ls []Link
	seen := make(map[string]bool)
	for _, sn := range speciesNodes {
		k := Key(sn)
		if seen[k] {
			continue
		}
		g, ok := rec[k]
		if !ok {
			continue
		}
		seen[k] = true
		ls = append(ls, Link{
			Taxon:   k,
			Species: PointOf(sn),
			Gene:    g,
		})
	}
	return ls
}
