// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package layout implements a cluster layout
// for phylogenetic trees,
// in which all leaves are evenly spaced.
package layout

import (
	"github.com/js-arias/phyview/taxrank"
	"github.com/js-arias/phyview/tree"
)

// Size is the size of the drawing area.
type Size struct {
	// Height is the breadth of the tree
	// (the axis in which leaves are spaced).
	Height float64

	// Width is the axis of the tree depth.
	Width float64
}

// A Separation returns the space between two adjacent leaves,
// in units of the leaf step.
type Separation func(a, b *tree.Node) float64

// Even is a separation that gives the same space
// to any pair of leaves.
func Even(a, b *tree.Node) float64 {
	return 1
}

// Cluster sets the coordinates of the nodes of a tree.
//
// Sibling nodes are sorted by their taxonomic rank.
// Leaves are spaced along X over the height of the area,
// and each inner node is at the mean X of its children.
// If useDepth is true,
// the current Depth of the nodes is kept,
// otherwise Depth is the number of edges to the root
// scaled so the deepest leaf is at the width of the area.
//
// It returns the nodes in pre-order.
func Cluster(root *tree.Node, sz Size, sep Separation, useDepth bool) []*tree.Node {
	if sep == nil {
		sep = Even
	}
	taxrank.Sort(root)

	leaves := tree.Leaves(root)
	var total float64
	for i := 1; i < len(leaves); i++ {
		total += sep(leaves[i-1], leaves[i])
	}
	step := 0.0
	if total > 0 {
		step = sz.Height / total
	}
	x := 0.0
	for i, l := range leaves {
		if i > 0 {
			x += sep(leaves[i-1], l) * step
		}
		l.X = x
	}
	if len(leaves) == 1 {
		leaves[0].X = sz.Height / 2
	}
	setInnerX(root)

	if !useDepth {
		max := maxEdges(root)
		dStep := 0.0
		if max > 0 {
			dStep = sz.Width / float64(max)
		}
		tree.Uniform(root, dStep)
	}

	return tree.Nodes(root)
}

func setInnerX(n *tree.Node) {
	if n.IsLeaf() {
		return
	}
	var sum float64
	for _, c := range n.Children {
		setInnerX(c)
		sum += c.X
	}
	n.X = sum / float64(len(n.Children))
}

func maxEdges(n *tree.Node) int {
	max := 0
	for _, c := range n.Children {
		if e := maxEdges(c) + 1; e > max {
			max = e
		}
	}
	return max
}
