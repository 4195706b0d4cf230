// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

// Display steps used by SetDepth.
const (
	// DefaultStep is the step of a branch
	// without a defined length.
	DefaultStep = 100

	// MinStep is the step of a very short branch.
	MinStep = 3

	// LengthScale is the factor that converts
	// a branch length into a display step.
	LengthScale = 115
)

// SetDepth sets the display depth of each node
// from its branch length.
//
// This is a presentation heuristic,
// not a phylogenetic distance:
// the root is at depth 0,
// and each node is at the depth of its parent
// plus a step based on its branch length:
//
//   - undefined length: DefaultStep
//   - length smaller than 0.01: MinStep
//   - length larger than 2: LengthScale
//   - otherwise: length * LengthScale
//
// As steps are never negative,
// depth never decreases from the root to a leaf.
func SetDepth(root *Node) {
	root.Depth = 0
	for _, c := range root.Children {
		setDepth(c, 0)
	}
}

func setDepth(n *Node, offset float64) {
	n.Depth = offset + Step(n)
	for _, c := range n.Children {
		setDepth(c, n.Depth)
	}
}

// Step returns the display step of the branch
// of a node.
func Step(n *Node) float64 {
	if !n.HasLength {
		return DefaultStep
	}
	switch {
	case n.Length < 0.01:
		// negative lengths are treated as zero
		return MinStep
	case n.Length > 2:
		return LengthScale
	}
	return n.Length * LengthScale
}

// Uniform sets the display depth of each node
// as the number of edges to the root
// times the given step.
func Uniform(root *Node, step float64) {
	uniform(root, 0, step)
}

func uniform(n *Node, offset, step float64) {
	n.Depth = offset
	for _, c := range n.Children {
		uniform(c, offset+step, step)
	}
}
