// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements the canonical phylogenetic tree
// used by PhyView:
// a rooted, ordered tree of nodes,
// with readers for the supported tree formats.
package tree

import "github.com/js-arias/phyview/annot"

// A Node is a node of a phylogenetic tree.
type Node struct {
	// Name is the label of the node.
	// It is unique among siblings.
	Name string

	// Taxon is the taxonomic name of the node,
	// used to identify leaves across trees.
	Taxon string

	// Length is the branch length of the node.
	// It is only valid if HasLength is true.
	Length    float64
	HasLength bool

	// Support is a support value
	// (e.g., a bootstrap value)
	// read from an inner node label.
	Support string

	// Children are the descendants of the node.
	Children []*Node

	// ID is an identifier assigned by AssignIDs.
	// Zero means unassigned.
	ID int

	// Depth is the display depth of the node
	// (see SetDepth).
	Depth float64

	// X is the breadth coordinate
	// set by a layout.
	X float64

	// Annot is the annotation record
	// associated with the node.
	Annot *annot.Record

	parent *Node

	// pruning state
	hidden map[*Node]int
	adopt  []*Node
	stash  []*Node
}

// New creates a new node.
func New(name, taxon string) *Node {
	return &Node{
		Name:  name,
		Taxon: taxon,
	}
}

// Add adds a child to the node.
func (n *Node) Add(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

// SetLength sets the branch length of the node.
func (n *Node) SetLength(l float64) {
	n.Length = l
	n.HasLength = true
}

// Parent returns the parent of the node.
// The root returns nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetParent sets the parent reference of the node.
// It does not modify the children of p.
func (n *Node) SetParent(p *Node) {
	n.parent = p
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsRoot returns true if the node has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Label returns the taxon of the node,
// or its name if the taxon is undefined.
func (n *Node) Label() string {
	if n.Taxon != "" {
		return n.Taxon
	}
	return n.Name
}

// Nodes returns the nodes of a tree in pre-order.
func Nodes(root *Node) []*Node {
	var ns []*Node
	Walk(root, func(n *Node) bool {
		ns = append(ns, n)
		return true
	})
	return ns
}

// Leaves returns the leaves of a tree in pre-order.
func Leaves(root *Node) []*Node {
	var ls []*Node
	Walk(root, func(n *Node) bool {
		if n.IsLeaf() {
			ls = append(ls, n)
		}
		return true
	})
	return ls
}

// Walk visits the nodes of a tree in pre-order.
// If fn returns false the walk stops.
func Walk(root *Node, fn func(*Node) bool) {
	walk(root, fn)
}

func walk(n *Node, fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// FindByTaxon returns the first node in pre-order
// with the given taxon.
// It returns nil if there is no such node.
func FindByTaxon(root *Node, taxon string) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if n.Taxon == taxon {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindByName returns the first node in pre-order
// with the given name.
func FindByName(root *Node, name string) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// AssignIDs sets an ID to each node without one.
// New IDs are larger than any ID already in the tree,
// so an ID is never reused
// between successive passes.
// It returns the largest ID.
func AssignIDs(root *Node) int {
	max := 0
	Walk(root, func(n *Node) bool {
		if n.ID > max {
			max = n.ID
		}
		return true
	})
	Walk(root, func(n *Node) bool {
		if n.ID == 0 {
			max++
			n.ID = max
		}
		return true
	})
	return max
}
