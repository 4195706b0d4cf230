// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prune implements the removal
// of leaves not in a set of retained taxa,
// and the collapse of the resulting inner nodes.
//
// Pruning keeps the removed nodes
// in the hidden state of their parents
// so a pruned tree can be restored.
package prune

import (
	"fmt"
	"slices"

	"github.com/js-arias/phyview/tree"
)

// Stats are the changes made by a pruning.
type Stats struct {
	// Hidden is the number of hidden nodes.
	Hidden int

	// Collapsed is the number of inner nodes
	// replaced by their only child.
	Collapsed int

	// Warning is set if the root is left
	// with less than two children.
	// It is never fatal.
	Warning error
}

// An InvariantViolation is a warning produced
// when the retained taxa are not enough
// to keep a resolved root.
type InvariantViolation struct {
	Children int
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("prune: root left with %d children", e.Children)
}

// Prune removes the leaves of a tree
// whose taxon is not in keep,
// then hides inner nodes without children,
// and collapses inner nodes with a single child
// (the child is adopted by the grandparent).
//
// The root is never removed.
// If all leaves are removed,
// the root is left without children.
//
// Nodes are processed bottom-up,
// and each list of children is copied
// before the children are visited,
// so edits never invalidate an ongoing iteration.
func Prune(root *tree.Node, keep map[string]bool) Stats {
	var st Stats
	if root.IsLeaf() {
		return st
	}

	for _, c := range slices.Clone(root.Children) {
		prune(c, keep, &st)
	}
	if cs, changed := survivors(root); changed {
		root.SetChildren(cs)
	}

	if len(root.Children) < 2 {
		st.Warning = &InvariantViolation{Children: len(root.Children)}
	}
	return st
}

func prune(n *tree.Node, keep map[string]bool, st *Stats) {
	p := n.Parent()
	if n.IsLeaf() {
		if !keep[n.Label()] {
			p.HideChild(n)
			st.Hidden++
		}
		return
	}

	for _, c := range slices.Clone(n.Children) {
		prune(c, keep, st)
	}

	cs, changed := survivors(n)
	switch len(cs) {
	case 0:
		n.SetChildren(nil)
		p.HideChild(n)
		st.Hidden++
	case 1:
		n.SetChildren(nil)
		p.HideChild(n)
		p.Offer(cs[0])
		st.Collapsed++
	default:
		if changed {
			n.SetChildren(cs)
		}
	}
}

// survivors returns the children of a node
// that are not hidden,
// followed by the nodes offered for adoption.
func survivors(n *tree.Node) ([]*tree.Node, bool) {
	offered := n.TakeOffered()
	changed := len(offered) > 0

	cs := make([]*tree.Node, 0, len(n.Children)+len(offered))
	for _, c := range n.Children {
		if n.IsHidden(c) {
			changed = true
			continue
		}
		cs = append(cs, c)
	}
	cs = append(cs, offered...)
	return cs, changed
}

// Restore sets back all nodes hidden
// by one or more prunings.
// It returns the number of nodes
// whose children were restored.
func Restore(root *tree.Node) int {
	restored := 0
	var restore func(n *tree.Node)
	restore = func(n *tree.Node) {
		if n.Reset() {
			restored++
		}
		for _, c := range n.Children {
			restore(c)
		}
	}
	restore(root)
	return restored
}

// Set returns a set of taxa
// from a list of names.
func Set(taxa ...string) map[string]bool {
	s := make(map[string]bool, len(taxa))
	for _, tx := range taxa {
		s[tx] = true
	}
	return s
}
