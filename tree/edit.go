// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import "slices"

// HideChild records c as a hidden child of n.
// It does not remove c from the children of n.
func (n *Node) HideChild(c *Node) {
	if n.hidden == nil {
		n.hidden = make(map[*Node]int)
	}
	if _, ok := n.hidden[c]; ok {
		return
	}
	n.hidden[c] = len(n.hidden)
}

// IsHidden returns true if c is recorded
// as a hidden child of n.
func (n *Node) IsHidden(c *Node) bool {
	_, ok := n.hidden[c]
	return ok
}

// Hidden returns the hidden children of the node,
// in the order in which they were hidden.
func (n *Node) Hidden() []*Node {
	if len(n.hidden) == 0 {
		return nil
	}
	hs := make([]*Node, len(n.hidden))
	for c, i := range n.hidden {
		hs[i] = c
	}
	return hs
}

// Offer stages c to be adopted by n
// as a direct child.
func (n *Node) Offer(c *Node) {
	if slices.Contains(n.adopt, c) {
		return
	}
	n.adopt = append(n.adopt, c)
}

// TakeOffered returns the nodes staged for adoption
// and clears the staging list.
func (n *Node) TakeOffered() []*Node {
	a := n.adopt
	n.adopt = nil
	return a
}

// SetChildren replaces the children of the node.
// The first time the children of a node are replaced,
// the original children are stashed,
// so they can be recovered with Reset.
func (n *Node) SetChildren(cs []*Node) {
	if n.stash == nil {
		n.stash = n.Children
		if n.stash == nil {
			n.stash = []*Node{}
		}
	}
	n.Children = cs
	for _, c := range cs {
		c.parent = n
	}
}

// IsEdited returns true if the children of the node
// were replaced since the last Reset.
func (n *Node) IsEdited() bool {
	return n.stash != nil || len(n.hidden) > 0
}

// Reset sets back the original children of a node
// and clears its pruning state.
// It returns true if the node was edited.
func (n *Node) Reset() bool {
	edited := n.IsEdited()
	if n.stash != nil {
		n.Children = n.stash
		if len(n.Children) == 0 {
			n.Children = nil
		}
	}
	for _, c := range n.Children {
		c.parent = n
	}
	n.stash = nil
	n.hidden = nil
	n.adopt = nil
	return edited
}
