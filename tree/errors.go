// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"fmt"
)

// ErrCycle is the error message used
// when a node is found twice in a tree.
var ErrCycle = errors.New("node found twice in tree")

// A ParseError is an error produced
// when reading a malformed tree.
type ParseError struct {
	// Pos is the byte offset of the error.
	Pos int

	// Path is the location of a node
	// in a JSON tree.
	Path string

	Msg string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("tree: on node %s: %s", e.Path, e.Msg)
	}
	return fmt.Sprintf("tree: at byte %d: %s", e.Pos, e.Msg)
}
