// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

type jsonNode struct {
	Name         string          `json:"name"`
	Taxon        string          `json:"taxon,omitempty"`
	BranchLength json.RawMessage `json:"branch_length,omitempty"`
	Bootstrap    json.RawMessage `json:"bootstrap,omitempty"`
	Children     []*jsonNode     `json:"children,omitempty"`

	// fields produced by newick.js
	Length    json.RawMessage `json:"length,omitempty"`
	BranchSet []*jsonNode     `json:"branchset,omitempty"`
}

// ReadJSON reads a tree encoded as nested JSON objects.
//
// Each object can have the following fields:
//
//   - name, the name of the node
//   - taxon, the taxon of the node
//   - branch_length, a number,
//     or "N/A" for an undefined length
//   - bootstrap, a support value
//   - children, an array of nodes
//
// Here is an example:
//
//	{"name": "E", "children": [
//		{"name": "A", "taxon": "Homo_sapiens", "branch_length": 1},
//		{"name": "B", "taxon": "Mus_musculus", "branch_length": "N/A"}
//	]}
func ReadJSON(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ParseError{Msg: "empty tree"}
	}

	var jn *jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		var se *json.SyntaxError
		if errors.As(err, &se) {
			return nil, &ParseError{Pos: int(se.Offset), Msg: se.Error()}
		}
		return nil, &ParseError{Msg: err.Error()}
	}
	if jn == nil {
		return nil, &ParseError{Msg: "empty tree"}
	}

	seen := make(map[*jsonNode]bool)
	return jn.copy(nil, "root", seen)
}

func (jn *jsonNode) copy(parent *Node, path string, seen map[*jsonNode]bool) (*Node, error) {
	if seen[jn] {
		return nil, &ParseError{Path: path, Msg: ErrCycle.Error()}
	}
	seen[jn] = true

	n := &Node{
		Name:   jn.Name,
		Taxon:  jn.Taxon,
		parent: parent,
	}

	raw := jn.BranchLength
	if len(raw) == 0 {
		raw = jn.Length
	}
	l, ok, err := readLength(raw)
	if err != nil {
		return nil, &ParseError{Path: path, Msg: err.Error()}
	}
	if ok {
		n.SetLength(l)
	}
	if len(jn.Bootstrap) > 0 && string(jn.Bootstrap) != "null" {
		n.Support = strings.Trim(string(jn.Bootstrap), `"`)
	}

	children := jn.Children
	if len(children) == 0 {
		children = jn.BranchSet
	}
	for i, jc := range children {
		if jc == nil {
			return nil, &ParseError{Path: path, Msg: fmt.Sprintf("child %d: missing sibling", i)}
		}
		c, err := jc.copy(n, fmt.Sprintf("%s.children[%d]", path, i), seen)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
	}
	return n, nil
}

// readLength decodes a branch length field.
// The second value is false
// if the length is not applicable.
func readLength(raw json.RawMessage) (float64, bool, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, false, nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return 0, false, err
		}
		s = strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "N/A") {
			return 0, false, nil
		}
	}
	l, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid branch length %q", s)
	}
	return l, true, nil
}

// WriteJSON writes a tree as nested JSON objects.
func WriteJSON(w io.Writer, root *Node) error {
	data, err := json.MarshalIndent(toJSON(root), "", "\t")
	if err != nil {
		return fmt.Errorf("while encoding tree: %v", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("while writing tree: %v", err)
	}
	return nil
}

func toJSON(n *Node) *jsonNode {
	jn := &jsonNode{
		Name:  n.Name,
		Taxon: n.Taxon,
	}
	if n.HasLength {
		jn.BranchLength = json.RawMessage(strconv.FormatFloat(n.Length, 'g', -1, 64))
	} else {
		jn.BranchLength = json.RawMessage(`"N/A"`)
	}
	if n.Support != "" {
		jn.Bootstrap = json.RawMessage(strconv.Quote(n.Support))
	}
	for _, c := range n.Children {
		jn.Children = append(jn.Children, toJSON(c))
	}
	return jn
}
