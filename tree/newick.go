// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadNewick reads a tree in Newick
// (New Hampshire) format.
//
// Each node can have a label
// and a branch length,
// as in:
//
//	(A:1,(B:0.005,C:3)D:0.5)E:0;
//
// Labels of leaves are used as the name
// and the taxon of the node.
// Numeric labels of inner nodes are read
// as support values.
// Labels can be quoted with single quotes,
// and comments in square brackets are ignored.
func ReadNewick(r io.Reader) (*Node, error) {
	src, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}

	p := &newickParser{src: string(src)}
	p.skip()
	if p.pos >= len(p.src) {
		return nil, &ParseError{Pos: p.pos, Msg: "empty tree"}
	}

	root, err := p.node()
	if err != nil {
		return nil, err
	}
	p.skip()
	if p.pos < len(p.src) && p.src[p.pos] == ';' {
		p.pos++
		p.skip()
	}
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q after end of tree", p.src[p.pos])
	}
	return root, nil
}

type newickParser struct {
	src string
	pos int
}

func (p *newickParser) errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Pos: p.pos,
		Msg: fmt.Sprintf(format, args...),
	}
}

// skip skips spaces and comments.
func (p *newickParser) skip() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		case '[':
			end := strings.IndexByte(p.src[p.pos:], ']')
			if end < 0 {
				p.pos = len(p.src)
				return
			}
			p.pos += end + 1
		default:
			return
		}
	}
}

func (p *newickParser) node() (*Node, error) {
	n := &Node{}
	start := p.pos
	inner := false
	if p.src[p.pos] == '(' {
		inner = true
		p.pos++
		for {
			p.skip()
			if p.pos >= len(p.src) {
				return nil, p.errorf("unbalanced parenthesis: opened at %d", start)
			}
			if c := p.src[p.pos]; c == ',' || c == ')' {
				return nil, p.errorf("missing sibling")
			}
			c, err := p.node()
			if err != nil {
				return nil, err
			}
			n.Add(c)

			p.skip()
			if p.pos >= len(p.src) {
				return nil, p.errorf("unbalanced parenthesis: opened at %d", start)
			}
			if p.src[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.src[p.pos] == ')' {
				p.pos++
				break
			}
			return nil, p.errorf("unexpected %q", p.src[p.pos])
		}
	}

	p.skip()
	lbStart := p.pos
	label, err := p.label()
	if err != nil {
		return nil, err
	}
	if inner {
		if _, err := strconv.ParseFloat(label, 64); err == nil {
			n.Support = label
		} else {
			n.Name = label
		}
	} else {
		if label == "" {
			return nil, &ParseError{Pos: lbStart, Msg: "missing sibling"}
		}
		n.Name = label
		n.Taxon = label
	}

	p.skip()
	if p.pos < len(p.src) && p.src[p.pos] == ':' {
		p.pos++
		p.skip()
		lnStart := p.pos
		for p.pos < len(p.src) && !strings.ContainsRune("(),:;[ \t\n\r", rune(p.src[p.pos])) {
			p.pos++
		}
		v := p.src[lnStart:p.pos]
		l, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, &ParseError{Pos: lnStart, Msg: fmt.Sprintf("invalid branch length %q", v)}
		}
		n.SetLength(l)
	}
	return n, nil
}

func (p *newickParser) label() (string, error) {
	if p.pos >= len(p.src) {
		return "", nil
	}
	if p.src[p.pos] == '\'' {
		start := p.pos
		p.pos++
		var b strings.Builder
		for {
			if p.pos >= len(p.src) {
				return "", &ParseError{Pos: start, Msg: "unterminated quoted label"}
			}
			c := p.src[p.pos]
			p.pos++
			if c == '\'' {
				// doubled quote is an escaped quote
				if p.pos < len(p.src) && p.src[p.pos] == '\'' {
					b.WriteByte('\'')
					p.pos++
					continue
				}
				return b.String(), nil
			}
			b.WriteByte(c)
		}
	}

	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune("(),:;[' \t\n\r", rune(p.src[p.pos])) {
		p.pos++
	}
	return p.src[start:p.pos], nil
}

// WriteNewick writes a tree in Newick format.
func WriteNewick(w io.Writer, root *Node) error {
	var b strings.Builder
	writeNewick(&b, root)
	b.WriteString(";\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("while writing tree: %v", err)
	}
	return nil
}

func writeNewick(b *strings.Builder, n *Node) {
	if len(n.Children) > 0 {
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNewick(b, c)
		}
		b.WriteByte(')')
	}

	label := n.Name
	if n.IsLeaf() {
		label = n.Label()
	} else if label == "" {
		label = n.Support
	}
	b.WriteString(quoteLabel(label))

	if n.HasLength {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(n.Length, 'g', -1, 64))
	}
}

func quoteLabel(s string) string {
	if !strings.ContainsAny(s, "(),:;[]' \t\n\r") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
