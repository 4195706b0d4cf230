// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package printcmd implements a command to print
// a tree as indented text.
package printcmd

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/phyview/source"
	"github.com/js-arias/phyview/taxrank"
	"github.com/js-arias/phyview/tree"
	"github.com/xlab/treeprint"
)

var Command = &command.Command{
	Usage: "print [--format <format>] [--depth] [--ids] <tree-file>",
	Short: "print a tree as indented text",
	Long: `
Command print reads a tree and prints it in the standard output as indented
text. Siblings are sorted by their taxonomic rank.

The argument of the command is the name of the tree file, or an HTTP URL.

By default, the format of the tree is taken from the file extension. Use the
flag --format to set the format explicitly. Valid formats are "json",
"newick", and "timetree".

By default, each node is printed with its branch length. If the flag --depth
is set, the display depth of each node, as calculated from the branch lengths,
will be printed instead.

If the flag --ids is set, node IDs will be printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var formatFlag string
var depthFlag bool
var idsFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().BoolVar(&depthFlag, "depth", false, "")
	c.Flags().BoolVar(&idsFlag, "ids", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	root, err := readTree(args[0])
	if err != nil {
		return err
	}
	taxrank.Sort(root)
	tree.SetDepth(root)
	if idsFlag {
		tree.AssignIDs(root)
	}

	tp := treeprint.New()
	addNode(tp, root)
	fmt.Fprint(c.Stdout(), tp.String())
	return nil
}

func addNode(tp treeprint.Tree, n *tree.Node) {
	if n.IsLeaf() {
		tp.AddNode(label(n))
		return
	}
	br := tp.AddBranch(label(n))
	for _, ch := range n.Children {
		addNode(br, ch)
	}
}

func label(n *tree.Node) string {
	s := n.Label()
	if s == "" {
		s = "*"
	}
	if n.Support != "" {
		s += " [" + n.Support + "]"
	}
	if depthFlag {
		s += " " + strconv.FormatFloat(n.Depth, 'f', 3, 64)
	} else if n.HasLength {
		s += " :" + strconv.FormatFloat(n.Length, 'g', -1, 64)
	}
	if idsFlag {
		s += " #" + strconv.Itoa(n.ID)
	}
	return s
}

func readTree(name string) (*tree.Node, error) {
	f := tree.FormatFromPath(name)
	if formatFlag != "" {
		var err error
		f, err = tree.ParseFormat(formatFlag)
		if err != nil {
			return nil, err
		}
	}

	data, err := source.Fetch(context.Background(), name)
	if err != nil {
		return nil, err
	}
	root, err := tree.Parse(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return root, nil
}
