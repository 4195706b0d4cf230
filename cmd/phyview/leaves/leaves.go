// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package leaves implements a command to print
// the taxa of the leaves of a tree.
package leaves

import (
	"bytes"
	"context"
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phyview/source"
	"github.com/js-arias/phyview/taxrank"
	"github.com/js-arias/phyview/tree"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "leaves [--format <format>] [--rank] <tree-file>",
	Short: "print a list of tree leaves",
	Long: `
Command leaves reads a tree and prints the taxa of its leaves in the standard
output. Each taxon is printed only once.

The argument of the command is the name of the tree file, or an HTTP URL.

By default, the format of the tree is taken from the file extension. Use the
flag --format to set the format explicitly. Valid formats are "json",
"newick", and "timetree".

By default, taxa are sorted alphabetically. If the flag --rank is set, the
taxa are sorted by their taxonomic rank, and unknown taxa are printed at the
end in the order found in the tree.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var formatFlag string
var rankFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().BoolVar(&rankFlag, "rank", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	root, err := readTree(args[0])
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	var ls []string
	for _, l := range tree.Leaves(root) {
		tax := l.Label()
		if tax == "" || seen[tax] {
			continue
		}
		seen[tax] = true
		ls = append(ls, tax)
	}

	if rankFlag {
		taxrank.SortNames(ls)
	} else {
		slices.Sort(ls)
	}
	for _, tax := range ls {
		fmt.Fprintf(c.Stdout(), "%s\n", tax)
	}
	return nil
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
