// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prunecmd implements a command to prune
// the leaves of a tree.
package prunecmd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phyview/prune"
	"github.com/js-arias/phyview/source"
	"github.com/js-arias/phyview/taxset"
	"github.com/js-arias/phyview/tree"
)

var Command = &command.Command{
	Usage: `prune [--format <format>]
	[--keep <taxa-file>] [--taxa <taxon>,...]
	[--json] [-o|--output <file>]
	<tree-file>`,
	Short: "prune the leaves of a tree",
	Long: `
Command prune reads a tree, removes the leaves whose taxon is not in a set of
retained taxa, and prints the pruned tree in the standard output. Inner nodes
left without leaves are removed, and inner nodes left with a single descendant
are replaced by that descendant.

The argument of the command is the name of the tree file, or an HTTP URL.

By default, the format of the tree is taken from the file extension. Use the
flag --format to set the format explicitly. Valid formats are "json",
"newick", and "timetree".

By default, the retained taxa are a set of model organisms: Homo sapiens, Pan
troglodytes, Mus musculus, Xenopus tropicalis, Gallus gallus, Drosophila
melanogaster, Arabidopsis thaliana, and Caenorhabditis elegans. Use the flag
--keep to read the retained taxa from a tab-delimited file (see 'phyview help
projects'), or the flag --taxa to give a comma-separated list of taxa. If both
flags are given, all taxa are retained.

By default, the tree is printed in Newick format. If the flag --json is set,
the tree will be printed as nested JSON objects.

By default, the tree is printed in the standard output. Use the flag -o, or
--output, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var formatFlag string
var keepFile string
var taxaFlag string
var jsonFlag bool
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().StringVar(&keepFile, "keep", "", "")
	c.Flags().StringVar(&taxaFlag, "taxa", "", "")
	c.Flags().BoolVar(&jsonFlag, "json", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	keep, err := readKeep()
	if err != nil {
		return err
	}

	root, err := readTree(args[0])
	if err != nil {
		return err
	}

	st := prune.Prune(root, keep.Keep())
	if st.Warning != nil {
		fmt.Fprintf(c.Stderr(), "WARNING: %v\n", st.Warning)
	}

	if output == "" {
		return writeTree(c.Stdout(), root)
	}
	return writeFile(output, root)
}

func readKeep() (*taxset.Set, error) {
	if keepFile == "" && taxaFlag == "" {
		return taxset.ModelOrganisms(), nil
	}

	s := taxset.New()
	if keepFile != "" {
		f, err := os.Open(keepFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		s, err = taxset.ReadTSV(f)
		if err != nil {
			return nil, fmt.Errorf("when reading %q: %v", keepFile, err)
		}
	}
	for _, tax := range strings.Split(taxaFlag, ",") {
		s.Add(tax, "")
	}
	return s, nil
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

func writeTree(w io.Writer, root *tree.Node) error {
	if jsonFlag {
		return tree.WriteJSON(w, root)
	}
	return tree.WriteNewick(w, root)
}

func writeFile(name string, root *tree.Node) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if err := writeTree(bw, root); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
