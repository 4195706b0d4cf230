// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to print
// a summary of the branch lengths of a tree.
package stats

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/phyview/source"
	"github.com/js-arias/phyview/tree"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `stats [--format <format>]
	[--plot <image-file>] [--bins <number>]
	<tree-file>`,
	Short: "print a summary of the branch lengths of a tree",
	Long: `
Command stats reads a tree and prints in the standard output the number of
nodes and leaves, and a summary of the branch lengths and the display depths
of the nodes.

The argument of the command is the name of the tree file, or an HTTP URL.

By default, the format of the tree is taken from the file extension. Use the
flag --format to set the format explicitly. Valid formats are "json",
"newick", and "timetree".

The display step of each branch is calculated from its branch length: an
undefined length has a step of 100, a length smaller than 0.01 has a step of
3, a length larger than 2 has a step of 115, and any other length is
multiplied by 115.

If the flag --plot is defined, a histogram of the defined branch lengths will
be written in the indicated file. The format of the image is taken from the
file extension (for example ".png" or ".svg"). By default, the histogram
has 20 bins; use the flag --bins to set a different number.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var formatFlag string
var plotFile string
var bins int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
	c.Flags().IntVar(&bins, "bins", 20, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}

	root, err := readTree(args[0])
	if err != nil {
		return err
	}

	s := summarize(root)
	s.report(c.Stdout())

	if plotFile != "" {
		if err := makePlot(s.lengths); err != nil {
			return err
		}
	}
	return nil
}

type summary struct {
	nodes     int
	leaves    int
	undefined int
	negative  int
	lengths   []float64
	maxDepth  float64
	deepest   string
}

func summarize(root *tree.Node) summary {
	tree.SetDepth(root)

	var s summary
	for _, n := range tree.Nodes(root) {
		s.nodes++
		if n.IsLeaf() {
			s.leaves++
			if n.Depth > s.maxDepth {
				s.maxDepth = n.Depth
				s.deepest = n.Label()
			}
		}
		if n == root {
			continue
		}
		if !n.HasLength {
			s.undefined++
			continue
		}
		if n.Length < 0 {
			s.negative++
		}
		s.lengths = append(s.lengths, n.Length)
	}
	slices.Sort(s.lengths)
	return s
}

func (s summary) report(w io.Writer) {
	fmt.Fprintf(w, "nodes: %d\n", s.nodes)
	fmt.Fprintf(w, "leaves: %d\n", s.leaves)
	fmt.Fprintf(w, "branches: %d\n", s.nodes-1)
	fmt.Fprintf(w, "\tundefined length: %d\n", s.undefined)
	fmt.Fprintf(w, "\tnegative length: %d\n", s.negative)
	if len(s.lengths) > 0 {
		weights := make([]float64, len(s.lengths))
		for i := range weights {
			weights[i] = 1
		}
		min := s.lengths[0]
		max := s.lengths[len(s.lengths)-1]
		fmt.Fprintf(w, "\tmin: %.6f\n", min)
		fmt.Fprintf(w, "\t2.5%%: %.6f\n", stat.Quantile(0.025, stat.Empirical, s.lengths, weights))
		fmt.Fprintf(w, "\tmedian: %.6f\n", stat.Quantile(0.5, stat.Empirical, s.lengths, weights))
		fmt.Fprintf(w, "\t97.5%%: %.6f\n", stat.Quantile(0.975, stat.Empirical, s.lengths, weights))
		fmt.Fprintf(w, "\tmax: %.6f\n", max)
		fmt.Fprintf(w, "\tmean: %.6f\n", stat.Mean(s.lengths, weights))
	}
	fmt.Fprintf(w, "max display depth: %.3f [%s]\n", s.maxDepth, s.deepest)
}

func makePlot(lengths []float64) error {
	if len(lengths) == 0 {
		return fmt.Errorf("while building histogram: no branch lengths defined")
	}

	p := plot.New()
	p.X.Label.Text = "branch length"
	p.Y.Label.Text = "branches"

	h, err := plotter.NewHist(plotter.Values(lengths), bins)
	if err != nil {
		return fmt.Errorf("while building histogram: %v", err)
	}
	p.Add(h)

	if err := p.Save(5*vg.Inch, 3*vg.Inch, plotFile); err != nil {
		return err
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
