// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project,
// and to set the sources of its datasets.
package prj

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phyview/annot"
	"github.com/js-arias/phyview/project"
	"github.com/js-arias/phyview/source"
	"github.com/js-arias/phyview/tree"
)

var Command = &command.Command{
	Usage: "prj [--set <dataset>=<path>] <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a PhyView project and prints the information of the
different project elements into the standard output.

The argument of the command is the name of the project file.

If the flag --set is defined, the source of the indicated dataset will be set
to the given path, and the project file will be updated (or created, if it
does not exist). An empty path removes the dataset from the project. Valid
datasets are "alignment", "domains", "genetree", "keep", and "speciestree"
(see 'phyview help projects').
	`,
	SetFlags: setFlags,
	Run:      run,
}

var setFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&setFlag, "set", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	if setFlag != "" {
		return setDataset(args[0])
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	for _, s := range p.Sets() {
		if err := report(c.Stdout(), p, s); err != nil {
			return err
		}
	}
	return nil
}

func setDataset(name string) error {
	ds, path, ok := strings.Cut(setFlag, "=")
	if !ok {
		return fmt.Errorf("invalid flag --set value %q: expecting <dataset>=<path>", setFlag)
	}
	set, err := project.ParseDataset(ds)
	if err != nil {
		return err
	}

	p, err := project.Read(name)
	if errors.Is(err, fs.ErrNotExist) {
		p = project.New()
		p.SetName(name)
	} else if err != nil {
		return err
	}

	p.Add(set, strings.TrimSpace(path))
	return p.Write()
}

func report(w io.Writer, p *project.Project, set project.Dataset) error {
	src := p.Source(set)
	switch set {
	case project.GeneTree:
		fmt.Fprintf(w, "Gene tree:\n")
	case project.SpeciesTree:
		fmt.Fprintf(w, "Species tree:\n")
	case project.Alignment:
		fmt.Fprintf(w, "Alignment:\n")
	case project.Domains:
		fmt.Fprintf(w, "Domains:\n")
	case project.Keep:
		fmt.Fprintf(w, "Retained taxa:\n")
	}
	fmt.Fprintf(w, "\tsource: %s\n", p.Path(set))

	switch set {
	case project.GeneTree, project.SpeciesTree:
		if err := reportTree(w, src); err != nil {
			return err
		}
	case project.Alignment, project.Domains:
		if err := reportAnnotations(w, src); err != nil {
			return err
		}
	case project.Keep:
		s, err := p.Keep()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\ttaxa: %d\n", s.Len())
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func reportTree(w io.Writer, src string) error {
	data, err := source.Fetch(context.Background(), src)
	if err != nil {
		return err
	}
	f := tree.FormatFromPath(src)
	root, err := tree.Parse(bytes.NewReader(data), f)
	if err != nil {
		return fmt.Errorf("while reading %q: %v", src, err)
	}

	fmt.Fprintf(w, "\tformat: %s\n", f)
	fmt.Fprintf(w, "\tnodes: %d\n", len(tree.Nodes(root)))
	fmt.Fprintf(w, "\tleaves: %d\n", len(tree.Leaves(root)))
	return nil
}

func reportAnnotations(w io.Writer, src string) error {
	data, err := source.Fetch(context.Background(), src)
	if err != nil {
		return err
	}
	s, err := annot.Read(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("while reading %q: %v", src, err)
	}

	fmt.Fprintf(w, "\trecords: %d\n", s.Len())
	if s.Dropped() > 0 {
		fmt.Fprintf(w, "\tdropped records: %d\n", s.Dropped())
	}
	fmt.Fprintf(w, "\tmax sequence length: %d\n", s.MaxLength())
	return nil
}
