// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// the view of a project as an SVG file.
package draw

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phyview/layout"
	"github.com/js-arias/phyview/project"
	"github.com/js-arias/phyview/taxset"
	"github.com/js-arias/phyview/view"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `draw [--mode <mode>] [--prune] [--lengths]
	[--width <value>]
	[--verbose]
	[-o|--output <file>]
	<project-file>`,
	Short: "draw a project view as an SVG file",
	Long: `
Command draw reads a PhyView project and draws the gene tree, and optionally
its annotations or a species tree, into an SVG-encoded file.

The argument of the command is the name of the project file.

By default, only the gene tree is drawn. Use the flag --mode to define the
data drawn next to the tree. Valid modes are:

	plain        only the gene tree
	alignment    the aligned sequences of the leaves
	domains      the protein domains of the leaves
	speciestree  the species tree, with the shared taxa connected

If the flag --prune is set, only the leaves of the retained taxa of the
project are drawn (see 'phyview help projects'). Leaves of retained taxa with
a defined color are drawn with that color.

By default, all leaves are drawn at the same depth. If the flag --lengths is
set, the depth of the nodes will be set from the branch lengths.

By default, the tree is drawn in an area 600 pixels wide. Use the flag
--width to set a different value.

If the flag --verbose is set, diagnostic messages, such as the number of
annotation records without a leaf, will be printed in the standard error.

By default, the output file is the name of the project file with the ".svg"
extension. Use the flag -o, or --output, to define a different file name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var modeFlag string
var pruneFlag bool
var lengthsFlag bool
var verbose bool
var width float64
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&modeFlag, "mode", "plain", "")
	c.Flags().BoolVar(&pruneFlag, "prune", false, "")
	c.Flags().BoolVar(&lengthsFlag, "lengths", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().Float64Var(&width, "width", view.DefaultWidth, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) (err error) {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	mode, err := view.ParseMode(modeFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("while starting logger: %v", err)
		}
	}
	defer logger.Sync()

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	cfg, err := p.Config(mode)
	if err != nil {
		return err
	}
	cfg.Logger = logger
	cfg.RealLengths = lengthsFlag
	cfg.Size = layout.Size{Width: width}

	keep, err := p.Keep()
	if err != nil {
		return err
	}
	if pruneFlag {
		cfg.Keep = keep.Keep()
	} else {
		keep = taxset.New()
	}

	v, err := view.Load(context.Background(), cfg)
	if err != nil {
		return err
	}

	name := output
	if name == "" {
		name = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".svg"
	}
	return writeSVG(name, newSVGView(v, keep))
}

func writeSVG(name string, sv *svgView) (err error) {
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
	sv.draw(bw)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
