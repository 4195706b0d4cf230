// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyView is a tool to prepare and draw views of gene trees.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phyview/cmd/phyview/draw"
	"github.com/js-arias/phyview/cmd/phyview/leaves"
	"github.com/js-arias/phyview/cmd/phyview/prj"
	"github.com/js-arias/phyview/cmd/phyview/printcmd"
	"github.com/js-arias/phyview/cmd/phyview/prunecmd"
	"github.com/js-arias/phyview/cmd/phyview/stats"
)

var app = &command.Command{
	Usage: "phyview <command> [<argument>...]",
	Short: "a tool to prepare and draw views of gene trees",
}

func init() {
	app.Add(draw.Command)
	app.Add(leaves.Command)
	app.Add(prj.Command)
	app.Add(printcmd.Command)
	app.Add(prunecmd.Command)
	app.Add(stats.Command)
}

func main() {
	app.Main()
}
