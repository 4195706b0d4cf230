// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/js-arias/blind"
	"github.com/js-arias/phyview/annot"
	"github.com/js-arias/phyview/taxset"
	"github.com/js-arias/phyview/tree"
	"github.com/js-arias/phyview/view"
	"golang.org/x/exp/slices"
)

const (
	margin = 10

	// assume that each character has 6 pixels wide
	charWidth = 6

	// width of the annotation panel
	panelWidth = 400

	// space between the gene and species trees
	linkGap = 60
)

const residues = "ACDEFGHIKLMNPQRSTVWY"

type svgView struct {
	v    *view.View
	keep *taxset.Set

	depth  float64 // deepest gene tree node
	labelW int

	panelX  int
	spDepth float64
	spLabel int

	height int
	width  int

	domains map[string]int
}

func newSVGView(v *view.View, keep *taxset.Set) *svgView {
	sv := &svgView{
		v:    v,
		keep: keep,
	}

	maxX := 0.0
	for _, n := range v.Nodes {
		sv.depth = math.Max(sv.depth, n.Depth)
		maxX = math.Max(maxX, n.X)
		if n.IsLeaf() && len(n.Label()) > sv.labelW {
			sv.labelW = len(n.Label())
		}
	}
	sv.labelW = sv.labelW*charWidth + 10
	sv.panelX = margin + px(sv.depth) + sv.labelW

	sv.width = sv.panelX + margin
	switch v.Mode {
	case view.Alignment, view.Domains:
		sv.width += panelWidth
	case view.SpeciesTree:
		for _, n := range v.SpeciesNodes {
			sv.spDepth = math.Max(sv.spDepth, n.Depth)
			maxX = math.Max(maxX, n.X)
			if n.IsLeaf() && len(n.Label()) > sv.spLabel {
				sv.spLabel = len(n.Label())
			}
		}
		sv.spLabel = sv.spLabel*charWidth + 10
		sv.width += linkGap + sv.spLabel + px(sv.spDepth)
	}
	sv.height = px(maxX) + 2*margin

	if v.Mode == view.Domains && v.Annotations != nil {
		var labels []string
		for _, r := range v.Annotations.Records() {
			for _, d := range r.Domains {
				labels = append(labels, d.Label)
			}
		}
		slices.Sort(labels)
		labels = slices.Compact(labels)
		sv.domains = make(map[string]int, len(labels))
		for i, l := range labels {
			sv.domains[l] = i
		}
	}
	return sv
}

func (sv *svgView) draw(w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(sv.width, sv.height)
	canvas.Rect(0, 0, sv.width, sv.height, "fill:white")

	canvas.Gstyle("stroke-width:2;stroke:black;stroke-linecap:round;font-family:Verdana;font-size:10px")
	sv.drawGene(canvas)
	switch sv.v.Mode {
	case view.Alignment:
		sv.drawAlignment(canvas)
	case view.Domains:
		sv.drawDomains(canvas)
	case view.SpeciesTree:
		sv.drawLinks(canvas)
		sv.drawSpecies(canvas)
	}
	canvas.Gend()
	canvas.End()
}

func (sv *svgView) geneX(n *tree.Node) int {
	return margin + px(n.Depth)
}

func (sv *svgView) geneY(n *tree.Node) int {
	return margin + px(n.X)
}

func (sv *svgView) drawGene(canvas *svg.SVG) {
	for _, n := range sv.v.Nodes {
		p := n.Parent()
		if p == nil {
			continue
		}
		x, y := sv.geneX(n), sv.geneY(n)
		ax, ay := sv.geneX(p), sv.geneY(p)
		canvas.Line(ax, ay, ax, y)
		canvas.Line(ax, y, x, y)
	}

	for _, n := range sv.v.Nodes {
		if !n.IsLeaf() {
			continue
		}
		style := "stroke:none;fill:black"
		if c := sv.keep.Color(n.Label()); c != "" {
			style = "stroke:none;fill:" + c
		}
		canvas.Text(sv.geneX(n)+4, sv.geneY(n)+3, n.Label(), style)
	}
}

func (sv *svgView) drawAlignment(canvas *svg.SVG) {
	max := sv.v.Annotations.MaxLength()
	if max == 0 {
		return
	}
	rw := float64(panelWidth) / float64(max)
	for _, n := range sv.v.Nodes {
		if n.Annot == nil || n.Annot.Kind != annot.Alignment {
			continue
		}
		y := sv.geneY(n)
		for i, tok := range n.Annot.Sequence {
			c, ok := residueColor(tok)
			if !ok {
				continue
			}
			x := sv.panelX + px(float64(i)*rw)
			canvas.Rect(x, y-3, int(math.Ceil(rw)), 6, "stroke:none;fill:"+css(c))
		}
	}
}

func residueColor(tok string) (color.Color, bool) {
	tok = strings.ToUpper(tok)
	if tok == "" || tok == "-" || tok == "." {
		return nil, false
	}
	i := strings.Index(residues, tok)
	if i < 0 {
		return color.Gray{Y: 160}, true
	}
	return blind.Sequential(blind.Iridescent, float64(i)/float64(len(residues)-1)), true
}

func (sv *svgView) drawDomains(canvas *svg.SVG) {
	max := sv.v.Annotations.MaxLength()
	if max == 0 {
		return
	}
	scale := float64(panelWidth) / float64(max)
	for _, n := range sv.v.Nodes {
		if n.Annot == nil {
			continue
		}
		y := sv.geneY(n)
		canvas.Line(sv.panelX, y, sv.panelX+px(float64(n.Annot.Length)*scale), y, "stroke:gray;stroke-width:1")
		for _, d := range n.Annot.Domains {
			fill := d.Color
			if fill == "" {
				fill = css(annot.DomainColor(sv.domains[d.Label], len(sv.domains)))
			}
			x := sv.panelX + px(float64(d.Start)*scale)
			dw := px(float64(d.End-d.Start) * scale)
			canvas.Rect(x, y-4, dw, 8, "stroke:none;fill:"+fill)
		}
	}
}

// speciesX returns the horizontal position
// of a species tree node.
// The species tree is mirrored,
// so its leaves face the gene tree.
func (sv *svgView) speciesX(n *tree.Node) int {
	return sv.panelX + linkGap + sv.spLabel + px(sv.spDepth-n.Depth)
}

func (sv *svgView) speciesY(n *tree.Node) int {
	return margin + px(n.X)
}

func (sv *svgView) drawSpecies(canvas *svg.SVG) {
	for _, n := range sv.v.SpeciesNodes {
		p := n.Parent()
		if p == nil {
			continue
		}
		x, y := sv.speciesX(n), sv.speciesY(n)
		ax, ay := sv.speciesX(p), sv.speciesY(p)
		canvas.Line(ax, ay, ax, y)
		canvas.Line(ax, y, x, y)
	}

	for _, n := range sv.v.SpeciesNodes {
		if !n.IsLeaf() {
			continue
		}
		canvas.Text(sv.speciesX(n)-4, sv.speciesY(n)+3, n.Label(), "stroke:none;fill:black;text-anchor:end")
	}
}

func (sv *svgView) drawLinks(canvas *svg.SVG) {
	nodes := make(map[string]*tree.Node, len(sv.v.SpeciesNodes))
	for _, n := range sv.v.SpeciesNodes {
		if _, ok := nodes[n.Label()]; !ok {
			nodes[n.Label()] = n
		}
	}

	for _, l := range sv.v.Links {
		sn, ok := nodes[l.Taxon]
		if !ok {
			continue
		}
		x1 := sv.panelX - 4
		y1 := margin + px(l.Gene.X)
		x2 := sv.speciesX(sn) - sv.spLabel
		y2 := sv.speciesY(sn)
		canvas.Line(x1, y1, x2, y2, "stroke:gray;stroke-width:1;stroke-dasharray:4,2")
	}
}

func px(v float64) int {
	return int(math.Round(v))
}

func css(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}
