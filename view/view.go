// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package view implements the preparation of a tree view:
// reading of the trees and annotations,
// setting of display depths,
// pruning,
// layout,
// and reconciliation with a species tree.
package view

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/js-arias/phyview/annot"
	"github.com/js-arias/phyview/layout"
	"github.com/js-arias/phyview/prune"
	"github.com/js-arias/phyview/reconcile"
	"github.com/js-arias/phyview/source"
	"github.com/js-arias/phyview/tree"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Mode is the kind of annotation panel of a view.
type Mode int

// Valid view modes.
const (
	// A tree without annotations.
	Plain Mode = iota

	// A tree with aligned sequences.
	Alignment

	// A tree with protein domains.
	Domains

	// A gene tree reconciled with a species tree.
	SpeciesTree
)

func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case Alignment:
		return "alignment"
	case Domains:
		return "domains"
	case SpeciesTree:
		return "speciestree"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain":
		return Plain, nil
	case "alignment", "alignments":
		return Alignment, nil
	case "domains", "domain":
		return Domains, nil
	case "speciestree", "species", "reconciled":
		return SpeciesTree, nil
	}
	return Plain, fmt.Errorf("unknown view mode %q", name)
}

// Default size of the tree area.
const (
	DefaultWidth = 600

	// LeafHeight is the height used for each leaf.
	LeafHeight = 11
)

// Config defines the sources and options of a view.
type Config struct {
	// Tree is the source of the gene tree.
	Tree   string
	Format tree.Format

	// Species is the source of the species tree.
	// It is required on SpeciesTree mode.
	Species       string
	SpeciesFormat tree.Format

	// Sources of annotations.
	Alignment string
	Domains   string

	Mode Mode

	// Keep is the set of retained taxa.
	// If nil, the tree is not pruned.
	Keep map[string]bool

	// RealLengths sets the depth of the nodes
	// from the branch lengths.
	RealLengths bool

	// Size of the tree area.
	// If the height is zero,
	// it is set from the number of nodes.
	Size layout.Size

	Logger *zap.Logger
}

// A View is a tree prepared for drawing.
type View struct {
	Mode Mode

	// Root of the gene tree,
	// and its nodes in layout order.
	Root  *tree.Node
	Nodes []*tree.Node

	// Annotations of the view.
	Annotations *annot.Set

	// Unmatched is the number of annotation records
	// without a node in the tree.
	Unmatched int

	// Prune are the changes made by pruning.
	Prune prune.Stats

	// Species tree of a reconciled view.
	Species      *tree.Node
	SpeciesNodes []*tree.Node

	// Reconciled is the position of the gene tree leaves
	// indexed by the taxa of the species tree.
	Reconciled map[string]reconcile.Point
	Links      []reconcile.Link
}

// Load reads the sources of a view
// and prepares the trees for drawing.
// Sources are read in parallel.
// Any error while reading the trees
// or the annotations aborts the load.
func Load(ctx context.Context, cfg Config) (*View, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	annSrc := ""
	switch cfg.Mode {
	case Alignment:
		annSrc = cfg.Alignment
	case Domains:
		annSrc = cfg.Domains
	case SpeciesTree:
		if cfg.Species == "" {
			return nil, fmt.Errorf("view: species tree undefined in %s mode", cfg.Mode)
		}
	}

	v := &View{Mode: cfg.Mode}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		root, err := readTree(ctx, cfg.Tree, cfg.Format)
		if err != nil {
			return err
		}
		v.Root = root
		return nil
	})
	if cfg.Mode == SpeciesTree {
		g.Go(func() error {
			root, err := readTree(ctx, cfg.Species, cfg.SpeciesFormat)
			if err != nil {
				return err
			}
			v.Species = root
			return nil
		})
	}
	if annSrc != "" {
		g.Go(func() error {
			data, err := source.Fetch(ctx, annSrc)
			if err != nil {
				return err
			}
			s, err := annot.Read(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("on annotations %q: %w", annSrc, err)
			}
			v.Annotations = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if v.Annotations != nil {
		if n := v.Annotations.Dropped(); n > 0 {
			logger.Warn("annotation records dropped",
				zap.String("source", annSrc),
				zap.Int("dropped", n),
				zap.Errors("errors", v.Annotations.Errs),
			)
		}
		v.Unmatched = Merge(v.Root, v.Annotations)
		if v.Unmatched > 0 {
			logger.Debug("annotation records without node",
				zap.String("source", annSrc),
				zap.Int("unmatched", v.Unmatched),
			)
		}
	}

	if cfg.RealLengths {
		tree.SetDepth(v.Root)
	}
	if cfg.Keep != nil {
		v.Prune = prune.Prune(v.Root, cfg.Keep)
		logger.Debug("tree pruned",
			zap.Int("hidden", v.Prune.Hidden),
			zap.Int("collapsed", v.Prune.Collapsed),
		)
		if v.Prune.Warning != nil {
			logger.Warn("pruned tree", zap.Error(v.Prune.Warning))
		}
	}

	sz := cfg.Size
	if sz.Width == 0 {
		sz.Width = DefaultWidth
	}
	if sz.Height == 0 {
		sz.Height = float64(len(tree.Nodes(v.Root)) * LeafHeight)
	}
	v.Nodes = layout.Cluster(v.Root, sz, nil, cfg.RealLengths)
	tree.AssignIDs(v.Root)

	if v.Species != nil {
		ssz := layout.Size{
			Height: float64(len(tree.Nodes(v.Species)) * LeafHeight),
			Width:  sz.Width,
		}
		v.SpeciesNodes = layout.Cluster(v.Species, ssz, nil, false)
		tree.AssignIDs(v.Species)
		v.Reconciled = reconcile.Reconcile(tree.Leaves(v.Root), v.SpeciesNodes)
		v.Links = reconcile.Links(v.Reconciled, v.SpeciesNodes)
		logger.Debug("trees reconciled", zap.Int("taxa", len(v.Reconciled)))
	}

	return v, nil
}

func readTree(ctx context.Context, src string, f tree.Format) (*tree.Node, error) {
	data, err := source.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	root, err := tree.Parse(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("on tree %q: %w", src, err)
	}
	return root, nil
}

// Merge sets the annotation of each node
// with a record of the same name.
// It returns the number of records
// without a node.
func Merge(root *tree.Node, s *annot.Set) int {
	idx := s.Index()
	used := make(map[string]bool, len(idx))
	tree.Walk(root, func(n *tree.Node) bool {
		if r, ok := idx[n.Name]; ok {
			n.Annot = r
			used[n.Name] = true
		}
		return true
	})
	return len(idx) - len(used)
}

// A Viewer keeps the current view of a tree.
// A Viewer is not safe for concurrent use.
type Viewer struct {
	cfg Config
	cur *View
}

// NewViewer creates a new viewer
// with the given configuration.
// The view is not loaded
// until Reload is called.
func NewViewer(cfg Config) *Viewer {
	return &Viewer{cfg: cfg}
}

// Current returns the current view.
func (vw *Viewer) Current() *View {
	return vw.cur
}

// Reload reads again the sources of the view.
// The current view is replaced only if the load
// is successful.
func (vw *Viewer) Reload(ctx context.Context) error {
	v, err := Load(ctx, vw.cfg)
	if err != nil {
		return err
	}
	vw.cur = v
	return nil
}

// ShowModel reloads the view
// pruning the taxa not in keep.
func (vw *Viewer) ShowModel(ctx context.Context, keep map[string]bool) error {
	cfg := vw.cfg
	cfg.Keep = keep
	v, err := Load(ctx, cfg)
	if err != nil {
		return err
	}
	vw.cfg = cfg
	vw.cur = v
	return nil
}

// ShowFull reloads the view
// without pruning.
func (vw *Viewer) ShowFull(ctx context.Context) error {
	return vw.ShowModel(ctx, nil)
}
