// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/js-arias/phyview/source"
	"github.com/js-arias/phyview/taxset"
	"github.com/js-arias/phyview/tree"
	"github.com/js-arias/phyview/view"
)

// Source returns the source of a dataset.
// Relative paths are resolved
// from the directory of the project file.
func (p *Project) Source(set Dataset) string {
	path := p.Path(set)
	if path == "" || source.IsURL(path) || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(p.name), path)
}

// Keep reads the set of retained taxa
// as defined in a project.
// If the set is not defined,
// it returns the default model organisms.
func (p *Project) Keep() (*taxset.Set, error) {
	name := p.Source(Keep)
	if name == "" {
		return taxset.ModelOrganisms(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := taxset.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return s, nil
}

// Config returns the configuration of a view
// as defined in a project.
// The format of the trees is taken
// from the extension of the sources.
func (p *Project) Config(mode view.Mode) (view.Config, error) {
	gt := p.Source(GeneTree)
	if gt == "" {
		return view.Config{}, fmt.Errorf("gene tree not defined in project %q", p.name)
	}
	cfg := view.Config{
		Tree:      gt,
		Format:    tree.FormatFromPath(gt),
		Alignment: p.Source(Alignment),
		Domains:   p.Source(Domains),
		Mode:      mode,
	}
	if st := p.Source(SpeciesTree); st != "" {
		cfg.Species = st
		cfg.SpeciesFormat = tree.FormatFromPath(st)
	}

	switch mode {
	case view.Alignment:
		if cfg.Alignment == "" {
			return view.Config{}, fmt.Errorf("alignment not defined in project %q", p.name)
		}
	case view.Domains:
		if cfg.Domains == "" {
			return view.Config{}, fmt.Errorf("domains not defined in project %q", p.name)
		}
	case view.SpeciesTree:
		if cfg.Species == "" {
			return view.Config{}, fmt.Errorf("species tree not defined in project %q", p.name)
		}
	}
	return cfg, nil
}
