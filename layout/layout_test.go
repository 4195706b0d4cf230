// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package layout_test

import (
	"math"
	"strings"
	"testing"

	"github.com/js-arias/phyview/layout"
	"github.com/js-arias/phyview/tree"
)

type coord struct {
	x     float64
	depth float64
}

func TestCluster(t *testing.T) {
	root := readTree(t, "(A:1,(B:0.005,C:3)D:0.5)E:0;")
	nodes := layout.Cluster(root, layout.Size{Height: 100, Width: 200}, nil, false)

	want := map[string]coord{
		"E": {37.5, 0},
		"A": {0, 100},
		"D": {75, 100},
		"B": {50, 200},
		"C": {100, 200},
	}
	testCoords(t, "uniform", nodes, want)
}

func TestClusterDepth(t *testing.T) {
	root := readTree(t, "(A:1,(B:0.005,C:3)D:0.5)E:0;")
	tree.SetDepth(root)
	nodes := layout.Cluster(root, layout.Size{Height: 100, Width: 200}, nil, true)

	want := map[string]coord{
		"E": {37.5, 0},
		"A": {0, 115},
		"D": {75, 57.5},
		"B": {50, 60.5},
		"C": {100, 172.5},
	}
	testCoords(t, "depth", nodes, want)
}

func TestClusterRankOrder(t *testing.T) {
	root := readTree(t, "(UnknownTaxon,Mus_musculus,Homo_sapiens);")
	nodes := layout.Cluster(root, layout.Size{Height: 20, Width: 10}, nil, false)

	want := []string{"", "Homo_sapiens", "Mus_musculus", "UnknownTaxon"}
	if len(nodes) != len(want) {
		t.Fatalf("nodes: got %d, want %d", len(nodes), len(want))
	}
	for i, n := range nodes {
		if n.Taxon != want[i] {
			t.Errorf("node %d: got %q, want %q", i, n.Taxon, want[i])
		}
	}
	if x := nodes[1].X; x != 0 {
		t.Errorf("first leaf: x %.3f, want %.3f", x, 0.0)
	}
	if x := nodes[3].X; x != 20 {
		t.Errorf("last leaf: x %.3f, want %.3f", x, 20.0)
	}
}

func TestClusterSingleLeaf(t *testing.T) {
	root := readTree(t, "A;")
	nodes := layout.Cluster(root, layout.Size{Height: 50, Width: 10}, nil, false)
	if len(nodes) != 1 {
		t.Fatalf("nodes: got %d, want %d", len(nodes), 1)
	}
	if nodes[0].X != 25 {
		t.Errorf("x: got %.3f, want %.3f", nodes[0].X, 25.0)
	}
	if nodes[0].Depth != 0 {
		t.Errorf("depth: got %.3f, want %.3f", nodes[0].Depth, 0.0)
	}
}

func TestClusterSeparation(t *testing.T) {
	root := readTree(t, "((A,B)X,C);")
	// double space between leaves of different parents
	sep := func(a, b *tree.Node) float64 {
		if a.Parent() == b.Parent() {
			return 1
		}
		return 2
	}
	layout.Cluster(root, layout.Size{Height: 30, Width: 10}, sep, false)

	want := map[string]float64{"A": 0, "B": 10, "C": 30}
	for _, l := range tree.Leaves(root) {
		if math.Abs(l.X-want[l.Name]) > 1e-9 {
			t.Errorf("leaf %q: x %.3f, want %.3f", l.Name, l.X, want[l.Name])
		}
	}
}

func readTree(t testing.TB, s string) *tree.Node {
	t.Helper()

	root, err := tree.ReadNewick(strings.NewReader(s))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return root
}

func testCoords(t testing.TB, name string, nodes []*tree.Node, want map[string]coord) {
	t.Helper()

	if len(nodes) != len(want) {
		t.Errorf("%s: got %d nodes, want %d", name, len(nodes), len(want))
	}
	for _, n := range nodes {
		w, ok := want[n.Name]
		if !ok {
			t.Errorf("%s: unexpected node %q", name, n.Name)
			continue
		}
		if math.Abs(n.X-w.x) > 1e-9 {
			t.Errorf("%s: node %q: x %.3f, want %.3f", name, n.Name, n.X, w.x)
		}
		if math.Abs(n.Depth-w.depth) > 1e-9 {
			t.Errorf("%s: node %q: depth %.3f, want %.3f", name, n.Name, n.Depth, w.depth)
		}
	}
}
