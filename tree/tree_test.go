// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"bytes"
	"math"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/phyview/tree"
	"github.com/js-arias/timetree"
)

func readExample(t testing.TB) *tree.Node {
	t.Helper()

	root, err := tree.ReadNewick(strings.NewReader("(A:1,(B:0.005,C:3)D:0.5)E:0;"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return root
}

func TestNodes(t *testing.T) {
	root := readExample(t)

	var names []string
	for _, n := range tree.Nodes(root) {
		names = append(names, n.Name)
	}
	if want := []string{"E", "A", "D", "B", "C"}; !reflect.DeepEqual(names, want) {
		t.Errorf("nodes: got %v, want %v", names, want)
	}

	names = names[:0]
	for _, n := range tree.Leaves(root) {
		names = append(names, n.Name)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(names, want) {
		t.Errorf("leaves: got %v, want %v", names, want)
	}

	if n := tree.FindByTaxon(root, "C"); n == nil || n.Name != "C" {
		t.Errorf("find taxon %q: got %v", "C", n)
	}
	if n := tree.FindByName(root, "D"); n == nil || n.IsLeaf() {
		t.Errorf("find name %q: got %v", "D", n)
	}
	if n := tree.FindByTaxon(root, "Z"); n != nil {
		t.Errorf("find taxon %q: got %q, want nil", "Z", n.Name)
	}
}

func TestSetDepth(t *testing.T) {
	root := readExample(t)
	tree.SetDepth(root)

	want := map[string]float64{
		"E": 0,
		"A": 115,
		"D": 57.5,
		"B": 60.5,
		"C": 172.5,
	}
	for _, n := range tree.Nodes(root) {
		if math.Abs(n.Depth-want[n.Name]) > 1e-9 {
			t.Errorf("node %q: depth %.3f, want %.3f", n.Name, n.Depth, want[n.Name])
		}
	}
}

func TestStep(t *testing.T) {
	tests := map[string]struct {
		n    *tree.Node
		want float64
	}{
		"undefined": {n: tree.New("a", ""), want: tree.DefaultStep},
		"short":     {n: withLength(0.001), want: tree.MinStep},
		"negative":  {n: withLength(-2), want: tree.MinStep},
		"long":      {n: withLength(10), want: tree.LengthScale},
		"regular":   {n: withLength(1), want: tree.LengthScale},
		"half":      {n: withLength(0.2), want: 0.2 * tree.LengthScale},
	}

	for name, test := range tests {
		if got := tree.Step(test.n); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("%s: got %.3f, want %.3f", name, got, test.want)
		}
	}
}

func withLength(l float64) *tree.Node {
	n := tree.New("", "")
	n.SetLength(l)
	return n
}

func TestDepthMonotone(t *testing.T) {
	root, err := tree.ReadNewick(strings.NewReader("((a:-1,b)c:0.001,(d:5,(e,f:0)g)h)i;"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree.SetDepth(root)
	tree.Walk(root, func(n *tree.Node) bool {
		for _, c := range n.Children {
			if c.Depth < n.Depth {
				t.Errorf("node %q: depth %.3f, smaller than parent depth %.3f", c.Name, c.Depth, n.Depth)
			}
		}
		return true
	})
}

func TestUniform(t *testing.T) {
	root := readExample(t)
	tree.Uniform(root, 10)

	want := map[string]float64{"E": 0, "A": 10, "D": 10, "B": 20, "C": 20}
	for _, n := range tree.Nodes(root) {
		if n.Depth != want[n.Name] {
			t.Errorf("node %q: depth %.3f, want %.3f", n.Name, n.Depth, want[n.Name])
		}
	}
}

func TestAssignIDs(t *testing.T) {
	root := readExample(t)
	if max := tree.AssignIDs(root); max != 5 {
		t.Errorf("max ID: got %d, want %d", max, 5)
	}

	seen := make(map[int]bool)
	for _, n := range tree.Nodes(root) {
		if n.ID == 0 {
			t.Errorf("node %q: without ID", n.Name)
		}
		if seen[n.ID] {
			t.Errorf("node %q: ID %d repeated", n.Name, n.ID)
		}
		seen[n.ID] = true
	}

	// new nodes get new IDs
	d := tree.FindByName(root, "D")
	d.Add(tree.New("X", "X"))
	if max := tree.AssignIDs(root); max != 6 {
		t.Errorf("max ID: got %d, want %d", max, 6)
	}
	if x := tree.FindByName(root, "X"); x.ID != 6 {
		t.Errorf("new node ID: got %d, want %d", x.ID, 6)
	}
	if d.ID != 3 {
		t.Errorf("old node ID: got %d, want %d", d.ID, 3)
	}
}

func TestFormat(t *testing.T) {
	paths := map[string]tree.Format{
		"gene-tree.json":   tree.JSON,
		"species.nh":       tree.Newick,
		"tree":             tree.Newick,
		"dated-trees.TAB":  tree.TimeTree,
		"dated-trees.tsv":  tree.TimeTree,
		"http://x.org/t.j": tree.Newick,
	}
	for p, want := range paths {
		if got := tree.FormatFromPath(p); got != want {
			t.Errorf("path %q: got %v, want %v", p, got, want)
		}
	}

	for _, f := range []tree.Format{tree.JSON, tree.Newick, tree.TimeTree} {
		got, err := tree.ParseFormat(f.String())
		if err != nil {
			t.Errorf("format %v: unexpected error: %v", f, err)
			continue
		}
		if got != f {
			t.Errorf("format %v: got %v", f, got)
		}
	}
	if _, err := tree.ParseFormat("nexus"); err == nil {
		t.Errorf("format %q: expecting error", "nexus")
	}
	if _, err := tree.Parse(strings.NewReader("(A,B);"), tree.Format(42)); err == nil {
		t.Errorf("unknown format: expecting error")
	}
}

func TestTimeTree(t *testing.T) {
	c, err := timetree.Newick(strings.NewReader("((A:1,B:1):2,C:3);"), "dated", 3_000_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var w bytes.Buffer
	if err := c.TSV(&w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root, err := tree.Parse(&w, tree.TimeTree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tt := c.Tree("dated")
	var taxa []string
	for _, l := range tree.Leaves(root) {
		taxa = append(taxa, l.Taxon)
	}
	want := tt.Terms()
	if !reflect.DeepEqual(sortedCopy(taxa), sortedCopy(want)) {
		t.Errorf("taxa: got %v, want %v", taxa, want)
	}
	if root.HasLength {
		t.Errorf("root with branch length %.3f", root.Length)
	}
	if got := len(tree.Nodes(root)); got != len(tt.Nodes()) {
		t.Errorf("nodes: got %d, want %d", got, len(tt.Nodes()))
	}
	for _, l := range tree.Leaves(root) {
		if !l.HasLength || l.Length < 0 {
			t.Errorf("leaf %q: invalid length %.3f", l.Taxon, l.Length)
		}
	}
}

func sortedCopy(s []string) []string {
	c := slices.Clone(s)
	slices.Sort(c)
	return c
}
