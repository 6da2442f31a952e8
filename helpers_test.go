package upgma

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/evolbioinfo/gotree/io/newick"
	gotree "github.com/evolbioinfo/gotree/tree"
)

func sampleNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("s%d", i)
	}
	return names
}

// randomUltrametric builds a flat n×n ultrametric matrix by joining random
// clusters at strictly increasing heights; d(a,b) is twice the height at
// which a and b first share a cluster.
func randomUltrametric(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	dist := make([]float64, n*n)

	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	height := 0.0
	for len(clusters) > 1 {
		height += 0.1 + rng.Float64()
		a := rng.Intn(len(clusters))
		b := rng.Intn(len(clusters) - 1)
		if b >= a {
			b++
		}
		for _, x := range clusters[a] {
			for _, y := range clusters[b] {
				dist[x*n+y] = 2 * height
				dist[y*n+x] = 2 * height
			}
		}
		merged := append(append([]int{}, clusters[a]...), clusters[b]...)
		lo, hi := min(a, b), max(a, b)
		clusters = append(clusters[:hi], clusters[hi+1:]...)
		clusters[lo] = merged
	}
	return dist
}

func toRows(flat []float64, n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = append([]float64(nil), flat[i*n:(i+1)*n]...)
	}
	return rows
}

// parseTree parses Newick output with gotree.
func parseTree(t *testing.T, s string) *gotree.Tree {
	t.Helper()
	tr, err := newick.NewParser(strings.NewReader(s)).Parse()
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tr
}

// tipDistances returns the summed branch length from node to every tip,
// keyed by tip name.
func tipDistances(node *gotree.Node) map[string]float64 {
	out := make(map[string]float64)
	var walk func(cur, prev *gotree.Node, d float64)
	walk = func(cur, prev *gotree.Node, d float64) {
		if cur.Tip() {
			out[cur.Name()] = d
		}
		for _, e := range cur.Edges() {
			next := e.Right()
			if next == cur {
				next = e.Left()
			}
			if next == prev {
				continue
			}
			walk(next, cur, d+e.Length())
		}
	}
	walk(node, nil, 0)
	return out
}
