package upgma

import (
	"errors"
	"fmt"
	"math"
)

// Newick returns the whole tree as a Newick string terminated by ';'.
func (r *Result) Newick() string {
	return r.Labels[r.Root] + ";"
}

// Merges returns the number of merges performed, always n-1.
func (r *Result) Merges() int { return len(r.Linkage) }

// MergeHeights returns the height of each merge in creation order.
func (r *Result) MergeHeights() []float64 {
	n := len(r.Names)
	heights := make([]float64, len(r.Linkage))
	copy(heights, r.Heights[n:])
	return heights
}

// Cophenetic returns the flat n×n matrix of tree distances between samples:
// the path length through their lowest common ancestor, which is twice that
// ancestor's height. For ultrametric input it equals the input matrix.
func (r *Result) Cophenetic() []float64 {
	n := len(r.Names)
	out := make([]float64, n*n)

	members := make([][]int, n, n+len(r.Linkage))
	for i := range members {
		members[i] = []int{i}
	}

	for k, row := range r.Linkage {
		left := members[int(row[0])]
		right := members[int(row[1])]
		d := 2 * r.Heights[n+k]
		for _, a := range left {
			for _, b := range right {
				out[a*n+b] = d
				out[b*n+a] = d
			}
		}
		merged := make([]int, 0, len(left)+len(right))
		merged = append(merged, left...)
		merged = append(merged, right...)
		members = append(members, merged)
	}

	return out
}

// CutCount cuts the tree into k flat clusters by undoing its last k-1 merges.
// Returns one label per sample; labels are numbered from 0 in order of each
// cluster's first sample.
func (r *Result) CutCount(k int) ([]int, error) {
	n := len(r.Names)
	if k < 1 || k > n {
		return nil, fmt.Errorf("upgma: cluster count must be in [1, %d], got %d", n, k)
	}
	return r.flatten(n - k), nil
}

// CutHeight cuts the tree at the given height, keeping every merge whose
// height is <= h. Merge heights never decrease, so these are the leading
// rows of Linkage. Labels follow the same numbering as CutCount.
func (r *Result) CutHeight(h float64) ([]int, error) {
	if math.IsNaN(h) {
		return nil, errors.New("upgma: cut height must not be NaN")
	}
	n := len(r.Names)
	merges := 0
	for merges < len(r.Linkage) && r.Heights[n+merges] <= h {
		merges++
	}
	return r.flatten(merges), nil
}

// flatten replays the first merges rows of the linkage and labels each
// sample by the cluster it ends up in.
func (r *Result) flatten(merges int) []int {
	n := len(r.Names)
	uf := NewUnionFind(n)
	for _, row := range r.Linkage[:merges] {
		uf.Link(int(row[0]), int(row[1]))
	}

	labels := make([]int, n)
	ids := make(map[int]int)
	for i := 0; i < n; i++ {
		root := uf.Find(i)
		id, ok := ids[root]
		if !ok {
			id = len(ids)
			ids[root] = id
		}
		labels[i] = id
	}
	return labels
}
