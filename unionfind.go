package upgma

// UnionFind implements a disjoint-set data structure with path compression.
// It supports 2*n - 1 elements so that merged clusters can be addressed by
// their linkage ids (original samples 0..n-1, merged clusters n..2n-2).
type UnionFind struct {
	parent []int
	// nextLabel is the ID for the next merged cluster, starting at n.
	nextLabel int
}

// NewUnionFind creates a UnionFind for n initial elements.
func NewUnionFind(n int) *UnionFind {
	total := max(2*n-1, 1)
	parent := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	return &UnionFind{
		parent:    parent,
		nextLabel: n,
	}
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Link merges the sets containing a and b under a fresh root whose id is the
// next linkage id, and returns that id. Replaying linkage rows through Link
// reproduces the linkage ids exactly.
func (uf *UnionFind) Link(a, b int) int {
	ra := uf.Find(a)
	rb := uf.Find(b)
	id := uf.nextLabel
	uf.parent[ra] = id
	uf.parent[rb] = id
	uf.nextLabel++
	return id
}
