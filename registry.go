package upgma

import (
	"fmt"
	"slices"
)

// Node is a node of the UPGMA tree. Leaves have Size 1, Height 0, the
// sample name as Label and Left = Right = -1.
type Node struct {
	ID     int
	Size   int
	Height float64
	Label  string
	Left   int
	Right  int
}

// IsLeaf reports whether c is an input sample.
func (c Node) IsLeaf() bool { return c.Left < 0 }

// Registry records every cluster ever created, indexed by id, together with
// the ascending list of active (not yet merged) cluster ids. Ids are assigned
// sequentially and never reused.
type Registry struct {
	clusters []Node
	active   []int
}

// NewRegistry creates one leaf cluster per name, with ids 0..len(names)-1,
// all of them active.
func NewRegistry(names []string) *Registry {
	n := len(names)
	r := &Registry{
		clusters: make([]Node, n, max(2*n-1, n)),
		active:   make([]int, n),
	}
	for i, name := range names {
		r.clusters[i] = Node{ID: i, Size: 1, Label: QuoteName(name), Left: -1, Right: -1}
		r.active[i] = i
	}
	return r
}

// Len returns the number of clusters created so far.
func (r *Registry) Len() int { return len(r.clusters) }

// Get returns the cluster with the given id.
func (r *Registry) Get(id int) Node { return r.clusters[id] }

// Active returns the active cluster ids in ascending order. The slice is
// owned by the registry and is only valid until the next Merge.
func (r *Registry) Active() []int { return r.active }

// Merge registers a new cluster joining active clusters left and right at
// the given height, removes both from the active set and returns the new id.
func (r *Registry) Merge(left, right int, height float64, label string) (int, error) {
	li, lok := slices.BinarySearch(r.active, left)
	ri, rok := slices.BinarySearch(r.active, right)
	if !lok || !rok || left == right {
		return -1, fmt.Errorf("%w: (%d, %d)", ErrUnknownClusterPair, left, right)
	}
	// Delete the higher index first so the lower one stays valid.
	r.active = slices.Delete(r.active, max(li, ri), max(li, ri)+1)
	r.active = slices.Delete(r.active, min(li, ri), min(li, ri)+1)

	id := len(r.clusters)
	r.clusters = append(r.clusters, Node{
		ID:     id,
		Size:   r.clusters[left].Size + r.clusters[right].Size,
		Height: height,
		Label:  label,
		Left:   left,
		Right:  right,
	})
	// The new id is larger than every existing id, so the list stays sorted.
	r.active = append(r.active, id)
	return id, nil
}
