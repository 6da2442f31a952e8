package upgma

import "fmt"

// DistanceMatrix holds the pairwise distances between active clusters.
//
// Storage is a flat n×n row-major matrix of slots, one slot per original
// sample. A merged cluster takes over the slot of its first child and the
// second child's slot is retired, so the matrix never grows. Both triangles
// are kept in sync; only active slots are ever read.
type DistanceMatrix struct {
	n     int
	data  []float64
	slots []int // cluster id -> slot, -1 when inactive or not yet created

	workers           int
	parallelThreshold int
}

// NewDistanceMatrix copies a validated flat n×n matrix into a DistanceMatrix
// whose active clusters are the leaves 0..n-1. Cluster ids up to 2n-2 can be
// created by Merge. workers and parallelThreshold control Merge's worker
// pool; workers <= 1 keeps every update sequential.
func NewDistanceMatrix(distMatrix []float64, n, workers, parallelThreshold int) *DistanceMatrix {
	data := make([]float64, n*n)
	copy(data, distMatrix)

	total := max(2*n-1, 1)
	slots := make([]int, total)
	for i := range slots {
		slots[i] = -1
	}
	for i := 0; i < n; i++ {
		slots[i] = i
	}

	return &DistanceMatrix{
		n:                 n,
		data:              data,
		slots:             slots,
		workers:           workers,
		parallelThreshold: parallelThreshold,
	}
}

// Has reports whether id is an active cluster.
func (m *DistanceMatrix) Has(id int) bool {
	return id >= 0 && id < len(m.slots) && m.slots[id] >= 0
}

// Distance returns the distance between active clusters a and b.
func (m *DistanceMatrix) Distance(a, b int) (float64, error) {
	if a == b || !m.Has(a) || !m.Has(b) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrUnknownClusterPair, a, b)
	}
	return m.data[m.slots[a]*m.n+m.slots[b]], nil
}

// Merge replaces active clusters i and j with newID. For every remaining
// active cluster k the new distance is the size-weighted mean
//
//	d(newID, k) = (sizeI·d(i,k) + sizeJ·d(j,k)) / (sizeI + sizeJ)
//
// where sizeI and sizeJ are the sample counts of i and j at merge time.
// active lists the active cluster ids before the merge (i and j included).
func (m *DistanceMatrix) Merge(i, j, newID, sizeI, sizeJ int, active []int) error {
	if i == j || !m.Has(i) || !m.Has(j) {
		return fmt.Errorf("%w: (%d, %d)", ErrUnknownClusterPair, i, j)
	}
	if newID < 0 || newID >= len(m.slots) || m.slots[newID] >= 0 {
		return fmt.Errorf("%w: new id %d is already in use or out of range", ErrUnknownClusterPair, newID)
	}

	si, sj := m.slots[i], m.slots[j]

	others := make([]int, 0, len(active))
	for _, k := range active {
		if k == i || k == j {
			continue
		}
		if !m.Has(k) {
			return fmt.Errorf("%w: (%d, %d)", ErrUnknownClusterPair, i, k)
		}
		others = append(others, m.slots[k])
	}

	wi := float64(sizeI)
	wj := float64(sizeJ)
	total := wi + wj

	update := func(sk int) {
		d := (wi*m.data[si*m.n+sk] + wj*m.data[sj*m.n+sk]) / total
		m.data[si*m.n+sk] = d
		m.data[sk*m.n+si] = d
	}

	if m.workers > 1 && len(others) >= m.parallelThreshold {
		updateSlotsParallel(others, m.workers, update)
	} else {
		for _, sk := range others {
			update(sk)
		}
	}

	m.data[si*m.n+sj] = 0
	m.data[sj*m.n+si] = 0
	m.slots[newID] = si
	m.slots[i] = -1
	m.slots[j] = -1
	return nil
}
