package upgma

import "math"

// FindMinimumPair returns the active pair (i, j), i < j, with the smallest
// distance in m. active must be in ascending order. Among equal distances the
// lexicographically smallest (i, j) wins, which the strict comparison below
// guarantees because pairs are visited in that order.
//
// Returns (-1, -1, +Inf) when fewer than two clusters are active, and
// ErrUnknownClusterPair if an id in active is not present in m.
func FindMinimumPair(active []int, m *DistanceMatrix) (int, int, float64, error) {
	minDist := math.Inf(1)
	bestI, bestJ := -1, -1

	for x := 0; x < len(active); x++ {
		for y := x + 1; y < len(active); y++ {
			d, err := m.Distance(active[x], active[y])
			if err != nil {
				return -1, -1, math.Inf(1), err
			}
			if d < minDist {
				minDist = d
				bestI, bestJ = active[x], active[y]
			}
		}
	}

	return bestI, bestJ, minDist, nil
}
