package upgma

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMinimumPair(t *testing.T) {
	tests := []struct {
		name  string
		flat  []float64
		n     int
		wantI int
		wantJ int
		wantD float64
	}{
		{
			name:  "minimum not in first row",
			flat:  []float64{0, 5, 6, 5, 0, 1, 6, 1, 0},
			n:     3,
			wantI: 1, wantJ: 2, wantD: 1,
		},
		{
			name:  "zero distance is found",
			flat:  []float64{0, 3, 3, 3, 0, 0, 3, 0, 0},
			n:     3,
			wantI: 1, wantJ: 2, wantD: 0,
		},
		{
			name:  "minimum in first pair",
			flat:  []float64{0, 1, 6, 1, 0, 5, 6, 5, 0},
			n:     3,
			wantI: 0, wantJ: 1, wantD: 1,
		},
		{
			name: "ties pick the lexicographically smallest pair",
			flat: []float64{
				0, 4, 2, 4,
				4, 0, 4, 2,
				2, 4, 0, 4,
				4, 2, 4, 0,
			},
			n:     4,
			wantI: 0, wantJ: 2, wantD: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewDistanceMatrix(tt.flat, tt.n, 1, 0)
			active := make([]int, tt.n)
			for i := range active {
				active[i] = i
			}

			i, j, d, err := FindMinimumPair(active, m)
			require.NoError(t, err)
			assert.Equal(t, tt.wantI, i)
			assert.Equal(t, tt.wantJ, j)
			assert.Equal(t, tt.wantD, d)
		})
	}
}

func TestFindMinimumPair_AfterMerge(t *testing.T) {
	m := NewDistanceMatrix([]float64{
		0, 1, 8, 8,
		1, 0, 8, 8,
		8, 8, 0, 9,
		8, 8, 9, 0,
	}, 4, 1, 0)
	require.NoError(t, m.Merge(0, 1, 4, 1, 1, []int{0, 1, 2, 3}))

	i, j, d, err := FindMinimumPair([]int{2, 3, 4}, m)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Equal(t, 4, j)
	assert.Equal(t, 8.0, d)
}

func TestFindMinimumPair_FewerThanTwo(t *testing.T) {
	m := NewDistanceMatrix([]float64{0, 1, 1, 0}, 2, 1, 0)

	i, j, d, err := FindMinimumPair([]int{0}, m)
	require.NoError(t, err)
	assert.Equal(t, -1, i)
	assert.Equal(t, -1, j)
	assert.True(t, math.IsInf(d, 1))
}

func TestFindMinimumPair_UnknownID(t *testing.T) {
	m := NewDistanceMatrix([]float64{0, 1, 1, 0}, 2, 1, 0)

	_, _, _, err := FindMinimumPair([]int{0, 2}, m)
	assert.ErrorIs(t, err, ErrUnknownClusterPair)
}
