package upgma

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// validateInput checks a flat n×n matrix and its names. Checks run in a fixed
// order so that each input reports one deterministic error.
func validateInput(distMatrix []float64, n int, names []string, tol float64) error {
	if len(names) != n {
		return fmt.Errorf("%w: got %d names for %d samples", ErrNameCountMismatch, len(names), n)
	}
	if n < 2 {
		return fmt.Errorf("%w: got %d", ErrInsufficientSamples, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := distMatrix[i*n+j]
			if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
				return fmt.Errorf("%w: d[%d][%d] = %v", ErrInvalidDistance, i, j, d)
			}
		}
	}

	for i := 0; i < n; i++ {
		if d := distMatrix[i*n+i]; !scalar.EqualWithinAbs(d, 0, tol) {
			return fmt.Errorf("%w: d[%d][%d] = %v", ErrNonZeroDiagonal, i, i, d)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := distMatrix[i*n+j], distMatrix[j*n+i]
			if !scalar.EqualWithinAbs(a, b, tol) {
				return fmt.Errorf("%w: d[%d][%d] = %v, d[%d][%d] = %v", ErrAsymmetricMatrix, i, j, a, j, i, b)
			}
		}
	}

	seen := make(map[string]int, n)
	for i, name := range names {
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q at %d and %d", ErrDuplicateName, name, prev, i)
		}
		seen[name] = i
	}

	return nil
}

// UltrametricViolation describes a triplet of samples whose two largest
// pairwise distances differ by more than the tolerance.
type UltrametricViolation struct {
	I, J, K int
	// DIJ, DIK and DJK are the three pairwise distances of the triplet.
	DIJ, DIK, DJK float64
}

func (v *UltrametricViolation) Error() string {
	return fmt.Sprintf("upgma: triplet (%d, %d, %d) is not ultrametric: d(%d,%d)=%g d(%d,%d)=%g d(%d,%d)=%g",
		v.I, v.J, v.K, v.I, v.J, v.DIJ, v.I, v.K, v.DIK, v.J, v.K, v.DJK)
}

// CheckUltrametric reports the first triplet (i < j < k) of a flat n×n
// distance matrix whose two largest distances are not equal within tol, or
// nil if the matrix is ultrametric. It runs in O(n³) and never modifies the
// matrix; UPGMA reconstructs the generating tree exactly only when it
// returns nil.
func CheckUltrametric(distMatrix []float64, n int, tol float64) *UltrametricViolation {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dij := distMatrix[i*n+j]
			for k := j + 1; k < n; k++ {
				dik := distMatrix[i*n+k]
				djk := distMatrix[j*n+k]

				// Sort the three distances; the top two must agree.
				lo, mid, hi := dij, dik, djk
				if lo > mid {
					lo, mid = mid, lo
				}
				if mid > hi {
					mid, hi = hi, mid
				}
				if lo > mid {
					mid = lo
				}
				if !scalar.EqualWithinAbs(mid, hi, tol) {
					return &UltrametricViolation{I: i, J: j, K: k, DIJ: dij, DIK: dik, DJK: djk}
				}
			}
		}
	}
	return nil
}
