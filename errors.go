package upgma

import "errors"

// Input validation errors. Every error returned by the Cluster functions for
// bad input wraps exactly one of these, so callers can match with errors.Is.
var (
	// ErrInvalidMatrixShape is returned when the matrix is not square or its
	// rows have different lengths.
	ErrInvalidMatrixShape = errors.New("upgma: invalid matrix shape")

	// ErrAsymmetricMatrix is returned when |d[i][j] - d[j][i]| exceeds the
	// configured tolerance.
	ErrAsymmetricMatrix = errors.New("upgma: matrix is not symmetric")

	// ErrNonZeroDiagonal is returned when some d[i][i] is not zero within the
	// configured tolerance.
	ErrNonZeroDiagonal = errors.New("upgma: non-zero diagonal entry")

	// ErrNameCountMismatch is returned when the number of names differs from
	// the matrix dimension.
	ErrNameCountMismatch = errors.New("upgma: name count does not match matrix size")

	// ErrInsufficientSamples is returned for fewer than two samples.
	ErrInsufficientSamples = errors.New("upgma: at least two samples are required")

	// ErrInvalidDistance is returned for NaN, infinite or negative distances.
	ErrInvalidDistance = errors.New("upgma: distance must be finite and non-negative")

	// ErrDuplicateName is returned when two samples share a name.
	ErrDuplicateName = errors.New("upgma: duplicate sample name")

	// ErrUnknownClusterPair signals a lookup of a cluster id that is not
	// active. It indicates broken merge bookkeeping, never bad input.
	ErrUnknownClusterPair = errors.New("upgma: unknown cluster pair")
)
