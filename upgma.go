package upgma

import (
	"fmt"
	"log"
	"math"
	"runtime"

	"gonum.org/v1/gonum/mat"
)

// Config controls UPGMA input validation, performance and output formatting.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Tolerance is the absolute tolerance used for the symmetry, zero
	// diagonal and ultrametric checks. Must be >= 0; 0 selects the default.
	// Default: 1e-9.
	Tolerance float64

	// Workers controls the number of goroutines used to recompute distances
	// after a merge and to build the matrix in ClusterPoints. 0 means
	// runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// ParallelThreshold is the minimum number of remaining active clusters
	// for which a merge update is spread across Workers. Below it the update
	// runs inline, since goroutine start-up outweighs the work.
	// Must be >= 0; 0 selects the default. Default: 256.
	ParallelThreshold int

	// BranchLengthDigits is the number of fractional digits printed for
	// Newick branch lengths. 0 prints the shortest representation that
	// round-trips. Must be >= 0. Default: 0.
	BranchLengthDigits int

	// SkipUltrametricCheck disables the O(n³) ultrametric diagnostic that
	// fills Result.Violation and logs a warning. Default: false.
	SkipUltrametricCheck bool

	// Metric is the distance function used by ClusterPoints. It is ignored
	// by the matrix entry points. Default: EuclideanMetric.
	Metric DistanceMetric
}

// Result is the outcome of a UPGMA clustering of n samples.
type Result struct {
	// Names are the input sample names; Names[i] is cluster i.
	Names []string

	// Labels maps every cluster id 0..2n-2 to the Newick text of the subtree
	// rooted at that cluster. Leaves map to their (possibly quoted) names.
	Labels map[int]string

	// Root is the id of the final cluster, always 2n-2.
	Root int

	// Sizes[id] is the number of samples under cluster id.
	Sizes []int

	// Heights[id] is the distance from cluster id down to any of its leaves.
	// Leaves have height 0; a merge at pair distance d has height d/2.
	Heights []float64

	// Linkage is the merge history in scipy layout: row k is
	// [left, right, distance, size] for cluster n+k, where distance is the
	// pair distance at which left and right were joined.
	Linkage [][4]float64

	// Violation is the first non-ultrametric triplet found in the input, or
	// nil if the input is ultrametric or the check was skipped. The tree is
	// built either way; it reproduces the input distances only when nil.
	Violation *UltrametricViolation
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Tolerance:         1e-9,
		ParallelThreshold: 256,
		Metric:            EuclideanMetric{},
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) {
		return fmt.Errorf("upgma: Tolerance must be >= 0, got %f", cfg.Tolerance)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("upgma: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	if cfg.ParallelThreshold < 0 {
		return fmt.Errorf("upgma: ParallelThreshold must be >= 0, got %d", cfg.ParallelThreshold)
	}
	if cfg.BranchLengthDigits < 0 {
		return fmt.Errorf("upgma: BranchLengthDigits must be >= 0, got %d", cfg.BranchLengthDigits)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Tolerance == 0 {
		cfg.Tolerance = 1e-9
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ParallelThreshold == 0 {
		cfg.ParallelThreshold = 256
	}
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
}

// Cluster runs UPGMA on an n×n distance matrix given as rows, with one name
// per row. The input is validated before any work is done and is never
// modified. Returns an error wrapping one of the package's Err* values if
// the input is invalid.
func Cluster(distMatrix [][]float64, names []string, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(distMatrix)
	for i, row := range distMatrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidMatrixShape, i, len(row), n)
		}
	}

	flat := make([]float64, n*n)
	for i, row := range distMatrix {
		copy(flat[i*n:], row)
	}

	return clusterFlat(flat, n, names, cfg)
}

// ClusterPrecomputed runs UPGMA on a flat distance matrix of length n*n in
// row-major order, where distMatrix[i*n+j] is the distance between samples
// i and j.
func ClusterPrecomputed(distMatrix []float64, n int, names []string, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if n < 0 || len(distMatrix) != n*n {
		return nil, fmt.Errorf("%w: distMatrix length %d does not match n*n (n=%d)", ErrInvalidMatrixShape, len(distMatrix), n)
	}

	return clusterFlat(distMatrix, n, names, cfg)
}

// ClusterSymmetric runs UPGMA on a gonum symmetric matrix such as
// *mat.SymDense. Symmetry holds by construction; the remaining checks apply.
func ClusterSymmetric(distMatrix mat.Symmetric, names []string, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := distMatrix.SymmetricDim()
	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			flat[i*n+j] = distMatrix.At(i, j)
		}
	}

	return clusterFlat(flat, n, names, cfg)
}

// ClusterPoints computes pairwise distances between the given points with
// cfg.Metric and clusters them. Each element is a point; all points must have
// the same dimensionality. Metric distances are rarely ultrametric, so expect
// Result.Violation to be set on real data.
func ClusterPoints(data [][]float64, names []string, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(data)
	if len(names) != n {
		return nil, fmt.Errorf("%w: got %d names for %d samples", ErrNameCountMismatch, len(names), n)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientSamples, n)
	}

	dims := len(data[0])
	flatData := make([]float64, n*dims)
	for i, row := range data {
		if len(row) != dims {
			return nil, fmt.Errorf("%w: point %d has %d dimensions, want %d", ErrInvalidMatrixShape, i, len(row), dims)
		}
		copy(flatData[i*dims:], row)
	}

	distMatrix := ComputePairwiseDistancesParallel(flatData, n, dims, cfg.Metric, cfg.Workers)
	return clusterFlat(distMatrix, n, names, cfg)
}

// clusterFlat validates a flat n×n matrix and runs the merge loop.
func clusterFlat(distMatrix []float64, n int, names []string, cfg Config) (*Result, error) {
	if err := validateInput(distMatrix, n, names, cfg.Tolerance); err != nil {
		return nil, err
	}

	var violation *UltrametricViolation
	if !cfg.SkipUltrametricCheck {
		if violation = CheckUltrametric(distMatrix, n, cfg.Tolerance); violation != nil {
			log.Printf("%v; the tree will not reproduce the input distances", violation)
		}
	}

	dm := NewDistanceMatrix(distMatrix, n, cfg.Workers, cfg.ParallelThreshold)
	reg := NewRegistry(names)
	result := run(dm, reg, names, cfg)
	result.Violation = violation
	return result, nil
}

// run performs the n-1 merges. Input has been validated, so any bookkeeping
// error here is a bug and panics.
func run(dm *DistanceMatrix, reg *Registry, names []string, cfg Config) *Result {
	n := len(names)

	for step := 0; step < n-1; step++ {
		active := reg.Active()
		i, j, dij, err := FindMinimumPair(active, dm)
		if err != nil {
			panic(err)
		}

		// The larger child goes on the left; equal sizes keep the lower id
		// first, since FindMinimumPair returns i < j.
		left, right := reg.Get(i), reg.Get(j)
		if right.Size > left.Size {
			left, right = right, left
			i, j = j, i
		}
		height := dij / 2
		label := FormatNewick(left.Label, left.Height, right.Label, right.Height, height, cfg.BranchLengthDigits)

		// Merge the matrix first: it needs the pre-merge active list, which
		// the registry rewrites in place.
		if err := dm.Merge(i, j, reg.Len(), left.Size, right.Size, active); err != nil {
			panic(err)
		}
		if _, err := reg.Merge(i, j, height, label); err != nil {
			panic(err)
		}
	}

	return newResult(reg, names)
}

// newResult snapshots the registry into a Result. Merged clusters are stored
// in creation order, so their linkage rows come out in the same order.
func newResult(reg *Registry, names []string) *Result {
	total := reg.Len()

	r := &Result{
		Names:   append([]string(nil), names...),
		Labels:  make(map[int]string, total),
		Root:    total - 1,
		Sizes:   make([]int, total),
		Heights: make([]float64, total),
		Linkage: make([][4]float64, 0, total-len(names)),
	}
	for id := 0; id < total; id++ {
		c := reg.Get(id)
		r.Labels[c.ID] = c.Label
		r.Sizes[c.ID] = c.Size
		r.Heights[c.ID] = c.Height
		if !c.IsLeaf() {
			// Height is dij/2; doubling recovers dij exactly.
			r.Linkage = append(r.Linkage, [4]float64{float64(c.Left), float64(c.Right), 2 * c.Height, float64(c.Size)})
		}
	}
	return r
}
