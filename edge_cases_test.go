package upgma

import (
	"errors"
	"math"
	"testing"
)

func TestEdgeCase_AllZeroDistances(t *testing.T) {
	n := 5
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	result, err := Cluster(matrix, sampleNames(n), DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Merges() != n-1 {
		t.Errorf("Merges() = %d, want %d", result.Merges(), n-1)
	}
	for id, h := range result.Heights {
		if h != 0 {
			t.Errorf("Heights[%d] = %v, want 0", id, h)
		}
	}
	if result.Violation != nil {
		t.Errorf("all-zero matrix is ultrametric, got %v", result.Violation)
	}
}

func TestEdgeCase_TinyAndHugeDistances(t *testing.T) {
	for _, scale := range []float64{1e-300, 1e-9, 1e12, 1e300} {
		matrix := [][]float64{
			{0, 2 * scale, 4 * scale},
			{2 * scale, 0, 4 * scale},
			{4 * scale, 4 * scale, 0},
		}
		cfg := DefaultConfig()
		// Keep the tolerance below the smallest distance under test.
		cfg.Tolerance = math.SmallestNonzeroFloat64
		result, err := Cluster(matrix, []string{"a", "b", "c"}, cfg)
		if err != nil {
			t.Fatalf("scale=%g: unexpected error: %v", scale, err)
		}
		if got, want := result.Heights[result.Root], 2*scale; got != want {
			t.Errorf("scale=%g: root height %g, want %g", scale, got, want)
		}
		if math.IsInf(result.Heights[result.Root], 0) || math.IsNaN(result.Heights[result.Root]) {
			t.Errorf("scale=%g: non-finite root height", scale)
		}
	}
}

func TestEdgeCase_UnicodeNames(t *testing.T) {
	result, err := Cluster([][]float64{{0, 2}, {2, 0}}, []string{"Ñandú", "鳥"}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.Newick(); got != "(Ñandú:1,鳥:1);" {
		t.Errorf("Newick() = %q", got)
	}
}

func TestEdgeCase_LargeInputUsesParallelUpdate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large input in short mode")
	}
	n := 300
	flat := randomUltrametric(n, 21)
	names := sampleNames(n)

	seq := DefaultConfig()
	seq.Workers = 1
	par := DefaultConfig()
	par.Workers = 4

	a, err := ClusterPrecomputed(flat, n, names, seq)
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	b, err := ClusterPrecomputed(flat, n, names, par)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	if a.Newick() != b.Newick() {
		t.Error("parallel and sequential trees differ")
	}
	if b.Sizes[b.Root] != n {
		t.Errorf("root size %d, want %d", b.Sizes[b.Root], n)
	}
}

func TestEdgeCase_ErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrInvalidMatrixShape,
		ErrAsymmetricMatrix,
		ErrNonZeroDiagonal,
		ErrNameCountMismatch,
		ErrInsufficientSamples,
		ErrInvalidDistance,
		ErrDuplicateName,
		ErrUnknownClusterPair,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v matches %v", a, b)
			}
		}
	}
}

func TestEdgeCase_RunPanicsOnBrokenBookkeeping(t *testing.T) {
	// A registry that disagrees with the matrix is a bug, not bad input.
	dm := NewDistanceMatrix([]float64{0, 1, 1, 0}, 2, 1, 0)
	reg := NewRegistry([]string{"a", "b"})
	if err := dm.Merge(0, 1, 2, 1, 1, []int{0, 1}); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownClusterPair) {
			t.Errorf("panic value %v, want ErrUnknownClusterPair", r)
		}
	}()
	run(dm, reg, []string{"a", "b"}, DefaultConfig())
}
