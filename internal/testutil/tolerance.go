package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-vecmath"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if cmp.Equal(got, want, cmpopts.EquateApprox(0, eps)) {
		return
	}
	d, i := maxAbsDiff(got, want)
	t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], d, eps)
}

// RequireRelNearlyEqual is RequireSliceNearlyEqual with eps scaled by the
// largest magnitude in want (at least 1).
func RequireRelNearlyEqual(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	RequireSliceNearlyEqual(t, got, want, rel*math.Max(1, maxAbs(want)))
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	d, _ := maxAbsDiff(a, b)
	return d, nil
}

func maxAbsDiff(a, b []float64) (float64, int) {
	if len(a) == 0 {
		return 0, 0
	}

	diff := make([]float64, len(a))
	vecmath.ScaleBlock(diff, b, -1)
	vecmath.AddBlockInPlace(diff, a)

	maxDiff := vecmath.MaxAbs(diff)
	for i, v := range diff {
		if math.Abs(v) == maxDiff {
			return maxDiff, i
		}
	}
	return maxDiff, 0
}

func maxAbs(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return vecmath.MaxAbs(x)
}
