package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails tb if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(tb testing.TB, got, want []float64, eps float64) {
	tb.Helper()

	d, err := MaxAbsDiff(got, want)
	if err != nil {
		tb.Fatal(err)
	}
	if d > eps {
		tb.Fatalf("max abs diff %v > eps %v", d, eps)
	}
}

// RequireNear fails tb if |got-want| > eps.
func RequireNear(tb testing.TB, name string, got, want, eps float64) {
	tb.Helper()

	if math.IsNaN(got) || math.Abs(got-want) > eps {
		tb.Fatalf("%s = %v, want %v ± %v", name, got, want, eps)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		maxDiff = max(maxDiff, math.Abs(a[i]-b[i]))
	}
	return maxDiff, nil
}
