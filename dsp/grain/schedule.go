package grain

import (
	"math"
	"math/rand/v2"
)

const (
	// heightMultiplier inflates noise planes in dynamic mode.
	heightMultiplier = 4
	// scheduleSeconds is how long the offset table lasts before it repeats.
	scheduleSeconds = 10

	fallbackFPSNum = 25
	fallbackFPSDen = 1
)

// TableSize returns the number of per-frame offsets for a stream:
// round(10 * fpsNum / fpsDen), at least 1. An unknown or variable rate
// (num or den <= 0) uses 25 fps and reports fallback.
func TableSize(fpsNum, fpsDen int64) (size int, fallback bool) {
	if fpsNum <= 0 || fpsDen <= 0 {
		fpsNum, fpsDen, fallback = fallbackFPSNum, fallbackFPSDen, true
	}

	n := math.Round(scheduleSeconds * float64(fpsNum) / float64(fpsDen))

	return max(int(n), 1), fallback
}

// OffsetTable maps frame indices to start rows inside an inflated noise
// plane.
type OffsetTable []int

// NewOffsetTable draws size start rows uniformly from [0, inflated-base].
func NewOffsetTable(rng *rand.Rand, size, base, inflated int) OffsetTable {
	span := max(inflated-base, 0)
	t := make(OffsetTable, size)

	for i := range t {
		t[i] = rng.IntN(span + 1)
	}

	return t
}

// At returns the start row for frame n. Negative indices wrap like positive
// ones; an empty table yields 0.
func (t OffsetTable) At(n int) int {
	if len(t) == 0 {
		return 0
	}

	i := n % len(t)
	if i < 0 {
		i += len(t)
	}

	return t[i]
}
