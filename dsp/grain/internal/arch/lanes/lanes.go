// Package lanes implements the blend kernels on fixed-width lane arrays, one
// register's worth of samples per step. The lane operations mirror packed
// SIMD instructions: an unsigned sample is sign-flipped into the signed
// domain, added with signed saturation, flipped back, then bounded with
// min/max. The result equals the widen-add-clamp of the scalar kernels.
//
// Each row function handles the part of the row that is a multiple of the
// chunk width and leaves the tail to the scalar kernels.
package lanes

import "math"

const (
	signFlip8  = 0x80
	signFlip16 = 0x8000
)

// addsInt8 is a saturating signed add (PADDSB).
func addsInt8(a, b int8) int8 {
	s := int16(a) + int16(b)
	switch {
	case s > math.MaxInt8:
		return math.MaxInt8
	case s < math.MinInt8:
		return math.MinInt8
	}
	return int8(s)
}

// addsInt16 is a saturating signed add (PADDSW).
func addsInt16(a, b int16) int16 {
	s := int32(a) + int32(b)
	switch {
	case s > math.MaxInt16:
		return math.MaxInt16
	case s < math.MinInt16:
		return math.MinInt16
	}
	return int16(s)
}

// lane8 computes one 8-bit lane: unsigned saturating add of a signed delta,
// then min/max against the range.
func lane8(d uint8, n int8, lo, hi uint8) uint8 {
	v := uint8(addsInt8(int8(d^signFlip8), n)) ^ signFlip8
	return min(max(v, lo), hi)
}

func lane16(d uint16, n int16, lo, hi uint16) uint16 {
	v := uint16(addsInt16(int16(d^signFlip16), n)) ^ signFlip16
	return min(max(v, lo), hi)
}

func laneF(d, n, lo, hi float32) float32 {
	return min(max(d+n, lo), hi)
}
