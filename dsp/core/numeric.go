// Package core holds small numeric and slice helpers shared by the grain
// packages.
package core

import "cmp"

// Clamp limits value to the inclusive range [lo, hi].
// If lo > hi the bounds are swapped.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}

	return max(min(value, hi), lo)
}

// RoundUp rounds n up to the next multiple of align. align must be a power
// of two.
func RoundUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
