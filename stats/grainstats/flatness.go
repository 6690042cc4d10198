package grainstats

import "math"

// Flatness returns the spectral flatness (Wiener entropy) of a one-sided
// power spectrum: the geometric mean over the arithmetic mean of bins
// 1..N-1. The DC bin is skipped. The result is in [0, 1]; 1 for a perfectly
// flat spectrum, 0 if any bin is zero or fewer than two bins are given.
func Flatness(power []float64) float64 {
	n := len(power)
	if n < 2 {
		return 0
	}

	bins := float64(n - 1)
	sumLin, sumLog := 0.0, 0.0

	for _, v := range power[1:] {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	meanLin := sumLin / bins
	if meanLin == 0 {
		return 0
	}

	return math.Exp(sumLog/bins) / meanLin
}
