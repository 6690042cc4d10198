// Package grainstats measures generated grain: distribution moments and
// spectral flatness. White grain has flat row spectra; a flatness near 1 means
// the generator produced no visible structure.
package grainstats

import "math"

// Stats holds sample statistics of a block of grain values.
type Stats struct {
	Length   int
	Mean     float64
	RMS      float64
	Max      float64
	MaxPos   int
	Min      float64
	MinPos   int
	Peak     float64 // max(|max|, |min|)
	Range    float64 // max - min
	Variance float64 // population variance
	Skewness float64
	Kurtosis float64 // excess kurtosis, 0 for a normal distribution
}

// Calculate computes all statistics in a single pass using Welford's online
// algorithm for numerical stability on higher-order moments.
func Calculate(samples []float64) Stats {
	s := NewStreamingStats()
	s.Update(samples)
	return s.Result()
}

// Moments returns the mean, population variance, skewness and excess kurtosis
// of samples.
func Moments(samples []float64) (mean, variance, skewness, kurtosis float64) {
	st := Calculate(samples)
	return st.Mean, st.Variance, st.Skewness, st.Kurtosis
}

// StreamingStats accumulates statistics across multiple blocks of samples,
// e.g. the rows of a noise plane. Results equal [Calculate] on the
// concatenated input.
type StreamingStats struct {
	n      int
	mean   float64
	m2     float64
	m3     float64
	m4     float64
	sumSq  float64
	maxVal float64
	maxPos int
	minVal float64
	minPos int
}

// NewStreamingStats creates an empty accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of samples to the running statistics.
func (s *StreamingStats) Update(samples []float64) {
	for _, x := range samples {
		s.n++
		ni := float64(s.n)

		delta := x - s.mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(s.n-1)

		// M4 must be updated before M3, and M3 before M2.
		s.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
		s.m3 += term1*deltaN*(float64(s.n-1)-1) - 3*deltaN*s.m2
		s.m2 += term1
		s.mean += deltaN

		s.sumSq += x * x

		if s.n == 1 || x > s.maxVal {
			s.maxVal = x
			s.maxPos = s.n - 1
		}

		if s.n == 1 || x < s.minVal {
			s.minVal = x
			s.minPos = s.n - 1
		}
	}
}

// Result computes the statistics of everything added so far.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}

	nf := float64(s.n)
	variance := s.m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (s.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (s.m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Length:   s.n,
		Mean:     s.mean,
		RMS:      math.Sqrt(s.sumSq / nf),
		Max:      s.maxVal,
		MaxPos:   s.maxPos,
		Min:      s.minVal,
		MinPos:   s.minPos,
		Peak:     math.Max(math.Abs(s.maxVal), math.Abs(s.minVal)),
		Range:    s.maxVal - s.minVal,
		Variance: variance,
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}

// Reset clears all accumulated data.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}
