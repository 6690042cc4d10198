package grainstats

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-noisegen/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// minFFTSize is the shortest row prefix a spectrum is computed for.
const minFFTSize = 8

// ErrEmptySource is returned by [Analyze] for a source without samples.
var ErrEmptySource = errors.New("grainstats: empty source")

// RowSource is a plane that can be read row by row as float64.
// *grain.NoisePlane satisfies it.
type RowSource interface {
	Width() int
	Height() int
	RowFloat64(y int, dst []float64) []float64
}

// Report summarizes a plane of grain.
type Report struct {
	Stats

	// Flatness of the row power spectrum averaged over all rows, 0 when the
	// rows are shorter than the minimum FFT size.
	Flatness float64
	// FFTSize is the row prefix length the spectra were computed on.
	FFTSize int
	Rows    int
}

// Analyze streams every row of src into the moment accumulator and averages
// the power spectra of the first FFTSize samples of each row, FFTSize being
// the largest power of two not exceeding the width.
func Analyze(src RowSource) (Report, error) {
	width, height := src.Width(), src.Height()
	if width <= 0 || height <= 0 {
		return Report{}, ErrEmptySource
	}

	fftSize := core.NextPowerOfTwo(width)
	if !core.IsPowerOfTwo(width) {
		fftSize /= 2
	}

	var acc spectrumAccumulator
	if fftSize >= minFFTSize {
		if err := acc.init(fftSize); err != nil {
			return Report{}, err
		}
	}

	st := NewStreamingStats()
	var row []float64

	for y := range height {
		row = src.RowFloat64(y, row)
		st.Update(row)

		if err := acc.add(row[:fftSize]); err != nil {
			return Report{}, err
		}
	}

	rep := Report{Stats: st.Result(), Rows: height}
	if acc.plan != nil {
		rep.FFTSize = fftSize
		rep.Flatness = Flatness(acc.mean())
	}

	return rep, nil
}

type spectrumAccumulator struct {
	plan   *algofft.Plan[complex128]
	in     []complex128
	out    []complex128
	re, im []float64
	power  []float64
	sum    []float64
	count  int
}

func (a *spectrumAccumulator) init(n int) error {
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return fmt.Errorf("grainstats: fft plan of size %d: %w", n, err)
	}

	half := n/2 + 1

	*a = spectrumAccumulator{
		plan:  plan,
		in:    make([]complex128, n),
		out:   make([]complex128, n),
		re:    make([]float64, half),
		im:    make([]float64, half),
		power: make([]float64, half),
		sum:   make([]float64, half),
	}

	return nil
}

// add accumulates the one-sided power spectrum of samples. A no-op without a
// plan.
func (a *spectrumAccumulator) add(samples []float64) error {
	if a.plan == nil {
		return nil
	}

	for i, v := range samples {
		a.in[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return fmt.Errorf("grainstats: fft: %w", err)
	}

	for k := range a.re {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}

	vecmath.Power(a.power, a.re, a.im)
	vecmath.AddBlockInPlace(a.sum, a.power)
	a.count++

	return nil
}

func (a *spectrumAccumulator) mean() []float64 {
	out := make([]float64, len(a.sum))
	if a.count > 0 {
		vecmath.ScaleBlock(out, a.sum, 1/float64(a.count))
	}
	return out
}
