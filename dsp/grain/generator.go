package grain

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-noisegen/dsp/buffer"
	"github.com/cwbudde/algo-noisegen/dsp/core"
	"github.com/cwbudde/algo-noisegen/dsp/frame"
	"github.com/cwbudde/algo-vecmath"
)

// NoiseSpec describes how the cells of a noise plane are drawn.
// Strength and Limit are in sample units of the target storage, i.e. already
// scaled to the bit depth.
type NoiseSpec struct {
	Distribution Distribution
	Mean         float64
	Variance     float64
	Strength     float64
	Limit        float64
}

// NoisePlane is an aligned buffer of signed noise deltas. Only the slice
// matching Storage is populated. Rows are Stride elements apart and every
// cell, padding included, holds valid noise.
type NoisePlane struct {
	storage frame.Storage
	width   int
	height  int
	stride  int

	i8  *buffer.Buffer[int8]
	i16 *buffer.Buffer[int16]
	f32 *buffer.Buffer[float32]
}

// Storage returns the element kind of the plane.
func (n *NoisePlane) Storage() frame.Storage { return n.storage }

// Width returns the logical row width in elements.
func (n *NoisePlane) Width() int { return n.width }

// Height returns the number of rows.
func (n *NoisePlane) Height() int { return n.height }

// Stride returns the distance between rows in elements.
func (n *NoisePlane) Stride() int { return n.stride }

// Int8 returns the samples of an 8-bit plane, or nil.
func (n *NoisePlane) Int8() []int8 {
	if n.i8 == nil {
		return nil
	}
	return n.i8.Samples()
}

// Int16 returns the samples of a 16-bit plane, or nil.
func (n *NoisePlane) Int16() []int16 {
	if n.i16 == nil {
		return nil
	}
	return n.i16.Samples()
}

// Float32 returns the samples of a float plane, or nil.
func (n *NoisePlane) Float32() []float32 {
	if n.f32 == nil {
		return nil
	}
	return n.f32.Samples()
}

// RowFloat64 converts the first Width values of row y into dst, growing it if
// needed, and returns it.
func (n *NoisePlane) RowFloat64(y int, dst []float64) []float64 {
	switch {
	case n.i8 != nil:
		return widenRow(n.i8.Row(y)[:n.width], dst)
	case n.i16 != nil:
		return widenRow(n.i16.Row(y)[:n.width], dst)
	case n.f32 != nil:
		return widenRow(n.f32.Row(y)[:n.width], dst)
	}
	return dst[:0]
}

func widenRow[T int8 | int16 | float32](row []T, dst []float64) []float64 {
	dst = core.EnsureLen(dst, len(row))
	for i, v := range row {
		dst[i] = float64(v)
	}
	return dst
}

// Release drops the buffer. The plane must not be used afterwards.
func (n *NoisePlane) Release() {
	if n.i8 != nil {
		n.i8.Release()
		n.i8 = nil
	}
	if n.i16 != nil {
		n.i16.Release()
		n.i16 = nil
	}
	if n.f32 != nil {
		n.f32.Release()
		n.f32 = nil
	}
	n.width, n.height, n.stride = 0, 0, 0
}

// storageBound returns the largest magnitude the element kind can carry
// without wrapping.
func storageBound(s frame.Storage) float64 {
	switch s {
	case frame.Storage8:
		return math.MaxInt8
	case frame.Storage16:
		return math.MaxInt16
	default:
		return math.Inf(1)
	}
}

// GenerateNoisePlane allocates a width x height noise plane for storage and
// fills every cell, stride padding included, with
// clamp(draw * Strength, -Limit, Limit). Integer storage truncates toward
// zero and additionally bounds the magnitude to 127 or 32767.
//
// Cells are drawn in row-major order from rng, so a seeded rng yields a
// reproducible plane.
func GenerateNoisePlane(rng *rand.Rand, storage frame.Storage, width, height int, spec NoiseSpec) (*NoisePlane, error) {
	bound := min(spec.Limit, storageBound(storage))
	draw := drawFunc(rng, spec)
	n := &NoisePlane{storage: storage, width: width, height: height}

	var err error
	switch storage {
	case frame.Storage8:
		if n.i8, err = buffer.New[int8](width, height); err == nil {
			fillNoise(n.i8, draw, spec.Strength, bound)
		}
	case frame.Storage16:
		if n.i16, err = buffer.New[int16](width, height); err == nil {
			fillNoise(n.i16, draw, spec.Strength, bound)
		}
	default:
		if n.f32, err = buffer.New[float32](width, height); err == nil {
			fillNoise(n.f32, draw, spec.Strength, float32Bound(bound))
		}
	}

	if err != nil {
		return nil, err
	}

	n.stride = n.bufferStride()

	return n, nil
}

// float32Bound returns the largest float32 magnitude not above bound, so a
// value clamped to it stays within bound after narrowing.
func float32Bound(bound float64) float64 {
	b := float32(bound)
	if float64(b) > bound {
		b = math.Nextafter32(b, 0)
	}
	return float64(b)
}

func (n *NoisePlane) bufferStride() int {
	switch {
	case n.i8 != nil:
		return n.i8.Stride()
	case n.i16 != nil:
		return n.i16.Stride()
	default:
		return n.f32.Stride()
	}
}

func drawFunc(rng *rand.Rand, spec NoiseSpec) func() float64 {
	if spec.Distribution == Uniform {
		lo, span := spec.Mean-spec.Variance, 2*spec.Variance
		return func() float64 { return lo + span*rng.Float64() }
	}

	mean, sigma := spec.Mean, math.Sqrt(spec.Variance)
	return func() float64 { return mean + sigma*rng.NormFloat64() }
}

func fillNoise[T int8 | int16 | float32](b *buffer.Buffer[T], draw func() float64, strength, bound float64) {
	stage := make([]float64, b.Stride())

	for y := range b.Height() {
		for x := range stage {
			stage[x] = draw()
		}

		vecmath.ScaleBlock(stage, stage, strength)

		row := b.Row(y)
		for x, v := range stage {
			row[x] = T(core.Clamp(v, -bound, bound))
		}
	}
}
