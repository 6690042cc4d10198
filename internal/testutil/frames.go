package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-noisegen/dsp/frame"
)

// NewFrame allocates a frame of info or fails tb.
func NewFrame(tb testing.TB, info frame.StreamInfo) *frame.Frame {
	tb.Helper()

	f, err := frame.NewFrame(info)
	if err != nil {
		tb.Fatalf("frame.NewFrame(%v): %v", info, err)
	}
	return f
}

// RandomFrame returns a frame whose visible samples are seeded random values
// spanning the whole code range of the format, so blending hits both clamp
// bounds. Float samples span [-0.75, 1.25].
func RandomFrame(tb testing.TB, info frame.StreamInfo, seed uint64) *frame.Frame {
	tb.Helper()

	f := NewFrame(tb, info)
	rng := rand.New(rand.NewPCG(seed, 1))
	maxCode := uint(1)<<info.Format.Bits - 1

	for i := range f.Planes {
		p := &f.Planes[i]
		for y := range p.Height {
			switch {
			case p.Pix8 != nil:
				row := p.Row8(y)
				for x := range row {
					row[x] = uint8(rng.UintN(256))
				}
			case p.Pix16 != nil:
				row := p.Row16(y)
				for x := range row {
					row[x] = uint16(rng.UintN(maxCode + 1))
				}
			case p.PixF != nil:
				row := p.RowF(y)
				for x := range row {
					row[x] = rng.Float32()*2 - 0.75
				}
			}
		}
	}

	return f
}

// FlatFrame returns a frame with every visible sample set to v.
func FlatFrame(tb testing.TB, info frame.StreamInfo, v float64) *frame.Frame {
	tb.Helper()

	f := NewFrame(tb, info)
	for i := range f.Planes {
		p := &f.Planes[i]
		for y := range p.Height {
			switch {
			case p.Pix8 != nil:
				fill(p.Row8(y), uint8(v))
			case p.Pix16 != nil:
				fill(p.Row16(y), uint16(v))
			case p.PixF != nil:
				fill(p.RowF(y), float32(v))
			}
		}
	}

	return f
}

func fill[T any](row []T, v T) {
	for i := range row {
		row[i] = v
	}
}

// PlaneSamples returns the visible samples of p in row-major order.
func PlaneSamples(p *frame.Plane) []float64 {
	out := make([]float64, 0, p.Width*p.Height)
	for y := range p.Height {
		switch {
		case p.Pix8 != nil:
			for _, v := range p.Row8(y) {
				out = append(out, float64(v))
			}
		case p.Pix16 != nil:
			for _, v := range p.Row16(y) {
				out = append(out, float64(v))
			}
		case p.PixF != nil:
			for _, v := range p.RowF(y) {
				out = append(out, float64(v))
			}
		}
	}
	return out
}

// RequireFramesEqual fails tb at the first visible sample that differs.
func RequireFramesEqual(tb testing.TB, got, want *frame.Frame) {
	tb.Helper()

	if len(got.Planes) != len(want.Planes) {
		tb.Fatalf("plane count: got %d, want %d", len(got.Planes), len(want.Planes))
	}

	for i := range want.Planes {
		g, w := PlaneSamples(&got.Planes[i]), PlaneSamples(&want.Planes[i])
		if len(g) != len(w) {
			tb.Fatalf("plane %d: got %d samples, want %d", i, len(g), len(w))
		}
		for j := range w {
			if g[j] != w[j] {
				width := want.Planes[i].Width
				tb.Fatalf("plane %d (%d,%d): got %v, want %v", i, j%width, j/width, g[j], w[j])
			}
		}
	}
}

// RequirePlaneWithin fails tb if a visible sample of p lies outside [lo, hi].
func RequirePlaneWithin(tb testing.TB, p *frame.Plane, lo, hi float64) {
	tb.Helper()

	for j, v := range PlaneSamples(p) {
		if v < lo || v > hi {
			tb.Fatalf("sample (%d,%d) = %v outside [%v, %v]", j%p.Width, j/p.Width, v, lo, hi)
		}
	}
}
