package frame

import (
	"fmt"

	"github.com/cwbudde/algo-noisegen/dsp/buffer"
)

// Plane is one component of a frame. Exactly one of Pix8, Pix16 and PixF is
// non-nil, matching the frame's Storage. Stride is counted in samples.
type Plane struct {
	Width  int
	Height int
	Stride int

	Pix8  []uint8
	Pix16 []uint16
	PixF  []float32

	buf8  *buffer.Buffer[uint8]
	buf16 *buffer.Buffer[uint16]
	bufF  *buffer.Buffer[float32]
}

// Row8 returns the first Width samples of row y of an 8-bit plane.
func (p *Plane) Row8(y int) []uint8 {
	off := y * p.Stride
	return p.Pix8[off : off+p.Width]
}

// Row16 returns the first Width samples of row y of a 16-bit plane.
func (p *Plane) Row16(y int) []uint16 {
	off := y * p.Stride
	return p.Pix16[off : off+p.Width]
}

// RowF returns the first Width samples of row y of a float plane.
func (p *Plane) RowF(y int) []float32 {
	off := y * p.Stride
	return p.PixF[off : off+p.Width]
}

// Frame is a planar picture of a stream.
type Frame struct {
	Info   StreamInfo
	Planes []Plane
}

// NewFrame allocates a zeroed frame with aligned, padded strides.
func NewFrame(info StreamInfo) (*Frame, error) {
	f := &Frame{Info: info, Planes: make([]Plane, info.NumPlanes())}

	for p := range f.Planes {
		w, h := info.PlaneWidth(p), info.PlaneHeight(p)

		var err error
		switch info.Format.Storage() {
		case Storage8:
			var b *buffer.Buffer[uint8]
			if b, err = buffer.New[uint8](w, h); err == nil {
				f.Planes[p] = planeFrom8(b)
			}
		case Storage16:
			var b *buffer.Buffer[uint16]
			if b, err = buffer.New[uint16](w, h); err == nil {
				f.Planes[p] = planeFrom16(b)
			}
		default:
			var b *buffer.Buffer[float32]
			if b, err = buffer.New[float32](w, h); err == nil {
				f.Planes[p] = planeFromF(b)
			}
		}

		if err != nil {
			return nil, fmt.Errorf("frame: plane %d: %w", p, err)
		}
	}

	return f, nil
}

func planeFrom8(b *buffer.Buffer[uint8]) Plane {
	return Plane{Width: b.Width(), Height: b.Height(), Stride: b.Stride(), Pix8: b.Samples(), buf8: b}
}

func planeFrom16(b *buffer.Buffer[uint16]) Plane {
	return Plane{Width: b.Width(), Height: b.Height(), Stride: b.Stride(), Pix16: b.Samples(), buf16: b}
}

func planeFromF(b *buffer.Buffer[float32]) Plane {
	return Plane{Width: b.Width(), Height: b.Height(), Stride: b.Stride(), PixF: b.Samples(), bufF: b}
}

// Clone returns a deep copy of f with the same geometry.
func (f *Frame) Clone() *Frame {
	dst := &Frame{Info: f.Info, Planes: make([]Plane, len(f.Planes))}

	for i := range f.Planes {
		src := &f.Planes[i]
		dst.Planes[i] = Plane{
			Width:  src.Width,
			Height: src.Height,
			Stride: src.Stride,
			Pix8:   cloneAligned(src.Pix8),
			Pix16:  cloneAligned(src.Pix16),
			PixF:   cloneAligned(src.PixF),
		}
	}

	return dst
}

// cloneAligned copies s into an aligned allocation. If the aligned
// allocation is refused it falls back to an ordinary slice.
func cloneAligned[T buffer.Element](s []T) []T {
	if s == nil {
		return nil
	}

	dst, err := buffer.Alloc[T](len(s))
	if err != nil {
		dst = make([]T, len(s))
	}
	copy(dst, s)

	return dst
}
