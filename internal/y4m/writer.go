package y4m

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cwbudde/algo-noisegen/dsp/frame"
)

// Writer encodes frames as a YUV4MPEG2 stream.
type Writer struct {
	bw      *bufio.Writer
	info    frame.StreamInfo
	scratch []byte
}

// NewWriter writes the stream header for h to w.
func NewWriter(w io.Writer, h Header) (*Writer, error) {
	line, err := h.encode()
	if err != nil {
		return nil, err
	}

	bw := bufio.NewWriterSize(w, max(frameSize(h.Info)/4, 64<<10))
	if _, err := bw.WriteString(line); err != nil {
		return nil, fmt.Errorf("y4m: write header: %w", err)
	}

	return &Writer{bw: bw, info: h.Info}, nil
}

// WriteFrame appends one frame. f must have the stream's geometry.
func (w *Writer) WriteFrame(f *frame.Frame) error {
	if _, err := w.bw.WriteString(frameMagic + "\n"); err != nil {
		return fmt.Errorf("y4m: write frame: %w", err)
	}

	for i := range f.Planes {
		if err := w.writePlane(&f.Planes[i]); err != nil {
			return fmt.Errorf("y4m: write plane %d: %w", i, err)
		}
	}

	return nil
}

func (w *Writer) writePlane(p *frame.Plane) error {
	switch {
	case p.Pix8 != nil:
		for y := range p.Height {
			if _, err := w.bw.Write(p.Row8(y)); err != nil {
				return err
			}
		}
	case p.Pix16 != nil:
		w.scratch = grow(w.scratch, 2*p.Width)
		for y := range p.Height {
			for x, v := range p.Row16(y) {
				binary.LittleEndian.PutUint16(w.scratch[2*x:], v)
			}
			if _, err := w.bw.Write(w.scratch); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: float samples", ErrUnsupportedColorspace)
	}

	return nil
}

// Flush writes buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("y4m: flush: %w", err)
	}
	return nil
}
