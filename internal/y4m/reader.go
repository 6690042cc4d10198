package y4m

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-noisegen/dsp/frame"
)

// Reader decodes frames from a YUV4MPEG2 stream.
type Reader struct {
	br      *bufio.Reader
	header  Header
	scratch []byte
	frames  int
}

// NewReader reads the stream header from r.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReaderSize(r, maxHeaderLen)

	line, err := readLine(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty stream", ErrBadHeader)
		}
		return nil, err
	}

	h, err := parseHeader(line)
	if err != nil {
		return nil, err
	}

	return &Reader{br: br, header: h}, nil
}

// Header returns the parsed stream header.
func (r *Reader) Header() Header { return r.header }

// Info returns the stream description.
func (r *Reader) Info() frame.StreamInfo { return r.header.Info }

// Frames returns the number of frames read so far.
func (r *Reader) Frames() int { return r.frames }

// ReadFrame decodes the next frame into dst, which must have the stream's
// geometry. It returns io.EOF at a clean end of stream and
// io.ErrUnexpectedEOF if the stream ends inside a frame.
func (r *Reader) ReadFrame(dst *frame.Frame) error {
	line, err := readLine(r.br)
	if err != nil {
		return err
	}

	if line != frameMagic && !strings.HasPrefix(line, frameMagic+" ") {
		return fmt.Errorf("%w: frame %d: missing %s marker", ErrBadHeader, r.frames, frameMagic)
	}

	for p := range dst.Planes {
		if err := r.readPlane(&dst.Planes[p]); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("y4m: frame %d plane %d: %w", r.frames, p, err)
		}
	}

	r.frames++

	return nil
}

// Next allocates a frame and reads into it.
func (r *Reader) Next() (*frame.Frame, error) {
	f, err := frame.NewFrame(r.header.Info)
	if err != nil {
		return nil, err
	}

	if err := r.ReadFrame(f); err != nil {
		return nil, err
	}

	return f, nil
}

func (r *Reader) readPlane(p *frame.Plane) error {
	switch {
	case p.Pix8 != nil:
		for y := range p.Height {
			if _, err := io.ReadFull(r.br, p.Row8(y)); err != nil {
				return err
			}
		}
	case p.Pix16 != nil:
		r.scratch = grow(r.scratch, 2*p.Width)
		for y := range p.Height {
			if _, err := io.ReadFull(r.br, r.scratch); err != nil {
				return err
			}
			row := p.Row16(y)
			for x := range row {
				row[x] = binary.LittleEndian.Uint16(r.scratch[2*x:])
			}
		}
	default:
		return fmt.Errorf("%w: float samples", ErrUnsupportedColorspace)
	}

	return nil
}

// readLine returns the next newline-terminated line without the newline.
// A line longer than maxHeaderLen is ErrBadHeader; a partial last line is
// io.ErrUnexpectedEOF.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadSlice('\n')
	switch {
	case err == nil:
		return string(line[:len(line)-1]), nil
	case errors.Is(err, bufio.ErrBufferFull):
		return "", fmt.Errorf("%w: header line exceeds %d bytes", ErrBadHeader, maxHeaderLen)
	case errors.Is(err, io.EOF) && len(line) > 0:
		return "", io.ErrUnexpectedEOF
	default:
		return "", err
	}
}

func grow(b []byte, n int) []byte {
	if cap(b) < n {
		return make([]byte, n)
	}
	return b[:n]
}
