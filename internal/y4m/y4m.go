// Package y4m reads and writes YUV4MPEG2 streams, the uncompressed planar
// video container understood by ffmpeg, x264 and most video tools.
//
// Samples deeper than 8 bits are stored as 16-bit little-endian words.
package y4m

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-noisegen/dsp/frame"
)

const (
	streamMagic = "YUV4MPEG2"
	frameMagic  = "FRAME"

	// maxHeaderLen bounds a stream or frame header line.
	maxHeaderLen = 4096
)

// Errors.
var (
	// ErrBadHeader is returned for a malformed stream or frame header.
	ErrBadHeader = errors.New("y4m: bad header")

	// ErrUnsupportedColorspace is returned for layouts that have no frame.Format
	// equivalent, or formats that have no YUV4MPEG2 colorspace.
	ErrUnsupportedColorspace = errors.New("y4m: unsupported colorspace")
)

// Header is the parsed stream header.
type Header struct {
	Info frame.StreamInfo

	// Interlace is the I token value: p, t, b, m or ?. Empty means p.
	Interlace string
	// Aspect is the A token value, e.g. "1:1". Empty means 0:0 (unknown).
	Aspect string
	// Colorspace is the C token as read. The writer keeps it when it maps to
	// Info.Format, so 420paldv input stays 420paldv.
	Colorspace string
	// Extensions are the X tokens without the leading X.
	Extensions []string
}

func parseHeader(line string) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != streamMagic {
		return Header{}, fmt.Errorf("%w: missing %s signature", ErrBadHeader, streamMagic)
	}

	h := Header{Colorspace: defaultColorspace}
	var err error

	for _, tok := range fields[1:] {
		val := tok[1:]
		switch tok[0] {
		case 'W':
			h.Info.Width, err = strconv.Atoi(val)
		case 'H':
			h.Info.Height, err = strconv.Atoi(val)
		case 'F':
			h.Info.FPSNum, h.Info.FPSDen, err = parseRatio(val)
		case 'I':
			h.Interlace = val
		case 'A':
			h.Aspect = val
		case 'C':
			h.Colorspace = val
		case 'X':
			h.Extensions = append(h.Extensions, val)
		default:
			err = fmt.Errorf("unknown tag %q", tok)
		}

		if err != nil {
			return Header{}, fmt.Errorf("%w: %v", ErrBadHeader, err)
		}
	}

	if h.Info.Width <= 0 || h.Info.Height <= 0 {
		return Header{}, fmt.Errorf("%w: dimensions %dx%d", ErrBadHeader, h.Info.Width, h.Info.Height)
	}

	if h.Info.Format, err = parseColorspace(h.Colorspace); err != nil {
		return Header{}, err
	}

	if err := h.Info.Validate(); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	return h, nil
}

func parseRatio(s string) (num, den int64, err error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("ratio %q", s)
	}

	if num, err = strconv.ParseInt(a, 10, 64); err != nil {
		return 0, 0, err
	}
	if den, err = strconv.ParseInt(b, 10, 64); err != nil {
		return 0, 0, err
	}

	return num, den, nil
}

func (h Header) encode() (string, error) {
	cs, err := colorspaceOf(h.Info.Format)
	if err != nil {
		return "", err
	}
	if h.Colorspace != "" {
		if f, perr := parseColorspace(h.Colorspace); perr == nil && f == h.Info.Format {
			cs = h.Colorspace
		}
	}

	interlace := h.Interlace
	if interlace == "" {
		interlace = "p"
	}
	aspect := h.Aspect
	if aspect == "" {
		aspect = "0:0"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s W%d H%d F%d:%d I%s A%s C%s",
		streamMagic, h.Info.Width, h.Info.Height, h.Info.FPSNum, h.Info.FPSDen, interlace, aspect, cs)
	for _, x := range h.Extensions {
		b.WriteString(" X")
		b.WriteString(x)
	}
	b.WriteByte('\n')

	return b.String(), nil
}

// frameSize returns the payload size of one frame in bytes.
func frameSize(info frame.StreamInfo) int {
	size := 0
	for p := range info.NumPlanes() {
		size += info.PlaneWidth(p) * info.PlaneHeight(p)
	}
	return size * info.Format.BytesPerSample()
}
