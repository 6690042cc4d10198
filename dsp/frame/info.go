package frame

import "fmt"

// StreamInfo is the host-supplied, read-only description of a stream.
type StreamInfo struct {
	Format Format
	Width  int // luma width
	Height int // luma height
	FPSNum int64
	FPSDen int64
}

// NumPlanes returns the plane count of the format.
func (s StreamInfo) NumPlanes() int { return s.Format.NumPlanes() }

// PlaneWidth returns the width of plane p after subsampling.
func (s StreamInfo) PlaneWidth(p int) int {
	if p == 0 {
		return s.Width
	}
	return s.Width >> s.Format.SubSamplingW
}

// PlaneHeight returns the height of plane p after subsampling.
func (s StreamInfo) PlaneHeight(p int) int {
	if p == 0 {
		return s.Height
	}
	return s.Height >> s.Format.SubSamplingH
}

// FrameRate returns FPSNum/FPSDen, or 0 when the rate is unknown.
func (s StreamInfo) FrameRate() float64 {
	if s.FPSNum <= 0 || s.FPSDen <= 0 {
		return 0
	}
	return float64(s.FPSNum) / float64(s.FPSDen)
}

// Validate checks the format and that every plane has a non-empty area.
func (s StreamInfo) Validate() error {
	if err := s.Format.Validate(); err != nil {
		return err
	}

	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be > 0: %dx%d", ErrUnsupportedFormat, s.Width, s.Height)
	}

	mw := 1<<s.Format.SubSamplingW - 1
	mh := 1<<s.Format.SubSamplingH - 1
	if s.Width&mw != 0 || s.Height&mh != 0 {
		return fmt.Errorf("%w: %dx%d not divisible by %v subsampling", ErrUnsupportedFormat, s.Width, s.Height, s.Format)
	}

	return nil
}

// String returns e.g. "YUV420P8 1920x1080 @ 24000/1001".
func (s StreamInfo) String() string {
	return fmt.Sprintf("%v %dx%d @ %d/%d", s.Format, s.Width, s.Height, s.FPSNum, s.FPSDen)
}
