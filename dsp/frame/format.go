package frame

import (
	"errors"
	"fmt"
)

// SampleType is the numeric type of the samples.
type SampleType int

const (
	// Integer samples, 8 to 16 bits.
	Integer SampleType = iota
	// Float samples, 32-bit.
	Float
)

// String returns the name of the sample type.
func (t SampleType) String() string {
	switch t {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	default:
		return fmt.Sprintf("SampleType(%d)", int(t))
	}
}

// ColorFamily classifies the meaning of the planes.
type ColorFamily int

const (
	// Gray has a single luma plane.
	Gray ColorFamily = iota
	// YUV has a luma plane and two chroma planes.
	YUV
	// RGB has three full-resolution color planes.
	RGB
)

// String returns the name of the color family.
func (c ColorFamily) String() string {
	switch c {
	case Gray:
		return "Gray"
	case YUV:
		return "YUV"
	case RGB:
		return "RGB"
	default:
		return fmt.Sprintf("ColorFamily(%d)", int(c))
	}
}

// Storage is the in-memory element type of a plane.
type Storage int

const (
	// Storage8 stores 8-bit integer samples as uint8.
	Storage8 Storage = iota
	// Storage16 stores 9 to 16-bit integer samples as uint16.
	Storage16
	// StorageF stores float samples as float32.
	StorageF
)

// String returns the name of the storage kind.
func (s Storage) String() string {
	switch s {
	case Storage8:
		return "uint8"
	case Storage16:
		return "uint16"
	case StorageF:
		return "float32"
	default:
		return fmt.Sprintf("Storage(%d)", int(s))
	}
}

// MaxPlanes is the largest plane count of any supported format.
const MaxPlanes = 3

// ErrUnsupportedFormat is wrapped by every format validation error.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format describes the sample layout of a stream.
type Format struct {
	Family       ColorFamily
	Type         SampleType
	Bits         int
	SubSamplingW int // log2 horizontal chroma subsampling
	SubSamplingH int // log2 vertical chroma subsampling
}

// Preset formats.
var (
	Gray8     = Format{Family: Gray, Type: Integer, Bits: 8}
	Gray16    = Format{Family: Gray, Type: Integer, Bits: 16}
	GrayS     = Format{Family: Gray, Type: Float, Bits: 32}
	YUV420P8  = Format{Family: YUV, Type: Integer, Bits: 8, SubSamplingW: 1, SubSamplingH: 1}
	YUV420P10 = Format{Family: YUV, Type: Integer, Bits: 10, SubSamplingW: 1, SubSamplingH: 1}
	YUV420P16 = Format{Family: YUV, Type: Integer, Bits: 16, SubSamplingW: 1, SubSamplingH: 1}
	YUV422P8  = Format{Family: YUV, Type: Integer, Bits: 8, SubSamplingW: 1}
	YUV444P8  = Format{Family: YUV, Type: Integer, Bits: 8}
	YUV444P16 = Format{Family: YUV, Type: Integer, Bits: 16}
	YUV444PS  = Format{Family: YUV, Type: Float, Bits: 32}
	RGB24     = Format{Family: RGB, Type: Integer, Bits: 8}
	RGB30     = Format{Family: RGB, Type: Integer, Bits: 10}
	RGB48     = Format{Family: RGB, Type: Integer, Bits: 16}
	RGBS      = Format{Family: RGB, Type: Float, Bits: 32}
)

// NumPlanes returns 1 for Gray and 3 otherwise.
func (f Format) NumPlanes() int {
	if f.Family == Gray {
		return 1
	}
	return 3
}

// Storage returns the element type used for planes of this format.
func (f Format) Storage() Storage {
	switch {
	case f.Type == Float:
		return StorageF
	case f.Bits <= 8:
		return Storage8
	default:
		return Storage16
	}
}

// BytesPerSample returns the storage size of one sample.
func (f Format) BytesPerSample() int {
	switch f.Storage() {
	case Storage8:
		return 1
	case Storage16:
		return 2
	default:
		return 4
	}
}

// Validate reports whether the format can be processed.
func (f Format) Validate() error {
	switch f.Family {
	case Gray, YUV, RGB:
	default:
		return fmt.Errorf("%w: color family %v", ErrUnsupportedFormat, f.Family)
	}

	switch f.Type {
	case Integer:
		if f.Bits < 8 || f.Bits > 16 {
			return fmt.Errorf("%w: integer samples must be 8..16 bits: %d", ErrUnsupportedFormat, f.Bits)
		}
	case Float:
		if f.Bits != 32 {
			return fmt.Errorf("%w: float samples must be 32 bits: %d", ErrUnsupportedFormat, f.Bits)
		}
	default:
		return fmt.Errorf("%w: sample type %v", ErrUnsupportedFormat, f.Type)
	}

	if f.SubSamplingW < 0 || f.SubSamplingW > 2 || f.SubSamplingH < 0 || f.SubSamplingH > 2 {
		return fmt.Errorf("%w: subsampling must be 0..2: %d/%d", ErrUnsupportedFormat, f.SubSamplingW, f.SubSamplingH)
	}

	if f.Family != YUV && (f.SubSamplingW != 0 || f.SubSamplingH != 0) {
		return fmt.Errorf("%w: %v cannot be subsampled", ErrUnsupportedFormat, f.Family)
	}

	return nil
}

// String returns a compact name such as "YUV420P10" or "RGBS".
func (f Format) String() string {
	depth := fmt.Sprintf("P%d", f.Bits)
	if f.Type == Float {
		depth = "PS"
	}

	switch f.Family {
	case Gray:
		if f.Type == Float {
			return "GrayS"
		}
		return fmt.Sprintf("Gray%d", f.Bits)
	case RGB:
		if f.Type == Float {
			return "RGBS"
		}
		return fmt.Sprintf("RGB%d", 3*f.Bits)
	case YUV:
		return fmt.Sprintf("YUV%s%s", subsamplingName(f.SubSamplingW, f.SubSamplingH), depth)
	default:
		return fmt.Sprintf("Format(%v,%v,%d)", f.Family, f.Type, f.Bits)
	}
}

func subsamplingName(w, h int) string {
	switch {
	case w == 0 && h == 0:
		return "444"
	case w == 1 && h == 0:
		return "422"
	case w == 1 && h == 1:
		return "420"
	case w == 2 && h == 0:
		return "411"
	case w == 2 && h == 2:
		return "410"
	default:
		return fmt.Sprintf("ss%d%d", w, h)
	}
}
