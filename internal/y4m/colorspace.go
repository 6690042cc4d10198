package y4m

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-noisegen/dsp/frame"
)

// defaultColorspace applies when the header has no C token.
const defaultColorspace = "420jpeg"

// parseColorspace maps a C token to a format.
func parseColorspace(c string) (frame.Format, error) {
	switch c {
	case "mono":
		return frame.Gray8, nil
	case "mono16":
		return frame.Gray16, nil
	case "420jpeg", "420paldv", "420mpeg2", "420":
		return frame.YUV420P8, nil
	}

	layout, depth, found := strings.Cut(c, "p")
	bits := 8
	if found {
		b, err := strconv.Atoi(depth)
		if err != nil || b < 9 || b > 16 {
			return frame.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedColorspace, c)
		}
		bits = b
	}

	f := frame.Format{Family: frame.YUV, Type: frame.Integer, Bits: bits}
	switch layout {
	case "444":
	case "422":
		f.SubSamplingW = 1
	case "420":
		f.SubSamplingW, f.SubSamplingH = 1, 1
	case "411":
		f.SubSamplingW = 2
	default:
		return frame.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedColorspace, c)
	}

	return f, nil
}

// colorspaceOf returns the C token for f.
func colorspaceOf(f frame.Format) (string, error) {
	if f.Type != frame.Integer {
		return "", fmt.Errorf("%w: float samples", ErrUnsupportedColorspace)
	}

	switch f.Family {
	case frame.Gray:
		switch f.Bits {
		case 8:
			return "mono", nil
		case 16:
			return "mono16", nil
		}
		return "", fmt.Errorf("%w: %d-bit gray", ErrUnsupportedColorspace, f.Bits)
	case frame.YUV:
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedColorspace, f.Family)
	}

	var layout string
	switch {
	case f.SubSamplingW == 0 && f.SubSamplingH == 0:
		layout = "444"
	case f.SubSamplingW == 1 && f.SubSamplingH == 0:
		layout = "422"
	case f.SubSamplingW == 1 && f.SubSamplingH == 1:
		layout = "420"
	case f.SubSamplingW == 2 && f.SubSamplingH == 0:
		layout = "411"
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedColorspace, f)
	}

	switch {
	case f.Bits == 8 && layout == "420":
		return defaultColorspace, nil
	case f.Bits == 8:
		return layout, nil
	default:
		return layout + "p" + strconv.Itoa(f.Bits), nil
	}
}
