package grain

import "github.com/cwbudde/algo-noisegen/dsp/frame"

// PixelRange is the inclusive interval blended samples are clamped to.
// Integer formats hold integral code values; float formats normalized ones.
type PixelRange struct {
	Min float64
	Max float64
}

// ResolveRanges returns the clamp interval of every plane of format f.
//
// Integer formats use [0, 2^bits-1] in full range. Studio range uses
// 16..235 for luma and 16..240 for chroma, shifted to the bit depth. Float
// formats use [0, 1] for luma and RGB and [-0.5, 0.5] for chroma. RGB is
// always full range. Entries past the plane count are zero.
func ResolveRanges(f frame.Format, full bool) [frame.MaxPlanes]PixelRange {
	var r [frame.MaxPlanes]PixelRange

	if f.Family == frame.RGB {
		full = true
	}

	for p := range f.NumPlanes() {
		switch {
		case f.Type == frame.Float:
			if p == 0 || f.Family == frame.RGB {
				r[p] = PixelRange{Min: 0, Max: 1}
			} else {
				r[p] = PixelRange{Min: -0.5, Max: 0.5}
			}
		case full:
			r[p] = PixelRange{Min: 0, Max: float64(int64(1)<<f.Bits - 1)}
		default:
			shift := f.Bits - 8
			hi := int64(240)
			if p == 0 {
				hi = 235
			}
			r[p] = PixelRange{Min: float64(int64(16) << shift), Max: float64(hi << shift)}
		}
	}

	return r
}
