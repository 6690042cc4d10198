package grain

import (
	"testing"

	"github.com/cwbudde/algo-noisegen/dsp/frame"
	"github.com/stretchr/testify/assert"
)

func TestResolveRanges(t *testing.T) {
	studio8 := []PixelRange{{16, 235}, {16, 240}, {16, 240}}
	full8 := []PixelRange{{0, 255}, {0, 255}, {0, 255}}

	tests := []struct {
		name   string
		format frame.Format
		full   bool
		want   []PixelRange
	}{
		{"8-bit studio", frame.YUV420P8, false, studio8},
		{"8-bit full", frame.YUV420P8, true, full8},
		{"10-bit studio", frame.YUV420P10, false, []PixelRange{{64, 940}, {64, 960}, {64, 960}}},
		{"16-bit studio", frame.YUV444P16, false, []PixelRange{{4096, 60160}, {4096, 61440}, {4096, 61440}}},
		{"16-bit gray full", frame.Gray16, true, []PixelRange{{0, 65535}}},
		{"gray studio", frame.Gray8, false, []PixelRange{{16, 235}}},
		{"RGB forced full", frame.RGB24, false, full8},
		{"RGB30 forced full", frame.RGB30, false, []PixelRange{{0, 1023}, {0, 1023}, {0, 1023}}},
		{"float YUV", frame.YUV444PS, false, []PixelRange{{0, 1}, {-0.5, 0.5}, {-0.5, 0.5}}},
		{"float YUV full flag ignored", frame.YUV444PS, true, []PixelRange{{0, 1}, {-0.5, 0.5}, {-0.5, 0.5}}},
		{"float RGB", frame.RGBS, false, []PixelRange{{0, 1}, {0, 1}, {0, 1}}},
		{"float gray", frame.GrayS, false, []PixelRange{{0, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRanges(tt.format, tt.full)

			for p := range frame.MaxPlanes {
				if p >= len(tt.want) {
					assert.Equal(t, PixelRange{}, got[p], "plane %d beyond plane count", p)
					continue
				}
				assert.Equal(t, tt.want[p], got[p], "plane %d", p)
				assert.LessOrEqual(t, got[p].Min, got[p].Max, "plane %d", p)
			}
		})
	}
}
