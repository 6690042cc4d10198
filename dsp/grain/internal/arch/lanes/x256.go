package lanes

import "github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/generic"

// Chunk widths for 32-byte registers.
const (
	Chunk8x32  = 32
	Chunk16x16 = 16
	ChunkF32x8 = 8
)

// AddNoise8x32 blends 8-bit rows 32 lanes at a time.
func AddNoise8x32(dst []uint8, noise []int8, lo, hi uint8) {
	n := len(dst) - len(dst)%32
	for i := 0; i < n; i += 32 {
		d := (*[32]uint8)(dst[i : i+32])
		s := (*[32]int8)(noise[i : i+32])
		for j := range d {
			d[j] = lane8(d[j], s[j], lo, hi)
		}
	}
	generic.AddNoise8(dst[n:], noise[n:], lo, hi)
}

// AddNoise16x16 blends 16-bit rows 16 lanes at a time.
func AddNoise16x16(dst []uint16, noise []int16, lo, hi uint16) {
	n := len(dst) - len(dst)%16
	for i := 0; i < n; i += 16 {
		d := (*[16]uint16)(dst[i : i+16])
		s := (*[16]int16)(noise[i : i+16])
		for j := range d {
			d[j] = lane16(d[j], s[j], lo, hi)
		}
	}
	generic.AddNoise16(dst[n:], noise[n:], lo, hi)
}

// AddNoiseF32x8 blends float rows 8 lanes at a time.
func AddNoiseF32x8(dst []float32, noise []float32, lo, hi float32) {
	n := len(dst) - len(dst)%8
	for i := 0; i < n; i += 8 {
		d := (*[8]float32)(dst[i : i+8])
		s := (*[8]float32)(noise[i : i+8])
		for j := range d {
			d[j] = laneF(d[j], s[j], lo, hi)
		}
	}
	generic.AddNoiseF(dst[n:], noise[n:], lo, hi)
}
