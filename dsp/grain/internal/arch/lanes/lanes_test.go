package lanes

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/generic"
)

// Row widths straddling every chunk size, including none and partial chunks.
var widths = []int{0, 1, 3, 4, 7, 8, 15, 16, 17, 31, 32, 33, 63, 100, 257}

func TestLane8Saturates(t *testing.T) {
	tests := []struct {
		d      uint8
		n      int8
		lo, hi uint8
		want   uint8
	}{
		{255, 127, 0, 255, 255},
		{0, -128, 0, 255, 0},
		{200, 100, 16, 235, 235},
		{20, -10, 16, 235, 16},
		{128, 0, 16, 240, 128},
	}

	for _, tt := range tests {
		if got := lane8(tt.d, tt.n, tt.lo, tt.hi); got != tt.want {
			t.Errorf("lane8(%d, %d, %d, %d) = %d, want %d", tt.d, tt.n, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestLane16Saturates(t *testing.T) {
	if got := lane16(65535, 32767, 0, 65535); got != 65535 {
		t.Fatalf("upper saturation: got %d", got)
	}
	if got := lane16(0, -32768, 0, 65535); got != 0 {
		t.Fatalf("lower saturation: got %d", got)
	}
	if got := lane16(900, 200, 64, 960); got != 960 {
		t.Fatalf("range clamp: got %d", got)
	}
}

func TestRowKernelsMatchScalar(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	kernels8 := map[string]func([]uint8, []int8, uint8, uint8){
		"8x16": AddNoise8x16,
		"8x32": AddNoise8x32,
	}
	kernels16 := map[string]func([]uint16, []int16, uint16, uint16){
		"16x8":  AddNoise16x8,
		"16x16": AddNoise16x16,
	}
	kernelsF := map[string]func([]float32, []float32, float32, float32){
		"f32x4": AddNoiseF32x4,
		"f32x8": AddNoiseF32x8,
	}

	for _, w := range widths {
		src8 := make([]uint8, w)
		noise8 := make([]int8, w+32)
		src16 := make([]uint16, w)
		noise16 := make([]int16, w+32)
		srcF := make([]float32, w)
		noiseF := make([]float32, w+32)

		for i := range src8 {
			src8[i] = uint8(rng.UintN(256))
			src16[i] = uint16(rng.UintN(65536))
			srcF[i] = rng.Float32()*2 - 0.5
		}
		for i := range noise8 {
			noise8[i] = int8(rng.IntN(256) - 128)
			noise16[i] = int16(rng.IntN(65536) - 32768)
			noiseF[i] = rng.Float32() - 0.5
		}

		for _, rng8 := range [][2]uint8{{0, 255}, {16, 235}, {16, 240}} {
			want := slices.Clone(src8)
			generic.AddNoise8(want, noise8, rng8[0], rng8[1])
			for name, k := range kernels8 {
				got := slices.Clone(src8)
				k(got, noise8, rng8[0], rng8[1])
				if !slices.Equal(got, want) {
					t.Fatalf("%s width %d range %v: vector and scalar differ", name, w, rng8)
				}
			}
		}

		for _, rng16 := range [][2]uint16{{0, 65535}, {64, 940}, {4096, 61440}} {
			want := slices.Clone(src16)
			generic.AddNoise16(want, noise16, rng16[0], rng16[1])
			for name, k := range kernels16 {
				got := slices.Clone(src16)
				k(got, noise16, rng16[0], rng16[1])
				if !slices.Equal(got, want) {
					t.Fatalf("%s width %d range %v: vector and scalar differ", name, w, rng16)
				}
			}
		}

		for _, rngF := range [][2]float32{{0, 1}, {-0.5, 0.5}} {
			want := slices.Clone(srcF)
			generic.AddNoiseF(want, noiseF, rngF[0], rngF[1])
			for name, k := range kernelsF {
				got := slices.Clone(srcF)
				k(got, noiseF, rngF[0], rngF[1])
				if !slices.Equal(got, want) {
					t.Fatalf("%s width %d range %v: vector and scalar differ", name, w, rngF)
				}
			}
		}
	}
}

func BenchmarkAddNoise8(b *testing.B) {
	dst := make([]uint8, 1920)
	noise := make([]int8, 1920)
	for i := range noise {
		noise[i] = int8(i%9 - 4)
	}

	b.Run("generic", func(b *testing.B) {
		b.SetBytes(int64(len(dst)))
		for b.Loop() {
			generic.AddNoise8(dst, noise, 16, 235)
		}
	})
	b.Run("x16", func(b *testing.B) {
		b.SetBytes(int64(len(dst)))
		for b.Loop() {
			AddNoise8x16(dst, noise, 16, 235)
		}
	})
	b.Run("x32", func(b *testing.B) {
		b.SetBytes(int64(len(dst)))
		for b.Loop() {
			AddNoise8x32(dst, noise, 16, 235)
		}
	})
}
