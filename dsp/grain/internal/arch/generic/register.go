// Package generic provides the scalar blend kernels. They define the
// reference semantics every vector backend must reproduce, and they process
// the row tails the vector backends leave over.
package generic

import (
	"github.com/cwbudde/algo-noisegen/dsp/core"
	"github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/registry"
	"github.com/cwbudde/algo-noisegen/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "generic",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		AddNoise8:  AddNoise8,
		AddNoise16: AddNoise16,
		AddNoiseF:  AddNoiseF,
	})
}

// AddNoise8 widens to int16, adds, clamps to [lo, hi] and narrows.
func AddNoise8(dst []uint8, noise []int8, lo, hi uint8) {
	noise = noise[:len(dst)]
	l, h := int16(lo), int16(hi)

	for i, v := range dst {
		dst[i] = uint8(core.Clamp(int16(v)+int16(noise[i]), l, h))
	}
}

// AddNoise16 widens to int32, adds, clamps to [lo, hi] and narrows.
func AddNoise16(dst []uint16, noise []int16, lo, hi uint16) {
	noise = noise[:len(dst)]
	l, h := int32(lo), int32(hi)

	for i, v := range dst {
		dst[i] = uint16(core.Clamp(int32(v)+int32(noise[i]), l, h))
	}
}

// AddNoiseF adds and clamps to [lo, hi].
func AddNoiseF(dst []float32, noise []float32, lo, hi float32) {
	noise = noise[:len(dst)]

	for i, v := range dst {
		dst[i] = core.Clamp(v+noise[i], lo, hi)
	}
}
