//go:build arm64 && !purego

// Package neon registers the 128-bit lane kernels for ARM Advanced SIMD.
package neon

import (
	"github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/lanes"
	"github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/registry"
	"github.com/cwbudde/algo-noisegen/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "neon",
		SIMDLevel:  cpu.SIMDNEON,
		Priority:   15,
		Chunk8:     lanes.Chunk8x16,
		Chunk16:    lanes.Chunk16x8,
		ChunkF:     lanes.ChunkF32x4,
		AddNoise8:  lanes.AddNoise8x16,
		AddNoise16: lanes.AddNoise16x8,
		AddNoiseF:  lanes.AddNoiseF32x4,
	})
}
