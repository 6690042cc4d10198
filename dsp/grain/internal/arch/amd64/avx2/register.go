//go:build amd64 && !purego

// Package avx2 registers the 256-bit lane kernels for AVX2 CPUs.
package avx2

import (
	"github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/lanes"
	"github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/registry"
	"github.com/cwbudde/algo-noisegen/internal/cpu"
)

// TODO: replace the lane kernels with VPADDSB/VPADDSW assembly.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "avx2",
		SIMDLevel:  cpu.SIMDAVX2,
		Priority:   20,
		Chunk8:     lanes.Chunk8x32,
		Chunk16:    lanes.Chunk16x16,
		ChunkF:     lanes.ChunkF32x8,
		AddNoise8:  lanes.AddNoise8x32,
		AddNoise16: lanes.AddNoise16x16,
		AddNoiseF:  lanes.AddNoiseF32x8,
	})
}
