package grain

import (
	"sync"

	"github.com/cwbudde/algo-noisegen/dsp/frame"
	archregistry "github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/registry"
	"github.com/cwbudde/algo-noisegen/internal/cpu"
)

var (
	blendKernel     *archregistry.OpEntry
	blendKernelOnce sync.Once
)

func initBlendKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("grain: no blend kernel registered (missing generic fallback?)")
	}

	if entry.AddNoise8 == nil || entry.AddNoise16 == nil || entry.AddNoiseF == nil {
		panic("grain: selected kernel " + entry.Name + " is incomplete")
	}

	blendKernel = entry
}

func selectedKernel() *archregistry.OpEntry {
	blendKernelOnce.Do(initBlendKernel)
	return blendKernel
}

// KernelName reports the blend backend in use: "generic", "sse2", "avx2" or
// "neon".
func KernelName() string {
	return selectedKernel().Name
}

// KernelWidth reports the vector register width in bytes of the blend backend
// in use, 0 for the scalar kernels.
func KernelWidth() int {
	return selectedKernel().SIMDLevel.RegisterBytes()
}

// BlendPlane adds noise rows offset, offset+1, ... onto the rows of dst and
// clamps every sample to r. noise must have the storage of dst and at least
// offset+dst.Height rows of at least dst.Width elements.
func BlendPlane(dst *frame.Plane, noise *NoisePlane, offset int, r PixelRange) {
	blendPlane(selectedKernel(), dst, noise, offset, r)
}

func blendPlane(k *archregistry.OpEntry, dst *frame.Plane, noise *NoisePlane, offset int, r PixelRange) {
	switch {
	case dst.Pix8 != nil && noise.i8 != nil:
		lo, hi := uint8(r.Min), uint8(r.Max)
		for y := range dst.Height {
			k.AddNoise8(dst.Row8(y), noise.i8.Row(offset+y), lo, hi)
		}
	case dst.Pix16 != nil && noise.i16 != nil:
		lo, hi := uint16(r.Min), uint16(r.Max)
		for y := range dst.Height {
			k.AddNoise16(dst.Row16(y), noise.i16.Row(offset+y), lo, hi)
		}
	case dst.PixF != nil && noise.f32 != nil:
		lo, hi := float32(r.Min), float32(r.Max)
		for y := range dst.Height {
			k.AddNoiseF(dst.RowF(y), noise.f32.Row(offset+y), lo, hi)
		}
	}
}
