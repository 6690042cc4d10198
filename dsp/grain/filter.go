package grain

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/cwbudde/algo-noisegen/dsp/frame"
	archregistry "github.com/cwbudde/algo-noisegen/dsp/grain/internal/arch/registry"
	"github.com/sirupsen/logrus"
)

// Params is the effective configuration of a [Filter]. Strength and Limit are
// in 8-bit units as passed to the options; FullRange and Planes reflect the
// RGB override and the default plane selection.
type Params struct {
	Distribution Distribution
	Strength     float64
	Limit        float64
	Mean         float64
	Variance     float64
	Dynamic      bool
	FullRange    bool
	Planes       []int
}

// Filter adds pooled grain to the frames of one stream.
type Filter struct {
	info   frame.StreamInfo
	params Params

	active  [frame.MaxPlanes]bool
	ranges  [frame.MaxPlanes]PixelRange
	planes  [frame.MaxPlanes]*NoisePlane
	offsets [frame.MaxPlanes]OffsetTable

	tableSize int
	kernel    *archregistry.OpEntry
}

// New validates the options against info, resolves the clamp ranges and
// generates the noise planes. It returns a *ConfigError for rejected
// parameters and a wrapped *buffer.AllocationError when a noise plane cannot
// be allocated.
func New(info frame.StreamInfo, opts ...Option) (*Filter, error) {
	f, err := newFilter(info, opts)
	if err != nil {
		Logger().WithFields(logrus.Fields{
			"function": "New",
			"stream":   info.String(),
		}).WithError(err).Error("Rejected grain filter configuration")

		return nil, err
	}

	Logger().WithFields(logrus.Fields{
		"function":     "New",
		"stream":       info.String(),
		"distribution": f.params.Distribution.String(),
		"str":          f.params.Strength,
		"limit":        f.params.Limit,
		"mean":         f.params.Mean,
		"var":          f.params.Variance,
		"dynamic":      f.params.Dynamic,
		"full":         f.params.FullRange,
		"planes":       f.params.Planes,
		"table_size":   f.tableSize,
		"kernel":       f.kernel.Name,
	}).Info("Grain filter created")

	return f, nil
}

func newFilter(info frame.StreamInfo, opts []Option) (*Filter, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := info.Validate(); err != nil {
		return nil, configError("format", err.Error())
	}

	numPlanes := info.NumPlanes()
	isRGB := info.Format.Family == frame.RGB

	planes, err := resolvePlanes(cfg.planes, numPlanes, isRGB)
	if err != nil {
		return nil, err
	}

	f := &Filter{
		info: info,
		params: Params{
			Distribution: cfg.distribution,
			Strength:     cfg.strength,
			Limit:        cfg.limit,
			Mean:         cfg.mean,
			Variance:     cfg.variance,
			Dynamic:      cfg.dynamic,
			FullRange:    cfg.fullRange || isRGB,
			Planes:       planes,
		},
		kernel: selectedKernel(),
	}

	for _, p := range planes {
		f.active[p] = true
	}

	f.ranges = ResolveRanges(info.Format, f.params.FullRange)

	var fallback bool
	f.tableSize, fallback = TableSize(info.FPSNum, info.FPSDen)
	if fallback && cfg.dynamic {
		Logger().WithFields(logrus.Fields{
			"function":   "New",
			"fps":        fmt.Sprintf("%d/%d", info.FPSNum, info.FPSDen),
			"table_size": f.tableSize,
		}).Warn("Unknown frame rate, offset table sized for 25 fps")
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	heights := [frame.MaxPlanes]int{}
	for _, p := range planes {
		heights[p] = info.PlaneHeight(p)
		if cfg.dynamic {
			base := heights[p]
			heights[p] *= heightMultiplier
			f.offsets[p] = NewOffsetTable(rng, f.tableSize, base, heights[p])
		}
	}

	spec := scaledSpec(cfg, info.Format)

	for _, p := range planes {
		width := info.PlaneWidth(p)

		np, err := GenerateNoisePlane(rng, info.Format.Storage(), width, heights[p], spec)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("noisegen: plane %d: %w", p, err)
		}

		Logger().WithFields(logrus.Fields{
			"function": "New",
			"plane":    p,
			"width":    np.Width(),
			"height":   np.Height(),
			"stride":   np.Stride(),
			"storage":  np.Storage().String(),
		}).Debug("Allocated noise plane")

		f.planes[p] = np
	}

	return f, nil
}

// resolvePlanes applies the default selection and checks the indices.
// Duplicates collapse; the result is sorted.
func resolvePlanes(requested []int, numPlanes int, isRGB bool) ([]int, error) {
	if len(requested) == 0 {
		if isRGB {
			out := make([]int, numPlanes)
			for i := range out {
				out[i] = i
			}
			return out, nil
		}
		return []int{0}, nil
	}

	out := make([]int, 0, len(requested))
	for _, p := range requested {
		if p < 0 || p >= numPlanes {
			return nil, configError("planes", "planes index out of bound")
		}
		out = append(out, p)
	}

	slices.Sort(out)

	return slices.Compact(out), nil
}

// scaledSpec converts strength and limit from 8-bit units to sample units:
// integer formats scale by 2^(bits-8), float formats by 1/256.
func scaledSpec(cfg config, f frame.Format) NoiseSpec {
	scale := 1.0 / 256.0
	if f.Type == frame.Integer {
		scale = float64(int64(1) << (f.Bits - 8))
	}

	return NoiseSpec{
		Distribution: cfg.distribution,
		Mean:         cfg.mean,
		Variance:     cfg.variance,
		Strength:     cfg.strength * scale,
		Limit:        cfg.limit * scale,
	}
}

// ProcessFrame returns a copy of src with grain added to the active planes.
// n is the frame index and selects the pattern in dynamic mode. src is not
// modified.
func (f *Filter) ProcessFrame(n int, src *frame.Frame) *frame.Frame {
	dst := src.Clone()
	f.Apply(n, dst)
	return dst
}

// Apply adds grain for frame n to dst in place. dst must have the geometry
// of the filter's stream.
func (f *Filter) Apply(n int, dst *frame.Frame) {
	for p := range dst.Planes {
		if p >= frame.MaxPlanes || f.planes[p] == nil {
			continue
		}
		blendPlane(f.kernel, &dst.Planes[p], f.planes[p], f.Offset(p, n), f.ranges[p])
	}
}

// Close releases the noise planes and offset tables. Calling Close more than
// once is safe. Close must not run concurrently with ProcessFrame or Apply.
func (f *Filter) Close() {
	for p := range f.planes {
		if f.planes[p] != nil {
			f.planes[p].Release()
			f.planes[p] = nil
		}
		f.offsets[p] = nil
	}
}

// Info returns the stream description the filter was built for.
func (f *Filter) Info() frame.StreamInfo { return f.info }

// Params returns the effective configuration.
func (f *Filter) Params() Params {
	p := f.params
	p.Planes = slices.Clone(p.Planes)
	return p
}

// Range returns the clamp interval of plane p.
func (f *Filter) Range(p int) PixelRange {
	if p < 0 || p >= frame.MaxPlanes {
		return PixelRange{}
	}
	return f.ranges[p]
}

// Active reports whether plane p receives grain.
func (f *Filter) Active(p int) bool {
	return p >= 0 && p < frame.MaxPlanes && f.active[p]
}

// Offset returns the noise start row used for plane p of frame n. It is
// always 0 when dynamic mode is off or the plane is inactive.
func (f *Filter) Offset(p, n int) int {
	if !f.Active(p) || !f.params.Dynamic {
		return 0
	}
	return f.offsets[p].At(n)
}

// NoisePlane returns the noise buffer of plane p, or nil for inactive planes
// and after Close.
func (f *Filter) NoisePlane(p int) *NoisePlane {
	if p < 0 || p >= frame.MaxPlanes {
		return nil
	}
	return f.planes[p]
}

// TableSize returns the length of the per-frame offset table,
// round(10 * fps).
func (f *Filter) TableSize() int { return f.tableSize }
