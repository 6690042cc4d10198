package grain

import (
	"math"
	"math/rand/v2"
	"slices"
)

const (
	defaultStrength     = 1.0
	defaultLimit        = 128.0
	defaultDistribution = Normal
	defaultMean         = 0.0
	defaultVariance     = 1.0
	defaultDynamic      = true
	defaultFullRange    = false

	maxStrength = 128.0
	maxLimit    = 128.0
	minVariance = 0.001
)

type config struct {
	strength     float64
	limit        float64
	distribution Distribution
	mean         float64
	variance     float64
	dynamic      bool
	fullRange    bool
	planes       []int
	rng          *rand.Rand
}

func defaultConfig() config {
	return config{
		strength:     defaultStrength,
		limit:        defaultLimit,
		distribution: defaultDistribution,
		mean:         defaultMean,
		variance:     defaultVariance,
		dynamic:      defaultDynamic,
		fullRange:    defaultFullRange,
	}
}

// Option configures a [Filter].
type Option func(*config) error

// WithStrength sets the grain amplitude in 8-bit sample units (0–128,
// default 1). It is scaled to the stream's bit depth.
func WithStrength(str float64) Option {
	return func(cfg *config) error {
		if str < 0 || str > maxStrength || math.IsNaN(str) {
			return configError("str", "str must be 0.0 ... 128")
		}

		cfg.strength = str

		return nil
	}
}

// WithLimit sets the largest absolute noise value in 8-bit sample units
// (0–128, default 128).
func WithLimit(limit float64) Option {
	return func(cfg *config) error {
		if limit < 0 || limit > maxLimit || math.IsNaN(limit) {
			return configError("limit", "limit must be 0.0 ... 128.0")
		}

		cfg.limit = limit

		return nil
	}
}

// WithDistribution sets the noise distribution (default [Normal]).
func WithDistribution(d Distribution) Option {
	return func(cfg *config) error {
		if !d.Valid() {
			return configError("type", "type must be 1: uniform, 2: normal")
		}

		cfg.distribution = d

		return nil
	}
}

// WithMean sets the distribution mean (default 0).
func WithMean(mean float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(mean) || math.IsInf(mean, 0) {
			return configError("mean", "mean must be finite")
		}

		cfg.mean = mean

		return nil
	}
}

// WithVariance sets the distribution variance (default 1, must exceed 0.001).
// For [Uniform] it is the half width of the interval.
func WithVariance(v float64) Option {
	return func(cfg *config) error {
		if v <= minVariance || math.IsNaN(v) || math.IsInf(v, 0) {
			return configError("var", "var must be larger than 0.001")
		}

		cfg.variance = v

		return nil
	}
}

// WithDynamic enables a different grain pattern per frame (default true).
func WithDynamic(enabled bool) Option {
	return func(cfg *config) error {
		cfg.dynamic = enabled
		return nil
	}
}

// WithFullRange clamps integer samples to the full code range instead of
// studio range (default false). RGB streams always use full range.
func WithFullRange(enabled bool) Option {
	return func(cfg *config) error {
		cfg.fullRange = enabled
		return nil
	}
}

// WithPlanes selects the planes that receive grain. Indices are checked
// against the stream's plane count by [New]. Without this option only plane 0
// is processed, or every plane for RGB.
func WithPlanes(planes ...int) Option {
	return func(cfg *config) error {
		cfg.planes = slices.Clone(planes)
		return nil
	}
}

// WithRNG sets a deterministic random number generator for reproducible grain.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		cfg.rng = rng
		return nil
	}
}
