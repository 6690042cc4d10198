// Package cpu reports the SIMD capabilities used to pick a grain blend kernel.
//
// Detection runs once, lazily, and is cached. Tests can pin a feature set with
// SetForcedFeatures to exercise a specific backend on any machine.
package cpu

import "sync"

// SIMDLevel names the vector extension a kernel backend needs.
type SIMDLevel int

const (
	// SIMDNone is the scalar (pure Go) baseline.
	SIMDNone SIMDLevel = iota
	// SIMDSSE2 is the x86-64 baseline with 128-bit registers.
	SIMDSSE2
	// SIMDAVX2 provides 256-bit integer and float registers.
	SIMDAVX2
	// SIMDNEON is ARM Advanced SIMD with 128-bit registers.
	SIMDNEON
)

// String returns the conventional name of the level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// RegisterBytes is the vector register width of the level in bytes.
// SIMDNone reports 0.
func (s SIMDLevel) RegisterBytes() int {
	switch s {
	case SIMDSSE2, SIMDNEON:
		return 16
	case SIMDAVX2:
		return 32
	default:
		return 0
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric disables every vector backend.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

var (
	detected   Features
	detectOnce sync.Once

	forcedMu sync.RWMutex
	forced   *Features
)

// DetectFeatures returns the features of the running CPU, or the forced set
// installed by SetForcedFeatures. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()

	if f != nil {
		return *f
	}

	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})

	return detected
}

// SetForcedFeatures overrides detection. Intended for tests and for the
// CLI's -kernel flag.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()

	cp := f
	forced = &cp
}

// ResetDetection drops any forced feature set.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()
}

// Supports reports whether features can run code built for level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
