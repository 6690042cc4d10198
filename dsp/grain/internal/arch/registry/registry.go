// Package registry holds the grain blend kernels available on this build.
//
// Backends register an OpEntry from init(); the grain package picks the
// highest-priority entry the CPU supports, once.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-noisegen/internal/cpu"
)

// Row kernels add one row of noise deltas into one row of samples in place,
// clamping every result to [lo, hi]. len(noise) >= len(dst).
type (
	AddNoise8Fn  func(dst []uint8, noise []int8, lo, hi uint8)
	AddNoise16Fn func(dst []uint16, noise []int16, lo, hi uint16)
	AddNoiseFFn  func(dst []float32, noise []float32, lo, hi float32)
)

// OpEntry is one registered kernel backend.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// Chunk is the number of elements processed per vector step for each
	// storage kind. Zero for the scalar backend.
	Chunk8, Chunk16, ChunkF int

	AddNoise8  AddNoise8Fn
	AddNoise16 AddNoise16Fn
	AddNoiseF  AddNoiseFFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default blend kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Find returns the entry registered under name, or nil.
func (r *OpRegistry) Find(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
