// Package registry holds the elementwise kernel implementations available
// to package kernel. Architecture packages register from init().
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecbench/internal/cpu"
)

// BinaryFn computes dst[i] = f(a[i], b[i]). Callers guarantee equal lengths.
type BinaryFn func(dst, a, b []float32)

// Implementation kinds reported in OpEntry.Impl.
const (
	ImplScalarGo   = "scalar Go"
	ImplUnrolledGo = "unrolled Go"
)

// OpEntry is one registered kernel implementation.
type OpEntry struct {
	// Name identifies the implementation ("generic", "avx2", ...).
	Name string

	// SIMDLevel is the instruction set the implementation requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries, higher first. Generic is 0.
	Priority int

	// Impl says how the kernels are written, e.g. ImplUnrolledGo. An
	// entry gated on a SIMD level need not use its instructions.
	Impl string

	Add BinaryFn
	Mul BinaryFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features,
// or nil if none is.
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

// ListEntries returns a copy of the entries, highest priority first.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

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
