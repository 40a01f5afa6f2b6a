package kernel

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
)

// Errors returned by kernel functions.
var (
	ErrInvalidOperation = errors.New("kernel: unknown operation")
	ErrLengthMismatch   = errors.New("kernel: slice length mismatch")
)

var (
	selected     *registry.OpEntry
	dispatchOnce sync.Once
)

func initDispatch() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no implementation registered (missing generic fallback?)")
	}
	if entry.Add == nil || entry.Mul == nil {
		panic("kernel: selected implementation " + entry.Name + " missing operations")
	}
	selected = entry
}

// kernelFor validates op and returns the dispatched implementation.
func kernelFor(op Op) (registry.BinaryFn, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperation, op)
	}

	dispatchOnce.Do(initDispatch)

	if op == OpAdd {
		return selected.Add, nil
	}
	return selected.Mul, nil
}

func checkLengths(dst, a, b []float32) error {
	if len(a) != len(b) || len(dst) != len(a) {
		return fmt.Errorf("%w: dst=%d a=%d b=%d", ErrLengthMismatch, len(dst), len(a), len(b))
	}
	return nil
}

// Apply computes dst[i] = op(a[i], b[i]) for every index.
//
// The op is validated before anything else. All slices must have the same
// length; empty slices are a no-op. dst may alias a or b.
func Apply(op Op, dst, a, b []float32) error {
	fn, err := kernelFor(op)
	if err != nil {
		return err
	}
	if err := checkLengths(dst, a, b); err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}

	fn(dst, a, b)
	return nil
}

// Backend returns the name of the implementation selected for this CPU.
func Backend() string {
	dispatchOnce.Do(initDispatch)
	return selected.Name
}

// BackendInfo describes one registered implementation. SIMD is the CPU
// feature the entry requires to be selected and Lanes its unroll width;
// Impl says how the kernels are actually written ("unrolled Go" entries
// leave vectorization to the compiler).
type BackendInfo struct {
	Name      string `json:"name"`
	SIMD      string `json:"simd"`
	Lanes     int    `json:"lanes"`
	Impl      string `json:"impl"`
	Priority  int    `json:"priority"`
	Supported bool   `json:"supported"`
	Selected  bool   `json:"selected"`
}

// Backends lists every registered implementation, highest priority first.
func Backends() []BackendInfo {
	features := cpu.DetectFeatures()
	active := Backend()

	entries := registry.Global.ListEntries()
	out := make([]BackendInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, BackendInfo{
			Name:      e.Name,
			SIMD:      e.SIMDLevel.String(),
			Lanes:     e.SIMDLevel.Lanes32(),
			Impl:      e.Impl,
			Priority:  e.Priority,
			Supported: cpu.Supports(features, e.SIMDLevel),
			Selected:  e.Name == active,
		})
	}
	return out
}

// HostFeatures describes the SIMD extensions detected on this machine.
func HostFeatures() string {
	return cpu.DetectFeatures().String()
}

func nan32() float32 {
	return float32(math.NaN())
}
