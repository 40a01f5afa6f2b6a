//go:build arm64 && !purego

// Package neon registers the kernels for ARM Advanced SIMD.
package neon

import (
	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/unroll"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Impl:      registry.ImplUnrolledGo,
		Add:       unroll.Add4,
		Mul:       unroll.Mul4,
	})
}
