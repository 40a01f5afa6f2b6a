//go:build amd64 && !purego

// Package sse2 registers the kernels for the x86-64 baseline.
package sse2

import (
	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/unroll"
)

// Priority: 10 (preferred over generic, below AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Impl:      registry.ImplUnrolledGo,
		Add:       unroll.Add4,
		Mul:       unroll.Mul4,
	})
}
