//go:build amd64 && !purego

// Package avx2 registers the kernels selected on AVX2-capable CPUs.
package avx2

import (
	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/unroll"
)

// init registers 8-lane unrolled kernels, one block per 256-bit register.
// TODO: replace with VADDPS/VMULPS assembly kernels.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Impl:      registry.ImplUnrolledGo,
		Add:       unroll.Add8,
		Mul:       unroll.Mul8,
	})
}
