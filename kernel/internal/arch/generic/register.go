// Package generic provides the pure Go elementwise kernels.
package generic

import (
	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Impl:      registry.ImplScalarGo,
		Add:       Add,
		Mul:       Mul,
	})
}
