//go:build purego || !(amd64 || arm64)

package kernel

import (
	_ "github.com/cwbudde/algo-vecbench/kernel/internal/arch/generic" // register generic backend
)
