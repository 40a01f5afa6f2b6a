// Command vecbench times elementwise float32 vector kernels.
//
// Usage:
//
//	vecbench [flags]
//	vecbench backends
//
// Without flags it allocates two arrays of 32,000,000 ones, times a
// vector add and then a vector multiply, and prints the first and last
// five results of each together with the elapsed seconds.
//
// Examples:
//
//	vecbench
//	vecbench --size 1000000 --op multiply --repeat 5
//	vecbench --workers 1 --verify --format json
//	vecbench --metrics-file /var/lib/node_exporter/vecbench.prom
//	vecbench backends
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
