package kernel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	// MinParallelChunk is the smallest range handed to one goroutine.
	MinParallelChunk = 1 << 16

	// chunkAlign keeps chunk boundaries on 64-element (256-byte) blocks.
	chunkAlign = 64
)

// ApplyParallel is Apply with the index range split into contiguous chunks,
// each processed on its own goroutine. workers <= 0 uses GOMAXPROCS.
// Inputs too small to give every worker MinParallelChunk elements use fewer
// workers, down to a single serial call. It returns after all chunks finish.
func ApplyParallel(op Op, dst, a, b []float32, workers int) error {
	fn, err := kernelFor(op)
	if err != nil {
		return err
	}
	if err := checkLengths(dst, a, b); err != nil {
		return err
	}

	n := len(dst)
	if n == 0 {
		return nil
	}

	workers = effectiveWorkers(n, workers)
	if workers == 1 {
		fn(dst, a, b)
		return nil
	}

	chunk := (n + workers - 1) / workers
	chunk = (chunk + chunkAlign - 1) &^ (chunkAlign - 1)

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(dst[lo:hi:hi], a[lo:hi:hi], b[lo:hi:hi])
			return nil
		})
	}
	return g.Wait()
}

// effectiveWorkers clamps the requested worker count for n elements.
func effectiveWorkers(n, workers int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if limit := max(n/MinParallelChunk, 1); workers > limit {
		workers = limit
	}
	return workers
}

// Workers returns how many goroutines ApplyParallel uses for n elements
// when asked for the given count.
func Workers(n, requested int) int {
	return effectiveWorkers(n, requested)
}
