// Package bench times elementwise vector kernels over large float32 arrays.
//
// A [Benchmark] allocates the input arrays A and B (filled with constants,
// 1.0 by default) and the output C, then times exactly one kernel call
// computing C[i] = op(A[i], B[i]). Allocation happens before the clock
// starts, so the reported duration is the compute window only.
//
// Each [Benchmark.Run] owns its arrays; nothing is shared between runs.
// [Benchmark.RunTrials] runs several independent trials in sequence and
// keeps only the boundary samples of each output.
package bench
