// Package kernel applies elementwise binary operations over float32 slices.
//
// [Apply] computes dst[i] = op(a[i], b[i]) for an [Op] of [OpAdd] or
// [OpMultiply]. The implementation is picked once per process from a
// registry of backends (generic, SSE2, AVX2, NEON) according to the
// detected CPU features; the choice never changes results, which follow
// IEEE-754 single precision. [ApplyParallel] additionally splits the index
// range across goroutines and returns only when every chunk is done.
package kernel
