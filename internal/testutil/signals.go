package testutil

import "math/rand"

// Constant returns a slice of length n filled with value.
func Constant(value float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float32 {
	return Constant(1, n)
}

// Ramp returns 0, step, 2*step, ...
func Ramp(step float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i) * step
	}
	return out
}

// DeterministicNoise returns values uniformly drawn from [-amplitude,
// amplitude) with a fixed seed.
func DeterministicNoise(seed int64, amplitude float32, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}
