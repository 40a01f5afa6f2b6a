package bench

import (
	"time"

	"github.com/cwbudde/algo-vecbench/kernel"
)

// SampleSize is how many boundary elements reports show from each end.
const SampleSize = 5

// Result is the outcome of one kernel invocation.
type Result struct {
	Op       kernel.Op
	Size     int
	Output   []float32
	Duration time.Duration
	Backend  string
	Workers  int

	// InputA and InputB are the constants A and B were filled with.
	InputA float32
	InputB float32
}

// Seconds returns the elapsed kernel time in seconds.
func (r Result) Seconds() float64 {
	return r.Duration.Seconds()
}

// Head returns a copy of the first n output elements (fewer if shorter).
func (r Result) Head(n int) []float32 {
	n = clampSample(n, len(r.Output))
	return append([]float32(nil), r.Output[:n]...)
}

// Tail returns a copy of the last n output elements (fewer if shorter).
func (r Result) Tail(n int) []float32 {
	n = clampSample(n, len(r.Output))
	return append([]float32(nil), r.Output[len(r.Output)-n:]...)
}

// ElementsPerSecond is the kernel throughput, 0 when no time was measured.
func (r Result) ElementsPerSecond() float64 {
	s := r.Seconds()
	if s <= 0 {
		return 0
	}
	return float64(r.Size) / s
}

func clampSample(n, length int) int {
	return max(min(n, length), 0)
}
