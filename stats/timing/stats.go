// Package timing summarizes repeated benchmark durations.
package timing

import (
	"math"
	"time"
)

// Stats holds summary statistics of a series of durations in seconds.
type Stats struct {
	Count    int
	Total    float64
	Mean     float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Variance float64 // population variance
	StdDev   float64
	CV       float64 // StdDev / Mean, 0 when Mean is 0
}

// Calculate computes Stats in one pass using Welford's online algorithm.
// An empty series yields zero Stats.
func Calculate(seconds []float64) Stats {
	s := NewStreamingStats()
	s.Update(seconds)
	return s.Result()
}

// FromDurations is Calculate over durations converted to seconds.
func FromDurations(ds []time.Duration) Stats {
	s := NewStreamingStats()
	for _, d := range ds {
		s.Add(d.Seconds())
	}
	return s.Result()
}

// StreamingStats accumulates Stats one value at a time. Results are
// identical to Calculate over the concatenated input.
type StreamingStats struct {
	n      int
	total  float64
	mean   float64
	m2     float64
	maxVal float64
	maxPos int
	minVal float64
	minPos int
}

// NewStreamingStats creates an empty accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Add records one value.
func (s *StreamingStats) Add(x float64) {
	if s.n == 0 {
		s.maxVal, s.minVal = x, x
		s.maxPos, s.minPos = 0, 0
	} else {
		if x > s.maxVal {
			s.maxVal = x
			s.maxPos = s.n
		}
		if x < s.minVal {
			s.minVal = x
			s.minPos = s.n
		}
	}

	s.n++
	s.total += x

	delta := x - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (x - s.mean)
}

// Update records a block of values.
func (s *StreamingStats) Update(xs []float64) {
	for _, x := range xs {
		s.Add(x)
	}
}

// Result computes the statistics of everything recorded so far.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}

	variance := s.m2 / float64(s.n)
	std := math.Sqrt(variance)

	var cv float64
	if s.mean != 0 {
		cv = std / s.mean
	}

	return Stats{
		Count:    s.n,
		Total:    s.total,
		Mean:     s.mean,
		Min:      s.minVal,
		MinPos:   s.minPos,
		Max:      s.maxVal,
		MaxPos:   s.maxPos,
		Variance: variance,
		StdDev:   std,
		CV:       cv,
	}
}
