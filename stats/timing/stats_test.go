package timing

import (
	"math"
	"testing"
	"time"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCalculateEmpty(t *testing.T) {
	if got := Calculate(nil); got != (Stats{}) {
		t.Fatalf("Calculate(nil) = %+v, want zero", got)
	}
}

func TestCalculateSingle(t *testing.T) {
	s := Calculate([]float64{0.25})
	if s.Count != 1 || s.Mean != 0.25 || s.Min != 0.25 || s.Max != 0.25 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.Variance != 0 || s.StdDev != 0 || s.CV != 0 {
		t.Fatalf("single value must have zero spread: %+v", s)
	}
}

func TestCalculateKnownSeries(t *testing.T) {
	// Population stddev of 2,4,4,4,5,5,7,9 is exactly 2.
	s := Calculate([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	if s.Count != 8 {
		t.Fatalf("Count = %d, want 8", s.Count)
	}
	if !almostEqual(s.Total, 40, tolerance) {
		t.Errorf("Total = %v, want 40", s.Total)
	}
	if !almostEqual(s.Mean, 5, tolerance) {
		t.Errorf("Mean = %v, want 5", s.Mean)
	}
	if !almostEqual(s.Variance, 4, tolerance) {
		t.Errorf("Variance = %v, want 4", s.Variance)
	}
	if !almostEqual(s.StdDev, 2, tolerance) {
		t.Errorf("StdDev = %v, want 2", s.StdDev)
	}
	if !almostEqual(s.CV, 0.4, tolerance) {
		t.Errorf("CV = %v, want 0.4", s.CV)
	}
	if s.Min != 2 || s.MinPos != 0 {
		t.Errorf("Min = %v at %d, want 2 at 0", s.Min, s.MinPos)
	}
	if s.Max != 9 || s.MaxPos != 7 {
		t.Errorf("Max = %v at %d, want 9 at 7", s.Max, s.MaxPos)
	}
}

func TestMinMaxFirstOccurrence(t *testing.T) {
	s := Calculate([]float64{3, 1, 5, 1, 5})
	if s.MinPos != 1 || s.MaxPos != 2 {
		t.Fatalf("MinPos=%d MaxPos=%d, want 1 and 2", s.MinPos, s.MaxPos)
	}
}

func TestStreamingMatchesCalculate(t *testing.T) {
	data := []float64{0.011, 0.013, 0.009, 0.02, 0.0105, 0.0121, 0.0099}

	s := NewStreamingStats()
	s.Update(data[:3])
	s.Update(data[3:])

	if got, want := s.Result(), Calculate(data); got != want {
		t.Fatalf("streaming %+v != batch %+v", got, want)
	}
}

func TestFromDurations(t *testing.T) {
	s := FromDurations([]time.Duration{time.Second, 3 * time.Second})
	if !almostEqual(s.Mean, 2, tolerance) || !almostEqual(s.StdDev, 1, tolerance) {
		t.Fatalf("unexpected stats: %+v", s)
	}
}
