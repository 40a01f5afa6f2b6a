package bench

import (
	"runtime"
	"time"

	"github.com/cwbudde/algo-vecbench/kernel"
)

// Trial summarizes one run inside RunTrials. Only the boundary samples of
// the output are kept so the arrays can be released before the next trial.
type Trial struct {
	Op        kernel.Op
	Iteration int // 0-based repeat index for this op
	Size      int
	Backend   string
	Workers   int
	Duration  time.Duration
	Head      []float32
	Tail      []float32
	Verified  bool
	Err       error
}

// Seconds returns the trial duration in seconds.
func (t Trial) Seconds() float64 {
	return t.Duration.Seconds()
}

// OK reports whether the trial completed without error.
func (t Trial) OK() bool {
	return t.Err == nil
}

// RunTrials runs every op repeat times, in order, one trial at a time.
// A failed trial records its error and the following trials still run.
// observe, if non-nil, is called after each trial completes.
func (bm *Benchmark) RunTrials(ops []kernel.Op, size, repeat int, observe func(Trial)) []Trial {
	repeat = max(repeat, 1)
	trials := make([]Trial, 0, len(ops)*repeat)

	for _, op := range ops {
		for i := range repeat {
			t := bm.trial(op, size, i)
			if t.Err != nil {
				bm.log.Warn("trial failed", "op", op.String(), "iteration", i, "err", t.Err)
			}
			trials = append(trials, t)
			if observe != nil {
				observe(t)
			}
			// Release this trial's arrays before the next allocation.
			runtime.GC()
		}
	}
	return trials
}

func (bm *Benchmark) trial(op kernel.Op, size, iteration int) Trial {
	t := Trial{Op: op, Iteration: iteration, Size: size}

	res, err := bm.Run(op, size)
	if err != nil {
		t.Err = err
		return t
	}

	t.Backend = res.Backend
	t.Workers = res.Workers
	t.Duration = res.Duration
	t.Head = res.Head(SampleSize)
	t.Tail = res.Tail(SampleSize)

	if bm.verify {
		if err := Verify(res); err != nil {
			t.Err = err
			return t
		}
		t.Verified = true
	}
	return t
}
