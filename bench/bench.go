package bench

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cwbudde/algo-vecbench/kernel"
)

// DefaultSize is the array length of the reference benchmark.
const DefaultSize = 32_000_000

// Benchmark runs timed kernel invocations. The zero value is not usable;
// construct with New. A Benchmark holds only configuration, so one value
// may serve any number of sequential runs.
type Benchmark struct {
	workers     int
	memoryLimit uint64 // explicit limit, 0 to derive one per run
	available   func() (uint64, error)
	inputA      float32
	inputB      float32
	verify      bool
	now         func() time.Time
	log         *slog.Logger
}

// Option configures a Benchmark.
type Option func(*Benchmark)

// WithWorkers sets the goroutine count for the kernel pass.
// 1 runs serially, 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(b *Benchmark) {
		b.workers = n
	}
}

// WithMemoryLimit caps the bytes one run may allocate. 0 keeps the
// default: available host memory, lowered to GOMEMLIMIT if that is set.
func WithMemoryLimit(bytes uint64) Option {
	return func(b *Benchmark) {
		if bytes > 0 {
			b.memoryLimit = bytes
		}
	}
}

// WithInputs sets the constants A and B are filled with (default 1, 1).
func WithInputs(a, b float32) Option {
	return func(bm *Benchmark) {
		bm.inputA = a
		bm.inputB = b
	}
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Benchmark) {
		if now != nil {
			b.now = now
		}
	}
}

// WithVerify makes RunTrials check every output with Verify.
func WithVerify(enabled bool) Option {
	return func(b *Benchmark) {
		b.verify = enabled
	}
}

// WithLogger sets the logger for debug records. Default slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Benchmark) {
		if l != nil {
			b.log = l
		}
	}
}

// New returns a Benchmark with the given options applied.
func New(opts ...Option) *Benchmark {
	b := &Benchmark{
		workers:   1,
		available: hostAvailableMemory,
		inputA:    1,
		inputB:    1,
		now:       time.Now,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// MemoryLimit returns the byte limit a run started now would apply, 0 if
// none is known. Without an explicit limit it tracks available host
// memory, so successive calls may differ.
func (bm *Benchmark) MemoryLimit() uint64 {
	if bm.memoryLimit > 0 {
		return bm.memoryLimit
	}
	limit, err := defaultMemoryLimit(bm.available)
	if err != nil {
		bm.log.Warn("host memory unknown", "err", err, "limit", limit)
	}
	return limit
}

// Run allocates A and B of length size, applies op once, and returns the
// output C with the elapsed kernel time.
//
// The op is validated before any allocation. size must be positive.
// Arrays exceeding the memory limit, or the memory the host has
// available when no limit is set, fail with *AllocationError.
func (bm *Benchmark) Run(op kernel.Op, size int) (Result, error) {
	if !op.Valid() {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidOperation, op)
	}
	if size <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if err := checkBudget(size, bm.MemoryLimit()); err != nil {
		return Result{}, err
	}

	a, b, c, err := allocate(size, bm.inputA, bm.inputB)
	if err != nil {
		return Result{}, err
	}
	bm.log.Debug("arrays allocated", "op", op.String(), "size", size, "arrays", arraysPerRun)

	start := bm.now()
	err = kernel.ApplyParallel(op, c, a, b, bm.workers)
	stop := bm.now()
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Op:       op,
		Size:     size,
		Output:   c,
		Duration: max(stop.Sub(start), 0),
		Backend:  kernel.Backend(),
		Workers:  kernel.Workers(size, bm.workers),
		InputA:   bm.inputA,
		InputB:   bm.inputB,
	}
	bm.log.Debug("kernel finished", "op", op.String(), "backend", res.Backend, "seconds", res.Seconds())

	return res, nil
}
