package kernel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-vecbench/internal/testutil"
)

func TestApplyParallelMatchesApply(t *testing.T) {
	sizes := []int{
		1,
		MinParallelChunk - 1,
		2 * MinParallelChunk,
		3*MinParallelChunk + 17,
	}

	for _, op := range Ops {
		for _, n := range sizes {
			for _, workers := range []int{0, 1, 2, 3, 7} {
				t.Run(fmt.Sprintf("%s/N=%d/W=%d", op, n, workers), func(t *testing.T) {
					a := testutil.DeterministicNoise(int64(n), 50, n)
					b := testutil.DeterministicNoise(int64(n)+1, 50, n)

					want := make([]float32, n)
					if err := Apply(op, want, a, b); err != nil {
						t.Fatal(err)
					}

					got := make([]float32, n)
					if err := ApplyParallel(op, got, a, b, workers); err != nil {
						t.Fatal(err)
					}
					testutil.RequireSliceEqual(t, got, want)
				})
			}
		}
	}
}

func TestApplyParallelErrors(t *testing.T) {
	if err := ApplyParallel(Op(5), nil, nil, nil, 4); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("expected ErrInvalidOperation, got %v", err)
	}
	if err := ApplyParallel(OpAdd, make([]float32, 2), make([]float32, 1), make([]float32, 2), 4); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if err := ApplyParallel(OpAdd, nil, nil, nil, 4); err != nil {
		t.Fatalf("empty ApplyParallel returned %v", err)
	}
}

func TestEffectiveWorkers(t *testing.T) {
	tests := []struct {
		n, workers, want int
	}{
		{10, 8, 1},
		{MinParallelChunk, 8, 1},
		{4 * MinParallelChunk, 8, 4},
		{4 * MinParallelChunk, 2, 2},
		{100 * MinParallelChunk, 1, 1},
	}
	for _, tt := range tests {
		if got := effectiveWorkers(tt.n, tt.workers); got != tt.want {
			t.Errorf("effectiveWorkers(%d, %d) = %d, want %d", tt.n, tt.workers, got, tt.want)
		}
	}

	if got := effectiveWorkers(1000*MinParallelChunk, 0); got < 1 {
		t.Fatalf("default worker count = %d, want >= 1", got)
	}
}
