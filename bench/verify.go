package bench

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vecbench/kernel"
)

// verifyStrideSamples bounds the interior indices Verify checks.
const verifyStrideSamples = 4096

// Verify checks res.Output against a float64 reference computed with
// algo-vecmath and rounded to float32. For add and multiply of float32
// operands the rounded double result equals the single-precision result
// exactly, so any difference is a kernel fault. NaN outputs match a NaN
// reference.
//
// It checks the first and last SampleSize elements and an evenly strided
// sample of the interior, and returns *MismatchError on the first
// difference.
func Verify(res Result) error {
	if len(res.Output) != res.Size {
		return fmt.Errorf("%w: output has %d elements, want %d", ErrMismatch, len(res.Output), res.Size)
	}
	if res.Size == 0 {
		return nil
	}

	idx := sampleIndices(res.Size)

	x := make([]float64, len(idx))
	y := make([]float64, len(idx))
	for i := range idx {
		x[i] = float64(res.InputA)
		y[i] = float64(res.InputB)
	}

	want := make([]float64, len(idx))
	if err := reference(res, want, x, y); err != nil {
		return err
	}

	for i, at := range idx {
		if got, w := res.Output[at], float32(want[i]); !sameFloat32(got, w) {
			return &MismatchError{Index: at, Got: got, Want: w}
		}
	}
	return nil
}

func reference(res Result, dst, x, y []float64) error {
	switch res.Op {
	case kernel.OpAdd:
		vecmath.AddBlock(dst, x, y)
	case kernel.OpMultiply:
		vecmath.MulBlock(dst, x, y)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidOperation, res.Op)
	}
	return nil
}

// sameFloat32 is == except that any two NaNs match. Payloads are ignored
// since hardware may pick a different quiet NaN than the reference.
func sameFloat32(got, want float32) bool {
	return got == want || (got != got && want != want)
}

// sampleIndices returns sorted, distinct indices covering both ends and
// a strided interior sample of [0, size).
func sampleIndices(size int) []int {
	if size <= 2*SampleSize+verifyStrideSamples {
		idx := make([]int, size)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	idx := make([]int, 0, 2*SampleSize+verifyStrideSamples)
	for i := range SampleSize {
		idx = append(idx, i)
	}

	lo, hi := SampleSize, size-SampleSize
	step := (hi - lo) / verifyStrideSamples
	for i := range verifyStrideSamples {
		idx = append(idx, lo+i*step)
	}

	for i := hi; i < size; i++ {
		idx = append(idx, i)
	}
	return idx
}
