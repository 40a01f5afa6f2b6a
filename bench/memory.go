package bench

import (
	"fmt"
	"math"
	"runtime/debug"

	"github.com/shirou/gopsutil/v3/mem"
)

// arraysPerRun counts A, B and C.
const (
	arraysPerRun     = 3
	bytesPerElement  = 4
	bytesPerRunEntry = arraysPerRun * bytesPerElement
)

// RequiredBytes returns the memory one run of size elements allocates.
// ok is false if the amount does not fit in a uint64.
func RequiredBytes(size int) (bytes uint64, ok bool) {
	if size < 0 || uint64(size) > math.MaxUint64/bytesPerRunEntry {
		return 0, false
	}
	return uint64(size) * bytesPerRunEntry, true
}

// runtimeMemoryLimit returns the Go soft memory limit (GOMEMLIMIT), or 0
// if none is set.
func runtimeMemoryLimit() uint64 {
	limit := debug.SetMemoryLimit(-1)
	if limit <= 0 || limit == math.MaxInt64 {
		return 0
	}
	return uint64(limit)
}

// hostAvailableMemory returns the memory the OS can hand out without
// swapping.
func hostAvailableMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("bench: read host memory: %w", err)
	}
	return vm.Available, nil
}

// defaultMemoryLimit is the smaller of available host memory and
// GOMEMLIMIT. Either may be missing; 0 means neither is known.
func defaultMemoryLimit(available func() (uint64, error)) (uint64, error) {
	limit := runtimeMemoryLimit()

	avail, err := available()
	if err != nil || avail == 0 {
		return limit, err
	}
	if limit == 0 || avail < limit {
		return avail, nil
	}
	return limit, nil
}

// checkBudget rejects sizes whose arrays cannot fit in limit bytes.
func checkBudget(size int, limit uint64) error {
	bytes, ok := RequiredBytes(size)
	if !ok {
		return &AllocationError{Elements: size, Limit: limit}
	}
	if limit > 0 && bytes > limit {
		return &AllocationError{Elements: size, Bytes: bytes, Limit: limit}
	}
	return nil
}

// allocate creates A and B filled with fillA and fillB, and a zeroed C.
// Runtime allocation panics come back as *AllocationError.
func allocate(size int, fillA, fillB float32) (a, b, c []float32, err error) {
	defer func() {
		if r := recover(); r != nil {
			bytes, _ := RequiredBytes(size)
			a, b, c = nil, nil, nil
			err = &AllocationError{Elements: size, Bytes: bytes, Cause: fmt.Errorf("%v", r)}
		}
	}()

	a = fill(make([]float32, size), fillA)
	b = fill(make([]float32, size), fillB)
	c = make([]float32, size)
	return a, b, c, nil
}

func fill(s []float32, v float32) []float32 {
	if math.Float32bits(v) == 0 || len(s) == 0 {
		return s
	}
	s[0] = v
	for filled := 1; filled < len(s); filled *= 2 {
		copy(s[filled:], s[:filled])
	}
	return s
}
