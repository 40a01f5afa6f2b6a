// Package unroll provides lane-unrolled elementwise kernels shared by the
// architecture backends. Each block works on a fixed-size subslice so the
// compiler can drop bounds checks inside the block.
package unroll

// Add4 computes dst[i] = a[i] + b[i] four lanes at a time.
func Add4(dst, a, b []float32) {
	n := len(dst)
	a = a[:n]
	b = b[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		d := dst[i : i+4 : i+4]
		x := a[i : i+4 : i+4]
		y := b[i : i+4 : i+4]
		d[0] = x[0] + y[0]
		d[1] = x[1] + y[1]
		d[2] = x[2] + y[2]
		d[3] = x[3] + y[3]
	}

	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// Mul4 computes dst[i] = a[i] * b[i] four lanes at a time.
func Mul4(dst, a, b []float32) {
	n := len(dst)
	a = a[:n]
	b = b[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		d := dst[i : i+4 : i+4]
		x := a[i : i+4 : i+4]
		y := b[i : i+4 : i+4]
		d[0] = x[0] * y[0]
		d[1] = x[1] * y[1]
		d[2] = x[2] * y[2]
		d[3] = x[3] * y[3]
	}

	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// Add8 computes dst[i] = a[i] + b[i] eight lanes at a time.
func Add8(dst, a, b []float32) {
	n := len(dst)
	a = a[:n]
	b = b[:n]

	i := 0
	for ; i+8 <= n; i += 8 {
		d := dst[i : i+8 : i+8]
		x := a[i : i+8 : i+8]
		y := b[i : i+8 : i+8]
		d[0] = x[0] + y[0]
		d[1] = x[1] + y[1]
		d[2] = x[2] + y[2]
		d[3] = x[3] + y[3]
		d[4] = x[4] + y[4]
		d[5] = x[5] + y[5]
		d[6] = x[6] + y[6]
		d[7] = x[7] + y[7]
	}

	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// Mul8 computes dst[i] = a[i] * b[i] eight lanes at a time.
func Mul8(dst, a, b []float32) {
	n := len(dst)
	a = a[:n]
	b = b[:n]

	i := 0
	for ; i+8 <= n; i += 8 {
		d := dst[i : i+8 : i+8]
		x := a[i : i+8 : i+8]
		y := b[i : i+8 : i+8]
		d[0] = x[0] * y[0]
		d[1] = x[1] * y[1]
		d[2] = x[2] * y[2]
		d[3] = x[3] * y[3]
		d[4] = x[4] * y[4]
		d[5] = x[5] * y[5]
		d[6] = x[6] * y[6]
		d[7] = x[7] * y[7]
	}

	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}
