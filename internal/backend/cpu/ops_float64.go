package cpu

// Float64 inplace operations

func addInplaceFloat64(a, b []float64) {
	for i := range a {
		a[i] += b[i]
	}
}

func subInplaceFloat64(a, b []float64) {
	for i := range a {
		a[i] -= b[i]
	}
}

func mulInplaceFloat64(a, b []float64) {
	for i := range a {
		a[i] *= b[i]
	}
}

// Float64 vectorized operations

func addVectorizedFloat64(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subVectorizedFloat64(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulVectorizedFloat64(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func negVectorizedFloat64(dst, x []float64) {
	for i := range x {
		dst[i] = -x[i]
	}
}
