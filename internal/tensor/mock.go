package tensor

import "fmt"

// MockBackend is a minimal pure-Go backend for tests in this package, which
// cannot import the real CPU backend without an import cycle. It always
// allocates fresh result tensors (no in-place fast path).
type MockBackend struct{}

// NewMockBackend creates a new mock backend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "Mock"
}

// Device returns the compute device.
func (m *MockBackend) Device() Device {
	return CPU
}

func (m *MockBackend) binary(op string, a, b *RawTensor, f32 func(d, x, y []float32), f64 func(d, x, y []float64)) *RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a.Shape(), b.Shape()))
	}
	result, err := NewRaw(a.Shape(), a.DType(), CPU)
	if err != nil {
		panic(err)
	}
	switch a.DType() {
	case Float32:
		f32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case Float64:
		f64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}
	return result
}

// Add performs element-wise addition.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.binary("add", a, b,
		func(d, x, y []float32) {
			for i := range x {
				d[i] = x[i] + y[i]
			}
		},
		func(d, x, y []float64) {
			for i := range x {
				d[i] = x[i] + y[i]
			}
		})
}

// Sub performs element-wise subtraction.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.binary("sub", a, b,
		func(d, x, y []float32) {
			for i := range x {
				d[i] = x[i] - y[i]
			}
		},
		func(d, x, y []float64) {
			for i := range x {
				d[i] = x[i] - y[i]
			}
		})
}

// Mul performs element-wise multiplication.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.binary("mul", a, b,
		func(d, x, y []float32) {
			for i := range x {
				d[i] = x[i] * y[i]
			}
		},
		func(d, x, y []float64) {
			for i := range x {
				d[i] = x[i] * y[i]
			}
		})
}

// Neg returns the element-wise negation in a fresh tensor.
func (m *MockBackend) Neg(x *RawTensor) *RawTensor {
	result, err := NewRaw(x.Shape(), x.DType(), CPU)
	if err != nil {
		panic(err)
	}
	switch x.DType() {
	case Float32:
		dst, src := result.AsFloat32(), x.AsFloat32()
		for i := range src {
			dst[i] = -src[i]
		}
	case Float64:
		dst, src := result.AsFloat64(), x.AsFloat64()
		for i := range src {
			dst[i] = -src[i]
		}
	default:
		panic(fmt.Sprintf("neg: unsupported dtype %s", x.DType()))
	}
	return result
}

// Or computes element-wise logical OR on bool tensors.
func (m *MockBackend) Or(a, b *RawTensor) *RawTensor {
	if a.DType() != Bool || b.DType() != Bool {
		panic("or: both tensors must be bool dtype")
	}
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("or: shape mismatch %v vs %v", a.Shape(), b.Shape()))
	}
	result, err := NewRaw(a.Shape(), Bool, CPU)
	if err != nil {
		panic(err)
	}
	dst, av, bv := result.AsBool(), a.AsBool(), b.AsBool()
	for i := range av {
		dst[i] = av[i] || bv[i]
	}
	return result
}
