package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The operation set is intentionally small: graph vertices combine
// already-materialized activations element-wise and merge boolean validity
// masks. Anything producing activations (matmul, convolutions, attention)
// lives upstream and is out of scope for this library.
//
// Implementations:
//   - CPU: Pure Go (internal/backend/cpu)
type Backend interface {
	// Element-wise binary operations.
	// Both operands must have identical shapes and dtypes. When the first
	// operand is the sole reference to its buffer, implementations may
	// accumulate in place and return it instead of allocating.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// Neg returns the element-wise negation of x in a fresh tensor.
	Neg(x *RawTensor) *RawTensor

	// Or computes element-wise logical OR on bool tensors.
	Or(a, b *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
