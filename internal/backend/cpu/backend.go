// Package cpu implements the pure Go CPU backend for graph tensor operations.
package cpu

import (
	"fmt"

	"github.com/born-ml/graph/internal/tensor"
)

// CPUBackend implements element-wise tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// checkBinary validates operand compatibility for element-wise binary ops.
// Graph vertices guarantee identical shapes; a mismatch here is a programming
// error, not a recoverable condition.
func checkBinary(op string, a, b *tensor.RawTensor) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}
}

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinary("add", a, b)

	// Fast path: accumulate in place when a owns its buffer exclusively.
	if a.IsUnique() {
		addInplace(a, b)
		return a
	}

	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("add: failed to create result tensor: %v", err))
	}
	addVectorized(result, a, b)
	return result
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinary("sub", a, b)

	if a.IsUnique() {
		subInplace(a, b)
		return a
	}

	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sub: failed to create result tensor: %v", err))
	}
	subVectorized(result, a, b)
	return result
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkBinary("mul", a, b)

	if a.IsUnique() {
		mulInplace(a, b)
		return a
	}

	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("mul: failed to create result tensor: %v", err))
	}
	mulVectorized(result, a, b)
	return result
}

// Neg returns the element-wise negation of x in a fresh tensor.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("neg: failed to create result tensor: %v", err))
	}
	negVectorized(result, x)
	return result
}
