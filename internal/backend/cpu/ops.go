package cpu

import (
	"github.com/born-ml/graph/internal/tensor"
)

// addInplace performs inplace addition (a += b).
// Requires: a.Shape().Equal(b.Shape()) && a.IsUnique().
func addInplace(a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		addInplaceFloat32(a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		addInplaceFloat64(a.AsFloat64(), b.AsFloat64())
	case tensor.Float16:
		addInplaceFloat16(a.AsFloat16Bits(), b.AsFloat16Bits())
	default:
		panic("addInplace: unsupported dtype")
	}
}

// addVectorized performs vectorized addition: result = a + b.
// Requires: a.Shape().Equal(b.Shape()).
func addVectorized(result, a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		addVectorizedFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		addVectorizedFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Float16:
		addVectorizedFloat16(result.AsFloat16Bits(), a.AsFloat16Bits(), b.AsFloat16Bits())
	default:
		panic("addVectorized: unsupported dtype")
	}
}

// Similar functions for sub, mul, neg.
func subInplace(a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		subInplaceFloat32(a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		subInplaceFloat64(a.AsFloat64(), b.AsFloat64())
	case tensor.Float16:
		subInplaceFloat16(a.AsFloat16Bits(), b.AsFloat16Bits())
	default:
		panic("subInplace: unsupported dtype")
	}
}

func subVectorized(result, a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		subVectorizedFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		subVectorizedFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Float16:
		subVectorizedFloat16(result.AsFloat16Bits(), a.AsFloat16Bits(), b.AsFloat16Bits())
	default:
		panic("subVectorized: unsupported dtype")
	}
}

func mulInplace(a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		mulInplaceFloat32(a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		mulInplaceFloat64(a.AsFloat64(), b.AsFloat64())
	case tensor.Float16:
		mulInplaceFloat16(a.AsFloat16Bits(), b.AsFloat16Bits())
	default:
		panic("mulInplace: unsupported dtype")
	}
}

func mulVectorized(result, a, b *tensor.RawTensor) {
	switch a.DType() {
	case tensor.Float32:
		mulVectorizedFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		mulVectorizedFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Float16:
		mulVectorizedFloat16(result.AsFloat16Bits(), a.AsFloat16Bits(), b.AsFloat16Bits())
	default:
		panic("mulVectorized: unsupported dtype")
	}
}

func negVectorized(result, x *tensor.RawTensor) {
	switch x.DType() {
	case tensor.Float32:
		negVectorizedFloat32(result.AsFloat32(), x.AsFloat32())
	case tensor.Float64:
		negVectorizedFloat64(result.AsFloat64(), x.AsFloat64())
	case tensor.Float16:
		negVectorizedFloat16(result.AsFloat16Bits(), x.AsFloat16Bits())
	default:
		panic("negVectorized: unsupported dtype")
	}
}
