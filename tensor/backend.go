// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/graph/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The operation set covers exactly what graph vertices need: element-wise
// combination of activations and boolean mask merging. Producing activations
// (matmul, convolutions, attention) happens upstream and is out of scope.
//
// Implementations:
//   - backend/cpu: Pure Go
//
// Example:
//
//	import (
//	    "github.com/born-ml/graph/backend/cpu"
//	    "github.com/born-ml/graph/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.

	// Unary operations.
	Neg(x *RawTensor) *RawTensor // Element-wise negation.

	// Boolean operations (element-wise on bool tensors).
	Or(a, b *RawTensor) *RawTensor // Logical OR.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
