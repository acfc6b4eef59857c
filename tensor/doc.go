// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor primitives for the Born graph library.
//
// # Overview
//
// Graph vertices combine already-materialized activations; this package
// provides the tensor contract they operate on:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Cheap duplication via copy-on-write buffers
//   - Element-wise add/subtract/multiply/negate
//   - Logical OR on boolean validity masks
//   - Device abstraction (CPU today, GPU backends planned)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/graph/backend/cpu"
//	    "github.com/born-ml/graph/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//
//	    // Tensor operations
//	    z := x.Add(y)
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType constraint:
//   - float32, float64 (floating-point)
//   - bool (boolean masks)
//
// Float16 tensors are additionally supported at the RawTensor level, stored
// as raw IEEE 754 half-precision bits (see RawTensor.AsFloat16Bits).
package tensor
