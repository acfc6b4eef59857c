// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for graph tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32, Float64 and Float16 support (fp16 computed through float32)
//   - In-place accumulation when the destination buffer is uniquely owned
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/graph/backend/cpu"
//	    "github.com/born-ml/graph/graph"
//	    "github.com/born-ml/graph/tensor"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    // Use with tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//
//	    // Use with graph vertices
//	    v := graph.NewElementWise[*cpu.Backend]("merge", 0, graph.Add)
//	    _ = v
//	    _ = z
//	}
//
// # Thread Safety
//
// The backend itself is stateless and safe for concurrent use. Individual
// tensors and graph vertices are not: see their documentation.
package cpu
