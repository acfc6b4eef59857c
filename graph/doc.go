// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides computation-graph vertices for element-wise
// combination of activations.
//
// # Overview
//
// An ElementWise vertex combines the activations of two or more upstream
// layers element-wise - by addition, subtraction or multiplication - during
// the forward pass, and redistributes the upstream gradient to each input
// during the backward pass. Boolean validity masks for variable-length
// sequence batches are merged with logical OR.
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
//	    backend := cpu.New()
//
//	    a, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//	    b, _ := tensor.FromSlice([]float32{4, 5, 6}, tensor.Shape{3}, backend)
//
//	    v := graph.NewElementWise[*cpu.Backend]("merge", 0, graph.Add)
//	    act, err := v.Forward(a, b)
//	    if err != nil {
//	        panic(err)
//	    }
//	    _ = act.Output // [5, 7, 9]
//	}
//
// # Error Handling
//
// All preconditions are checked synchronously and reported as typed errors
// (StateError, InvalidArityError, UnsupportedOperationError,
// ConfigurationError) wrapped with vertex identity; match them with
// errors.As. Nothing is swallowed or substituted with default behavior,
// except the documented "missing mask means no masking" merge policy.
//
// # Concurrency
//
// A vertex instance serves one minibatch at a time. Hosts that parallelize
// minibatches must use one instance per worker or serialize access.
package graph
