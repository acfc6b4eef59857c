// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/born-ml/graph/internal/graph"
	"github.com/born-ml/graph/tensor"
)

// Op selects how an element-wise vertex combines its inputs.
type Op = graph.Op

// Supported combination operators.
const (
	Add      Op = graph.Add
	Subtract Op = graph.Subtract
	Product  Op = graph.Product
)

// MaskState describes how a validity mask should be interpreted downstream.
type MaskState = graph.MaskState

// Mask states.
const (
	MaskStateActive      MaskState = graph.MaskStateActive
	MaskStatePassthrough MaskState = graph.MaskStatePassthrough
)

// Vertex is the contract between a host computation graph and one node.
type Vertex[B tensor.Backend] = graph.Vertex[B]

// Activations bundles the result of a vertex's forward pass.
type Activations[B tensor.Backend] = graph.Activations[B]

// Gradients bundles the result of a vertex's backward pass.
type Gradients[B tensor.Backend] = graph.Gradients[B]

// ElementWise combines the activations of two or more upstream layers in an
// element-wise manner.
type ElementWise[B tensor.Backend] = graph.ElementWise[B]

// Compile-time check that ElementWise implements Vertex.
var _ Vertex[tensor.Backend] = (*ElementWise[tensor.Backend])(nil)

// NewElementWise creates an element-wise combine vertex.
//
// Addition and multiplication accept any number of inputs (>= 1);
// subtraction accepts exactly two. A single input passes through unchanged.
//
// Example:
//
//	backend := cpu.New()
//	v := graph.NewElementWise[*cpu.Backend]("residual_add", 7, graph.Add)
//	act, err := v.Forward(x, skip)
func NewElementWise[B tensor.Backend](name string, index int, op Op) *ElementWise[B] {
	return graph.NewElementWise[B](name, index, op)
}

// Error types

// StateError indicates an operation was invoked before its required
// precondition state (forward without inputs, backward without a prior
// forward pass).
type StateError = graph.StateError

// InvalidArityError indicates a vertex received an input count its operator
// cannot combine (e.g. Subtract with three inputs).
type InvalidArityError = graph.InvalidArityError

// UnsupportedOperationError indicates an operator value outside the closed
// enumeration; it signals a programming defect.
type UnsupportedOperationError = graph.UnsupportedOperationError

// ConfigurationError indicates a graph-construction bug, such as attaching a
// gradient-accumulation view to a parameter-free vertex.
type ConfigurationError = graph.ConfigurationError
