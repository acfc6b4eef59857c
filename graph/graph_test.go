// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/graph/backend/cpu"
	"github.com/born-ml/graph/graph"
	"github.com/born-ml/graph/tensor"
)

type backendT = *cpu.Backend

// TestResidualConnection drives a vertex the way a host graph would for a
// residual (skip) connection: y = x + f(x), then backprop.
func TestResidualConnection(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{0.5, -1, 2, 0}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	fx, err := tensor.FromSlice([]float32{0.1, 0.2, -0.3, 0.4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	inputs := []*tensor.Tensor[float32, backendT]{x, fx}

	v := graph.NewElementWise[backendT]("residual_add", 7, graph.Add)

	act, err := v.Forward(inputs...)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.6, -0.8, 1.7, 0.4}, act.Output.Data())

	eps := tensor.Ones[float32](tensor.Shape{2, 2}, backend)
	grads, err := v.Backward(eps, inputs)
	require.NoError(t, err)

	require.Len(t, grads.InputGrads, 2)
	for _, g := range grads.InputGrads {
		assert.Equal(t, []float32{1, 1, 1, 1}, g.Data())
	}
}

// TestGatingVertex drives a Product vertex as a gating mechanism with masks.
func TestGatingVertex(t *testing.T) {
	backend := cpu.New()

	signal, err := tensor.FromSlice([]float32{2, 4, 6}, tensor.Shape{1, 3}, backend)
	require.NoError(t, err)
	gate, err := tensor.FromSlice([]float32{1, 0.5, 0}, tensor.Shape{1, 3}, backend)
	require.NoError(t, err)

	v := graph.NewElementWise[backendT]("gate", 2, graph.Product)

	mask, err := tensor.FromSlice([]bool{true, true, false}, tensor.Shape{1, 3}, backend)
	require.NoError(t, err)
	v.SetMask(mask)

	act, err := v.Forward(signal, gate)
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 2, 0}, act.Output.Data())
	assert.Same(t, mask, act.Mask)
	assert.Equal(t, graph.MaskStateActive, act.MaskState)
}

// TestErrorTaxonomy checks that the public aliases match wrapped errors.
func TestErrorTaxonomy(t *testing.T) {
	backend := cpu.New()

	v := graph.NewElementWise[backendT]("taxonomy", 0, graph.Subtract)

	solo := tensor.Ones[float32](tensor.Shape{2}, backend)
	_, err := v.Forward(solo)
	var arityErr *graph.InvalidArityError
	var stateErr *graph.StateError
	require.Error(t, err)
	require.ErrorAs(t, err, &arityErr)

	vAdd := graph.NewElementWise[backendT]("taxonomy", 1, graph.Add)
	_, err = vAdd.Forward()
	require.Error(t, err)
	require.ErrorAs(t, err, &stateErr)

	view := tensor.Zeros[float32](tensor.Shape{1}, backend)
	err = vAdd.SetBackpropGradientsView(view)
	var cfgErr *graph.ConfigurationError
	require.Error(t, err)
	require.ErrorAs(t, err, &cfgErr)
}
