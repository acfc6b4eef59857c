package graph

import (
	"github.com/born-ml/graph/internal/tensor"
)

// Gradients bundles the result of a vertex's backward pass.
type Gradients[B tensor.Backend] struct {
	// ParamGrads holds gradients for the vertex's own parameters.
	// Always nil for parameter-free vertices such as ElementWise.
	ParamGrads []*tensor.Tensor[float32, B]

	// InputGrads holds one gradient per forward-pass input, in input order.
	InputGrads []*tensor.Tensor[float32, B]
}
