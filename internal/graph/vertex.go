// Package graph implements computation-graph vertices that combine
// already-materialized activations during the forward pass and redistribute
// upstream gradients during the backward pass.
//
// Vertices are free-standing: the host graph owns them, supplies inputs and
// upstream gradients explicitly per call, and is responsible for shape
// compatibility of the tensors it feeds in. The only state a vertex keeps
// between calls is the input count of the most recent forward pass, which the
// matching backward pass needs to size its output.
package graph

import (
	"github.com/born-ml/graph/internal/tensor"
)

// Vertex is the contract between a host computation graph and one node.
//
// The host invokes Forward before Backward within each minibatch cycle and
// re-supplies the forward inputs to Backward; vertices never retain tensor
// references across calls. Instances are not safe for concurrent use.
type Vertex[B tensor.Backend] interface {
	// Name returns the vertex's name within the host graph.
	Name() string

	// Index returns the vertex's position within the host graph.
	Index() int

	// Forward combines the inputs into one output activation bundle.
	Forward(inputs ...*tensor.Tensor[float32, B]) (*Activations[B], error)

	// Backward redistributes the upstream gradient epsilon to the inputs of
	// the most recent forward pass.
	Backward(epsilon *tensor.Tensor[float32, B], inputs []*tensor.Tensor[float32, B]) (*Gradients[B], error)
}
