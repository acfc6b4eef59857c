package graph

import (
	"github.com/born-ml/graph/internal/tensor"
)

// Activations bundles the result of a vertex's forward pass: the output
// activation tensor, an optional merged validity mask, and the mask-state tag
// the host should attach downstream.
type Activations[B tensor.Backend] struct {
	// Output is the combined activation tensor. Same shape as each input.
	Output *tensor.Tensor[float32, B]

	// Mask is the merged validity mask, or nil when no masking applies.
	Mask *tensor.Tensor[bool, B]

	// MaskState tells downstream consumers how to interpret Mask.
	MaskState MaskState
}
