package graph

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/graph/internal/tensor"
)

// ElementWise combines the activations of two or more upstream layers in an
// element-wise manner: by addition, subtraction or multiplication.
//
// Addition and multiplication accept an arbitrary number of inputs;
// subtraction accepts exactly two. All inputs of one forward pass must share
// the same shape — the host graph guarantees this, the vertex only enforces
// arity.
//
// The vertex owns no parameters. Between calls it remembers only how many
// inputs the last forward pass combined, so the matching backward pass can
// size its output; it retains no tensor references. One instance serves one
// minibatch at a time: concurrent forward calls on the same instance race on
// that counter.
//
// Example:
//
//	backend := cpu.New()
//	v := graph.NewElementWise[*cpu.CPUBackend]("merge", 3, graph.Add)
//	act, err := v.Forward(a, b, c)          // a+b+c
//	grads, err := v.Backward(eps, []*tensor.Tensor[float32, *cpu.CPUBackend]{a, b, c})
type ElementWise[B tensor.Backend] struct {
	name  string
	index int
	op    Op

	// lastInputCount is the arity of the most recent forward pass. The
	// backward pass redistributes gradients to exactly this many inputs.
	// Zero means no forward pass has run yet.
	lastInputCount int

	// mask is the vertex's own validity mask, distinct from any per-input
	// masks passed to FeedForwardMasks by the host.
	mask *tensor.Tensor[bool, B]
}

// NewElementWise creates an element-wise combine vertex. The operator is
// fixed for the lifetime of the vertex; name and index identify it within the
// host graph.
func NewElementWise[B tensor.Backend](name string, index int, op Op) *ElementWise[B] {
	return &ElementWise[B]{
		name:  name,
		index: index,
		op:    op,
	}
}

// Name returns the vertex's name within the host graph.
func (v *ElementWise[B]) Name() string {
	return v.name
}

// Index returns the vertex's position within the host graph.
func (v *ElementWise[B]) Index() int {
	return v.index
}

// Op returns the combination operator.
func (v *ElementWise[B]) Op() Op {
	return v.op
}

// SetMask attaches the vertex's own validity mask. Pass nil to clear it.
func (v *ElementWise[B]) SetMask(mask *tensor.Tensor[bool, B]) {
	v.mask = mask
}

// Mask returns the vertex's own validity mask, or nil.
func (v *ElementWise[B]) Mask() *tensor.Tensor[bool, B] {
	return v.mask
}

// Forward combines the inputs element-wise according to the vertex's
// operator and returns the result bundled with the merged validity mask.
//
// A single input is passed through untouched: no arithmetic, no mask merge.
// For two or more inputs the combination accumulates into a working copy, so
// caller-owned inputs are never mutated. The input count is recorded
// unconditionally for the matching backward pass.
func (v *ElementWise[B]) Forward(inputs ...*tensor.Tensor[float32, B]) (*Activations[B], error) {
	if len(inputs) == 0 {
		return nil, errors.Wrapf(&StateError{Reason: "inputs not set"}, "cannot do forward pass on vertex %q", v.name)
	}

	v.lastInputCount = len(inputs)

	// Subtraction's arity invariant holds even for the single-input case:
	// a Subtract vertex wired to one input is a graph bug, not a passthrough.
	if v.op == Subtract && len(inputs) != 2 {
		return nil, errors.Wrapf(&InvalidArityError{Op: Subtract, Want: 2, Got: len(inputs)},
			"cannot do forward pass on vertex %q", v.name)
	}

	if len(inputs) == 1 {
		return &Activations[B]{Output: inputs[0]}, nil
	}

	var out *tensor.Tensor[float32, B]
	switch v.op {
	case Add:
		sum := inputs[0].Dup()
		for _, in := range inputs[1:] {
			sum = sum.Add(in) // accumulates in place: the working copy owns its buffer
		}
		out = sum
	case Subtract:
		out = inputs[0].Dup().Sub(inputs[1])
	case Product:
		product := inputs[0].Dup()
		for _, in := range inputs[1:] {
			product = product.Mul(in)
		}
		out = product
	default:
		return nil, errors.WithStack(&UnsupportedOperationError{Op: v.op})
	}

	mask, state := v.FeedForwardMasks([]*tensor.Tensor[bool, B]{v.mask}, MaskStateActive)
	return &Activations[B]{Output: out, Mask: mask, MaskState: state}, nil
}

// Backward redistributes the upstream gradient epsilon to the inputs of the
// most recent forward pass, applying the chain rule for the vertex's
// operator.
//
// The host re-supplies the forward-pass input tensors; the vertex does not
// retain them. They are only read — the Product rule needs every other
// input's forward value — and never mutated.
func (v *ElementWise[B]) Backward(epsilon *tensor.Tensor[float32, B], inputs []*tensor.Tensor[float32, B]) (*Gradients[B], error) {
	if epsilon == nil {
		return nil, errors.Wrapf(&StateError{Reason: "errors not set"}, "cannot do backward pass on vertex %q", v.name)
	}
	if v.lastInputCount == 0 {
		return nil, errors.Wrapf(&StateError{Reason: "no forward pass has run"}, "cannot do backward pass on vertex %q", v.name)
	}

	// Identity vertex: derivative of passthrough is passthrough.
	if v.lastInputCount == 1 {
		return &Gradients[B]{InputGrads: []*tensor.Tensor[float32, B]{epsilon}}, nil
	}

	if len(inputs) != v.lastInputCount {
		return nil, errors.Wrapf(
			&StateError{Reason: fmt.Sprintf("forward pass saw %d inputs, backward pass given %d", v.lastInputCount, len(inputs))},
			"cannot do backward pass on vertex %q", v.name)
	}

	n := v.lastInputCount
	out := make([]*tensor.Tensor[float32, B], 0, n)
	switch v.op {
	case Add:
		// d(Σx_i)/dx_i = 1: every input receives its own copy of epsilon.
		for i := 0; i < n; i++ {
			out = append(out, epsilon.Dup())
		}
	case Subtract:
		// d(x0-x1)/dx0 = 1, d(x0-x1)/dx1 = -1.
		out = append(out, epsilon.Dup(), epsilon.Neg())
	case Product:
		// d(Πx_j)/dx_i = Π_{j≠i} x_j. O(n²) element-wise multiplications;
		// each gradient accumulates into its own copy of epsilon.
		for i := 0; i < n; i++ {
			grad := epsilon.Dup()
			for j := 0; j < n; j++ {
				if i != j {
					grad = grad.Mul(inputs[j])
				}
			}
			out = append(out, grad)
		}
	default:
		return nil, errors.WithStack(&UnsupportedOperationError{Op: v.op})
	}

	return &Gradients[B]{InputGrads: out}, nil
}

// FeedForwardMasks merges per-input validity masks into the mask to attach to
// the vertex's output.
//
// Policy: a missing mask means "every timestep valid". Merging an implicit
// all-ones mask via OR with the others would always yield all-ones, so when
// the sequence is absent or any single entry is nil, masking is dropped
// entirely and (nil, state) is returned. A sole mask is returned as is; two
// or more are OR-ed left to right — a timestep is valid in the output when it
// is valid in any contributing input. The mask-state tag is propagated
// unchanged.
func (v *ElementWise[B]) FeedForwardMasks(masks []*tensor.Tensor[bool, B], state MaskState) (*tensor.Tensor[bool, B], MaskState) {
	if len(masks) == 0 {
		return nil, state
	}
	for _, m := range masks {
		if m == nil {
			return nil, state
		}
	}

	if len(masks) == 1 {
		return masks[0], state
	}

	merged := masks[0].Or(masks[1])
	for _, m := range masks[2:] {
		merged = merged.Or(m)
	}
	return merged, state
}

// SetBackpropGradientsView rejects gradient-accumulation storage: the host
// graph hands such views only to vertices that own parameters. A nil view is
// a no-op so the host can treat all vertices uniformly.
func (v *ElementWise[B]) SetBackpropGradientsView(view *tensor.Tensor[float32, B]) error {
	if view != nil {
		return errors.Wrapf(&ConfigurationError{Reason: "vertex owns no parameters; a gradients view cannot be set here"},
			"vertex %q", v.name)
	}
	return nil
}

// String returns a human-readable identity for error messages and logs.
func (v *ElementWise[B]) String() string {
	return fmt.Sprintf("ElementWise(id=%d,name=%q,op=%s)", v.index, v.name, v.op)
}
