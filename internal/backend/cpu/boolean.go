package cpu

import (
	"fmt"

	"github.com/born-ml/graph/internal/tensor"
)

// Boolean operations - work on bool tensors (validity masks).

// Or computes element-wise logical OR.
func (cpu *CPUBackend) Or(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != tensor.Bool || b.DType() != tensor.Bool {
		panic("or: both tensors must be bool dtype")
	}
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("or: shape mismatch %v vs %v", a.Shape(), b.Shape()))
	}

	result, err := tensor.NewRaw(a.Shape(), tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("or: %v", err))
	}

	orVectorized(result, a, b)
	return result
}

func orVectorized(result, a, b *tensor.RawTensor) {
	dst := result.AsBool()
	av := a.AsBool()
	bv := b.AsBool()
	for i := range av {
		dst[i] = av[i] || bv[i]
	}
}
