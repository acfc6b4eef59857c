package tensor

// Add performs element-wise addition.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 5}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Add(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Sub performs element-wise subtraction.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Sub(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mul performs element-wise multiplication.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Neg returns the element-wise negation in a fresh tensor.
func (t *Tensor[T, B]) Neg() *Tensor[T, B] {
	result := t.backend.Neg(t.raw)
	return New[T, B](result, t.backend)
}

// Or performs element-wise logical OR. Both tensors must be bool dtype.
//
// Example:
//
//	a, _ := tensor.FromSlice([]bool{true, false}, Shape{2}, backend)
//	b, _ := tensor.FromSlice([]bool{false, false}, Shape{2}, backend)
//	c := a.Or(b) // [true, false]
func (t *Tensor[T, B]) Or(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Or(t.raw, other.raw)
	return New[T, B](result, t.backend)
}
