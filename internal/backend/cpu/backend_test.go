package cpu

import (
	"testing"

	"github.com/x448/float16"

	"github.com/born-ml/graph/internal/tensor"
)

func rawFromFloat32(t *testing.T, data []float32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(raw.AsFloat32(), data)
	return raw
}

func rawFromFloat64(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(raw.AsFloat64(), data)
	return raw
}

func rawFromFloat16(t *testing.T, data []float32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float16, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	bits := raw.AsFloat16Bits()
	for i, v := range data {
		bits[i] = float16.Fromfloat32(v).Bits()
	}
	return raw
}

func rawFromBool(t *testing.T, data []bool, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Bool, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(raw.AsBool(), data)
	return raw
}

func TestAdd(t *testing.T) {
	backend := New()

	a := rawFromFloat32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := rawFromFloat32(t, []float32{10, 20, 30, 40}, tensor.Shape{2, 2})

	// a is unique, so the backend may accumulate in place.
	result := backend.Add(a, b)
	expected := []float32{11, 22, 33, 44}
	for i, exp := range expected {
		if result.AsFloat32()[i] != exp {
			t.Errorf("Add[%d]: expected %v, got %v", i, exp, result.AsFloat32()[i])
		}
	}
}

func TestAddPreservesSharedOperand(t *testing.T) {
	backend := New()

	a := rawFromFloat32(t, []float32{1, 2}, tensor.Shape{2})
	b := rawFromFloat32(t, []float32{10, 20}, tensor.Shape{2})

	// A shared buffer disables the in-place fast path.
	clone := a.Clone()
	defer clone.Release()

	result := backend.Add(a, b)
	if result == a {
		t.Fatal("Add must not reuse a shared operand")
	}
	if a.AsFloat32()[0] != 1 || a.AsFloat32()[1] != 2 {
		t.Errorf("shared operand was mutated: %v", a.AsFloat32())
	}
	if result.AsFloat32()[0] != 11 || result.AsFloat32()[1] != 22 {
		t.Errorf("unexpected result: %v", result.AsFloat32())
	}
}

func TestSub(t *testing.T) {
	backend := New()

	a := rawFromFloat32(t, []float32{10, 20, 30}, tensor.Shape{3})
	b := rawFromFloat32(t, []float32{1, 2, 3}, tensor.Shape{3})

	result := backend.Sub(a, b)
	expected := []float32{9, 18, 27}
	for i, exp := range expected {
		if result.AsFloat32()[i] != exp {
			t.Errorf("Sub[%d]: expected %v, got %v", i, exp, result.AsFloat32()[i])
		}
	}
}

func TestMulFloat64(t *testing.T) {
	backend := New()

	a := rawFromFloat64(t, []float64{1.5, 2.5}, tensor.Shape{2})
	b := rawFromFloat64(t, []float64{4, 8}, tensor.Shape{2})

	result := backend.Mul(a, b)
	expected := []float64{6, 20}
	for i, exp := range expected {
		if result.AsFloat64()[i] != exp {
			t.Errorf("Mul[%d]: expected %v, got %v", i, exp, result.AsFloat64()[i])
		}
	}
}

func TestNeg(t *testing.T) {
	backend := New()

	x := rawFromFloat32(t, []float32{1, -2, 0}, tensor.Shape{3})
	result := backend.Neg(x)

	expected := []float32{-1, 2, 0}
	for i, exp := range expected {
		if result.AsFloat32()[i] != exp {
			t.Errorf("Neg[%d]: expected %v, got %v", i, exp, result.AsFloat32()[i])
		}
	}
	if x.AsFloat32()[0] != 1 {
		t.Error("Neg must not mutate its operand")
	}
}

func TestFloat16Ops(t *testing.T) {
	backend := New()

	a := rawFromFloat16(t, []float32{1, 2, 3, 4}, tensor.Shape{4})
	b := rawFromFloat16(t, []float32{0.5, 1, 1.5, 2}, tensor.Shape{4})

	sum := backend.Add(a.Dup(), b)
	expectedSum := []float32{1.5, 3, 4.5, 6}
	for i, exp := range expectedSum {
		got := float16.Frombits(sum.AsFloat16Bits()[i]).Float32()
		if got != exp {
			t.Errorf("Add[%d]: expected %v, got %v", i, exp, got)
		}
	}

	prod := backend.Mul(a.Dup(), b)
	expectedProd := []float32{0.5, 2, 4.5, 8}
	for i, exp := range expectedProd {
		got := float16.Frombits(prod.AsFloat16Bits()[i]).Float32()
		if got != exp {
			t.Errorf("Mul[%d]: expected %v, got %v", i, exp, got)
		}
	}

	neg := backend.Neg(a)
	for i, want := range []float32{-1, -2, -3, -4} {
		got := float16.Frombits(neg.AsFloat16Bits()[i]).Float32()
		if got != want {
			t.Errorf("Neg[%d]: expected %v, got %v", i, want, got)
		}
	}
}

func TestOr(t *testing.T) {
	backend := New()

	a := rawFromBool(t, []bool{true, false, true, false}, tensor.Shape{4})
	b := rawFromBool(t, []bool{false, false, true, true}, tensor.Shape{4})

	result := backend.Or(a, b)
	expected := []bool{true, false, true, true}
	for i, exp := range expected {
		if result.AsBool()[i] != exp {
			t.Errorf("Or[%d]: expected %v, got %v", i, exp, result.AsBool()[i])
		}
	}
	if a.AsBool()[1] || a.AsBool()[3] {
		t.Error("Or must not mutate its operands")
	}
}

func TestShapeMismatchPanics(t *testing.T) {
	backend := New()

	a := rawFromFloat32(t, []float32{1, 2}, tensor.Shape{2})
	b := rawFromFloat32(t, []float32{1, 2, 3}, tensor.Shape{3})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on shape mismatch")
		}
	}()
	backend.Add(a, b)
}

func TestMetadata(t *testing.T) {
	backend := New()
	if backend.Name() != "CPU" {
		t.Errorf("Name: expected CPU, got %s", backend.Name())
	}
	if backend.Device() != tensor.CPU {
		t.Errorf("Device: expected CPU, got %s", backend.Device())
	}
}
