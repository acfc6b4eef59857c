package tensor

import (
	"fmt"
	"testing"
)

// Helper assertions shared by tests in this package.

func assertEqualFloat32(t *testing.T, expected, got float32, msg string) {
	t.Helper()
	if expected != got {
		t.Errorf("%s: expected %v, got %v", msg, expected, got)
	}
}

func assertEqualShape(t *testing.T, expected, got Shape, msg string) {
	t.Helper()
	if !expected.Equal(got) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, got)
	}
}

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()

	data := []float32{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(data, Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	assertEqualShape(t, Shape{2, 3}, x.Shape(), "FromSlice shape")
	assertEqualFloat32(t, 6, x.At(1, 2), "FromSlice[1,2]")

	// The tensor owns its copy of the data.
	data[0] = 99
	assertEqualFloat32(t, 1, x.At(0, 0), "FromSlice copies input slice")
}

func TestFromSliceShapeMismatch(t *testing.T) {
	backend := NewMockBackend()

	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2}, backend)
	if err == nil {
		t.Fatal("expected error for mismatched shape and data length")
	}
}

func TestCreation(t *testing.T) {
	backend := NewMockBackend()

	zeros := Zeros[float32](Shape{2, 2}, backend)
	for i, v := range zeros.Data() {
		assertEqualFloat32(t, 0, v, fmt.Sprintf("Zeros[%d]", i))
	}

	ones := Ones[float32](Shape{2, 2}, backend)
	for i, v := range ones.Data() {
		assertEqualFloat32(t, 1, v, fmt.Sprintf("Ones[%d]", i))
	}

	full := Full[float32](Shape{3}, 2.5, backend)
	for i, v := range full.Data() {
		assertEqualFloat32(t, 2.5, v, fmt.Sprintf("Full[%d]", i))
	}

	boolOnes := Ones[bool](Shape{2}, backend)
	for i, v := range boolOnes.Data() {
		if !v {
			t.Errorf("Ones[bool][%d]: expected true", i)
		}
	}
}

func TestDupIndependence(t *testing.T) {
	backend := NewMockBackend()

	x, _ := FromSlice([]float32{1, 2, 3}, Shape{3}, backend)
	dup := x.Dup()

	dup.Data()[0] = 42
	assertEqualFloat32(t, 1, x.At(0), "Dup must not share memory with the original")

	if !dup.Raw().IsUnique() {
		t.Error("Dup result must own its buffer exclusively")
	}
}

func TestCloneSharesBuffer(t *testing.T) {
	backend := NewMockBackend()

	x, _ := FromSlice([]float32{1, 2, 3}, Shape{3}, backend)
	if !x.Raw().IsUnique() {
		t.Fatal("fresh tensor must be unique")
	}

	clone := x.Clone()
	if x.Raw().IsUnique() || clone.Raw().IsUnique() {
		t.Error("Clone must mark both sides non-unique (copy-on-write)")
	}

	clone.Raw().Release()
	if !x.Raw().IsUnique() {
		t.Error("releasing the clone must restore uniqueness")
	}
}

func TestElementwiseOps(t *testing.T) {
	backend := NewMockBackend()

	a, _ := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)
	b, _ := FromSlice([]float32{10, 20, 30, 40}, Shape{2, 2}, backend)

	sum := a.Add(b)
	expected := []float32{11, 22, 33, 44}
	for i, exp := range expected {
		assertEqualFloat32(t, exp, sum.Data()[i], fmt.Sprintf("Add[%d]", i))
	}

	diff := b.Sub(a)
	expected = []float32{9, 18, 27, 36}
	for i, exp := range expected {
		assertEqualFloat32(t, exp, diff.Data()[i], fmt.Sprintf("Sub[%d]", i))
	}

	prod := a.Mul(b)
	expected = []float32{10, 40, 90, 160}
	for i, exp := range expected {
		assertEqualFloat32(t, exp, prod.Data()[i], fmt.Sprintf("Mul[%d]", i))
	}

	neg := a.Neg()
	expected = []float32{-1, -2, -3, -4}
	for i, exp := range expected {
		assertEqualFloat32(t, exp, neg.Data()[i], fmt.Sprintf("Neg[%d]", i))
	}
}

func TestBoolOr(t *testing.T) {
	backend := NewMockBackend()

	a, _ := FromSlice([]bool{true, false, true, false}, Shape{4}, backend)
	b, _ := FromSlice([]bool{false, false, true, true}, Shape{4}, backend)

	or := a.Or(b)
	expected := []bool{true, false, true, true}
	for i, exp := range expected {
		if or.Data()[i] != exp {
			t.Errorf("Or[%d]: expected %v, got %v", i, exp, or.Data()[i])
		}
	}
}

func TestShape(t *testing.T) {
	s := Shape{2, 3, 4}

	if s.NumElements() != 24 {
		t.Errorf("NumElements: expected 24, got %d", s.NumElements())
	}
	if s.Size(1) != 3 {
		t.Errorf("Size(1): expected 3, got %d", s.Size(1))
	}
	if !s.Equal(Shape{2, 3, 4}) {
		t.Error("Equal: expected true for identical shapes")
	}
	if s.Equal(Shape{2, 3}) {
		t.Error("Equal: expected false for different ranks")
	}

	strides := s.ComputeStrides()
	expectedStrides := []int{12, 4, 1}
	for i, exp := range expectedStrides {
		if strides[i] != exp {
			t.Errorf("ComputeStrides[%d]: expected %d, got %d", i, exp, strides[i])
		}
	}

	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Validate: expected error for zero dimension")
	}
}

func TestDataType(t *testing.T) {
	cases := []struct {
		dtype DataType
		size  int
		name  string
	}{
		{Float32, 4, "float32"},
		{Float64, 8, "float64"},
		{Float16, 2, "float16"},
		{Bool, 1, "bool"},
	}
	for _, tc := range cases {
		if tc.dtype.Size() != tc.size {
			t.Errorf("%s: expected size %d, got %d", tc.name, tc.size, tc.dtype.Size())
		}
		if tc.dtype.String() != tc.name {
			t.Errorf("expected name %q, got %q", tc.name, tc.dtype.String())
		}
	}
}

func TestRawFloat16Bits(t *testing.T) {
	raw, err := NewRaw(Shape{4}, Float16, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	bits := raw.AsFloat16Bits()
	if len(bits) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(bits))
	}
	bits[2] = 0x3C00 // 1.0 in IEEE 754 half precision
	if raw.AsFloat16Bits()[2] != 0x3C00 {
		t.Error("bit view must alias the underlying buffer")
	}
}
