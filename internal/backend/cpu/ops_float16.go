package cpu

import "github.com/x448/float16"

// Float16 operations.
//
// Half-precision values are stored as raw IEEE 754 bits and computed through
// float32: convert, operate, convert back. Matches how fp16 is handled on CPUs
// without native half-float arithmetic.

func addInplaceFloat16(a, b []uint16) {
	for i := range a {
		v := float16.Frombits(a[i]).Float32() + float16.Frombits(b[i]).Float32()
		a[i] = float16.Fromfloat32(v).Bits()
	}
}

func subInplaceFloat16(a, b []uint16) {
	for i := range a {
		v := float16.Frombits(a[i]).Float32() - float16.Frombits(b[i]).Float32()
		a[i] = float16.Fromfloat32(v).Bits()
	}
}

func mulInplaceFloat16(a, b []uint16) {
	for i := range a {
		v := float16.Frombits(a[i]).Float32() * float16.Frombits(b[i]).Float32()
		a[i] = float16.Fromfloat32(v).Bits()
	}
}

func addVectorizedFloat16(dst, a, b []uint16) {
	for i := range a {
		v := float16.Frombits(a[i]).Float32() + float16.Frombits(b[i]).Float32()
		dst[i] = float16.Fromfloat32(v).Bits()
	}
}

func subVectorizedFloat16(dst, a, b []uint16) {
	for i := range a {
		v := float16.Frombits(a[i]).Float32() - float16.Frombits(b[i]).Float32()
		dst[i] = float16.Fromfloat32(v).Bits()
	}
}

func mulVectorizedFloat16(dst, a, b []uint16) {
	for i := range a {
		v := float16.Frombits(a[i]).Float32() * float16.Frombits(b[i]).Float32()
		dst[i] = float16.Fromfloat32(v).Bits()
	}
}

func negVectorizedFloat16(dst, x []uint16) {
	for i := range x {
		dst[i] = float16.Fromfloat32(-float16.Frombits(x[i]).Float32()).Bits()
	}
}
