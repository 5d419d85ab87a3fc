package array

import "fmt"

// AccessorArray is an array whose elements are only reachable through Get and Set.
//
// Implementations may optionally expose a DataType() DataType method so the
// classifier can report their element type.
type AccessorArray interface {
	Len() int
	Get(i int) any
	Set(i int, v any)
}

// typedAccessorArray is implemented by the built-in accessor arrays whose
// storage is a plain buffer understood by the getter/setter tables.
type typedAccessorArray interface {
	AccessorArray
	DataType() DataType
	buffer() any
}

// Complex128Array stores complex128 values as interleaved float64 pairs.
type Complex128Array struct {
	data []float64
}

// NewComplex128Array allocates a zeroed array of n complex values.
func NewComplex128Array(n int) *Complex128Array {
	return &Complex128Array{data: make([]float64, 2*n)}
}

// Complex128ArrayFrom wraps an interleaved real/imaginary buffer without copying.
func Complex128ArrayFrom(interleaved []float64) (*Complex128Array, error) {
	if len(interleaved)%2 != 0 {
		return nil, fmt.Errorf("complex128 buffer length must be even, got %d", len(interleaved))
	}
	return &Complex128Array{data: interleaved}, nil
}

// Len returns the number of complex elements.
func (a *Complex128Array) Len() int { return len(a.data) / 2 }

// Get returns element i as a complex128.
func (a *Complex128Array) Get(i int) any { return getComplex128(a.data, i) }

// Set stores v at element i. Real numbers get an imaginary part of 0.
func (a *Complex128Array) Set(i int, v any) { setComplex128(a.data, i, v) }

// At returns element i without boxing.
func (a *Complex128Array) At(i int) complex128 {
	return complex(a.data[2*i], a.data[2*i+1])
}

// DataType returns Complex128.
func (a *Complex128Array) DataType() DataType { return Complex128 }

// Interleaved returns the backing buffer (zero-copy).
func (a *Complex128Array) Interleaved() []float64 { return a.data }

func (a *Complex128Array) buffer() any { return a.data }

// Complex64Array stores complex64 values as interleaved float32 pairs.
type Complex64Array struct {
	data []float32
}

// NewComplex64Array allocates a zeroed array of n complex values.
func NewComplex64Array(n int) *Complex64Array {
	return &Complex64Array{data: make([]float32, 2*n)}
}

// Complex64ArrayFrom wraps an interleaved real/imaginary buffer without copying.
func Complex64ArrayFrom(interleaved []float32) (*Complex64Array, error) {
	if len(interleaved)%2 != 0 {
		return nil, fmt.Errorf("complex64 buffer length must be even, got %d", len(interleaved))
	}
	return &Complex64Array{data: interleaved}, nil
}

// Len returns the number of complex elements.
func (a *Complex64Array) Len() int { return len(a.data) / 2 }

// Get returns element i as a complex64.
func (a *Complex64Array) Get(i int) any { return getComplex64(a.data, i) }

// Set stores v at element i. Real numbers get an imaginary part of 0.
func (a *Complex64Array) Set(i int, v any) { setComplex64(a.data, i, v) }

// At returns element i without boxing.
func (a *Complex64Array) At(i int) complex64 {
	return complex(a.data[2*i], a.data[2*i+1])
}

// DataType returns Complex64.
func (a *Complex64Array) DataType() DataType { return Complex64 }

// Interleaved returns the backing buffer (zero-copy).
func (a *Complex64Array) Interleaved() []float32 { return a.data }

func (a *Complex64Array) buffer() any { return a.data }

// BoolArray stores booleans as 0/1 bytes.
type BoolArray struct {
	data []uint8
}

// NewBoolArray allocates an array of n false values.
func NewBoolArray(n int) *BoolArray {
	return &BoolArray{data: make([]uint8, n)}
}

// BoolArrayFrom copies a []bool into a new BoolArray.
func BoolArrayFrom(values []bool) *BoolArray {
	a := NewBoolArray(len(values))
	for i, v := range values {
		if v {
			a.data[i] = 1
		}
	}
	return a
}

// Len returns the number of elements.
func (a *BoolArray) Len() int { return len(a.data) }

// Get returns element i as a bool.
func (a *BoolArray) Get(i int) any { return getBool(a.data, i) }

// Set stores v at element i. Numbers are true when nonzero.
func (a *BoolArray) Set(i int, v any) { setBool(a.data, i, v) }

// At returns element i without boxing.
func (a *BoolArray) At(i int) bool { return a.data[i] != 0 }

// DataType returns Bool.
func (a *BoolArray) DataType() DataType { return Bool }

// Bytes returns the backing 0/1 buffer (zero-copy).
func (a *BoolArray) Bytes() []uint8 { return a.data }

func (a *BoolArray) buffer() any { return a.data }

// Uint8ClampedArray is a byte buffer whose elements saturate on assignment:
// values are rounded half to even and clamped to [0, 255].
type Uint8ClampedArray []uint8

// DataType returns Uint8c.
func (Uint8ClampedArray) DataType() DataType { return Uint8c }
