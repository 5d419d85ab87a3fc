package array

import (
	"fmt"
	"slices"
)

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the number of elements a flat buffer of this shape
// holds. The empty shape is a scalar and holds one element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// IsEmpty reports whether any dimension is zero (or negative).
// Walking an empty shape never visits an element.
func (s Shape) IsEmpty() bool {
	for _, dim := range s {
		if dim <= 0 {
			return true
		}
	}
	return false
}

// Validate checks that no dimension is negative. Zero-extent dimensions are allowed.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal reports whether s and other have the same dimensions in the same order.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns an independent copy; a nil shape clones to an empty one.
func (s Shape) Clone() Shape {
	if s == nil {
		return Shape{}
	}
	return slices.Clone(s)
}

// ComputeStrides returns the row-major element strides of a buffer laid out
// in this shape: the last dimension has stride 1 and each earlier stride is
// the product of the dimensions to its right.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}
	return strides
}

// PadLeft returns a copy of the shape left-padded with singleton dimensions to ndims.
// Shapes that already have ndims or more dimensions are returned as a copy.
func (s Shape) PadLeft(ndims int) Shape {
	if len(s) >= ndims {
		return s.Clone()
	}
	out := make(Shape, ndims)
	pad := ndims - len(s)
	for i := 0; i < pad; i++ {
		out[i] = 1
	}
	copy(out[pad:], s)
	return out
}
