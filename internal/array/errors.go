package array

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimension       = errors.New("array: cannot broadcast to a shape with fewer dimensions")
	ErrBroadcast       = errors.New("array: shapes not compatible for broadcasting")
	ErrRank            = errors.New("array: unexpected number of dimensions")
	ErrOutputSize      = errors.New("array: output buffer too small for shape")
	ErrShapeMismatch   = errors.New("array: shape does not match buffer length")
	ErrIndexOutOfRange = errors.New("array: index out of range")
	ErrArity           = errors.New("array: wrong number of arrays or shapes")
)

// DimensionError reports a broadcast target with fewer dimensions than the input.
type DimensionError struct {
	InShape  Shape
	OutShape Shape
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: input shape %v (%d dims), target shape %v (%d dims)",
		ErrDimension, e.InShape, len(e.InShape), e.OutShape, len(e.OutShape))
}

// Unwrap returns ErrDimension.
func (e *DimensionError) Unwrap() error {
	return ErrDimension
}

// BroadcastError reports an input dimension that is neither 1 nor equal to the
// aligned target dimension.
type BroadcastError struct {
	InShape  Shape
	OutShape Shape
	Dim      int // index into OutShape
	InDim    int
	OutDim   int
}

// Error implements the error interface.
func (e *BroadcastError) Error() string {
	return fmt.Sprintf("%s: input shape %v vs target shape %v (dimension %d: %d vs %d)",
		ErrBroadcast, e.InShape, e.OutShape, e.Dim, e.InDim, e.OutDim)
}

// Unwrap returns ErrBroadcast.
func (e *BroadcastError) Unwrap() error {
	return ErrBroadcast
}
