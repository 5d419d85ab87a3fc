// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/born-ml/arraybase/internal/array"
)

// Type aliases for public API

// DataType identifies how the elements of a buffer are stored.
type DataType = array.DataType

// Data type constants.
const (
	Generic    DataType = array.Generic
	Float64    DataType = array.Float64
	Float32    DataType = array.Float32
	Int64      DataType = array.Int64
	Int32      DataType = array.Int32
	Int16      DataType = array.Int16
	Int8       DataType = array.Int8
	Uint64     DataType = array.Uint64
	Uint32     DataType = array.Uint32
	Uint16     DataType = array.Uint16
	Uint8      DataType = array.Uint8
	Uint8c     DataType = array.Uint8c
	Complex64  DataType = array.Complex64
	Complex128 DataType = array.Complex128
	Bool       DataType = array.Bool
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3} represents a 2×3 array.
type Shape = array.Shape

// GetFunc reads the logical element at an index of a backing buffer.
type GetFunc = array.GetFunc

// SetFunc writes the logical element at an index of a backing buffer.
type SetFunc = array.SetFunc

// AccessorArray is an array whose elements are only reachable through Get and Set.
type AccessorArray = array.AccessorArray

// Complex64Array stores complex64 values as interleaved float32 pairs.
type Complex64Array = array.Complex64Array

// Complex128Array stores complex128 values as interleaved float64 pairs.
type Complex128Array = array.Complex128Array

// BoolArray stores booleans as 0/1 bytes.
type BoolArray = array.BoolArray

// Uint8ClampedArray is a byte buffer whose elements saturate on assignment.
type Uint8ClampedArray = array.Uint8ClampedArray

// Object describes how to read and write the elements of an array-like value.
type Object = array.Object

// View interprets a flat row-major buffer as an array of a given shape.
type View = array.View

// Broadcast is a read-only broadcast of an array to a larger shape.
type Broadcast = array.Broadcast

// Predicate tests an element and its index.
type Predicate = array.Predicate

// DimensionError reports a broadcast target with fewer dimensions than the input.
type DimensionError = array.DimensionError

// BroadcastError reports incompatible dimensions.
type BroadcastError = array.BroadcastError

// Errors reported by this package. Match them with errors.Is.
var (
	ErrDimension       = array.ErrDimension
	ErrBroadcast       = array.ErrBroadcast
	ErrRank            = array.ErrRank
	ErrOutputSize      = array.ErrOutputSize
	ErrShapeMismatch   = array.ErrShapeMismatch
	ErrIndexOutOfRange = array.ErrIndexOutOfRange
	ErrArity           = array.ErrArity
)

// ParseDataType maps a dtype name to its DataType.
// Unknown names resolve to Generic with ok == false.
func ParseDataType(name string) (DataType, bool) {
	return array.ParseDataType(name)
}

// Accessors returns the getter/setter pair for the given data type.
// Unrecognized data types fall back to generic indexed access.
func Accessors(dt DataType) (GetFunc, SetFunc) {
	return array.Accessors(dt)
}

// Arraylike2Object classifies x and resolves its element accessors.
func Arraylike2Object(x any) Object {
	return array.Arraylike2Object(x)
}

// IsAccessorArray reports whether x exposes element access through Get and Set.
func IsAccessorArray(x any) bool {
	return array.IsAccessorArray(x)
}

// DTypeOf infers the data type of an array-like value.
func DTypeOf(x any) (DataType, bool) {
	return array.DTypeOf(x)
}

// Len returns the number of logical elements in an array-like value.
func Len(x any) int {
	return array.Len(x)
}

// NewView checks that data holds exactly shape.NumElements() elements.
func NewView(data any, shape Shape) (View, error) {
	return array.NewView(data, shape)
}

// BroadcastArray broadcasts x, an array of shape inShape, to outShape without copying.
//
// Example:
//
//	b, err := array.BroadcastArray([]float64{1, 2}, array.Shape{2}, array.Shape{3})
//	// errors.Is(err, array.ErrBroadcast) == true
func BroadcastArray(x any, inShape, outShape Shape) (*Broadcast, error) {
	return array.BroadcastArray(x, inShape, outShape)
}

// BroadcastShapes returns the shape all given shapes broadcast to.
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	return array.BroadcastShapes(shapes...)
}

// NewComplex64Array allocates a zeroed array of n complex64 values.
func NewComplex64Array(n int) *Complex64Array {
	return array.NewComplex64Array(n)
}

// NewComplex128Array allocates a zeroed array of n complex128 values.
func NewComplex128Array(n int) *Complex128Array {
	return array.NewComplex128Array(n)
}

// NewBoolArray allocates an array of n false values.
func NewBoolArray(n int) *BoolArray {
	return array.NewBoolArray(n)
}

// BoolArrayFrom copies a []bool into a new BoolArray.
func BoolArrayFrom(values []bool) *BoolArray {
	return array.BoolArrayFrom(values)
}

// Zeros allocates a zero-filled array of n elements for the given data type.
func Zeros(dt DataType, n int) any {
	return array.Zeros(dt, n)
}

// AnyBy reports whether at least one element satisfies pred.
func AnyBy(x any, pred Predicate) bool {
	return array.AnyBy(x, pred)
}

// EveryBy reports whether all elements satisfy pred.
func EveryBy(x any, pred Predicate) bool {
	return array.EveryBy(x, pred)
}

// NoneBy reports whether no element satisfies pred.
func NoneBy(x any, pred Predicate) bool {
	return array.NoneBy(x, pred)
}

// SomeBy reports whether at least n elements satisfy pred.
func SomeBy(x any, n int, pred Predicate) bool {
	return array.SomeBy(x, n, pred)
}

// Fill sets elements in [start, end) to v and returns x.
func Fill(x, v any, start, end int) any {
	return array.Fill(x, v, start, end)
}

// Filter returns the elements satisfying pred.
func Filter(x any, pred Predicate) []any {
	return array.Filter(x, pred)
}

// Take returns the elements at the given indices.
func Take(x any, indices []int) ([]any, error) {
	return array.Take(x, indices)
}

// ToGeneric copies the elements of x into a []any.
func ToGeneric(x any) []any {
	return array.ToGeneric(x)
}
