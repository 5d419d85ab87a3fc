// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides element access and broadcasting for array-like values.
//
// # Overview
//
// Array-like values come in two flavors:
//   - Indexed: Go slices ([]float64, []int32, []any, ...)
//   - Accessor: values implementing AccessorArray (Get/Set), including the
//     built-in Complex64Array, Complex128Array and BoolArray
//
// Arraylike2Object inspects a value once and returns the getter/setter pair to
// use in element loops, so no loop has to re-examine the input's type.
//
// # Data Types
//
// DataType is a closed enum. Accessors resolves a getter/setter pair from a
// lookup table keyed by DataType:
//   - complex64/complex128 buffers hold interleaved real/imaginary pairs;
//     storing a real number yields an imaginary part of 0
//   - bool buffers hold 0/1 bytes and read back as Go bools
//   - generic and unrecognized types use direct indexed access
//
// # Broadcasting
//
// BroadcastArray follows NumPy rules. Shapes are aligned on the right; a
// dimension of size 1 stretches with stride 0:
//
//	x := []float64{1, 2}
//	b, err := array.BroadcastArray(x, array.Shape{2}, array.Shape{2, 2})
//	// b.Strides == []int{0, 1}
//	// b.Data.Shape == Shape{1, 2}, sharing x's storage
//
// Broadcasting never copies element data. The returned Shape is owned by the
// Broadcast and may be modified freely.
package array
