// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ufunc provides the public API for broadcasted elementwise appliers.
//
// All appliers share one contract: inputs are broadcast against the output
// shape before any element is read, zero-extent shapes are a silent no-op, and
// the output buffer must already hold the output shape's elements.
//
// Example:
//
//	x := []float64{10, 20}    // (2, 1)
//	y := []float64{1, 2, 3}   // (3,)
//	out := make([]float64, 6) // (2, 3)
//	err := ufunc.Binary2d(x, y, out, [3]array.Shape{{2, 1}, {3}, {2, 3}},
//	    func(a, b float64) float64 { return a + b })
//	// out == [11 12 13 21 22 23]
package ufunc

import (
	"github.com/born-ml/arraybase/array"
	"github.com/born-ml/arraybase/internal/ufunc"
)

// Apply evaluates fcn over any number of broadcast array-like inputs.
// arrays holds the inputs followed by the output; shapes matches arrays.
func Apply(arrays []any, shapes []array.Shape, fcn func(args []any) any) error {
	return ufunc.Apply(arrays, shapes, fcn)
}

// Unary applies fcn to a broadcast input.
func Unary[A, R any](x []A, out []R, shapes [2]array.Shape, fcn func(a A) R) error {
	return ufunc.Unary(x, out, shapes, fcn)
}

// Binary applies fcn to two broadcast inputs.
func Binary[A, B, R any](x []A, y []B, out []R, shapes [3]array.Shape, fcn func(a A, b B) R) error {
	return ufunc.Binary(x, y, out, shapes, fcn)
}

// Ternary applies fcn to three broadcast inputs.
func Ternary[A, B, C, R any](x []A, y []B, z []C, out []R, shapes [4]array.Shape, fcn func(a A, b B, c C) R) error {
	return ufunc.Ternary(x, y, z, out, shapes, fcn)
}

// Quaternary applies fcn to four broadcast inputs.
func Quaternary[A, B, C, D, R any](x []A, y []B, z []C, w []D, out []R, shapes [5]array.Shape, fcn func(a A, b B, c C, d D) R) error {
	return ufunc.Quaternary(x, y, z, w, out, shapes, fcn)
}

// Quinary applies fcn to five broadcast inputs.
func Quinary[A, B, C, D, E, R any](x []A, y []B, z []C, w []D, u []E, out []R, shapes [6]array.Shape, fcn func(a A, b B, c C, d D, e E) R) error {
	return ufunc.Quinary(x, y, z, w, u, out, shapes, fcn)
}

// MapNd applies fcn to every element of x together with its index.
func MapNd[T, R any](x []T, out []R, shape array.Shape, fcn func(v T, idx []int) R) error {
	return ufunc.MapNd(x, out, shape, fcn)
}

// Binary2d is Binary restricted to 2-dimensional outputs.
func Binary2d[A, B, R any](x []A, y []B, out []R, shapes [3]array.Shape, fcn func(a A, b B) R) error {
	return ufunc.Binary2d(x, y, out, shapes, fcn)
}

// Ternary2d is Ternary restricted to 2-dimensional outputs.
func Ternary2d[A, B, C, R any](x []A, y []B, z []C, out []R, shapes [4]array.Shape, fcn func(a A, b B, c C) R) error {
	return ufunc.Ternary2d(x, y, z, out, shapes, fcn)
}

// Quaternary2d is Quaternary restricted to 2-dimensional outputs.
func Quaternary2d[A, B, C, D, R any](x []A, y []B, z []C, w []D, out []R, shapes [5]array.Shape, fcn func(a A, b B, c C, d D) R) error {
	return ufunc.Quaternary2d(x, y, z, w, out, shapes, fcn)
}

// Quinary2d is Quinary restricted to 2-dimensional outputs.
func Quinary2d[A, B, C, D, E, R any](x []A, y []B, z []C, w []D, u []E, out []R, shapes [6]array.Shape, fcn func(a A, b B, c C, d D, e E) R) error {
	return ufunc.Quinary2d(x, y, z, w, u, out, shapes, fcn)
}

// Binary3d is Binary restricted to 3-dimensional outputs.
func Binary3d[A, B, R any](x []A, y []B, out []R, shapes [3]array.Shape, fcn func(a A, b B) R) error {
	return ufunc.Binary3d(x, y, out, shapes, fcn)
}

// Ternary3d is Ternary restricted to 3-dimensional outputs.
func Ternary3d[A, B, C, R any](x []A, y []B, z []C, out []R, shapes [4]array.Shape, fcn func(a A, b B, c C) R) error {
	return ufunc.Ternary3d(x, y, z, out, shapes, fcn)
}

// Quaternary3d is Quaternary restricted to 3-dimensional outputs.
func Quaternary3d[A, B, C, D, R any](x []A, y []B, z []C, w []D, out []R, shapes [5]array.Shape, fcn func(a A, b B, c C, d D) R) error {
	return ufunc.Quaternary3d(x, y, z, w, out, shapes, fcn)
}

// Quinary3d is Quinary restricted to 3-dimensional outputs.
func Quinary3d[A, B, C, D, E, R any](x []A, y []B, z []C, w []D, u []E, out []R, shapes [6]array.Shape, fcn func(a A, b B, c C, d D, e E) R) error {
	return ufunc.Quinary3d(x, y, z, w, u, out, shapes, fcn)
}

// Binary4d is Binary restricted to 4-dimensional outputs.
func Binary4d[A, B, R any](x []A, y []B, out []R, shapes [3]array.Shape, fcn func(a A, b B) R) error {
	return ufunc.Binary4d(x, y, out, shapes, fcn)
}

// Ternary4d is Ternary restricted to 4-dimensional outputs.
func Ternary4d[A, B, C, R any](x []A, y []B, z []C, out []R, shapes [4]array.Shape, fcn func(a A, b B, c C) R) error {
	return ufunc.Ternary4d(x, y, z, out, shapes, fcn)
}

// Quaternary4d is Quaternary restricted to 4-dimensional outputs.
func Quaternary4d[A, B, C, D, R any](x []A, y []B, z []C, w []D, out []R, shapes [5]array.Shape, fcn func(a A, b B, c C, d D) R) error {
	return ufunc.Quaternary4d(x, y, z, w, out, shapes, fcn)
}

// Quinary4d is Quinary restricted to 4-dimensional outputs.
func Quinary4d[A, B, C, D, E, R any](x []A, y []B, z []C, w []D, u []E, out []R, shapes [6]array.Shape, fcn func(a A, b B, c C, d D, e E) R) error {
	return ufunc.Quinary4d(x, y, z, w, u, out, shapes, fcn)
}

// Binary5d is Binary restricted to 5-dimensional outputs.
func Binary5d[A, B, R any](x []A, y []B, out []R, shapes [3]array.Shape, fcn func(a A, b B) R) error {
	return ufunc.Binary5d(x, y, out, shapes, fcn)
}

// Ternary5d is Ternary restricted to 5-dimensional outputs.
func Ternary5d[A, B, C, R any](x []A, y []B, z []C, out []R, shapes [4]array.Shape, fcn func(a A, b B, c C) R) error {
	return ufunc.Ternary5d(x, y, z, out, shapes, fcn)
}

// Quaternary5d is Quaternary restricted to 5-dimensional outputs.
func Quaternary5d[A, B, C, D, R any](x []A, y []B, z []C, w []D, out []R, shapes [5]array.Shape, fcn func(a A, b B, c C, d D) R) error {
	return ufunc.Quaternary5d(x, y, z, w, out, shapes, fcn)
}

// Quinary5d is Quinary restricted to 5-dimensional outputs.
func Quinary5d[A, B, C, D, E, R any](x []A, y []B, z []C, w []D, u []E, out []R, shapes [6]array.Shape, fcn func(a A, b B, c C, d D, e E) R) error {
	return ufunc.Quinary5d(x, y, z, w, u, out, shapes, fcn)
}
