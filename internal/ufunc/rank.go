package ufunc

import "github.com/born-ml/arraybase/internal/array"

// Rank-checked appliers. Each requires an output shape with exactly the named
// number of dimensions; input shapes may have fewer and are broadcast.

// Binary2d is Binary restricted to 2-dimensional outputs.
func Binary2d[A, B, R any](x []A, y []B, out []R, shapes [3]array.Shape, fcn func(a A, b B) R) error {
	if err := checkRank(2, shapes[2]); err != nil {
		return wrap("binary2d", err)
	}
	return Binary(x, y, out, shapes, fcn)
}

// Ternary2d is Ternary restricted to 2-dimensional outputs.
func Ternary2d[A, B, C, R any](x []A, y []B, z []C, out []R, shapes [4]array.Shape, fcn func(a A, b B, c C) R) error {
	if err := checkRank(2, shapes[3]); err != nil {
		return wrap("ternary2d", err)
	}
	return Ternary(x, y, z, out, shapes, fcn)
}

// Quaternary2d is Quaternary restricted to 2-dimensional outputs.
func Quaternary2d[A, B, C, D, R any](x []A, y []B, z []C, w []D, out []R, shapes [5]array.Shape, fcn func(a A, b B, c C, d D) R) error {
	if err := checkRank(2, shapes[4]); err != nil {
		return wrap("quaternary2d", err)
	}
	return Quaternary(x, y, z, w, out, shapes, fcn)
}

// Quinary2d is Quinary restricted to 2-dimensional outputs.
func Quinary2d[A, B, C, D, E, R any](x []A, y []B, z []C, w []D, u []E, out []R, shapes [6]array.Shape, fcn func(a A, b B, c C, d D, e E) R) error {
	if err := checkRank(2, shapes[5]); err != nil {
		return wrap("quinary2d", err)
	}
	return Quinary(x, y, z, w, u, out, shapes, fcn)
}

// Binary3d is Binary restricted to 3-dimensional outputs.
func Binary3d[A, B, R any](x []A, y []B, out []R, shapes [3]array.Shape, fcn func(a A, b B) R) error {
	if err := checkRank(3, shapes[2]); err != nil {
		return wrap("binary3d", err)
	}
	return Binary(x, y, out, shapes, fcn)
}

// Ternary3d is Ternary restricted to 3-dimensional outputs.
func Ternary3d[A, B, C, R any](x []A, y []B, z []C, out []R, shapes [4]array.Shape, fcn func(a A, b B, c C) R) error {
	if err := checkRank(3, shapes[3]); err != nil {
		return wrap("ternary3d", err)
	}
	return Ternary(x, y, z, out, shapes, fcn)
}

// Quaternary3d is Quaternary restricted to 3-dimensional outputs.
func Quaternary3d[A, B, C, D, R any](x []A, y []B, z []C, w []D, out []R, shapes [5]array.Shape, fcn func(a A, b B, c C, d D) R) error {
	if err := checkRank(3, shapes[4]); err != nil {
		return wrap("quaternary3d", err)
	}
	return Quaternary(x, y, z, w, out, shapes, fcn)
}

// Quinary3d is Quinary restricted to 3-dimensional outputs.
func Quinary3d[A, B, C, D, E, R any](x []A, y []B, z []C, w []D, u []E, out []R, shapes [6]array.Shape, fcn func(a A, b B, c C, d D, e E) R) error {
	if err := checkRank(3, shapes[5]); err != nil {
		return wrap("quinary3d", err)
	}
	return Quinary(x, y, z, w, u, out, shapes, fcn)
}

// Binary4d is Binary restricted to 4-dimensional outputs.
func Binary4d[A, B, R any](x []A, y []B, out []R, shapes [3]array.Shape, fcn func(a A, b B) R) error {
	if err := checkRank(4, shapes[2]); err != nil {
		return wrap("binary4d", err)
	}
	return Binary(x, y, out, shapes, fcn)
}

// Ternary4d is Ternary restricted to 4-dimensional outputs.
func Ternary4d[A, B, C, R any](x []A, y []B, z []C, out []R, shapes [4]array.Shape, fcn func(a A, b B, c C) R) error {
	if err := checkRank(4, shapes[3]); err != nil {
		return wrap("ternary4d", err)
	}
	return Ternary(x, y, z, out, shapes, fcn)
}

// Quaternary4d is Quaternary restricted to 4-dimensional outputs.
func Quaternary4d[A, B, C, D, R any](x []A, y []B, z []C, w []D, out []R, shapes [5]array.Shape, fcn func(a A, b B, c C, d D) R) error {
	if err := checkRank(4, shapes[4]); err != nil {
		return wrap("quaternary4d", err)
	}
	return Quaternary(x, y, z, w, out, shapes, fcn)
}

// Quinary4d is Quinary restricted to 4-dimensional outputs.
func Quinary4d[A, B, C, D, E, R any](x []A, y []B, z []C, w []D, u []E, out []R, shapes [6]array.Shape, fcn func(a A, b B, c C, d D, e E) R) error {
	if err := checkRank(4, shapes[5]); err != nil {
		return wrap("quinary4d", err)
	}
	return Quinary(x, y, z, w, u, out, shapes, fcn)
}

// Binary5d is Binary restricted to 5-dimensional outputs.
func Binary5d[A, B, R any](x []A, y []B, out []R, shapes [3]array.Shape, fcn func(a A, b B) R) error {
	if err := checkRank(5, shapes[2]); err != nil {
		return wrap("binary5d", err)
	}
	return Binary(x, y, out, shapes, fcn)
}

// Ternary5d is Ternary restricted to 5-dimensional outputs.
func Ternary5d[A, B, C, R any](x []A, y []B, z []C, out []R, shapes [4]array.Shape, fcn func(a A, b B, c C) R) error {
	if err := checkRank(5, shapes[3]); err != nil {
		return wrap("ternary5d", err)
	}
	return Ternary(x, y, z, out, shapes, fcn)
}

// Quaternary5d is Quaternary restricted to 5-dimensional outputs.
func Quaternary5d[A, B, C, D, R any](x []A, y []B, z []C, w []D, out []R, shapes [5]array.Shape, fcn func(a A, b B, c C, d D) R) error {
	if err := checkRank(5, shapes[4]); err != nil {
		return wrap("quaternary5d", err)
	}
	return Quaternary(x, y, z, w, out, shapes, fcn)
}

// Quinary5d is Quinary restricted to 5-dimensional outputs.
func Quinary5d[A, B, C, D, E, R any](x []A, y []B, z []C, w []D, u []E, out []R, shapes [6]array.Shape, fcn func(a A, b B, c C, d D, e E) R) error {
	if err := checkRank(5, shapes[5]); err != nil {
		return wrap("quinary5d", err)
	}
	return Quinary(x, y, z, w, u, out, shapes, fcn)
}
