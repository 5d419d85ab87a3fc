package ufunc

import (
	"fmt"

	"github.com/born-ml/arraybase/internal/array"
)

// Unary applies fcn to a broadcast input.
// shapes holds the input and output shapes.
func Unary[A, R any](x []A, out []R, shapes [2]array.Shape, fcn func(a A) R) error {
	p, err := newPlan([]int{len(x)}, shapes[:1], shapes[1])
	if err != nil || p == nil {
		return wrap("unary", err)
	}
	if err := p.checkOutput(len(out)); err != nil {
		return wrap("unary", err)
	}
	p.walk(func(o int, _, off []int) {
		out[o] = fcn(x[off[0]])
	})
	return nil
}

// Binary applies fcn to two broadcast inputs.
// shapes holds the two input shapes followed by the output shape.
func Binary[A, B, R any](x []A, y []B, out []R, shapes [3]array.Shape, fcn func(a A, b B) R) error {
	p, err := newPlan([]int{len(x), len(y)}, shapes[:2], shapes[2])
	if err != nil || p == nil {
		return wrap("binary", err)
	}
	if err := p.checkOutput(len(out)); err != nil {
		return wrap("binary", err)
	}
	p.walk(func(o int, _, off []int) {
		out[o] = fcn(x[off[0]], y[off[1]])
	})
	return nil
}

// Ternary applies fcn to three broadcast inputs.
// shapes holds the three input shapes followed by the output shape.
func Ternary[A, B, C, R any](x []A, y []B, z []C, out []R, shapes [4]array.Shape, fcn func(a A, b B, c C) R) error {
	p, err := newPlan([]int{len(x), len(y), len(z)}, shapes[:3], shapes[3])
	if err != nil || p == nil {
		return wrap("ternary", err)
	}
	if err := p.checkOutput(len(out)); err != nil {
		return wrap("ternary", err)
	}
	p.walk(func(o int, _, off []int) {
		out[o] = fcn(x[off[0]], y[off[1]], z[off[2]])
	})
	return nil
}

// Quaternary applies fcn to four broadcast inputs.
// shapes holds the four input shapes followed by the output shape.
func Quaternary[A, B, C, D, R any](x []A, y []B, z []C, w []D, out []R, shapes [5]array.Shape, fcn func(a A, b B, c C, d D) R) error {
	p, err := newPlan([]int{len(x), len(y), len(z), len(w)}, shapes[:4], shapes[4])
	if err != nil || p == nil {
		return wrap("quaternary", err)
	}
	if err := p.checkOutput(len(out)); err != nil {
		return wrap("quaternary", err)
	}
	p.walk(func(o int, _, off []int) {
		out[o] = fcn(x[off[0]], y[off[1]], z[off[2]], w[off[3]])
	})
	return nil
}

// Quinary applies fcn to five broadcast inputs.
// shapes holds the five input shapes followed by the output shape.
func Quinary[A, B, C, D, E, R any](x []A, y []B, z []C, w []D, u []E, out []R, shapes [6]array.Shape, fcn func(a A, b B, c C, d D, e E) R) error {
	p, err := newPlan([]int{len(x), len(y), len(z), len(w), len(u)}, shapes[:5], shapes[5])
	if err != nil || p == nil {
		return wrap("quinary", err)
	}
	if err := p.checkOutput(len(out)); err != nil {
		return wrap("quinary", err)
	}
	p.walk(func(o int, _, off []int) {
		out[o] = fcn(x[off[0]], y[off[1]], z[off[2]], w[off[3]], u[off[4]])
	})
	return nil
}

// MapNd applies fcn to every element of x, passing its multi-dimensional index.
// x and out share shape; no broadcasting takes place. idx is reused between calls.
func MapNd[T, R any](x []T, out []R, shape array.Shape, fcn func(v T, idx []int) R) error {
	p, err := newPlan([]int{len(x)}, []array.Shape{shape}, shape)
	if err != nil || p == nil {
		return wrap("map", err)
	}
	if err := p.checkOutput(len(out)); err != nil {
		return wrap("map", err)
	}
	p.walk(func(o int, idx, off []int) {
		out[o] = fcn(x[off[0]], idx)
	})
	return nil
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
