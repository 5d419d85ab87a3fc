package ufunc

import (
	"fmt"

	"github.com/born-ml/arraybase/internal/array"
)

// plan walks an output shape while tracking one flat offset per input.
type plan struct {
	shape   array.Shape
	strides [][]int // element strides per input, one entry per output dimension
}

// newPlan broadcasts every input shape against outShape.
//
// Every input is checked before anything is skipped, so an incompatible shape
// is reported even when the walk would visit no element. It returns a nil plan
// and a nil error when there is nothing to visit: the output shape or one of
// the input shapes has a zero-extent dimension. lengths holds the number of
// elements available in each input buffer.
func newPlan(lengths []int, shapes []array.Shape, outShape array.Shape) (*plan, error) {
	p := &plan{
		shape:   outShape.Clone(),
		strides: make([][]int, len(shapes)),
	}
	empty := outShape.IsEmpty()
	for i, s := range shapes {
		if s.IsEmpty() {
			if err := checkEmptyInput(s, outShape); err != nil {
				return nil, fmt.Errorf("input %d: %w", i, err)
			}
			empty = true
			continue
		}
		if lengths[i] < s.NumElements() {
			return nil, fmt.Errorf("input %d: %w: shape %v requires %d elements, got %d",
				i, array.ErrShapeMismatch, s, s.NumElements(), lengths[i])
		}
		b, err := array.BroadcastArray(nil, s, outShape)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		p.strides[i] = b.ElementStrides()
	}
	if empty {
		return nil, nil
	}
	return p, nil
}

// checkEmptyInput verifies a zero-extent input shape against outShape.
// A zero dimension pairs with an output dimension of 0 or 1; every other
// dimension follows the usual broadcast rules.
func checkEmptyInput(in, out array.Shape) error {
	offset := len(out) - len(in)
	if offset < 0 {
		return &array.DimensionError{InShape: in.Clone(), OutShape: out.Clone()}
	}
	for j, d := range in {
		o := out[j+offset]
		if d == o || d == 1 || (d == 0 && o == 1) {
			continue
		}
		return &array.BroadcastError{
			InShape:  in.Clone(),
			OutShape: out.Clone(),
			Dim:      j + offset,
			InDim:    d,
			OutDim:   o,
		}
	}
	return nil
}

// checkOutput verifies the output buffer can hold every element of the plan.
func (p *plan) checkOutput(n int) error {
	if want := p.shape.NumElements(); n < want {
		return fmt.Errorf("%w: shape %v requires %d elements, got %d", array.ErrOutputSize, p.shape, want, n)
	}
	return nil
}

// walk visits every element of the output shape in row-major order.
//
// fn receives the flat output index, the multi-dimensional index and the flat
// offset into each input. idx and offsets are reused between calls.
func (p *plan) walk(fn func(out int, idx, offsets []int)) {
	ndim := len(p.shape)
	offsets := make([]int, len(p.strides))
	idx := make([]int, ndim)
	n := p.shape.NumElements()

	for o := 0; o < n; o++ {
		fn(o, idx, offsets)

		// Advance the innermost dimension, carrying outward.
		for d := ndim - 1; d >= 0; d-- {
			idx[d]++
			for j, s := range p.strides {
				offsets[j] += s[d]
			}
			if idx[d] < p.shape[d] {
				break
			}
			for j, s := range p.strides {
				offsets[j] -= s[d] * p.shape[d]
			}
			idx[d] = 0
		}
	}
}

// checkRank verifies the output shape has exactly ndim dimensions.
func checkRank(ndim int, outShape array.Shape) error {
	if len(outShape) != ndim {
		return fmt.Errorf("%w: expected %d-dimensional output shape, got %v", array.ErrRank, ndim, outShape)
	}
	return nil
}
