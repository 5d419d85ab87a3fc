// Package ufunc applies callbacks elementwise over broadcast arrays.
//
// Every function here follows the same contract:
//   - inputs are broadcast against the output shape before any element is read,
//     so an invalid broadcast never leaves a partially written output
//   - a zero-extent output or input shape is a silent no-op once every input
//     has been checked; an empty input dimension only pairs with 0 or 1
//   - the output buffer must already hold the output shape's elements; it is
//     never resized or allocated
//   - callbacks run synchronously, once per output element, in row-major order
package ufunc

import (
	"fmt"

	"github.com/born-ml/arraybase/internal/array"
)

// Apply evaluates fcn over any number of broadcast inputs.
//
// arrays holds k inputs followed by the output; shapes holds their shapes in
// the same order. Inputs and output may be any array-like value understood by
// array.Arraylike2Object. The args slice passed to fcn is reused between calls
// and must not be retained.
func Apply(arrays []any, shapes []array.Shape, fcn func(args []any) any) error {
	if len(arrays) == 0 || len(arrays) != len(shapes) {
		return fmt.Errorf("apply: %w: %d arrays, %d shapes", array.ErrArity, len(arrays), len(shapes))
	}
	k := len(arrays) - 1
	outShape := shapes[k]

	lengths := make([]int, k)
	for i := range lengths {
		lengths[i] = array.Len(arrays[i])
	}
	p, err := newPlan(lengths, shapes[:k], outShape)
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	if p == nil {
		return nil
	}
	if err := p.checkOutput(array.Len(arrays[k])); err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	ins := make([]array.Object, k)
	for i := range ins {
		ins[i] = array.Arraylike2Object(arrays[i])
	}
	out := array.Arraylike2Object(arrays[k])
	args := make([]any, k)

	p.walk(func(o int, _, offsets []int) {
		for j, in := range ins {
			args[j] = in.Getter(in.Data, offsets[j])
		}
		out.Setter(out.Data, o, fcn(args))
	})
	return nil
}
