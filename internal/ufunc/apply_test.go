package ufunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/arraybase/internal/array"
)

func sumReal(args []any) any {
	s := 0.0
	for _, a := range args {
		switch v := a.(type) {
		case float64:
			s += v
		case int32:
			s += float64(v)
		case bool:
			if v {
				s++
			}
		}
	}
	return s
}

func TestApplyMixedArrayLikes(t *testing.T) {
	x := []float64{1, 2, 3}                   // (3,)
	y := []int32{10, 20}                      // (2, 1)
	mask := array.BoolArrayFrom([]bool{true}) // (1,)
	out := make([]float64, 6)

	err := Apply(
		[]any{x, y, mask, out},
		[]array.Shape{{3}, {2, 1}, {1}, {2, 3}},
		sumReal,
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 13, 14, 22, 23, 24}, out)
}

func TestApplyComplexOutput(t *testing.T) {
	re := []float64{1, 2}
	im := []float64{3}
	out := array.NewComplex128Array(2)

	err := Apply(
		[]any{re, im, out},
		[]array.Shape{{2}, {1}, {2}},
		func(args []any) any { return complex(args[0].(float64), args[1].(float64)) },
	)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 3), out.At(0))
	assert.Equal(t, complex(2, 3), out.At(1))
}

func TestApplyComplexInputRealOutput(t *testing.T) {
	c, err := array.Complex64ArrayFrom([]float32{3, 4, 0, 1})
	require.NoError(t, err)
	out := make([]float32, 2)

	err = Apply([]any{c, out}, []array.Shape{{2}, {2}}, func(args []any) any {
		v := args[0].(complex64)
		return real(v)*real(v) + imag(v)*imag(v)
	})
	require.NoError(t, err)
	assert.Equal(t, []float32{25, 1}, out)
}

func TestApplyUint8ClampedOutput(t *testing.T) {
	out := array.Zeros(array.Uint8c, 4)
	err := Apply(
		[]any{[]float64{300, -5, 1.5, 254.5}, out},
		[]array.Shape{{4}, {4}},
		func(args []any) any { return args[0] },
	)
	require.NoError(t, err)
	assert.Equal(t, array.Uint8ClampedArray{255, 0, 2, 254}, out)
}

func TestApplyZeroExtent(t *testing.T) {
	out := []any{"keep", "keep"}
	calls := 0
	err := Apply([]any{[]float64{}, out}, []array.Shape{{0, 2}, {1, 2}}, func(args []any) any {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls)
	assert.Equal(t, []any{"keep", "keep"}, out)

	err = Apply([]any{[]float64{1}, out}, []array.Shape{{1}, {2, 0}}, func(args []any) any {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestApplyZeroExtentStillBroadcasts(t *testing.T) {
	out := []float64{7, 7, 7}
	never := func(args []any) any {
		t.Fatal("callback must not run")
		return nil
	}

	err := Apply([]any{[]float64{}, out}, []array.Shape{{0}, {3}}, never)
	var be *array.BroadcastError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 0, be.InDim)
	assert.Equal(t, 3, be.OutDim)

	err = Apply([]any{[]float64{}, []float64{1, 2, 3, 4, 5}, out[:2]}, []array.Shape{{0}, {5}, {1}}, never)
	assert.ErrorIs(t, err, array.ErrBroadcast)

	err = Apply([]any{[]float64{1, 2, 3}, out}, []array.Shape{{3}, {0, 2}}, never)
	assert.ErrorIs(t, err, array.ErrBroadcast)

	err = Apply([]any{[]float64{}, out}, []array.Shape{{1, 0}, {0}}, never)
	assert.ErrorIs(t, err, array.ErrDimension)

	assert.Equal(t, []float64{7, 7, 7}, out)
}

func TestApplyErrors(t *testing.T) {
	err := Apply(nil, nil, sumReal)
	assert.ErrorIs(t, err, array.ErrArity)

	err = Apply([]any{[]float64{1}}, []array.Shape{{1}, {1}}, sumReal)
	assert.ErrorIs(t, err, array.ErrArity)

	out := []float64{0, 0}
	err = Apply([]any{[]float64{1, 2, 3}, out}, []array.Shape{{3}, {2}}, sumReal)
	assert.ErrorIs(t, err, array.ErrBroadcast)
	assert.Equal(t, []float64{0, 0}, out)

	err = Apply([]any{[]float64{1, 2}, out[:1]}, []array.Shape{{2}, {2}}, sumReal)
	assert.ErrorIs(t, err, array.ErrOutputSize)
}

func TestApplyNullary(t *testing.T) {
	out := make([]float64, 3)
	err := Apply([]any{out}, []array.Shape{{3}}, func(args []any) any {
		assert.Empty(t, args)
		return 1.0
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, out)
}
