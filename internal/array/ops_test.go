package array

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isPositive(v any, _ int) bool {
	return toFloat64(v) > 0
}

func TestAnyBy(t *testing.T) {
	assert.True(t, AnyBy([]float64{-1, 0, 2}, isPositive))
	assert.False(t, AnyBy([]int32{-1, 0}, isPositive))
	assert.False(t, AnyBy([]float64{}, isPositive))

	calls := 0
	AnyBy([]float64{1, 2, 3}, func(v any, _ int) bool {
		calls++
		return true
	})
	assert.Equal(t, 1, calls, "AnyBy stops at the first match")
}

func TestEveryByNoneBySomeBy(t *testing.T) {
	x := []float64{1, 2, -3}
	assert.False(t, EveryBy(x, isPositive))
	assert.True(t, EveryBy([]float64{}, isPositive))
	assert.True(t, EveryBy(BoolArrayFrom([]bool{true, true}), func(v any, _ int) bool { return v.(bool) }))

	assert.False(t, NoneBy(x, isPositive))
	assert.True(t, NoneBy([]float64{-1}, isPositive))

	assert.True(t, SomeBy(x, 2, isPositive))
	assert.False(t, SomeBy(x, 3, isPositive))
	assert.True(t, SomeBy(x, 0, isPositive))
}

func TestPredicateReceivesIndex(t *testing.T) {
	var seen []int
	EveryBy([]any{"a", "b", "c"}, func(_ any, i int) bool {
		seen = append(seen, i)
		return true
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestFill(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       []float64
	}{
		{"all", 0, 5, []float64{7, 7, 7, 7, 7}},
		{"middle", 1, 3, []float64{0, 7, 7, 0, 0}},
		{"negative start", -2, 5, []float64{0, 0, 0, 7, 7}},
		{"negative end", 0, -3, []float64{7, 7, 0, 0, 0}},
		{"end past length", 3, 100, []float64{0, 0, 0, 7, 7}},
		{"empty range", 4, 2, []float64{0, 0, 0, 0, 0}},
		{"start before beginning", -100, 1, []float64{7, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := make([]float64, 5)
			got := Fill(x, 7, tt.start, tt.end)
			assert.Equal(t, tt.want, x)
			assert.Equal(t, x, got)
		})
	}
}

func TestFillComplex(t *testing.T) {
	c := NewComplex64Array(3)
	Fill(c, 2.0, 0, 3)
	assert.Equal(t, []float32{2, 0, 2, 0, 2, 0}, c.Interleaved())
}

func TestFilter(t *testing.T) {
	got := Filter([]int16{3, -1, 4, -1, 5}, isPositive)
	want := []any{int16(3), int16(4), int16(5)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, Filter([]float64{}, isPositive))
}

func TestTake(t *testing.T) {
	got, err := Take([]float32{10, 20, 30}, []int{2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, []any{float32(30), float32(10), float32(30)}, got)

	_, err = Take([]float32{10}, []int{1})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestToGeneric(t *testing.T) {
	c := NewComplex128Array(2)
	c.Set(1, complex(0, 1))
	assert.Equal(t, []any{complex(0, 0), complex(0, 1)}, ToGeneric(c))
	assert.Equal(t, []any{true, false}, ToGeneric(BoolArrayFrom([]bool{true, false})))
}

func TestZeros(t *testing.T) {
	for _, dt := range DataTypes() {
		x := Zeros(dt, 4)
		assert.Equal(t, 4, Len(x), dt.String())
		assert.True(t, EveryBy(x, func(v any, _ int) bool {
			return !toBool(v)
		}), dt.String())

		got, ok := DTypeOf(x)
		assert.True(t, ok, dt.String())
		assert.Equal(t, dt, got)
	}
}

func TestFillUint8Clamped(t *testing.T) {
	x := Zeros(Uint8c, 3)
	Fill(x, 300, 0, 2)
	Fill(x, -4.5, 2, 3)
	assert.Equal(t, Uint8ClampedArray{255, 255, 0}, x)

	Fill(x, 2.5, 0, -1)
	assert.Equal(t, []any{uint8(2), uint8(2), uint8(0)}, ToGeneric(x))
}
