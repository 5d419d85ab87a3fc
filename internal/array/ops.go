package array

import "fmt"

// Predicate tests the element v found at index i.
type Predicate func(v any, i int) bool

// AnyBy reports whether at least one element satisfies pred.
// Iteration stops at the first match.
func AnyBy(x any, pred Predicate) bool {
	obj := Arraylike2Object(x)
	n := Len(x)
	for i := 0; i < n; i++ {
		if pred(obj.Getter(obj.Data, i), i) {
			return true
		}
	}
	return false
}

// EveryBy reports whether all elements satisfy pred. It is true for empty input.
func EveryBy(x any, pred Predicate) bool {
	obj := Arraylike2Object(x)
	n := Len(x)
	for i := 0; i < n; i++ {
		if !pred(obj.Getter(obj.Data, i), i) {
			return false
		}
	}
	return true
}

// NoneBy reports whether no element satisfies pred.
func NoneBy(x any, pred Predicate) bool {
	return !AnyBy(x, pred)
}

// SomeBy reports whether at least n elements satisfy pred.
func SomeBy(x any, n int, pred Predicate) bool {
	if n <= 0 {
		return true
	}
	obj := Arraylike2Object(x)
	length := Len(x)
	for i := 0; i < length; i++ {
		if pred(obj.Getter(obj.Data, i), i) {
			n--
			if n == 0 {
				return true
			}
		}
	}
	return false
}

// Fill sets elements in [start, end) to v and returns x.
// Negative bounds count from the end; bounds are clamped to the array.
func Fill(x, v any, start, end int) any {
	n := Len(x)
	start, end = clampRange(start, end, n)
	if start >= end {
		return x
	}
	obj := Arraylike2Object(x)
	for i := start; i < end; i++ {
		obj.Setter(obj.Data, i, v)
	}
	return x
}

func clampRange(start, end, n int) (int, int) {
	if start < 0 {
		start = max(start+n, 0)
	}
	if end < 0 {
		end += n
	} else if end > n {
		end = n
	}
	return start, end
}

// Filter returns the elements satisfying pred, boxed in a new slice.
func Filter(x any, pred Predicate) []any {
	obj := Arraylike2Object(x)
	n := Len(x)
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		v := obj.Getter(obj.Data, i)
		if pred(v, i) {
			out = append(out, v)
		}
	}
	return out
}

// Take returns the elements at the given indices.
func Take(x any, indices []int) ([]any, error) {
	obj := Arraylike2Object(x)
	n := Len(x)
	out := make([]any, len(indices))
	for k, i := range indices {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("take: %w: index %d (length %d)", ErrIndexOutOfRange, i, n)
		}
		out[k] = obj.Getter(obj.Data, i)
	}
	return out, nil
}

// ToGeneric copies the elements of x into a []any.
func ToGeneric(x any) []any {
	obj := Arraylike2Object(x)
	n := Len(x)
	out := make([]any, n)
	for i := range out {
		out[i] = obj.Getter(obj.Data, i)
	}
	return out
}

// Zeros allocates a zero-filled array of n elements for the given data type.
//
// Complex and bool types return their accessor arrays; Uint8c returns a
// Uint8ClampedArray.
// Generic and unrecognized types return a []any of float64 zeros.
func Zeros(dt DataType, n int) any {
	switch dt {
	case Float64:
		return make([]float64, n)
	case Float32:
		return make([]float32, n)
	case Int64:
		return make([]int64, n)
	case Int32:
		return make([]int32, n)
	case Int16:
		return make([]int16, n)
	case Int8:
		return make([]int8, n)
	case Uint64:
		return make([]uint64, n)
	case Uint32:
		return make([]uint32, n)
	case Uint16:
		return make([]uint16, n)
	case Uint8:
		return make([]uint8, n)
	case Uint8c:
		return make(Uint8ClampedArray, n)
	case Complex64:
		return NewComplex64Array(n)
	case Complex128:
		return NewComplex128Array(n)
	case Bool:
		return NewBoolArray(n)
	default:
		out := make([]any, n)
		for i := range out {
			out[i] = 0.0
		}
		return out
	}
}
