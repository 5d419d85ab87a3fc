package array

import "reflect"

// Object describes how to read and write the elements of an array-like value.
//
// It is computed once per operation so element loops never re-inspect the
// input's type.
type Object struct {
	Data             any      // buffer handed to Getter/Setter
	DataType         DataType // element type of Data
	AccessorProtocol bool     // true when the input only supports Get/Set access
	Getter           GetFunc
	Setter           SetFunc
}

// Arraylike2Object classifies x and resolves its element accessors.
//
// Built-in accessor arrays (Complex64Array, Complex128Array, BoolArray) are
// thin wrappers: Data is their internal buffer and the accessors come from the
// data type tables. Other AccessorArray implementations are accessed through
// their own Get/Set methods.
func Arraylike2Object(x any) Object {
	if ta, ok := x.(typedAccessorArray); ok {
		dt := ta.DataType()
		return Object{
			Data:             ta.buffer(),
			DataType:         dt,
			AccessorProtocol: true,
			Getter:           Getter(dt),
			Setter:           Setter(dt),
		}
	}
	if aa, ok := x.(AccessorArray); ok {
		dt, _ := DTypeOf(aa)
		return Object{
			Data:             aa,
			DataType:         dt,
			AccessorProtocol: true,
			Getter:           AccessorGetter(),
			Setter:           AccessorSetter(),
		}
	}
	dt, _ := DTypeOf(x)
	return Object{
		Data:     x,
		DataType: dt,
		Getter:   Getter(dt),
		Setter:   Setter(dt),
	}
}

// IsAccessorArray reports whether x exposes element access through Get/Set.
func IsAccessorArray(x any) bool {
	_, ok := x.(AccessorArray)
	return ok
}

// DTypeOf infers the data type of an array-like value.
// ok is false when x is not a recognized buffer; the returned type is then Generic.
func DTypeOf(x any) (dt DataType, ok bool) {
	switch v := x.(type) {
	case []any:
		return Generic, true
	case []float64:
		return Float64, true
	case []float32:
		return Float32, true
	case []int64:
		return Int64, true
	case []int32:
		return Int32, true
	case []int16:
		return Int16, true
	case []int8:
		return Int8, true
	case []uint64:
		return Uint64, true
	case []uint32:
		return Uint32, true
	case []uint16:
		return Uint16, true
	case []uint8:
		return Uint8, true
	case Uint8ClampedArray:
		return Uint8c, true
	case interface{ DataType() DataType }:
		return v.DataType(), true
	}
	return Generic, false
}

// Len returns the number of logical elements in an array-like value.
// It panics if x is neither an AccessorArray nor a slice or array.
func Len(x any) int {
	switch v := x.(type) {
	case nil:
		return 0
	case AccessorArray:
		return v.Len()
	case []any:
		return len(v)
	case []float64:
		return len(v)
	}
	return reflect.ValueOf(x).Len()
}
