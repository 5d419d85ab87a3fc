package array

import (
	"fmt"
	"math"
	"reflect"
)

// GetFunc reads the logical element at index i of a backing buffer.
type GetFunc func(buf any, i int) any

// SetFunc writes v to the logical element at index i of a backing buffer.
type SetFunc func(buf any, i int, v any)

// Backing buffers by data type:
//
//	Generic      []any (any other slice kind is accessed through reflection)
//	Float64..    []float64, []float32, []int64, ... matching the type name
//	Uint8c       Uint8ClampedArray or []uint8
//	Complex64    []float32, interleaved real/imaginary, length 2n
//	Complex128   []float64, interleaved real/imaginary, length 2n
//	Bool         []uint8 holding 0 or 1
var (
	getters = [numDataTypes]GetFunc{
		Generic:    getGeneric,
		Float64:    getNumeric[float64],
		Float32:    getNumeric[float32],
		Int64:      getNumeric[int64],
		Int32:      getNumeric[int32],
		Int16:      getNumeric[int16],
		Int8:       getNumeric[int8],
		Uint64:     getNumeric[uint64],
		Uint32:     getNumeric[uint32],
		Uint16:     getNumeric[uint16],
		Uint8:      getNumeric[uint8],
		Uint8c:     getUint8Clamped,
		Complex64:  getComplex64,
		Complex128: getComplex128,
		Bool:       getBool,
	}

	setters = [numDataTypes]SetFunc{
		Generic:    setGeneric,
		Float64:    setFloat[float64],
		Float32:    setFloat[float32],
		Int64:      setInt[int64],
		Int32:      setInt[int32],
		Int16:      setInt[int16],
		Int8:       setInt[int8],
		Uint64:     setInt[uint64],
		Uint32:     setInt[uint32],
		Uint16:     setInt[uint16],
		Uint8:      setInt[uint8],
		Uint8c:     setUint8Clamped,
		Complex64:  setComplex64,
		Complex128: setComplex128,
		Bool:       setBool,
	}
)

// Getter returns the element reader for buffers of the given data type.
// Unrecognized data types fall back to generic indexed access.
func Getter(dt DataType) GetFunc {
	if !dt.valid() {
		return getGeneric
	}
	return getters[dt]
}

// Setter returns the element writer for buffers of the given data type.
// Unrecognized data types fall back to generic indexed access.
func Setter(dt DataType) SetFunc {
	if !dt.valid() {
		return setGeneric
	}
	return setters[dt]
}

// Accessors returns the getter/setter pair for the given data type.
func Accessors(dt DataType) (GetFunc, SetFunc) {
	return Getter(dt), Setter(dt)
}

// AccessorGetter returns a reader for buffers implementing AccessorArray.
func AccessorGetter() GetFunc {
	return getAccessor
}

// AccessorSetter returns a writer for buffers implementing AccessorArray.
func AccessorSetter() SetFunc {
	return setAccessor
}

func getAccessor(buf any, i int) any {
	return buf.(AccessorArray).Get(i)
}

func setAccessor(buf any, i int, v any) {
	buf.(AccessorArray).Set(i, v)
}

func getGeneric(buf any, i int) any {
	if s, ok := buf.([]any); ok {
		return s[i]
	}
	return reflect.ValueOf(buf).Index(i).Interface()
}

func setGeneric(buf any, i int, v any) {
	if s, ok := buf.([]any); ok {
		s[i] = v
		return
	}
	elem := reflect.ValueOf(buf).Index(i)
	if v == nil {
		elem.SetZero()
		return
	}
	elem.Set(reflect.ValueOf(v).Convert(elem.Type()))
}

type number interface {
	~float64 | ~float32 |
		~int64 | ~int32 | ~int16 | ~int8 |
		~uint64 | ~uint32 | ~uint16 | ~uint8
}

func getNumeric[T number](buf any, i int) any {
	return buf.([]T)[i]
}

func setFloat[T ~float64 | ~float32](buf any, i int, v any) {
	buf.([]T)[i] = T(toFloat64(v))
}

func setInt[T ~int64 | ~int32 | ~int16 | ~int8 | ~uint64 | ~uint32 | ~uint16 | ~uint8](buf any, i int, v any) {
	buf.([]T)[i] = T(toInt64(v))
}

func uint8cBuffer(buf any) []uint8 {
	if b, ok := buf.(Uint8ClampedArray); ok {
		return b
	}
	return buf.([]uint8)
}

func getUint8Clamped(buf any, i int) any {
	return uint8cBuffer(buf)[i]
}

// setUint8Clamped rounds half to even and saturates to [0, 255]; NaN stores 0.
func setUint8Clamped(buf any, i int, v any) {
	f := toFloat64(v)
	switch {
	case math.IsNaN(f) || f <= 0:
		f = 0
	case f >= 255:
		f = 255
	default:
		f = math.RoundToEven(f)
	}
	uint8cBuffer(buf)[i] = uint8(f)
}

func getComplex64(buf any, i int) any {
	b := buf.([]float32)
	return complex(b[2*i], b[2*i+1])
}

func setComplex64(buf any, i int, v any) {
	c := toComplex128(v)
	b := buf.([]float32)
	b[2*i] = float32(real(c))
	b[2*i+1] = float32(imag(c))
}

func getComplex128(buf any, i int) any {
	b := buf.([]float64)
	return complex(b[2*i], b[2*i+1])
}

func setComplex128(buf any, i int, v any) {
	c := toComplex128(v)
	b := buf.([]float64)
	b[2*i] = real(c)
	b[2*i+1] = imag(c)
}

func getBool(buf any, i int) any {
	return buf.([]uint8)[i] != 0
}

func setBool(buf any, i int, v any) {
	var b uint8
	if toBool(v) {
		b = 1
	}
	buf.([]uint8)[i] = b
}

// toFloat64 converts a Go scalar to float64. Complex values keep their real part.
func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	case int16:
		return float64(x)
	case int8:
		return float64(x)
	case uint:
		return float64(x)
	case uint64:
		return float64(x)
	case uint32:
		return float64(x)
	case uint16:
		return float64(x)
	case uint8:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case complex128:
		return real(x)
	case complex64:
		return float64(real(x))
	default:
		panic(fmt.Sprintf("array: cannot convert %T to a number", v))
	}
}

// toInt64 converts a Go scalar to int64. Floats are truncated toward zero and
// wrapped modulo 2^64; NaN and infinities become 0.
func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int64:
		return x
	case int32:
		return int64(x)
	case int16:
		return int64(x)
	case int8:
		return int64(x)
	case uint:
		return int64(x)
	case uint64:
		return int64(x)
	case uint32:
		return int64(x)
	case uint16:
		return int64(x)
	case uint8:
		return int64(x)
	}
	return floatToInt64(toFloat64(v))
}

func floatToInt64(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	if f >= -(1<<63) && f < (1<<63) {
		return int64(f)
	}
	f = math.Mod(f, 1<<64)
	if f < 0 {
		f += 1 << 64
	}
	return int64(uint64(f))
}

// toComplex128 converts a complex value, a real/imaginary pair or a real number.
func toComplex128(v any) complex128 {
	switch x := v.(type) {
	case complex128:
		return x
	case complex64:
		return complex128(x)
	case [2]float64:
		return complex(x[0], x[1])
	case [2]float32:
		return complex(float64(x[0]), float64(x[1]))
	case []float64:
		if len(x) == 2 {
			return complex(x[0], x[1])
		}
	case []float32:
		if len(x) == 2 {
			return complex(float64(x[0]), float64(x[1]))
		}
	default:
		return complex(toFloat64(v), 0)
	}
	panic(fmt.Sprintf("array: cannot convert %T of length %d to a complex number", v, reflect.ValueOf(v).Len()))
}

func toBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case complex128:
		return x != 0
	case complex64:
		return x != 0
	default:
		f := toFloat64(v)
		return f != 0 && !math.IsNaN(f)
	}
}
