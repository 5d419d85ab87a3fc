// Package array provides the element-access and broadcasting core of arraybase.
package array

// DataType identifies how the elements of a buffer are stored.
type DataType int

// Supported data types.
const (
	Generic DataType = iota
	Float64
	Float32
	Int64
	Int32
	Int16
	Int8
	Uint64
	Uint32
	Uint16
	Uint8
	Uint8c // uint8 storage with clamped assignment
	Complex64
	Complex128
	Bool

	numDataTypes
)

var dataTypeNames = [numDataTypes]string{
	Generic:    "generic",
	Float64:    "float64",
	Float32:    "float32",
	Int64:      "int64",
	Int32:      "int32",
	Int16:      "int16",
	Int8:       "int8",
	Uint64:     "uint64",
	Uint32:     "uint32",
	Uint16:     "uint16",
	Uint8:      "uint8",
	Uint8c:     "uint8c",
	Complex64:  "complex64",
	Complex128: "complex128",
	Bool:       "bool",
}

var dataTypeSizes = [numDataTypes]int{
	Generic:    0,
	Float64:    8,
	Float32:    4,
	Int64:      8,
	Int32:      4,
	Int16:      2,
	Int8:       1,
	Uint64:     8,
	Uint32:     4,
	Uint16:     2,
	Uint8:      1,
	Uint8c:     1,
	Complex64:  8,
	Complex128: 16,
	Bool:       1,
}

// valid reports whether dt is one of the declared data types.
func (dt DataType) valid() bool {
	return dt >= 0 && dt < numDataTypes
}

// String returns the canonical lowercase name of the data type.
func (dt DataType) String() string {
	if !dt.valid() {
		return "unknown"
	}
	return dataTypeNames[dt]
}

// Size returns the byte size of one logical element.
// Generic buffers hold Go values of arbitrary size and report 0.
func (dt DataType) Size() int {
	if !dt.valid() {
		return 0
	}
	return dataTypeSizes[dt]
}

// IsComplex reports whether elements are stored as interleaved real/imaginary pairs.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// IsNumeric reports whether dt is a real-valued numeric type.
func (dt DataType) IsNumeric() bool {
	return dt >= Float64 && dt <= Uint8c
}

// ParseDataType maps a dtype name to its DataType.
//
// Unknown names resolve to Generic with ok == false. Callers that only need
// element access can ignore ok: generic indexed access is the defined
// fallback, not a failure.
func ParseDataType(name string) (dt DataType, ok bool) {
	for i, n := range dataTypeNames {
		if n == name {
			return DataType(i), true
		}
	}
	return Generic, false
}

// DataTypes returns all supported data types in declaration order.
func DataTypes() []DataType {
	out := make([]DataType, numDataTypes)
	for i := range out {
		out[i] = DataType(i)
	}
	return out
}
