package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Generic, "generic"},
		{Float64, "float64"},
		{Float32, "float32"},
		{Int32, "int32"},
		{Uint8c, "uint8c"},
		{Complex64, "complex64"},
		{Complex128, "complex128"},
		{Bool, "bool"},
		{DataType(-1), "unknown"},
		{numDataTypes, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.dtype.String())
	}
}

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Generic, 0},
		{Float64, 8},
		{Float32, 4},
		{Int16, 2},
		{Uint8, 1},
		{Complex64, 8},
		{Complex128, 16},
		{Bool, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dtype.Size(), tt.dtype.String())
	}
}

func TestParseDataType(t *testing.T) {
	for _, dt := range DataTypes() {
		got, ok := ParseDataType(dt.String())
		assert.True(t, ok, dt.String())
		assert.Equal(t, dt, got)
	}

	// Unknown names fall back to generic access.
	got, ok := ParseDataType("float16")
	assert.False(t, ok)
	assert.Equal(t, Generic, got)
}

func TestDataTypeKinds(t *testing.T) {
	assert.True(t, Complex64.IsComplex())
	assert.True(t, Complex128.IsComplex())
	assert.False(t, Float64.IsComplex())

	assert.True(t, Float64.IsNumeric())
	assert.True(t, Uint8c.IsNumeric())
	assert.False(t, Bool.IsNumeric())
	assert.False(t, Generic.IsNumeric())
	assert.False(t, Complex128.IsNumeric())
}
