package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/arraybase/internal/array"
)

const addJob = `
op: add
inputs:
  - data: [1, 2, 3]
    shape: [3]
  - data: [10, 20]
    shape: [2, 1]
`

func TestParse(t *testing.T) {
	job, err := Parse([]byte(addJob))
	require.NoError(t, err)

	assert.Equal(t, "add", job.Op)
	require.Len(t, job.Inputs, 2)
	assert.Equal(t, []float64{10, 20}, job.Inputs[1].Data)
	assert.Equal(t, []array.Shape{{3}, {2, 1}}, job.InputShapes())

	out, err := job.ResolveOutShape()
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 3}, out)
	assert.Equal(t, array.Float64, job.ResolveOutDType())
}

func TestParseExplicitOutput(t *testing.T) {
	job, err := Parse([]byte(`
op: sum
inputs:
  - data: [1]
    shape: []
out_shape: [2, 2]
out_dtype: int32
`))
	require.NoError(t, err)

	out, err := job.ResolveOutShape()
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 2}, out)
	assert.Equal(t, array.Int32, job.ResolveOutDType())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"no op", "inputs: [{data: [1], shape: [1]}]", ErrNoOp},
		{"no inputs", "op: add", ErrNoInputs},
		{"length mismatch", "op: add\ninputs: [{data: [1, 2], shape: [3]}]", array.ErrShapeMismatch},
		{"bad dtype", "op: add\ninputs: [{data: [1], shape: [1]}]\nout_dtype: float16", ErrUnknownDType},
		{"bad out shape", "op: add\ninputs: [{data: [1], shape: [1]}]\nout_shape: [-1]", ErrInvalidOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := Parse([]byte("op: [unclosed"))
	assert.Error(t, err)
}

func TestResolveOutShapeIncompatible(t *testing.T) {
	job, err := Parse([]byte("op: add\ninputs: [{data: [1, 2], shape: [2]}, {data: [1, 2, 3], shape: [3]}]"))
	require.NoError(t, err)

	_, err = job.ResolveOutShape()
	assert.ErrorIs(t, err, array.ErrBroadcast)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(addJob), 0o600))

	job, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "add", job.Op)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
