package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/arraybase/array"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeJob(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "arraybase "+version+"\n", out)
}

func TestBroadcastCmd(t *testing.T) {
	out, err := execute(t, "broadcast", "--in", "2", "--out", "2,2")
	require.NoError(t, err)

	var report broadcastReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, []int{2, 2}, report.Shape)
	assert.Equal(t, []int{1, 2}, report.ViewShape)
	assert.Equal(t, []int{0, 1}, report.Strides)
	assert.Equal(t, []int{0, 1}, report.ElementStrides)
}

func TestBroadcastCmdScalar(t *testing.T) {
	out, err := execute(t, "broadcast", "--out", "3")
	require.NoError(t, err)

	var report broadcastReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, []int{0}, report.Strides)
}

func TestBroadcastCmdErrors(t *testing.T) {
	_, err := execute(t, "broadcast", "--in", "2", "--out", "3")
	assert.Error(t, err)

	_, err = execute(t, "broadcast", "--in", "x", "--out", "3")
	assert.Error(t, err)

	_, err = execute(t, "broadcast", "--in", "2")
	assert.Error(t, err, "--out is required")
}

func TestApplyCmd(t *testing.T) {
	path := writeJob(t, `
op: add
inputs:
  - {data: [1, 2, 3], shape: [3]}
  - {data: [10, 20], shape: [2, 1]}
`)
	out, err := execute(t, "apply", "--job", path)
	require.NoError(t, err)

	var report struct {
		Op    string    `yaml:"op"`
		DType string    `yaml:"dtype"`
		Shape []int     `yaml:"shape"`
		Data  []float64 `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "add", report.Op)
	assert.Equal(t, "float64", report.DType)
	assert.Equal(t, []int{2, 3}, report.Shape)
	assert.Equal(t, []float64{11, 12, 13, 21, 22, 23}, report.Data)
}

func TestApplyCmdTypedOutput(t *testing.T) {
	path := writeJob(t, `
op: clamp
inputs:
  - {data: [-5, 0.4, 2.6, 300], shape: [4]}
  - {data: [0], shape: []}
  - {data: [255], shape: [1]}
out_dtype: uint8c
`)
	out, err := execute(t, "apply", "-j", path)
	require.NoError(t, err)

	var report struct {
		DType string `yaml:"dtype"`
		Data  []int  `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "uint8c", report.DType)
	assert.Equal(t, []int{0, 0, 3, 255}, report.Data)
}

func TestApplyCmdClampedOutputSaturates(t *testing.T) {
	path := writeJob(t, `
op: mul
inputs:
  - {data: [-2, 1, 100], shape: [3]}
  - {data: [3], shape: [1]}
out_dtype: uint8c
`)
	out, err := execute(t, "apply", "--job", path)
	require.NoError(t, err)

	var report struct {
		DType string `yaml:"dtype"`
		Data  []int  `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "uint8c", report.DType)
	assert.Equal(t, []int{0, 3, 255}, report.Data)
}

func TestApplyCmdIncompatibleOutShape(t *testing.T) {
	path := writeJob(t, `
op: add
inputs:
  - {data: [], shape: [0]}
  - {data: [1, 2, 3, 4, 5], shape: [5]}
out_shape: [2]
`)
	_, err := execute(t, "apply", "--job", path)
	assert.ErrorIs(t, err, array.ErrBroadcast)
}

func TestApplyCmdComplexOutput(t *testing.T) {
	path := writeJob(t, `
op: sum
inputs:
  - {data: [1, 2], shape: [2]}
out_dtype: complex128
`)
	out, err := execute(t, "apply", "--job", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(1+0i)")
	assert.Contains(t, out, "(2+0i)")
}

func TestApplyCmdErrors(t *testing.T) {
	tests := []struct {
		name string
		job  string
	}{
		{"unknown op", "op: nope\ninputs: [{data: [1], shape: [1]}]"},
		{"arity", "op: add\ninputs: [{data: [1], shape: [1]}]"},
		{"incompatible", "op: add\ninputs: [{data: [1, 2], shape: [2]}, {data: [1, 2, 3], shape: [3]}]"},
		{"bad out shape", "op: add\ninputs: [{data: [1, 2], shape: [2]}, {data: [1], shape: [1]}]\nout_shape: [3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "apply", "--job", writeJob(t, tt.job))
			assert.Error(t, err)
		})
	}
}

func TestLookupOp(t *testing.T) {
	o, err := lookupOp("sum", 5)
	require.NoError(t, err)
	assert.Equal(t, 6.0, o.fn([]float64{1, 1, 1, 1, 2}))

	_, err = lookupOp("fma", 2)
	assert.ErrorIs(t, err, errArity)

	_, err = lookupOp("zzz", 1)
	assert.ErrorIs(t, err, errUnknownOp)

	assert.Contains(t, opNames(), "lerp")
}

func TestParseShape(t *testing.T) {
	s, err := parseShape(" 2, 3 ,4")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, []int(s))

	s, err = parseShape("")
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = parseShape("2,-1")
	assert.Error(t, err)
}
