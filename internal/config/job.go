// Package config loads broadcast job files for the arraybase CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/arraybase/internal/array"
)

// Common errors.
var (
	ErrNoOp          = errors.New("job has no op")
	ErrNoInputs      = errors.New("job has no inputs")
	ErrUnknownDType  = errors.New("unknown dtype")
	ErrInvalidOutput = errors.New("invalid output shape")
)

// Operand is one input array of a job.
type Operand struct {
	Data  []float64 `yaml:"data"`
	Shape []int     `yaml:"shape"`
}

// Job describes a broadcasted elementwise computation.
//
// Example:
//
//	op: add
//	inputs:
//	  - data: [1, 2, 3]
//	    shape: [3]
//	  - data: [10, 20]
//	    shape: [2, 1]
//	out_dtype: float64
type Job struct {
	Op       string    `yaml:"op"`
	Inputs   []Operand `yaml:"inputs"`
	OutShape []int     `yaml:"out_shape,omitempty"`
	OutDType string    `yaml:"out_dtype,omitempty"`
}

// Load reads and validates a job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	job, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return job, nil
}

// Parse decodes and validates a YAML job.
func Parse(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

// Validate checks the job for structural errors. Broadcast compatibility is
// checked later by the applier.
func (j *Job) Validate() error {
	if j.Op == "" {
		return ErrNoOp
	}
	if len(j.Inputs) == 0 {
		return ErrNoInputs
	}
	for i, in := range j.Inputs {
		shape := array.Shape(in.Shape)
		if err := shape.Validate(); err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		if n := shape.NumElements(); n != len(in.Data) {
			return fmt.Errorf("input %d: %w: shape %v requires %d elements, got %d",
				i, array.ErrShapeMismatch, shape, n, len(in.Data))
		}
	}
	if j.OutShape != nil {
		if err := array.Shape(j.OutShape).Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOutput, err)
		}
	}
	if j.OutDType != "" {
		if _, ok := array.ParseDataType(j.OutDType); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownDType, j.OutDType)
		}
	}
	return nil
}

// InputShapes returns the shape of every input.
func (j *Job) InputShapes() []array.Shape {
	shapes := make([]array.Shape, len(j.Inputs))
	for i, in := range j.Inputs {
		shapes[i] = array.Shape(in.Shape).Clone()
	}
	return shapes
}

// ResolveOutShape returns the configured output shape, or the broadcast of
// all input shapes when none is set.
func (j *Job) ResolveOutShape() (array.Shape, error) {
	if j.OutShape != nil {
		return array.Shape(j.OutShape).Clone(), nil
	}
	shape, err := array.BroadcastShapes(j.InputShapes()...)
	if err != nil {
		return nil, fmt.Errorf("failed to derive output shape: %w", err)
	}
	return shape, nil
}

// ResolveOutDType returns the output data type, float64 by default.
func (j *Job) ResolveOutDType() array.DataType {
	if j.OutDType == "" {
		return array.Float64
	}
	dt, _ := array.ParseDataType(j.OutDType)
	return dt
}
