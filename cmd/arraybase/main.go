// Package main provides the arraybase CLI.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/arraybase/array"
	"github.com/born-ml/arraybase/internal/config"
	"github.com/born-ml/arraybase/internal/logging"
	"github.com/born-ml/arraybase/ufunc"
)

const version = "v0.1.0-dev"

// cli holds state shared by all commands.
type cli struct {
	verbose bool
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "arraybase",
		Short: "Broadcasting and elementwise array utilities",
		Long: `arraybase inspects NumPy-style broadcasts and evaluates broadcasted
elementwise operations described in YAML job files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(c.verbose)
			if err != nil {
				return err
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(c.versionCmd(), c.broadcastCmd(), c.applyCmd())
	return root
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "arraybase %s\n", version)
			return err
		},
	}
}

// broadcastReport is the YAML output of the broadcast command.
type broadcastReport struct {
	Shape          []int `yaml:"shape"`
	ViewShape      []int `yaml:"view_shape"`
	Strides        []int `yaml:"strides,flow"`
	ElementStrides []int `yaml:"element_strides,flow"`
}

func (c *cli) broadcastCmd() *cobra.Command {
	var inFlag, outFlag string

	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Show the strides of broadcasting one shape to another",
		Example: `  arraybase broadcast --in 2 --out 2,2
  arraybase broadcast --in 3,1 --out 2,3,4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseShape(inFlag)
			if err != nil {
				return fmt.Errorf("--in: %w", err)
			}
			out, err := parseShape(outFlag)
			if err != nil {
				return fmt.Errorf("--out: %w", err)
			}

			b, err := array.BroadcastArray(nil, in, out)
			if err != nil {
				return err
			}
			c.logger.Debug("broadcast",
				logging.ShapeField("in", in),
				logging.ShapeField("out", out),
				zap.Ints("strides", b.Strides))

			return writeYAML(cmd, broadcastReport{
				Shape:          b.Shape,
				ViewShape:      b.Data.Shape,
				Strides:        b.Strides,
				ElementStrides: b.ElementStrides(),
			})
		},
	}
	cmd.Flags().StringVar(&inFlag, "in", "", "Input shape, comma separated (empty for a scalar)")
	cmd.Flags().StringVar(&outFlag, "out", "", "Target shape, comma separated")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// applyReport is the YAML output of the apply command.
type applyReport struct {
	Op    string `yaml:"op"`
	DType string `yaml:"dtype"`
	Shape []int  `yaml:"shape,flow"`
	Data  []any  `yaml:"data,flow"`
}

func (c *cli) applyCmd() *cobra.Command {
	var jobPath string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Evaluate a broadcasted elementwise job",
		Long: `Evaluate a YAML job of the form:

  op: fma
  inputs:
    - {data: [1, 2, 3], shape: [3]}
    - {data: [10, 20], shape: [2, 1]}
    - {data: [0.5], shape: []}
  out_shape: [2, 3]    # optional, defaults to the broadcast of all inputs
  out_dtype: float32   # optional, defaults to float64

Available ops: ` + strings.Join(opNames(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := config.Load(jobPath)
			if err != nil {
				return err
			}
			report, err := c.runJob(job)
			if err != nil {
				return err
			}
			return writeYAML(cmd, report)
		},
	}
	cmd.Flags().StringVarP(&jobPath, "job", "j", "", "Path to the YAML job file")
	_ = cmd.MarkFlagRequired("job")
	return cmd
}

func (c *cli) runJob(job *config.Job) (*applyReport, error) {
	o, err := lookupOp(job.Op, len(job.Inputs))
	if err != nil {
		return nil, err
	}
	outShape, err := job.ResolveOutShape()
	if err != nil {
		return nil, err
	}
	dt := job.ResolveOutDType()

	arrays := make([]any, 0, len(job.Inputs)+1)
	for _, in := range job.Inputs {
		arrays = append(arrays, in.Data)
	}
	out := array.Zeros(dt, outShape.NumElements())
	arrays = append(arrays, out)
	shapes := append(job.InputShapes(), outShape)

	c.logger.Debug("applying job",
		zap.String("op", job.Op),
		zap.Int("inputs", len(job.Inputs)),
		logging.ShapeField("out_shape", outShape),
		zap.Stringer("out_dtype", dt))

	scratch := make([]float64, len(job.Inputs))
	err = ufunc.Apply(arrays, shapes, func(args []any) any {
		for i, a := range args {
			scratch[i] = a.(float64)
		}
		return o.fn(scratch)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", job.Op, err)
	}

	c.logger.Info("job complete", zap.String("op", job.Op), zap.Int("elements", outShape.NumElements()))

	return &applyReport{
		Op:    job.Op,
		DType: dt.String(),
		Shape: outShape,
		Data:  renderValues(array.ToGeneric(out)),
	}, nil
}

// renderValues makes complex values YAML friendly.
func renderValues(values []any) []any {
	for i, v := range values {
		switch x := v.(type) {
		case complex128:
			values[i] = strconv.FormatComplex(x, 'g', -1, 128)
		case complex64:
			values[i] = strconv.FormatComplex(complex128(x), 'g', -1, 64)
		}
	}
	return values
}

// parseShape parses "2,3,4" into a shape. An empty string is a scalar shape.
func parseShape(s string) (array.Shape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return array.Shape{}, nil
	}
	parts := strings.Split(s, ",")
	shape := make(array.Shape, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q: %w", p, err)
		}
		shape[i] = d
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}
