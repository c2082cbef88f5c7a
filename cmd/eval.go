// File: cmd/eval.go
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/vector2/internal/batch"
	"github.com/xkilldash9x/vector2/internal/config"
	"github.com/xkilldash9x/vector2/internal/observability"
	"github.com/xkilldash9x/vector2/pkg/dispatch"
	"github.com/xkilldash9x/vector2/pkg/vector"
)

// evalOptions holds the flags of the eval command.
type evalOptions struct {
	scalar string
	angle  string
	item   string
	absTol float64
	relTol float64
	relTo  []string
	asJSON bool
}

func newEvalCmd() *cobra.Command {
	var opts evalOptions

	evalCmd := &cobra.Command{
		Use:   "eval <op> <vector> [operand]",
		Short: "Evaluate a single vector operation",
		Long: `Evaluates one operation and prints its result.

Vectors are given as JSON ("[1, 2]" or '{"x": 1, "y": 2}') or as "1,2".
The optional operand is the other vector for binary operations, the scalar
for scale_by, div, scale_to and truncate, the angle in degrees for rotate
and trig, and the index or key for get.

Operations: ` + strings.Join(batch.Ops, ", "),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("abs-tol") {
				cfg.SetToleranceAbsTol(opts.absTol)
			}
			if cmd.Flags().Changed("rel-tol") {
				cfg.SetToleranceRelTol(opts.relTol)
			}

			job, err := buildEvalJob(args, opts)
			if err != nil {
				return err
			}
			return runEval(cmd.Context(), observability.GetLogger(), cfg, cmd.OutOrStdout(), job, opts.asJSON)
		},
	}

	evalCmd.Flags().StringVar(&opts.scalar, "scalar", "", "scalar operand")
	evalCmd.Flags().StringVar(&opts.angle, "angle", "", "angle in degrees")
	evalCmd.Flags().StringVar(&opts.item, "item", "", "index or key for get")
	evalCmd.Flags().Float64Var(&opts.absTol, "abs-tol", 0, "absolute tolerance for isclose (default from config)")
	evalCmd.Flags().Float64Var(&opts.relTol, "rel-tol", 0, "relative tolerance for isclose (default from config)")
	evalCmd.Flags().StringArrayVar(&opts.relTo, "rel-to", nil, "extra reference vectors for the isclose relative tolerance")
	evalCmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")

	return evalCmd
}

// buildEvalJob turns command line arguments into a batch job.
func buildEvalJob(args []string, opts evalOptions) (batch.Job, error) {
	job := batch.Job{ID: "eval", Op: strings.ToLower(args[0])}

	var err error
	if job.Vector, err = parseOperand(args[1]); err != nil {
		return job, fmt.Errorf("invalid vector: %w", err)
	}

	if len(args) == 3 {
		operand, err := parseOperand(args[2])
		if err != nil {
			return job, fmt.Errorf("invalid operand: %w", err)
		}
		switch job.Op {
		case "scale_by", "div", "scale_to", "truncate":
			job.Scalar = operand
		case "rotate", "trig":
			job.Angle = operand
		case "get":
			job.Item = operand
		default:
			job.Other = operand
		}
	}

	if opts.scalar != "" {
		job.Scalar = opts.scalar
	}
	if opts.angle != "" {
		job.Angle = opts.angle
	}
	if opts.item != "" {
		if job.Item, err = parseOperand(opts.item); err != nil {
			return job, fmt.Errorf("invalid --item: %w", err)
		}
	}
	for _, raw := range opts.relTo {
		ref, err := parseOperand(raw)
		if err != nil {
			return job, fmt.Errorf("invalid --rel-to: %w", err)
		}
		job.RelTo = append(job.RelTo, ref)
	}
	return job, nil
}

// parseOperand reads a command line operand: JSON first, then a bare "x,y"
// pair. Anything else is passed through as a string.
func parseOperand(s string) (any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty operand")
	}
	var value any
	if err := json.UnmarshalFromString(s, &value); err == nil {
		return value, nil
	}
	if x, y, ok := strings.Cut(s, ","); ok {
		return []any{strings.TrimSpace(x), strings.TrimSpace(y)}, nil
	}
	return s, nil
}

// runEval contains the testable core of the eval command.
func runEval(ctx context.Context, logger *zap.Logger, cfg config.Interface, out io.Writer, job batch.Job, asJSON bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	eval := batch.NewEvaluator(dispatch.New(logger), cfg.Tolerance())
	value, err := eval.Evaluate(job)
	if err != nil {
		return fmt.Errorf("%s: %w", job.Op, err)
	}
	logger.Debug("Evaluated.", zap.String("op", job.Op), zap.Any("value", value))

	if asJSON {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	_, err = fmt.Fprintln(out, formatValue(value))
	return err
}

func formatValue(value any) string {
	switch v := value.(type) {
	case fmt.Stringer:
		return v.String()
	case batch.Trig:
		return fmt.Sprintf("cos=%s sin=%s", vector.Scalar(v.Cos), vector.Scalar(v.Sin))
	}
	return fmt.Sprint(value)
}
