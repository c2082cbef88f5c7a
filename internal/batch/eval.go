// internal/batch/eval.go
package batch

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/xkilldash9x/vector2/internal/config"
	"github.com/xkilldash9x/vector2/pkg/dispatch"
	"github.com/xkilldash9x/vector2/pkg/vector"
)

// Ops lists the operation names a Job may carry.
var Ops = []string{
	"add", "sub", "neg", "dot", "scale_by", "multiply", "div",
	"length", "distance", "angle", "isclose", "normalize", "scale_to",
	"truncate", "reflect", "rotate", "trig", "convert", "get",
}

// Evaluator computes the value of a single Job.
type Evaluator struct {
	ops       *dispatch.Dispatcher
	tolerance config.ToleranceConfig
}

// NewEvaluator creates an Evaluator and registers the Labeled operand type
// on ops. The tolerances apply to isclose jobs that do not carry their own.
func NewEvaluator(ops *dispatch.Dispatcher, tolerance config.ToleranceConfig) *Evaluator {
	registerTypes(ops)
	return &Evaluator{ops: ops, tolerance: tolerance}
}

// Trig is the value of a trig job.
type Trig struct {
	Cos float64 `json:"cos" yaml:"cos"`
	Sin float64 `json:"sin" yaml:"sin"`
}

// Evaluate runs job and returns its value: a vector.Vector2, a Labeled, a
// vector.Scalar, a bool or a Trig.
func (e *Evaluator) Evaluate(job Job) (any, error) {
	op := strings.ToLower(job.Op)

	// multiply is the one operation whose left side may be a plain number.
	if op == "multiply" || op == "mul" {
		right := job.Other
		if right == nil {
			right = job.Scalar
		}
		left, err := operand(job.Vector)
		if err != nil {
			return nil, fmt.Errorf("vector: %w", err)
		}
		if right, err = operand(right); err != nil {
			return nil, fmt.Errorf("other: %w", err)
		}
		return e.ops.Eval(dispatch.Mul, left, right)
	}

	left, err := operand(job.Vector)
	if err != nil {
		return nil, fmt.Errorf("vector: %w", err)
	}
	v, err := vector.ConvertAny(left)
	if err != nil {
		return nil, fmt.Errorf("vector: %w", err)
	}

	switch op {
	case "add", "sub", "dot", "div":
		operator, _ := dispatch.ParseOperator(op)
		right := job.Other
		if operator == dispatch.Div {
			right = job.Scalar
		}
		if right, err = operand(right); err != nil {
			return nil, fmt.Errorf("other: %w", err)
		}
		return e.ops.Eval(operator, left, right)
	case "neg":
		return e.ops.Negate(left)
	case "scale_by":
		return v.ScaleByAny(job.Scalar)
	case "length":
		return vector.Scalar(v.Length()), nil
	case "normalize":
		return v.Normalize(), nil
	case "convert":
		return v, nil
	case "scale_to", "truncate":
		length, err := toFloat("scalar", job.Scalar)
		if err != nil {
			return nil, err
		}
		if op == "scale_to" {
			return v.ScaleTo(length)
		}
		return v.Truncate(length)
	case "rotate", "trig":
		angle, err := toFloat("angle", job.Angle)
		if err != nil {
			return nil, err
		}
		if op == "rotate" {
			return v.Rotate(angle), nil
		}
		cos, sin := vector.Trig(angle)
		return Trig{Cos: cos, Sin: sin}, nil
	case "get":
		return e.get(v, job.Item)
	}

	other, err := toVector(job.Other)
	if err != nil {
		return nil, fmt.Errorf("other: %w", err)
	}
	switch op {
	case "distance":
		return vector.Scalar(v.Distance(other)), nil
	case "angle":
		return vector.Scalar(v.Angle(other)), nil
	case "reflect":
		return v.Reflect(other)
	case "isclose":
		return e.isClose(v, other, job)
	}
	return nil, fmt.Errorf("%w: unknown op %q", vector.ErrInvalidArgument, job.Op)
}

func (e *Evaluator) isClose(v, other vector.Vector2, job Job) (bool, error) {
	absTol, relTol := e.tolerance.AbsTol, e.tolerance.RelTol
	if job.AbsTol != nil {
		absTol = *job.AbsTol
	}
	if job.RelTol != nil {
		relTol = *job.RelTol
	}
	opts := []vector.CloseOption{vector.WithAbsTol(absTol), vector.WithRelTol(relTol)}
	if len(job.RelTo) > 0 {
		refs := make([]vector.Like, 0, len(job.RelTo))
		for i, raw := range job.RelTo {
			ref, err := toVector(raw)
			if err != nil {
				return false, fmt.Errorf("rel_to[%d]: %w", i, err)
			}
			refs = append(refs, ref)
		}
		opts = append(opts, vector.RelativeTo(refs...))
	}
	return v.IsClose(other, opts...)
}

// get reads a component. Decoded numbers arrive as floats, so whole floats
// are accepted as indices.
func (e *Evaluator) get(v vector.Vector2, item any) (any, error) {
	if f, ok := item.(float64); ok && f == math.Trunc(f) && math.Abs(f) < math.MaxInt32 {
		item = int(f)
	}
	c, err := v.Get(item)
	if err != nil {
		return nil, err
	}
	return vector.Scalar(c), nil
}

func toFloat(name string, value any) (float64, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: %s is required", vector.ErrInvalidArgument, name)
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", vector.ErrInvalidArgument, name, err)
	}
	return f, nil
}

// encodable replaces values JSON cannot carry, such as infinite components,
// with their string form.
func encodable(value any) any {
	finite := func(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
	switch v := value.(type) {
	case vector.Vector2:
		if !finite(v.X) || !finite(v.Y) {
			return v.String()
		}
	case Labeled:
		if !finite(v.X) || !finite(v.Y) {
			return v.String()
		}
	case vector.Scalar:
		if !finite(float64(v)) {
			return v.String()
		}
	case Trig:
		if !finite(v.Cos) || !finite(v.Sin) {
			return fmt.Sprintf("cos=%v sin=%v", v.Cos, v.Sin)
		}
	}
	return value
}
