package vector

import (
	"fmt"
	"sort"
	"strings"
)

// Construct is the general-purpose constructor behind NewFromArgs and
// NewNamed. Exactly one form may be used:
//
//   - two positional float-convertible values: x, y
//   - one positional vector-like (see ConvertAny)
//   - the named values "x" and "y"
//
// Any other combination fails with ErrInvalidArgument before a component is
// read.
func Construct(args []any, named map[string]any) (Vector2, error) {
	if len(args) > 0 && len(named) > 0 {
		return Vector2{}, fmt.Errorf("%w: got a mix of positional and named arguments", ErrInvalidArgument)
	}

	total := len(args) + len(named)
	if total == 0 || len(args) > 2 {
		return Vector2{}, fmt.Errorf("%w: expected 1 vector-like or 2 float-like arguments, got %d", ErrInvalidArgument, total)
	}

	if len(named) > 0 {
		_, hasX := named["x"]
		_, hasY := named["y"]
		if len(named) != 2 || !hasX || !hasY {
			return Vector2{}, fmt.Errorf("%w: expected named arguments x and y, got: %s", ErrInvalidArgument, joinKeys(named))
		}
		return fromScalars(named["x"], named["y"])
	}

	if len(args) == 1 {
		return ConvertAny(args[0])
	}
	return fromScalars(args[0], args[1])
}

// NewFromArgs builds a vector from two scalars or from one vector-like.
func NewFromArgs(args ...any) (Vector2, error) {
	return Construct(args, nil)
}

// NewNamed builds a vector from the named values "x" and "y".
func NewNamed(named map[string]any) (Vector2, error) {
	if len(named) == 0 {
		return Vector2{}, fmt.Errorf("%w: expected named arguments x and y, got none", ErrInvalidArgument)
	}
	return Construct(nil, named)
}

func fromScalars(xv, yv any) (Vector2, error) {
	x, err := toFloat(xv)
	if err != nil {
		return Vector2{}, err
	}
	y, err := toFloat(yv)
	if err != nil {
		return Vector2{}, err
	}
	return Vector2{X: x, Y: y}, nil
}

func joinKeys(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
