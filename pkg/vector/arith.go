package vector

import (
	"fmt"
	"reflect"
)

// Add performs vector addition, returning `v + other`.
func (v Vector2) Add(other Like) Vector2 {
	w := other.likeVector()
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub performs vector subtraction, returning `v - other`.
func (v Vector2) Sub(other Like) Vector2 {
	w := other.likeVector()
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Neg returns the vector with the same length and the opposite direction.
// It is equivalent to ScaleBy(-1).
func (v Vector2) Neg() Vector2 {
	return v.ScaleBy(-1)
}

// ScaleBy performs scalar multiplication, returning `scalar * v`.
func (v Vector2) ScaleBy(scalar float64) Vector2 {
	return Vector2{X: scalar * v.X, Y: scalar * v.Y}
}

// Dot calculates the dot product of v and other.
func (v Vector2) Dot(other Like) float64 {
	w := other.likeVector()
	return v.X*w.X + v.Y*w.Y
}

// Div divides both components by scalar. Division by zero follows IEEE-754
// and produces infinities or NaN.
func (v Vector2) Div(scalar float64) Vector2 {
	return Vector2{X: v.X / scalar, Y: v.Y / scalar}
}

// Multiply is the scalar-or-dot product. A Scalar operand scales v and
// yields a Vector2; a vector-like operand yields their dot product as a
// Scalar.
func (v Vector2) Multiply(other Operand) Value {
	switch o := other.(type) {
	case Scalar:
		return v.ScaleBy(float64(o))
	case Like:
		return Scalar(v.Dot(o))
	}
	panic(fmt.Sprintf("vector: unexpected operand %T", other))
}

// The *Any operators accept untyped right-hand operands. When the operand
// cannot be converted they return an error wrapping ErrNotApplicable, which
// leaves the caller free to try another operation.

// AddAny is Add for an untyped operand.
func (v Vector2) AddAny(other any) (Vector2, error) {
	w, err := ConvertAny(other)
	if err != nil {
		return Vector2{}, notApplicable("+", other, err)
	}
	return v.Add(w), nil
}

// SubAny is Sub for an untyped operand.
func (v Vector2) SubAny(other any) (Vector2, error) {
	w, err := ConvertAny(other)
	if err != nil {
		return Vector2{}, notApplicable("-", other, err)
	}
	return v.Sub(w), nil
}

// DotAny is Dot for an untyped operand.
func (v Vector2) DotAny(other any) (float64, error) {
	w, err := ConvertAny(other)
	if err != nil {
		return 0, notApplicable("dot", other, err)
	}
	return v.Dot(w), nil
}

// MulAny scales v when other is a real number and takes the dot product
// otherwise.
func (v Vector2) MulAny(other any) (Value, error) {
	if s, ok := asRealNumber(other); ok {
		return v.ScaleBy(s), nil
	}
	w, err := ConvertAny(other)
	if err != nil {
		return nil, notApplicable("*", other, err)
	}
	return Scalar(v.Dot(w)), nil
}

// ScaleByAny is ScaleBy for an untyped scalar. A value that is not
// float-convertible is an ErrInvalidArgument.
func (v Vector2) ScaleByAny(scalar any) (Vector2, error) {
	s, err := toFloat(scalar)
	if err != nil {
		return Vector2{}, err
	}
	return v.ScaleBy(s), nil
}

// DivAny is Div for an untyped scalar.
func (v Vector2) DivAny(scalar any) (Vector2, error) {
	s, err := toFloat(scalar)
	if err != nil {
		return Vector2{}, err
	}
	return v.Div(s), nil
}

// asRealNumber reports whether value is a Go integer, float or bool
// (including named types such as Scalar) and returns it as float64. A bool
// counts as 0 or 1.
func asRealNumber(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func notApplicable(op string, other any, cause error) error {
	return fmt.Errorf("%w: Vector2 %s %T: %v", ErrNotApplicable, op, other, cause)
}
