// pkg/vector/vector2.go
package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vector2 is an immutable 2D vector. Every operation has a value receiver and
// returns a new Vector2, so values can be shared freely between goroutines.
//
// Two vectors are equal when their components are exactly equal, which makes
// Vector2 usable with == and as a map key. Use IsClose for approximate
// comparisons.
type Vector2 struct {
	// X is the horizontal component of the vector.
	X float64
	// Y is the vertical component of the vector.
	Y float64
}

// Zero is the null vector.
var Zero = Vector2{}

// New returns the vector (x, y).
func New(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Vector returns v itself. Types that embed a Vector2 inherit this method and
// therefore satisfy Vectorer.
func (v Vector2) Vector() Vector2 {
	return v
}

// AsMap returns the keyed form {"x": X, "y": Y}. ConvertAny(v.AsMap()) == v
// for every finite v.
func (v Vector2) AsMap() map[string]float64 {
	return map[string]float64{"x": v.X, "y": v.Y}
}

// Equal reports whether other is a vector-like with exactly the same
// components. Values that cannot be converted are never equal.
func (v Vector2) Equal(other any) bool {
	w, err := ConvertAny(other)
	if err != nil {
		return false
	}
	return v.X == w.X && v.Y == w.Y
}

// String renders the vector as "Vector2(x, y)".
func (v Vector2) String() string {
	return fmt.Sprintf("Vector2(%s, %s)", formatFloat(v.X), formatFloat(v.Y))
}

// Field replaces one component in Update.
type Field func(*Vector2)

// WithX replaces the X component.
func WithX(x float64) Field { return func(v *Vector2) { v.X = x } }

// WithY replaces the Y component.
func WithY(y float64) Field { return func(v *Vector2) { v.Y = y } }

// Update returns a copy of v with the given fields replaced.
func (v Vector2) Update(fields ...Field) Vector2 {
	for _, f := range fields {
		f(&v)
	}
	return v
}

// formatFloat prints the shortest decimal that round-trips, always keeping a
// fractional part or an exponent so that 3 reads as "3.0".
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
