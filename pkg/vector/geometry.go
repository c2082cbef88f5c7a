package vector

import (
	"fmt"
	"math"
)

// Default tolerances of IsClose.
const (
	DefaultAbsTol = 1e-9
	DefaultRelTol = 1e-9
)

// Conversion factors, rounded from the float64 value of Pi.
const (
	radToDeg = 180 / float64(math.Pi)
	degToRad = float64(math.Pi) / 180
)

// Length calculates the Euclidean length of the vector.
func (v Vector2) Length() float64 {
	// math.Hypot avoids overflow and underflow on extreme components.
	return math.Hypot(v.X, v.Y)
}

// Distance returns the length of `v - other`.
func (v Vector2) Distance(other Like) float64 {
	return v.Sub(other).Length()
}

// Angle returns the signed angle in degrees from v to other, in (-180, 180].
// Positive angles are counter-clockwise, as with Rotate.
func (v Vector2) Angle(other Like) float64 {
	w := other.likeVector()

	rv := (math.Atan2(w.X, -w.Y) - math.Atan2(v.X, -v.Y)) * radToDeg
	if rv <= -180 {
		rv += 360
	} else if rv > 180 {
		rv -= 360
	}
	return rv
}

type closeSettings struct {
	absTol float64
	relTol float64
	relTo  []Like
}

// CloseOption tunes IsClose.
type CloseOption func(*closeSettings)

// WithAbsTol sets the absolute tolerance: the length of the difference vector
// under which two vectors are always close.
func WithAbsTol(tol float64) CloseOption {
	return func(s *closeSettings) { s.absTol = tol }
}

// WithRelTol sets the relative tolerance, scaled by the longest input.
func WithRelTol(tol float64) CloseOption {
	return func(s *closeSettings) { s.relTol = tol }
}

// RelativeTo adds vectors that count as inputs for the relative tolerance.
// This widens the reference scale when comparing results derived from larger
// quantities, where rounding errors are proportional to those quantities.
func RelativeTo(refs ...Like) CloseOption {
	return func(s *closeSettings) { s.relTo = append(s.relTo, refs...) }
}

// IsClose performs an approximate comparison. With diff = |v - other| and ref
// the longest of v, other and any RelativeTo vectors, the vectors are close
// when diff <= relTol*ref or diff <= absTol. Both tolerances default to 1e-9
// and must be non-negative.
func (v Vector2) IsClose(other Like, opts ...CloseOption) (bool, error) {
	s := closeSettings{absTol: DefaultAbsTol, relTol: DefaultRelTol}
	for _, opt := range opts {
		opt(&s)
	}
	if s.absTol < 0 || s.relTol < 0 {
		return false, fmt.Errorf("%w: IsClose takes non-negative tolerances (abs=%g, rel=%g)", ErrInvalidArgument, s.absTol, s.relTol)
	}

	w := other.likeVector()
	ref := math.Max(v.Length(), w.Length())
	for _, r := range s.relTo {
		ref = math.Max(ref, r.likeVector().Length())
	}

	diff := v.Sub(w).Length()
	return diff <= s.relTol*ref || diff <= s.absTol, nil
}

// Close is IsClose with the default tolerances.
func (v Vector2) Close(other Like) bool {
	ok, _ := v.IsClose(other)
	return ok
}

// Normalize returns the vector with the same direction and unit length. It is
// equivalent to ScaleTo(1).
func (v Vector2) Normalize() Vector2 {
	n, _ := v.ScaleTo(1)
	return n
}

// ScaleTo returns the vector with the same direction and the given length.
// A zero length yields the zero vector; a negative one is an
// ErrInvalidArgument. Scaling the zero vector to a positive length divides by
// zero and yields NaN components.
func (v Vector2) ScaleTo(length float64) (Vector2, error) {
	if length < 0 {
		return Vector2{}, fmt.Errorf("%w: ScaleTo takes non-negative lengths, got %g", ErrInvalidArgument, length)
	}
	if length == 0 {
		return Vector2{}, nil
	}
	return v.ScaleBy(length).Div(v.Length()), nil
}

// Truncate scales v down to maxLength if it is longer, and returns it
// unchanged otherwise. Because of rounding the result may exceed maxLength
// by a negligible amount.
func (v Vector2) Truncate(maxLength float64) (Vector2, error) {
	if v.Length() <= maxLength {
		return v, nil
	}
	return v.ScaleTo(maxLength)
}

// Reflect mirrors v against the line through the origin whose unit normal is
// given. The normal's length must be close to 1 under the default relative
// tolerance.
func (v Vector2) Reflect(normal Like) (Vector2, error) {
	n := normal.likeVector()
	if !floatsClose(n.Length(), 1) {
		return Vector2{}, fmt.Errorf("%w: reflection requires a normalized vector, got %s", ErrInvalidArgument, n)
	}
	return v.Sub(n.ScaleBy(2 * v.Dot(n))), nil
}

// floatsClose compares two floats with a relative tolerance of 1e-9 and no
// absolute tolerance.
func floatsClose(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= DefaultRelTol*math.Max(math.Abs(a), math.Abs(b))
}
