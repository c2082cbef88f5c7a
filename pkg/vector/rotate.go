package vector

import "math"

// Trig returns the cosine and sine of an angle in degrees, corrected so that
// cos² + sin² is as close to 1 as float64 allows.
//
// Evaluated independently, the two rarely satisfy the identity exactly. The
// value with the larger magnitude is kept and the other one is derived from
// it, which keeps rotations from changing the length of the vectors they
// apply to.
func Trig(angle float64) (cos, sin float64) {
	r := angle * degToRad
	cos, sin = math.Cos(r), math.Sin(r)

	if math.Abs(cos) > math.Abs(sin) {
		// sin = ±√(1 - cos²), keeping the sign of the raw sine.
		sin = math.Copysign(math.Sqrt(1-cos*cos), sin)
	} else {
		cos = math.Copysign(math.Sqrt(1-sin*sin), cos)
	}
	return cos, sin
}

// Rotate rotates v around the origin by angle degrees. Positive angles are
// counter-clockwise.
func (v Vector2) Rotate(angle float64) Vector2 {
	c, s := Trig(angle)
	return Vector2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}
