package vector

// Builder constructs a caller-chosen result type from two components. The
// plain operators always return Vector2; the *With variants hand their result
// to a Builder instead, so wrapper types can keep their own type through
// arithmetic without any runtime type inspection.
type Builder[T any] func(x, y float64) T

// Build hands the components of v to build.
func Build[T any](build Builder[T], v Vector2) T {
	return build(v.X, v.Y)
}

// AddWith is Add with an injected result type.
func AddWith[T any](build Builder[T], a Vectorer, b Like) T {
	return Build(build, a.Vector().Add(b))
}

// SubWith is Sub with an injected result type.
func SubWith[T any](build Builder[T], a Vectorer, b Like) T {
	return Build(build, a.Vector().Sub(b))
}

// NegWith is Neg with an injected result type.
func NegWith[T any](build Builder[T], a Vectorer) T {
	return Build(build, a.Vector().Neg())
}

// ScaleByWith is ScaleBy with an injected result type.
func ScaleByWith[T any](build Builder[T], a Vectorer, scalar float64) T {
	return Build(build, a.Vector().ScaleBy(scalar))
}

// RotateWith is Rotate with an injected result type.
func RotateWith[T any](build Builder[T], a Vectorer, angle float64) T {
	return Build(build, a.Vector().Rotate(angle))
}

// ScaleToWith is ScaleTo with an injected result type.
func ScaleToWith[T any](build Builder[T], a Vectorer, length float64) (T, error) {
	v, err := a.Vector().ScaleTo(length)
	if err != nil {
		var zero T
		return zero, err
	}
	return Build(build, v), nil
}
