package vector

// Like is the closed set of typed vector-likes: Vector2, Pair and
// Coordinates. Structs embedding a Vector2 are vector-likes as well, through
// the promoted method.
type Like interface {
	Operand
	likeVector() Vector2
}

// Vectorer is implemented by values that carry a Vector2, typically wrappers
// that embed one alongside their own fields.
type Vectorer interface {
	Vector() Vector2
}

// Pair is an ordered (x, y) vector-like.
type Pair [2]float64

// Coordinates is the keyed vector-like form.
type Coordinates struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (v Vector2) likeVector() Vector2     { return v }
func (p Pair) likeVector() Vector2        { return Vector2{X: p[0], Y: p[1]} }
func (c Coordinates) likeVector() Vector2 { return Vector2{X: c.X, Y: c.Y} }

// Convert returns the vector described by a typed vector-like. Vector2
// values come back unchanged.
func Convert(l Like) Vector2 {
	return l.likeVector()
}

// Operand is the right-hand side accepted by Multiply: either a Scalar or a
// vector-like.
type Operand interface {
	operand()
}

func (Vector2) operand()     {}
func (Pair) operand()        {}
func (Coordinates) operand() {}
func (Scalar) operand()      {}

// Scalar is a real number operand or result.
type Scalar float64

// String renders the scalar the same way Vector2 renders its components.
func (s Scalar) String() string { return formatFloat(float64(s)) }

// Value is what Multiply produces: a Vector2 for a scalar product, or a
// Scalar for a dot product.
type Value interface {
	String() string
	value()
}

func (Vector2) value() {}
func (Scalar) value()  {}
