// Package vector provides Vector2, an immutable 2D vector for geometry and
// physics code.
//
// Vectors are plain values:
//
//	v := vector.New(3, 4)
//	v.Length()                    // 5
//	v.Rotate(90)                  // Vector2(-4.0, 3.0)
//	v.Add(vector.Pair{1, 1})      // Vector2(4.0, 5.0)
//	v.Multiply(vector.Scalar(2))  // Vector2(6.0, 8.0)
//	v.Multiply(vector.Pair{1, 0}) // 3.0
//
// Operations that take a second vector accept any Like: a Vector2, a Pair, a
// Coordinates, or a struct that embeds a Vector2. Untyped input, such as a
// decoded JSON document, goes through ConvertAny or the *Any operators, which
// recognize two-element sequences and {"x", "y"} mappings.
//
// Rotations use Trig, which corrects the sine/cosine pair so that repeated
// rotations do not drift in length.
package vector
