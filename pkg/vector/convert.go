package vector

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// ConvertAny builds a vector from an untyped vector-like, as produced by
// decoding JSON or YAML. It accepts:
//
//   - any Like or Vectorer, returned without copying its components,
//   - a slice or array of exactly two float-convertible elements, read as x, y,
//   - a map with string keys holding exactly the keys "x" and "y".
//
// Any other shape fails with ErrValueConversion. A recognized shape holding a
// non-numeric element fails with ErrInvalidArgument.
func ConvertAny(value any) (Vector2, error) {
	if value == nil {
		return Vector2{}, fmt.Errorf("%w: cannot use <nil> as a vector-like", ErrValueConversion)
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Vector2{}, fmt.Errorf("%w: cannot use nil %T as a vector-like", ErrValueConversion, value)
		}
	}

	switch v := value.(type) {
	case Like:
		return v.likeVector(), nil
	case Vectorer:
		return v.Vector(), nil
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() != 2 {
			break
		}
		x, err := toFloat(rv.Index(0).Interface())
		if err != nil {
			return Vector2{}, err
		}
		y, err := toFloat(rv.Index(1).Interface())
		if err != nil {
			return Vector2{}, err
		}
		return Vector2{X: x, Y: y}, nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String || rv.Len() != 2 {
			break
		}
		xv := mapIndex(rv, "x")
		yv := mapIndex(rv, "y")
		if !xv.IsValid() || !yv.IsValid() {
			break
		}
		x, err := toFloat(xv.Interface())
		if err != nil {
			return Vector2{}, err
		}
		y, err := toFloat(yv.Interface())
		if err != nil {
			return Vector2{}, err
		}
		return Vector2{X: x, Y: y}, nil
	}

	return Vector2{}, fmt.Errorf("%w: cannot use %v as a vector-like", ErrValueConversion, value)
}

// mapIndex looks up a string key in a map whose key type may be a named
// string type.
func mapIndex(m reflect.Value, key string) reflect.Value {
	return m.MapIndex(reflect.ValueOf(key).Convert(m.Type().Key()))
}

// toFloat converts a scalar to float64. nil is rejected instead of being read
// as zero.
func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case nil:
		return 0, fmt.Errorf("%w: <nil> object not convertible to float", ErrInvalidArgument)
	case float64:
		return v, nil
	case Scalar:
		return float64(v), nil
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %T object not convertible to float", ErrInvalidArgument, value)
	}
	return f, nil
}
