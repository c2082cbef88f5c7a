package vector

import (
	"fmt"
	"iter"
	"reflect"
)

// Len returns the number of components, always 2.
func (v Vector2) Len() int { return 2 }

// Components returns X and Y, for destructuring.
func (v Vector2) Components() (x, y float64) {
	return v.X, v.Y
}

// Index returns X for 0 and Y for 1.
func (v Vector2) Index(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
}

// Key returns X for "x" and Y for "y".
func (v Vector2) Key(k string) (float64, error) {
	switch k {
	case "x":
		return v.X, nil
	case "y":
		return v.Y, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrMissingKey, k)
}

// Get looks up a component by integer index or string key. Any other item
// type is an ErrInvalidArgument.
func (v Vector2) Get(item any) (float64, error) {
	if k, ok := item.(string); ok {
		return v.Key(k)
	}
	if item != nil {
		rv := reflect.ValueOf(item)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return v.Index(int(rv.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if rv.Uint() > 1 {
				return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, rv.Uint())
			}
			return v.Index(int(rv.Uint()))
		}
	}
	return 0, fmt.Errorf("%w: cannot index Vector2 with %T", ErrInvalidArgument, item)
}

// All yields X then Y. Each call to the returned sequence starts over.
func (v Vector2) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !yield(v.X) {
			return
		}
		yield(v.Y)
	}
}
