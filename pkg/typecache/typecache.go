// pkg/typecache/typecache.go
package typecache

import (
	"reflect"
	"sync"

	"github.com/xkilldash9x/vector2/pkg/vector"
)

var vectorerType = reflect.TypeFor[vector.Vectorer]()

type pair struct {
	left, right reflect.Type
}

// Cache memoizes Lowest decisions. The zero value is ready to use and is safe
// for concurrent use.
type Cache struct {
	decisions sync.Map // pair -> reflect.Type
}

// Lowest picks the more specific of two operand types, which is the type an
// arithmetic result is built as.
//
// Identical types yield left. A type that does not implement
// vector.Vectorer always loses to the other one. Otherwise the type whose
// embedding ancestry is larger wins, and ties go to left.
func (c *Cache) Lowest(left, right reflect.Type) reflect.Type {
	key := pair{left, right}
	if t, ok := c.decisions.Load(key); ok {
		return t.(reflect.Type)
	}
	t, _ := c.decisions.LoadOrStore(key, lowest(left, right))
	return t.(reflect.Type)
}

var defaultCache Cache

// Lowest consults the process-wide cache.
func Lowest(left, right reflect.Type) reflect.Type {
	return defaultCache.Lowest(left, right)
}

func lowest(left, right reflect.Type) reflect.Type {
	switch {
	case left == right:
		return left
	case left == nil || !left.Implements(vectorerType):
		return right
	case right == nil || !right.Implements(vectorerType):
		return left
	}
	if len(ancestry(right)) > len(ancestry(left)) {
		return right
	}
	return left
}

// ancestry collects t and every type reachable from it through embedded
// struct fields, looking through pointers.
func ancestry(t reflect.Type) map[reflect.Type]struct{} {
	seen := make(map[reflect.Type]struct{})
	var walk func(reflect.Type)
	walk = func(t reflect.Type) {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		if t.Kind() != reflect.Struct {
			return
		}
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.Anonymous {
				walk(f.Type)
			}
		}
	}
	walk(t)
	return seen
}
