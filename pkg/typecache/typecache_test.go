// pkg/typecache/typecache_test.go
package typecache

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xkilldash9x/vector2/pkg/vector"
)

// size reports the number of memoized decisions.
func (c *Cache) size() int {
	n := 0
	c.decisions.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

type position struct {
	vector.Vector2
}

type velocity struct {
	vector.Vector2
	Frame string
}

type boundedVelocity struct {
	velocity
	Max float64
}

func TestLowest(t *testing.T) {
	vec := reflect.TypeFor[vector.Vector2]()
	pos := reflect.TypeFor[position]()
	vel := reflect.TypeFor[velocity]()
	bounded := reflect.TypeFor[boundedVelocity]()
	pair := reflect.TypeFor[vector.Pair]()
	slice := reflect.TypeFor[[]float64]()

	testCases := []struct {
		name        string
		left, right reflect.Type
		want        reflect.Type
	}{
		{"identical", vel, vel, vel},
		{"left not a vector", pair, vel, vel},
		{"right not a vector", vel, slice, vel},
		{"neither a vector", pair, slice, slice},
		{"wrapper beats base", vec, vel, vel},
		{"wrapper beats base reversed", vel, vec, vel},
		{"deeper wrapper wins", vel, bounded, bounded},
		{"tie goes left", pos, vel, pos},
		{"tie goes left reversed", vel, pos, vel},
		{"pointer wrapper", vec, reflect.TypeFor[*velocity](), reflect.TypeFor[*velocity]()},
	}

	var c Cache
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Lowest(tc.left, tc.right))
			assert.Equal(t, tc.want, c.Lowest(tc.left, tc.right), "memoized answer must match")
		})
	}
	assert.Equal(t, len(testCases), c.size())
}

func TestLowest_Concurrent(t *testing.T) {
	var c Cache
	vec := reflect.TypeFor[vector.Vector2]()
	vel := reflect.TypeFor[velocity]()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, vel, c.Lowest(vec, vel))
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, c.size())
}

func TestLowest_Default(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[velocity](), Lowest(reflect.TypeFor[vector.Vector2](), reflect.TypeFor[velocity]()))
}
