// pkg/vector/vector2_test.go
package vector

import (
	"slices"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstruct(t *testing.T) {
	t.Run("TwoScalars", func(t *testing.T) {
		v, err := NewFromArgs(3, int64(4))
		require.NoError(t, err)
		assert.Equal(t, New(3, 4), v)
	})

	t.Run("NumericStrings", func(t *testing.T) {
		v, err := NewFromArgs("1.5", "-2")
		require.NoError(t, err)
		assert.Equal(t, New(1.5, -2), v)
	})

	t.Run("OneVectorLike", func(t *testing.T) {
		for name, like := range map[string]any{
			"vector":      New(1, 2),
			"pair":        Pair{1, 2},
			"coordinates": Coordinates{X: 1, Y: 2},
			"slice":       []any{1, 2.0},
			"array":       [2]int{1, 2},
			"map":         map[string]any{"x": 1, "y": "2"},
		} {
			v, err := NewFromArgs(like)
			require.NoError(t, err, name)
			assert.Equal(t, New(1, 2), v, name)
		}
	})

	t.Run("Named", func(t *testing.T) {
		v, err := NewNamed(map[string]any{"x": 5, "y": float32(0.5)})
		require.NoError(t, err)
		assert.Equal(t, New(5, 0.5), v)
	})

	t.Run("Errors", func(t *testing.T) {
		testCases := []struct {
			name  string
			args  []any
			named map[string]any
		}{
			{"no arguments", nil, nil},
			{"too many positional", []any{1, 2, 3}, nil},
			{"mix", []any{1}, map[string]any{"y": 2}},
			{"wrong names", nil, map[string]any{"x": 1, "z": 2}},
			{"extra name", nil, map[string]any{"x": 1, "y": 2, "z": 3}},
			{"non-numeric", []any{"gibberish", 1}, nil},
			{"nil scalar", []any{nil, 1}, nil},
			{"non-numeric named", nil, map[string]any{"x": 1, "y": []int{2}}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := Construct(tc.args, tc.named)
				assert.ErrorIs(t, err, ErrInvalidArgument)
			})
		}
	})

	t.Run("ErrorReportsType", func(t *testing.T) {
		_, err := NewFromArgs(1, struct{}{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "struct {}")
	})

	t.Run("BadVectorLike", func(t *testing.T) {
		_, err := NewFromArgs([]int{1, 2, 3})
		assert.ErrorIs(t, err, ErrValueConversion)
	})
}

func TestConvertAny(t *testing.T) {
	t.Run("SameVectorUnchanged", func(t *testing.T) {
		v := New(-3, -5)
		w, err := ConvertAny(v)
		require.NoError(t, err)
		assert.Equal(t, v, w)
	})

	t.Run("Wrapper", func(t *testing.T) {
		type body struct {
			Vector2
			Mass float64
		}
		w, err := ConvertAny(body{Vector2: New(1, 1), Mass: 3})
		require.NoError(t, err)
		assert.Equal(t, New(1, 1), w)
	})

	t.Run("Unusable", func(t *testing.T) {
		for name, value := range map[string]any{
			"nil":           nil,
			"nil pointer":   (*Vector2)(nil),
			"string":        "12",
			"short slice":   []float64{1},
			"long slice":    []float64{1, 2, 3},
			"missing key":   map[string]float64{"x": 1, "z": 2},
			"extra key":     map[string]float64{"x": 1, "y": 2, "z": 3},
			"int keys":      map[int]float64{0: 1, 1: 2},
			"scalar":        4.2,
			"struct":        struct{ A, B int }{1, 2},
			"empty mapping": map[string]any{},
		} {
			_, err := ConvertAny(value)
			assert.ErrorIs(t, err, ErrValueConversion, name)
		}
	})

	t.Run("NonNumericElement", func(t *testing.T) {
		_, err := ConvertAny([]any{"x", 1})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestAsMap_RoundTrip(t *testing.T) {
	v := New(42, 69)
	assert.Equal(t, map[string]float64{"x": 42, "y": 69}, v.AsMap())

	w, err := ConvertAny(v.AsMap())
	require.NoError(t, err)
	assert.Equal(t, v, w)
}

func TestUpdate(t *testing.T) {
	v := New(1, 2)
	assert.Equal(t, New(7, 2), v.Update(WithX(7)))
	assert.Equal(t, New(7, 8), v.Update(WithX(7), WithY(8)))
	assert.Equal(t, New(1, 2), v, "Update must not modify the receiver")
}

func TestString(t *testing.T) {
	testCases := []struct {
		v    Vector2
		want string
	}{
		{New(3, 4), "Vector2(3.0, 4.0)"},
		{New(0.6, 0.8), "Vector2(0.6, 0.8)"},
		{New(-3, -5), "Vector2(-3.0, -5.0)"},
		{New(1e-10, -1e20), "Vector2(1e-10, -1e+20)"},
		{New(0.5999999999999996, -5.800000000000001), "Vector2(0.5999999999999996, -5.800000000000001)"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.v.String())
	}
	assert.Equal(t, "2.5", Scalar(2.5).String())
}

func TestEqual(t *testing.T) {
	v := New(1, 0)

	assert.True(t, v.Equal(New(1, 0)))
	assert.True(t, v.Equal([]int{1, 0}))
	assert.True(t, v.Equal(map[string]float64{"x": 1, "y": 0}))
	assert.False(t, v.Equal(Pair{0, 1}))
	assert.False(t, v.Equal("foo"))
	assert.False(t, v.Equal(nil))

	t.Run("Symmetric", func(t *testing.T) {
		a, b := New(1, 2), New(1, 2)
		assert.Equal(t, a.Equal(b), b.Equal(a))
		c := New(2, 1)
		assert.Equal(t, a.Equal(c), c.Equal(a))
	})
}

func TestIndexing(t *testing.T) {
	v := New(-3, -5)

	x, err := v.Index(0)
	require.NoError(t, err)
	assert.Equal(t, -3.0, x)

	y, err := v.Key("y")
	require.NoError(t, err)
	assert.Equal(t, -5.0, y)

	got, err := v.Get(uint8(1))
	require.NoError(t, err)
	assert.Equal(t, -5.0, got)

	got, err = v.Get("x")
	require.NoError(t, err)
	assert.Equal(t, -3.0, got)

	_, err = v.Index(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.Get(uint(7))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = v.Key("z")
	assert.ErrorIs(t, err, ErrMissingKey)
	_, err = v.Get(1.0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = v.Get(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, 2, v.Len())
	gx, gy := New(1, 2).Components()
	assert.Equal(t, 1.0, gx)
	assert.Equal(t, 2.0, gy)
}

func TestAll_Restartable(t *testing.T) {
	v := New(1, 2)
	seq := v.All()
	assert.Equal(t, []float64{1, 2}, slices.Collect(seq))
	assert.Equal(t, []float64{1, 2}, slices.Collect(seq))

	for x := range v.All() {
		assert.Equal(t, 1.0, x)
		break
	}
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(New(1.5, -2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1.5,"y":-2}`, string(data))

	var fromMap, fromArray Vector2
	require.NoError(t, json.Unmarshal([]byte(`{"x":1.5,"y":-2}`), &fromMap))
	require.NoError(t, json.Unmarshal([]byte(`[1.5,-2]`), &fromArray))
	assert.Equal(t, New(1.5, -2), fromMap)
	assert.Equal(t, New(1.5, -2), fromArray)

	var bad Vector2
	err = bad.UnmarshalJSON([]byte(`{"x":1}`))
	assert.ErrorIs(t, err, ErrValueConversion)

	// The decoder reports a nested failure by message only.
	err = json.Unmarshal([]byte(`{"x":1}`), &bad)
	assert.ErrorContains(t, err, ErrValueConversion.Error())
}
