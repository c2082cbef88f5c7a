package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// angleClose compares two angles in degrees modulo 360.
func angleClose(a, b, epsilon float64) bool {
	d := math.Mod(a-b, 360)
	if d < 0 {
		d += 360
	}
	return d < epsilon || 360-d < epsilon
}

func TestLength(t *testing.T) {
	assert.Equal(t, 5.0, New(3, 4).Length())
	assert.Equal(t, 75.0, New(45, 60).Length())
	assert.Equal(t, 0.0, Zero.Length())
	// No overflow on components whose squares are not representable.
	assert.InDelta(t, math.Sqrt2*1e300, New(1e300, 1e300).Length(), 1e286)
	assert.Equal(t, 5.0, New(3, 4).Distance(Pair{6, 8}))
}

func TestAngle(t *testing.T) {
	assert.Equal(t, 90.0, New(1, 0).Angle(Pair{0, 1}))
	assert.InDelta(t, -90.0, New(0, 1).Angle(Pair{1, 0}), 1e-12)
	assert.InDelta(t, 45.0, New(1, 0).Angle(Pair{1, 1}), 1e-12)

	t.Run("Range", func(t *testing.T) {
		for _, w := range []Vector2{New(-1, 0), New(-1, 1e-12), New(-1, -1e-12), New(0, -1), New(-3, -4)} {
			a := New(1, 0).Angle(w)
			assert.Greater(t, a, -180.0, w.String())
			assert.LessOrEqual(t, a, 180.0, w.String())
		}
	})
}

func TestIsClose(t *testing.T) {
	v := New(1, 0)

	assert.True(t, v.Close(Pair{1, 1e-10}))
	assert.False(t, v.Close(Pair{1, 1e-8}))

	ok, err := v.IsClose(Pair{1, 1e-8}, WithAbsTol(1e-7))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.IsClose(Pair{1, 1e-3}, WithRelTol(1e-2))
	require.NoError(t, err)
	assert.True(t, ok)

	t.Run("RelativeTo", func(t *testing.T) {
		a, b := New(1, 0), New(1, 1e-6)
		ok, err := a.IsClose(b)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = a.IsClose(b, RelativeTo(New(1e4, 0)))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("NegativeTolerances", func(t *testing.T) {
		_, err := v.IsClose(v, WithAbsTol(-1))
		assert.ErrorIs(t, err, ErrInvalidArgument)
		_, err = v.IsClose(v, WithRelTol(-1e-9))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestScaleTo(t *testing.T) {
	got, err := New(7, 24).ScaleTo(2)
	require.NoError(t, err)
	assert.True(t, got.Close(Pair{0.56, 1.92}), got.String())
	assert.InDelta(t, 2.0, got.Length(), 1e-15)

	got, err = New(3, 4).ScaleTo(0)
	require.NoError(t, err)
	assert.Equal(t, Zero, got)

	_, err = New(3, 4).ScaleTo(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, New(0.6, 0.8), New(3, 4).Normalize())
	n, err := New(7, 24).ScaleTo(1)
	require.NoError(t, err)
	assert.Equal(t, n, New(7, 24).Normalize())
}

func TestTruncate(t *testing.T) {
	got, err := New(7, 24).Truncate(3)
	require.NoError(t, err)
	assert.True(t, got.Close(Pair{0.84, 2.88}), got.String())
	assert.LessOrEqual(t, got.Length(), 3+1e-15)

	got, err = New(3, 4).Truncate(4)
	require.NoError(t, err)
	assert.Equal(t, New(2.4, 3.2), got)

	scaled, err := New(3, 4).ScaleTo(6)
	require.NoError(t, err)
	assert.Equal(t, New(3.6, 4.8), scaled)

	got, err = New(3, 4).Truncate(6)
	require.NoError(t, err)
	assert.Equal(t, New(3, 4), got)

	_, err = New(3, 4).Truncate(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	got, err = Zero.Truncate(-1)
	require.NoError(t, err, "the zero vector is shorter than any bound it is compared to")
	assert.Equal(t, Zero, got)
}

func TestReflect(t *testing.T) {
	testCases := []struct {
		initial, normal, expected Vector2
	}{
		{New(1, 1), New(0, -1), New(1, -1)},
		{New(1, 1), New(-1, 0), New(-1, 1)},
		{New(0, 1), New(0, -1), New(0, -1)},
		{New(-1, -1), New(1, 0), New(1, -1)},
		{New(-1, -1), New(-1, 0), New(1, -1)},
		{New(5, 3), New(-1, 0), New(-5, 3)},
	}
	for _, tc := range testCases {
		got, err := tc.initial.Reflect(tc.normal)
		require.NoError(t, err)
		assert.True(t, got.Close(tc.expected), "%s reflected on %s: %s", tc.initial, tc.normal, got)
	}

	t.Run("NormalizedNormal", func(t *testing.T) {
		got, err := New(5, 3).Reflect(New(-1, -2).Normalize())
		require.NoError(t, err)
		assert.True(t, got.Close(Pair{0.6, -5.8}), got.String())
	})

	t.Run("NonUnitNormal", func(t *testing.T) {
		_, err := New(5, 3).Reflect(Pair{-2, 0})
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.Contains(t, err.Error(), "reflection requires a normalized vector")
	})
}
