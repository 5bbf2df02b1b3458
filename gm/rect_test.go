package gm

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRect_Area(t *testing.T) {
	require.Equal(t, 12.0, RectWithSize(Vec{X: 3, Y: 4}).Area())
	require.Equal(t, 12.0, RectWithPoints(Vec{X: 3, Y: 4}, VecZero).Area())
	require.Equal(t, 4.0, RectWithCenterAndSize(VecOne, VecSplat(2)).Area())

	// inverted rectangles are empty
	require.Equal(t, 0.0, Rect{Min: VecOne, Max: VecZero}.Area())
}

func TestRect_Contains(t *testing.T) {
	r := RectWithCenterAndSize(VecZero, VecSplat(2))
	require.True(t, r.Contains(VecZero))
	require.True(t, r.Contains(VecOne))
	require.False(t, r.Contains(Vec{X: 1.5}))
	require.False(t, r.Translate(Vec{X: 5}).Contains(VecZero))
}

func TestRect_Corners(t *testing.T) {
	corners := RectWithSize(Vec{X: 2, Y: 1}).Corners()
	require.Equal(t, [4]Vec{{0, 0}, {2, 0}, {2, 1}, {0, 1}}, corners)
}

func TestRandomIn(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))

	for range 1000 {
		value := RandomIn(rng, 1, 10)
		require.GreaterOrEqual(t, value, 1.0)
		require.Less(t, value, 10.0)

		require.LessOrEqual(t, RandomVec(rng).Length(), 1.0)
	}
}
