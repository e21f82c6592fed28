package predicate_test

import (
	"testing"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(t *testing.T, coords ...float64) geom.Point {
	t.Helper()
	p, err := geom.NewPoint(coords...)
	require.NoError(t, err)
	return p
}

func hpt(t *testing.T, coords ...float64) geom.Point {
	t.Helper()
	p, err := geom.NewHomogeneousPoint(coords...)
	require.NoError(t, err)
	return p
}

func TestCcwBasicOrientation(t *testing.T) {
	ccw, err := predicate.Ccw(false, pt(t, 0, 0), pt(t, 1, 0), pt(t, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, ccw)

	cw, err := predicate.Ccw(false, pt(t, 0, 0), pt(t, 0, 1), pt(t, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, -1, cw)

	collinear, err := predicate.Ccw(false, pt(t, 0, 0), pt(t, 1, 0), pt(t, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, collinear)
}

func TestCcwAntisymmetricUnderSwap(t *testing.T) {
	a, b, c := pt(t, 0, 0), pt(t, 1, 0), pt(t, 0, 1)
	orig, err := predicate.Ccw(false, a, b, c)
	require.NoError(t, err)
	swapped, err := predicate.Ccw(false, b, a, c)
	require.NoError(t, err)
	assert.Equal(t, -orig, swapped)
}

func TestCcwCyclicRotationPreservesSignIn2D(t *testing.T) {
	a, b, c := pt(t, 0, 0), pt(t, 1, 0), pt(t, 0, 1)
	orig, err := predicate.Ccw(false, a, b, c)
	require.NoError(t, err)
	rotated, err := predicate.Ccw(false, b, c, a)
	require.NoError(t, err)
	assert.Equal(t, orig, rotated)
}

// The outer-face half-facets always see every finite point as "inside".
func TestCcwOuterFaceAlwaysContainsFinitePoints(t *testing.T) {
	e1 := hpt(t, 1, 0, 0)
	e2 := hpt(t, 0, 1, 0)
	allNeg := hpt(t, -1, -1, 0)

	finiteQs := []geom.Point{
		pt(t, 5, 5), pt(t, -5, 5), pt(t, 5, -5), pt(t, -100, 3), pt(t, 0.001, 0.001),
	}
	for _, q := range finiteQs {
		sign, err := predicate.Ccw(true, e2, allNeg, q)
		require.NoError(t, err)
		assert.Equal(t, 1, sign)

		sign, err = predicate.Ccw(true, e1, e2, q)
		require.NoError(t, err)
		assert.Equal(t, 1, sign)
	}
}

func TestCcwScaleInvariant(t *testing.T) {
	a := hpt(t, 0, 0, 1)
	b := hpt(t, 1, 0, 1)
	c := hpt(t, 0, 1, 1)
	orig, err := predicate.Ccw(true, a, b, c)
	require.NoError(t, err)

	// Scale c's extended homogeneous representation by a positive factor:
	// (0,1,1) -> (0,3,3) represents the same affine point and must leave
	// the orientation sign unchanged.
	cScaled := hpt(t, 0, 3, 3)
	sign, err := predicate.Ccw(true, a, b, cScaled)
	require.NoError(t, err)
	assert.Equal(t, orig, sign)
}

func TestCcwEmptyInput(t *testing.T) {
	_, err := predicate.Ccw(false)
	assert.ErrorIs(t, err, predicate.ErrEmptyInput)
}
