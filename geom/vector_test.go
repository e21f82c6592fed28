package geom_test

import (
	"testing"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector(t *testing.T) {
	t.Run("rejects empty input", func(t *testing.T) {
		_, err := geom.NewVector()
		assert.ErrorIs(t, err, geom.ErrEmptyInput)
	})

	t.Run("stores components", func(t *testing.T) {
		v, err := geom.NewVector(1, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, v.Dim())
		c, err := v.At(1)
		require.NoError(t, err)
		assert.Equal(t, 2.0, c)
	})

	t.Run("At out of bounds", func(t *testing.T) {
		v, err := geom.NewVector(1, 2)
		require.NoError(t, err)
		_, err = v.At(5)
		assert.ErrorIs(t, err, geom.ErrOutOfBounds)
	})
}

func TestVectorArithmetic(t *testing.T) {
	a, _ := geom.NewVector(1, 2, 3)
	b, _ := geom.NewVector(4, 5, 6)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, sum.Components())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -3, -3}, diff.Components())

	scaled := a.Scale(2)
	assert.Equal(t, []float64{2, 4, 6}, scaled.Components())

	dot, err := a.Dot(b)
	require.NoError(t, err)
	assert.Equal(t, 1*4+2*5+3*6, int(dot))

	assert.Equal(t, 1.0+4+9, a.NormSquared())
}

func TestVectorDimensionMismatch(t *testing.T) {
	a, _ := geom.NewVector(1, 2)
	b, _ := geom.NewVector(1, 2, 3)

	_, err := a.Add(b)
	assert.ErrorIs(t, err, geom.ErrDimensionMismatch)

	_, err = a.Sub(b)
	assert.ErrorIs(t, err, geom.ErrDimensionMismatch)

	_, err = a.Dot(b)
	assert.ErrorIs(t, err, geom.ErrDimensionMismatch)
}

func TestVectorLift(t *testing.T) {
	v, _ := geom.NewVector(3, 4)
	lifted := v.Lift(func(v geom.Vector) float64 { return v.NormSquared() })
	assert.Equal(t, 3, lifted.Dim())
	assert.Equal(t, []float64{3, 4, 25}, lifted.Components())
}
