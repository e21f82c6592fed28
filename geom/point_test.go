package geom_test

import (
	"testing"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	p, err := geom.NewPoint(-3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.AffineDim())
	assert.Equal(t, 1.0, p.Weight())
	assert.False(t, p.IsInfinite())
	assert.Equal(t, []float64{-3, 2}, p.Affine())
}

func TestHomogeneousPointAtInfinity(t *testing.T) {
	p, err := geom.NewHomogeneousPoint(1, 0, 0)
	require.NoError(t, err)
	assert.True(t, p.IsInfinite())
}

func TestPointSubCancelsWeight(t *testing.T) {
	p, _ := geom.NewPoint(1, 0)
	q, _ := geom.NewPoint(0, 1)
	v, err := p.Sub(q)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1, 0}, v.Components())
}

func TestPointLexicographicOrder(t *testing.T) {
	a, _ := geom.NewPoint(1, 2)
	b, _ := geom.NewPoint(1, 3)
	c, _ := geom.NewPoint(2, 0)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, b.Less(c))
	assert.False(t, a.Less(a))
}

func TestPointEqualAndApproxEqual(t *testing.T) {
	a, _ := geom.NewPoint(1, 2)
	b, _ := geom.NewPoint(1, 2)
	c, _ := geom.NewPoint(1.0000000001, 2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.ApproxEqual(c, 1e-6))
	assert.False(t, a.ApproxEqual(c, 1e-12))
}

func TestPointLift(t *testing.T) {
	p, _ := geom.NewPoint(3, 4)
	lifted := p.Lift(func(p geom.Point) float64 {
		var sum float64
		for _, c := range p.Affine() {
			sum += c * c
		}
		return sum
	})
	assert.Equal(t, []float64{3, 4, 1, 25}, lifted.Homogeneous())
}
