package matrix_test

import (
	"testing"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(t *testing.T, comps ...float64) geom.Vector {
	t.Helper()
	v, err := geom.NewVector(comps...)
	require.NoError(t, err)
	return v
}

func TestNewRejectsEmptyAndMismatch(t *testing.T) {
	_, err := matrix.New(nil)
	assert.ErrorIs(t, err, matrix.ErrEmptyInput)

	_, err = matrix.New(nil, vec(t, 1, 2), vec(t, 1, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDetOfIdentity(t *testing.T) {
	m, err := matrix.New(nil, vec(t, 1, 0), vec(t, 0, 1))
	require.NoError(t, err)
	det, err := m.Det()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, det, 1e-9)

	sign, err := m.SignDet()
	require.NoError(t, err)
	assert.Equal(t, 1, sign)
}

func TestSignDetZeroForSingular(t *testing.T) {
	m, err := matrix.New(nil, vec(t, 1, 2), vec(t, 2, 4))
	require.NoError(t, err)
	sign, err := m.SignDet()
	require.NoError(t, err)
	assert.Equal(t, 0, sign)
}

func TestDetRequiresSquare(t *testing.T) {
	m, err := matrix.New(nil, vec(t, 1, 2, 3))
	require.NoError(t, err)
	_, err = m.Det()
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverseAndMul(t *testing.T) {
	m, err := matrix.New(nil, vec(t, 2, 0), vec(t, 0, 2))
	require.NoError(t, err)
	inv, err := m.Inverse()
	require.NoError(t, err)

	prod, err := m.Mul(inv)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := prod.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.InDelta(t, 1.0, v, 1e-9)
			} else {
				assert.InDelta(t, 0.0, v, 1e-9)
			}
		}
	}
}

func TestInverseSingular(t *testing.T) {
	m, err := matrix.New(nil, vec(t, 1, 2), vec(t, 2, 4))
	require.NoError(t, err)
	_, err = m.Inverse()
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestTransposeAndAdd(t *testing.T) {
	m, err := matrix.New(nil, vec(t, 1, 2), vec(t, 3, 4))
	require.NoError(t, err)
	tr := m.Transpose()
	v, err := tr.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	sum, err := m.Add(m)
	require.NoError(t, err)
	v, err = sum.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestMulVector(t *testing.T) {
	m, err := matrix.New(nil, vec(t, 1, 0), vec(t, 0, 2))
	require.NoError(t, err)
	out, err := m.MulVector(vec(t, 3, 5))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 10}, out.Components())
}
