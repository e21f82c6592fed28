package matrix

import (
	"fmt"

	"github.com/katalvlaran/delaunay/geom"
	"gonum.org/v1/gonum/mat"
)

// requireSquare validates m is square, returning ErrNonSquare otherwise.
func (m *Matrix) requireSquare(op string) error {
	if m.rows != m.cols {
		return fmt.Errorf("Matrix.%s: %dx%d: %w", op, m.rows, m.cols, ErrNonSquare)
	}
	return nil
}

// Det returns the determinant of m.
// Complexity: O(n^3) via LU decomposition (gonum.org/v1/gonum/mat).
func (m *Matrix) Det() (float64, error) {
	if err := m.requireSquare("Det"); err != nil {
		return 0, err
	}
	return mat.Det(m.dense), nil
}

// SignDet returns -1, 0, or +1: the sign of m's determinant, with a
// magnitude below epsilon*||m||_F treated as exactly zero. This is the
// single interface sign-sensitive callers (predicate.Ccw, predicate.Incircle)
// depend on; swapping in an adaptive/exact implementation means replacing
// only this method.
func (m *Matrix) SignDet() (int, error) {
	det, err := m.Det()
	if err != nil {
		return 0, err
	}
	threshold := m.epsilon * m.frobeniusNorm()
	if threshold == 0 {
		threshold = m.epsilon
	}
	switch {
	case det > threshold:
		return 1, nil
	case det < -threshold:
		return -1, nil
	default:
		return 0, nil
	}
}

// Add returns the elementwise sum of m and other.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("Matrix.Add: %w", ErrDimensionMismatch)
	}
	var res mat.Dense
	res.Add(m.dense, other.dense)
	return fromDense(&res, m.epsilon), nil
}

// Sub returns the elementwise difference m - other.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("Matrix.Sub: %w", ErrDimensionMismatch)
	}
	var res mat.Dense
	res.Sub(m.dense, other.dense)
	return fromDense(&res, m.epsilon), nil
}

// Mul returns the matrix product m * other.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("Matrix.Mul: %dx%d * %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	var res mat.Dense
	res.Mul(m.dense, other.dense)
	return fromDense(&res, m.epsilon), nil
}

// MulVector returns m * v.
func (m *Matrix) MulVector(v geom.Vector) (geom.Vector, error) {
	if m.cols != v.Dim() {
		return geom.Vector{}, fmt.Errorf("Matrix.MulVector: %w", ErrDimensionMismatch)
	}
	col, err := New(nil, v)
	if err != nil {
		return geom.Vector{}, err
	}
	prod, err := m.Mul(col)
	if err != nil {
		return geom.Vector{}, err
	}
	return prod.Column(0)
}

// ScalarMul returns m scaled by s.
func (m *Matrix) ScalarMul(s float64) *Matrix {
	var res mat.Dense
	res.Scale(s, m.dense)
	return fromDense(&res, m.epsilon)
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	var res mat.Dense
	res.CloneFrom(m.dense.T())
	return fromDense(&res, m.epsilon)
}

// Pow returns m raised to the non-negative integer power p.
func (m *Matrix) Pow(p int) (*Matrix, error) {
	if err := m.requireSquare("Pow"); err != nil {
		return nil, err
	}
	if p < 0 {
		return nil, fmt.Errorf("Matrix.Pow(%d): negative power: %w", p, ErrDimensionMismatch)
	}
	var res mat.Dense
	res.Pow(m.dense, p)
	return fromDense(&res, m.epsilon), nil
}

// Inverse returns the inverse of m, or ErrSingular if m is singular or
// numerically near-singular.
func (m *Matrix) Inverse() (*Matrix, error) {
	if err := m.requireSquare("Inverse"); err != nil {
		return nil, err
	}
	var inv mat.Dense
	if err := inv.Inverse(m.dense); err != nil {
		return nil, fmt.Errorf("Matrix.Inverse: %v: %w", err, ErrSingular)
	}
	return fromDense(&inv, m.epsilon), nil
}

// Solve returns x such that m * x = b, or ErrSingular if m is singular.
func (m *Matrix) Solve(b *Matrix) (*Matrix, error) {
	if m.rows != b.rows {
		return nil, fmt.Errorf("Matrix.Solve: %w", ErrDimensionMismatch)
	}
	var x mat.Dense
	if err := x.Solve(m.dense, b.dense); err != nil {
		return nil, fmt.Errorf("Matrix.Solve: %v: %w", err, ErrSingular)
	}
	return fromDense(&x, m.epsilon), nil
}
