package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/delaunay/geom"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense column matrix: each geom.Vector supplied to New becomes
// one column, so Rows() is the vectors' shared dimension and Cols() is the
// number of vectors.
type Matrix struct {
	dense   *mat.Dense
	rows    int
	cols    int
	epsilon float64
}

// New builds a Matrix whose columns are the given vectors.
// Stage 1 (Validate): reject zero vectors or mismatched dimensions.
// Stage 2 (Prepare): flatten into gonum's row-major backing slice.
// Stage 3 (Finalize): wrap in a gonum Dense.
func New(opts []Option, vectors ...geom.Vector) (*Matrix, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("matrix.New: %w", ErrEmptyInput)
	}
	rows := vectors[0].Dim()
	cols := len(vectors)
	data := make([]float64, rows*cols)
	for j, v := range vectors {
		if v.Dim() != rows {
			return nil, fmt.Errorf("matrix.New: column %d has dim %d, want %d: %w", j, v.Dim(), rows, ErrDimensionMismatch)
		}
		for i := 0; i < rows; i++ {
			c, err := v.At(i)
			if err != nil {
				return nil, fmt.Errorf("matrix.New: %w", err)
			}
			data[i*cols+j] = c
		}
	}
	o := newOptions(opts...)
	return &Matrix{dense: mat.NewDense(rows, cols, data), rows: rows, cols: cols, epsilon: o.epsilon}, nil
}

// fromDense wraps an already-computed gonum Dense, inheriting the epsilon
// policy of the matrix that produced it.
func fromDense(d *mat.Dense, epsilon float64) *Matrix {
	r, c := d.Dims()
	return &Matrix{dense: d, rows: r, cols: c, epsilon: epsilon}
}

// Rows returns the shared dimension of the matrix's column vectors.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of column vectors.
func (m *Matrix) Cols() int { return m.cols }

// At returns the entry at (row, col).
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfBounds)
	}
	return m.dense.At(row, col), nil
}

// Column returns the j-th column as a Vector.
func (m *Matrix) Column(j int) (geom.Vector, error) {
	if j < 0 || j >= m.cols {
		return geom.Vector{}, fmt.Errorf("Matrix.Column(%d): %w", j, ErrOutOfBounds)
	}
	comps := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		comps[i] = m.dense.At(i, j)
	}
	return geom.NewVector(comps...)
}

// frobeniusNorm computes the Frobenius norm of m without relying on a
// gonum top-level helper whose exact signature varies across releases.
func (m *Matrix) frobeniusNorm() float64 {
	var sumSq float64
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v := m.dense.At(i, j)
			sumSq += v * v
		}
	}
	return math.Sqrt(sumSq)
}

// String renders m in gonum's default matrix formatting.
func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.dense))
}
