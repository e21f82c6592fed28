package matrix

import "errors"

// Sentinel errors returned by the matrix package.
var (
	// ErrEmptyInput indicates a Matrix was constructed with zero columns.
	ErrEmptyInput = errors.New("matrix: empty input")

	// ErrDimensionMismatch indicates operand shapes are incompatible for the
	// requested operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare indicates a square matrix was required but the operand
	// wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular indicates an inverse or solve was attempted on a singular
	// (or numerically near-singular) matrix.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrOutOfBounds indicates a row/column index outside the matrix extent.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")
)
