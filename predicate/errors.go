package predicate

import "errors"

// Sentinel errors returned by the predicate package.
var (
	// ErrEmptyInput indicates Ccw or Incircle was called with no points.
	ErrEmptyInput = errors.New("predicate: empty input")

	// ErrDimensionMismatch indicates the supplied points do not share a
	// common dimension.
	ErrDimensionMismatch = errors.New("predicate: dimension mismatch")
)
