// Package matrix provides the dense column-matrix type the predicates and
// the Voronoi builder are built on: construction from a set of equal-length
// vectors, determinant and sign-of-determinant, inverse, multiplication,
// addition/subtraction, transpose, integer power, and linear solve.
//
// Backing store:
//
//	Matrix wraps gonum.org/v1/gonum/mat.Dense for the numeric kernels
//	(LU-based determinant and inverse, BLAS-backed multiply). This is the one
//	place this module reaches for a third-party linear-algebra library rather
//	than a hand-rolled routine; see DESIGN.md for why.
//
// Sign-of-determinant tolerance:
//
//	SignDet compares |det| against DefaultEpsilon scaled by the matrix's
//	Frobenius norm, following the magnitude-based tolerance the predicates
//	package is built on. The
//	tolerance is isolated behind SignDet so a future adaptive/exact
//	implementation can replace it without touching callers.
package matrix
