// Package predicate implements the two geometric tests the triangulation
// engine depends on for correctness: Ccw (n-dimensional orientation) and
// Incircle (n-dimensional in-sphere), both in Euclidean and
// extended-homogeneous modes, including the combinatorial treatment of
// points at infinity.
//
// Both predicates reduce to a sign-of-determinant over package matrix, so
// their robustness is exactly matrix.Matrix.SignDet's: a floating-point
// determinant compared against a magnitude-scaled tolerance. Neither
// predicate depends on set iteration order — callers always supply an
// explicit point sequence.
package predicate
