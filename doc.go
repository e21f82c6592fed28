// Package delaunay is an incremental Delaunay triangulation and dual
// Voronoi diagram builder for point sets in d-dimensional Euclidean space.
//
// It brings together:
//
//   - Numeric primitives: vectors, extended-homogeneous points, matrices
//   - Robust predicates: n-dimensional ccw and incircle, including points
//     at infinity
//   - A simplicial complex of faces and twinned half-facets
//   - An incremental Bowyer–Watson engine with visibility-walk point
//     location
//   - A Voronoi dual: circumcenters, edges, and rays to infinity
//
// The outer boundary is represented as ordinary faces via extended
// homogeneous coordinates rather than special-cased, so the same predicate
// and traversal code handles both finite faces and the unbounded region
// around the convex hull.
//
// Subpackages:
//
//	geom/          — Vector, Point (affine + homogeneous weight), Lift
//	matrix/        — Matrix, determinant, sign-of-determinant, inverse
//	predicate/     — Ccw and Incircle, Euclidean and extended-homogeneous
//	simplex/       — Vertex, Face, HalfFacet
//	triangulation/ — the incremental Delaunay engine
//	voronoi/       — the Voronoi dual builder
//	cmd/delaunay/  — a CLI that reads points from stdin and triangulates them
//
// Quick example, in 2D:
//
//	a, _ := geom.NewPoint(-3, 2)
//	b, _ := geom.NewPoint(3, 4)
//	c, _ := geom.NewPoint(-3, 4)
//	t, err := triangulation.New([]geom.Point{a, b, c})
package delaunay
