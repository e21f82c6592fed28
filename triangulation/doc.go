// Package triangulation implements the incremental Bowyer–Watson Delaunay
// engine: outer-simplex initialization, point insertion via cavity
// excavation, visibility-walk point location, and the global
// locally-Delaunay test oracle.
//
// The outer boundary is represented, not special-cased: construction seeds
// d+1 infinite vertices (the d standard directions plus one all-negative
// direction, each with weight 0) spanning a single Face that covers all of
// ℝᵈ. Every half-facet the engine ever examines — interior or touching that
// boundary — goes through the same ccw/incircle predicate path with
// homogeneous=true, since every Vertex's Point always carries an explicit
// weight (1 for finite positions, 0 for directions at infinity).
//
// Complexity: construction is O(n) insertions, each expected
// O(n^(1/d)) for the visibility walk and O(k) for cavity excavation where k
// is the local degree of the inserted point; TestIsDelaunay is O(faces ×
// d+1) half-facet checks.
//
// Errors: New and Add return ErrEmptyInput, ErrDimensionMismatch, or a
// wrapped simplex.ErrGeneralPosition if a predicate returns an exact zero at
// a step requiring strict sidedness — the triangulation is left undefined
// after such a failure; callers retry with jittered input.
package triangulation
