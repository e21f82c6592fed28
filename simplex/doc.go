// Package simplex implements the simplicial-complex primitives the
// triangulation engine operates on: vertices, d-simplex faces, and the
// directed (d-1)-face "half-facets" that carry orientation and twin links
//.
//
// Representation:
//
//	The reference design calls for an
//	arena of faces indexed by stable identifiers, with twin links stored as
//	(arena index, local slot) pairs so dangling references during cavity
//	excavation are safe. In Go, ordinary pointers serve the same purpose:
//	the garbage collector keeps a Face (and its half-facets) alive as long
//	as anything — including a twin pointer from a neighboring face —
//	references it, so there is no dangling-pointer hazard to guard against
//	with an extra indirection layer. package triangulation still keeps a
//	live-face set (so a shattered Face can be dropped from consideration in
//	O(1)); Face itself only needs a stable ID for that set's bookkeeping and
//	for deterministic debug output.
//
// Invariants (enforced at construction):
//
//   - Face.Facet(v).Opposite() == v, and v is not among that
//     half-facet's own vertices.
//   - A half-facet's side is never 0; a zero side is a co-hyperplanar
//     degeneracy and NewFace returns ErrGeneralPosition instead of building
//     the face.
//   - For any half-facet h with a non-nil twin t: t.Twin() == h, h and t
//     share the same vertex set, and h.Side() == -t.Side().
package simplex
