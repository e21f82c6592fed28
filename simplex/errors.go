package simplex

import "errors"

// Sentinel errors returned by the simplex package.
var (
	// ErrWrongVertexCount indicates a Face was constructed with a vertex
	// count other than d+1 for the prevailing dimension.
	ErrWrongVertexCount = errors.New("simplex: face needs exactly d+1 vertices")

	// ErrGeneralPosition indicates a half-facet's side came out to zero: the
	// opposite vertex is co-hyperplanar with the facet, which the
	// incremental engine cannot resolve without exact arithmetic.
	ErrGeneralPosition = errors.New("simplex: points not in general position")

	// ErrDuplicateVertex indicates a Face's vertex list contained the same
	// vertex twice.
	ErrDuplicateVertex = errors.New("simplex: duplicate vertex in face")

	// ErrUnknownVertex indicates a half-facet or opposite vertex lookup for
	// a vertex that is not a member of the face.
	ErrUnknownVertex = errors.New("simplex: vertex not found in face")
)
