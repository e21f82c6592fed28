package voronoi

import "errors"

// Sentinel errors returned by the voronoi package.
var (
	// ErrEmptyTriangulation is returned by the circumcenter and
	// outward-normal helpers when they are given no points. New does not
	// return it: a triangulation with no finite faces yields an empty
	// diagram.
	ErrEmptyTriangulation = errors.New("voronoi: triangulation has no finite faces")
)
