package triangulation

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/simplex"
)

// FacePointSets returns the point sets of every finite live face (a face is
// finite iff none of its vertices is one of the outer-boundary directions),
// one slice per face, in a stable order. If homogeneous is false, each
// point's trailing weight is stripped.
func (t *Triangulation) FacePointSets(homogeneous bool) [][]geom.Point {
	ids := make([]int, 0, len(t.faces))
	for id := range t.faces {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([][]geom.Point, 0, len(ids))
	for _, id := range ids {
		f := t.faces[id]
		if isInfiniteFace(f) {
			continue
		}

		pts := f.Points()
		if !homogeneous {
			stripped := make([]geom.Point, len(pts))
			for i, p := range pts {
				sp, err := geom.NewPoint(p.Affine()...)
				if err != nil {
					// Affine() of an already-valid Point cannot fail NewPoint.
					panic(fmt.Sprintf("FacePointSets: %v", err))
				}
				stripped[i] = sp
			}
			pts = stripped
		}
		out = append(out, pts)
	}
	return out
}

// Faces returns every live face (finite and infinite) in a stable order,
// for read-only inspection by collaborators such as the voronoi package,
// which borrows a completed triangulation without mutating it.
func (t *Triangulation) Faces() []*simplex.Face {
	ids := make([]int, 0, len(t.faces))
	for id := range t.faces {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]*simplex.Face, len(ids))
	for i, id := range ids {
		out[i] = t.faces[id]
	}
	return out
}

// TestIsDelaunay iterates every half-facet of every live face and checks
// LocallyDelaunay with its default alternate vertex (the facet's own
// opposite), returning true iff all pass.
// Since every interior half-facet is visited once from each side, this
// covers both directions of the pairwise circumsphere invariant.
func (t *Triangulation) TestIsDelaunay() bool {
	for _, f := range t.faces {
		for _, h := range f.IterFacets() {
			ok, err := h.LocallyDelaunay(nil)
			if err != nil || !ok {
				return false
			}
		}
	}
	return true
}
