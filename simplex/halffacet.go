package simplex

import (
	"fmt"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/predicate"
)

// HalfFacet is a directed (d-1)-face living inside a specific Face: the
// facet's own d vertices, the Face vertex it is opposite to, the sign of
// ccw(facet points, opposite) recording which half-space of the facet
// contains opposite, and a twin pointer to the matching half-facet of the
// neighboring Face (nil if the facet is, transiently, on the boundary of
// the complex).
type HalfFacet struct {
	face     *Face
	opposite *Vertex
	vertices []*Vertex
	side     int
	twin     *HalfFacet
}

// newHalfFacet builds the half-facet of face opposite opposite, spanning
// vertices. If twin is non-nil its side is reused (negated) instead of
// recomputed, saving a predicate call; otherwise side is computed as
// ccw(vertices..., opposite), which must be nonzero.
func newHalfFacet(opposite *Vertex, vertices []*Vertex, face *Face, twin *HalfFacet) (*HalfFacet, error) {
	hf := &HalfFacet{face: face, opposite: opposite, vertices: vertices, twin: twin}

	if twin != nil && twin.side != 0 {
		hf.side = -twin.side
		return hf, nil
	}

	pts := make([]geom.Point, 0, len(vertices)+1)
	for _, v := range vertices {
		pts = append(pts, v.Point())
	}
	pts = append(pts, opposite.Point())
	side, err := predicate.Ccw(true, pts...)
	if err != nil {
		return nil, fmt.Errorf("newHalfFacet: %w", err)
	}
	if side == 0 {
		return nil, ErrGeneralPosition
	}
	hf.side = side
	return hf, nil
}

// Face returns the Face this half-facet belongs to.
func (h *HalfFacet) Face() *Face { return h.face }

// Opposite returns the Face vertex this half-facet is opposite to.
func (h *HalfFacet) Opposite() *Vertex { return h.opposite }

// Vertices returns the facet's own d vertices (the complement of Opposite
// within the owning Face).
func (h *HalfFacet) Vertices() []*Vertex {
	out := make([]*Vertex, len(h.vertices))
	copy(out, h.vertices)
	return out
}

// Points returns the points of Vertices, in the same order.
func (h *HalfFacet) Points() []geom.Point {
	out := make([]geom.Point, len(h.vertices))
	for i, v := range h.vertices {
		out[i] = v.Point()
	}
	return out
}

// Side is the sign of ccw(facet points, Opposite); always nonzero.
func (h *HalfFacet) Side() int { return h.side }

// Twin returns the paired half-facet of the adjacent Face, or nil if this
// facet currently has no neighbor linked.
func (h *HalfFacet) Twin() *HalfFacet { return h.twin }

// SetTwin links h and t as twins of each other.
func SetTwin(h, t *HalfFacet) {
	h.twin = t
	t.twin = h
}

// changeFace re-homes h to a new owning face and opposite vertex, used when
// a half-facet surviving cavity excavation is reused as the corresponding
// half-facet of a freshly created Face.
func (h *HalfFacet) changeFace(opposite *Vertex, face *Face) {
	h.opposite = opposite
	h.face = face
}

// LineSide returns ccw(facet points, p) * Side: +1 if p is on the same side
// as Opposite, 0 if p is co-hyperplanar with the facet, -1 otherwise.
func (h *HalfFacet) LineSide(p geom.Point) (int, error) {
	pts := append(h.Points(), p)
	sign, err := predicate.Ccw(true, pts...)
	if err != nil {
		return 0, fmt.Errorf("HalfFacet.LineSide: %w", err)
	}
	return sign * h.side, nil
}

// LocallyDelaunay reports whether h is locally Delaunay with respect to
// altVertex (h.Opposite if altVertex is nil): true if h has no twin, or if
// altVertex does not lie strictly inside the circumsphere of h.Twin's face.
func (h *HalfFacet) LocallyDelaunay(altVertex *Vertex) (bool, error) {
	if h.twin == nil {
		return true, nil
	}
	if altVertex == nil {
		altVertex = h.opposite
	}
	pts := make([]geom.Point, 0, len(h.twin.vertices)+2)
	for _, v := range h.twin.vertices {
		pts = append(pts, v.Point())
	}
	pts = append(pts, h.twin.opposite.Point(), altVertex.Point())

	sign, err := predicate.Incircle(true, pts...)
	if err != nil {
		return false, fmt.Errorf("HalfFacet.LocallyDelaunay: %w", err)
	}
	return h.twin.side*sign <= 0, nil
}

// String renders the half-facet for debugging.
func (h *HalfFacet) String() string {
	return fmt.Sprintf("HalfFacet{opposite:%v side:%d hasTwin:%t}", h.opposite, h.side, h.twin != nil)
}
