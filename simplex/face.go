package simplex

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/delaunay/geom"
)

// Face is a d-simplex: d+1 vertices, plus one HalfFacet per vertex, keyed by
// the vertex it is opposite to.
type Face struct {
	id       int
	vertices []*Vertex
	facets   map[*Vertex]*HalfFacet
}

// NewFace builds the Face spanned by vertices, assigning it id. reuse maps
// a subset of vertices to pre-existing half-facets that should be adopted
// (re-homed via changeFace) instead of rebuilt from scratch — the
// incremental engine reuses the cavity-boundary half-facet of an old face
// as the matching half-facet of the new face replacing it. Pass a nil or
// empty reuse map to build every half-facet fresh.
//
// NewFace returns ErrWrongVertexCount if len(vertices) < 2, ErrDuplicateVertex
// if the same vertex appears twice, and ErrGeneralPosition if any
// constructed half-facet's side comes out to zero.
func NewFace(id int, vertices []*Vertex, reuse map[*Vertex]*HalfFacet) (*Face, error) {
	if len(vertices) < 2 {
		return nil, ErrWrongVertexCount
	}
	seen := make(map[*Vertex]bool, len(vertices))
	for _, v := range vertices {
		if seen[v] {
			return nil, ErrDuplicateVertex
		}
		seen[v] = true
	}

	f := &Face{
		id:       id,
		vertices: append([]*Vertex(nil), vertices...),
		facets:   make(map[*Vertex]*HalfFacet, len(vertices)),
	}

	for _, opposite := range vertices {
		if hf, ok := reuse[opposite]; ok {
			hf.changeFace(opposite, f)
			f.facets[opposite] = hf
			continue
		}

		facetVerts := make([]*Vertex, 0, len(vertices)-1)
		for _, v := range vertices {
			if v != opposite {
				facetVerts = append(facetVerts, v)
			}
		}
		hf, err := newHalfFacet(opposite, facetVerts, f, nil)
		if err != nil {
			return nil, fmt.Errorf("NewFace: %w", err)
		}
		f.facets[opposite] = hf
	}

	return f, nil
}

// ID returns the arena-assigned identifier.
func (f *Face) ID() int { return f.id }

// Vertices returns the face's d+1 vertices.
func (f *Face) Vertices() []*Vertex {
	out := make([]*Vertex, len(f.vertices))
	copy(out, f.vertices)
	return out
}

// Points returns the points of Vertices, in the same order.
func (f *Face) Points() []geom.Point {
	out := make([]geom.Point, len(f.vertices))
	for i, v := range f.vertices {
		out[i] = v.Point()
	}
	return out
}

// Facet returns the half-facet opposite v, or ErrUnknownVertex if v is not
// among the face's vertices.
func (f *Face) Facet(v *Vertex) (*HalfFacet, error) {
	hf, ok := f.facets[v]
	if !ok {
		return nil, ErrUnknownVertex
	}
	return hf, nil
}

// IterFacets returns the face's half-facets in a stable order (sorted by
// the ID of the opposite vertex), for deterministic traversal and debug
// output.
func (f *Face) IterFacets() []*HalfFacet {
	out := make([]*HalfFacet, 0, len(f.facets))
	for _, hf := range f.facets {
		out = append(out, hf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Opposite().ID() < out[j].Opposite().ID() })
	return out
}

// HasVertex reports whether v is one of the face's vertices.
func (f *Face) HasVertex(v *Vertex) bool {
	_, ok := f.facets[v]
	return ok
}

// String renders the face for debugging.
func (f *Face) String() string {
	return fmt.Sprintf("Face#%d%v", f.id, f.vertices)
}
