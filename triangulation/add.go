package triangulation

import (
	"fmt"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/simplex"
)

// Add inserts one point into the triangulation, preserving the Delaunay
// property via incremental Bowyer-Watson insertion over the half-facet
// adjacency structure. It returns false, nil without modifying the triangulation
// if p coincides with an already-inserted point (the no-op duplicate policy
// documented in DESIGN.md); otherwise it returns true, nil on success.
//
// A GeneralPositionError from the simplex package bubbles up unwrapped
// aside from %w context; the triangulation is left in an undefined state
// and should not be reused.
func (t *Triangulation) Add(p geom.Point) (bool, error) {
	np, err := t.normalizePoint(p)
	if err != nil {
		return false, fmt.Errorf("Add: %w", err)
	}
	if np.AffineDim() != t.dim {
		return false, fmt.Errorf("Add: %w", ErrDimensionMismatch)
	}

	key := pointKey(np)
	if _, exists := t.vertexByKey[key]; exists {
		return false, nil
	}

	f0, err := t.locate(np)
	if err != nil {
		return false, fmt.Errorf("Add: %w", err)
	}

	newVertex := t.newVertex(np)

	removed := map[int]bool{f0.ID(): true}
	delete(t.faces, f0.ID())

	stack := f0.IterFacets()
	boundary := make([]*simplex.HalfFacet, 0, len(stack))

	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ok, err := h.LocallyDelaunay(newVertex)
		if err != nil {
			return false, fmt.Errorf("Add: %w", err)
		}

		if ok {
			boundary = append(boundary, h)
			if t.opts.observers.onHighlight != nil {
				t.opts.observers.onHighlight(h)
			}
			continue
		}

		twin := h.Twin()
		neighbor := twin.Face()
		if removed[neighbor.ID()] {
			continue
		}
		removed[neighbor.ID()] = true
		if t.opts.observers.onCircumcircle != nil {
			t.opts.observers.onCircumcircle(neighbor)
		}
		if t.opts.observers.onDeleteEdge != nil {
			t.opts.observers.onDeleteEdge(h)
		}
		delete(t.faces, neighbor.ID())

		for _, hf := range neighbor.IterFacets() {
			if hf != twin {
				stack = append(stack, hf)
			}
		}
	}

	newFaces := make([]*simplex.Face, 0, len(boundary))
	for _, h := range boundary {
		verts := append(h.Vertices(), newVertex)
		reuse := map[*simplex.Vertex]*simplex.HalfFacet{newVertex: h}
		nf, err := simplex.NewFace(t.nextFaceID, verts, reuse)
		if err != nil {
			return false, fmt.Errorf("Add: %w", err)
		}
		t.nextFaceID++
		t.faces[nf.ID()] = nf
		newFaces = append(newFaces, nf)
	}

	if err := linkStar(newFaces); err != nil {
		return false, fmt.Errorf("Add: %w", err)
	}

	if len(newFaces) > 0 {
		t.current = newFaces[0]
	}

	t.vertexByKey[key] = newVertex
	t.history = append(t.history, np)

	if t.opts.observers.onRedraw != nil {
		t.opts.observers.onRedraw()
	}

	return true, nil
}

// linkStar pairs up the half-facets of the newly created star by
// brute-force: for every pair of new faces whose vertex sets differ by
// exactly two vertices, the half-facet of each opposite its unique vertex
// is the other's twin. O(k²) in the star size.
func linkStar(faces []*simplex.Face) error {
	for i := 0; i < len(faces); i++ {
		for j := i + 1; j < len(faces); j++ {
			ua, ub, ok := uniqueRidgeVertices(faces[i], faces[j])
			if !ok {
				continue
			}
			ha, err := faces[i].Facet(ua)
			if err != nil {
				return err
			}
			hb, err := faces[j].Facet(ub)
			if err != nil {
				return err
			}
			simplex.SetTwin(ha, hb)
		}
	}
	return nil
}

// uniqueRidgeVertices returns the vertex unique to a and the vertex unique
// to b when a's and b's vertex sets differ by exactly two vertices (one on
// each side), and false otherwise.
func uniqueRidgeVertices(a, b *simplex.Face) (*simplex.Vertex, *simplex.Vertex, bool) {
	bSet := make(map[*simplex.Vertex]bool, len(b.Vertices()))
	for _, v := range b.Vertices() {
		bSet[v] = true
	}
	aSet := make(map[*simplex.Vertex]bool, len(a.Vertices()))
	for _, v := range a.Vertices() {
		aSet[v] = true
	}

	var uniqueA, uniqueB *simplex.Vertex
	countA, countB := 0, 0
	for _, v := range a.Vertices() {
		if !bSet[v] {
			uniqueA = v
			countA++
		}
	}
	for _, v := range b.Vertices() {
		if !aSet[v] {
			uniqueB = v
			countB++
		}
	}
	if countA == 1 && countB == 1 {
		return uniqueA, uniqueB, true
	}
	return nil, nil, false
}
