package triangulation

import (
	"fmt"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/simplex"
)

// Locate returns a Face whose closure contains p, found by a visibility
// walk from the triangulation's current anchor face. Ties (lineside = 0)
// are treated as non-negative, so the walk stops at the first face with no
// strictly-outside facet.
func (t *Triangulation) Locate(p geom.Point) (*simplex.Face, error) {
	np, err := t.normalizePoint(p)
	if err != nil {
		return nil, fmt.Errorf("Locate: %w", err)
	}
	return t.locate(np)
}

func (t *Triangulation) locate(p geom.Point) (*simplex.Face, error) {
	f := t.current
	if f == nil {
		return nil, ErrNoLiveFace
	}

	bound := len(t.faces) + t.dim + 8
	for step := 0; ; step++ {
		if step > bound {
			return nil, ErrLocateDidNotConverge
		}
		if t.opts.observers.onLocate != nil {
			t.opts.observers.onLocate(f)
		}

		moved := false
		for _, h := range f.IterFacets() {
			side, err := h.LineSide(p)
			if err != nil {
				return nil, fmt.Errorf("locate: %w", err)
			}
			if side < 0 {
				twin := h.Twin()
				if twin == nil {
					// The outer boundary is itself a real face spanning ℝᵈ,
					// so a nil twin here means the complex has no face left
					// of this boundary; p is not representable.
					return nil, fmt.Errorf("locate: %w", ErrLocateDidNotConverge)
				}
				f = twin.Face()
				moved = true
				break
			}
		}
		if !moved {
			t.current = f
			return f, nil
		}
	}
}
