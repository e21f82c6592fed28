package voronoi

import (
	"fmt"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/simplex"
	"github.com/katalvlaran/delaunay/triangulation"
)

// Edge is a Voronoi edge between two points. To may carry weight 0,
// representing a ray to infinity in that direction rather than a second
// finite vertex.
type Edge struct {
	From geom.Point
	To   geom.Point
}

// Voronoi is the diagram dual to a completed Delaunay triangulation: one
// vertex per finite face and one edge per interior or ray-producing
// half-facet.
type Voronoi struct {
	Points []geom.Point
	Edges  []Edge
}

// New builds the Voronoi diagram dual to t. t is read-only borrowed: New
// does not mutate it and must not run concurrently with an Add on it.
func New(t *triangulation.Triangulation) (*Voronoi, error) {
	faces := t.Faces()

	centers := make(map[*simplex.Face]geom.Point, len(faces))
	finite := make([]*simplex.Face, 0, len(faces))

	for _, f := range faces {
		if isInfiniteFace(f) {
			continue
		}
		c, ok, err := circumcenter(f.Points())
		if err != nil {
			return nil, fmt.Errorf("voronoi.New: %w", err)
		}
		if !ok {
			c, err = degenerateDirection(t.Dim())
			if err != nil {
				return nil, fmt.Errorf("voronoi.New: %w", err)
			}
		}
		centers[f] = c
		finite = append(finite, f)
	}

	v := &Voronoi{
		Points: make([]geom.Point, 0, len(finite)),
		Edges:  make([]Edge, 0),
	}
	for _, f := range finite {
		v.Points = append(v.Points, centers[f])
	}

	for _, f := range finite {
		for _, h := range f.IterFacets() {
			twin := h.Twin()
			if twin == nil {
				continue
			}
			neighbor := twin.Face()

			if isInfiniteFace(neighbor) {
				n, err := outwardNormal(h.Points(), h.Opposite().Point())
				if err != nil {
					return nil, fmt.Errorf("voronoi.New: %w", err)
				}
				rayCoords := append(n.Components(), 0)
				rayPt, err := geom.NewHomogeneousPoint(rayCoords...)
				if err != nil {
					return nil, fmt.Errorf("voronoi.New: %w", err)
				}
				v.Edges = append(v.Edges, Edge{From: centers[f], To: rayPt})
				continue
			}

			if f.ID() < neighbor.ID() {
				v.Edges = append(v.Edges, Edge{From: centers[f], To: centers[neighbor]})
			}
		}
	}

	return v, nil
}

func isInfiniteFace(f *simplex.Face) bool {
	for _, v := range f.Vertices() {
		if v.Point().IsInfinite() {
			return true
		}
	}
	return false
}
