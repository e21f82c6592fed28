package simplex

import (
	"fmt"

	"github.com/katalvlaran/delaunay/geom"
)

// Vertex owns one Point, immutable after creation since a Vertex's order
// depends on it. ID is assigned by whatever arena creates the Vertex
// (package triangulation) and is used only for deterministic iteration and
// debug output. Ordering is defined on the Point; equality is pointer
// identity.
type Vertex struct {
	id    int
	point geom.Point
}

// NewVertex wraps a Point as a Vertex with the given arena-assigned ID.
func NewVertex(id int, point geom.Point) *Vertex {
	return &Vertex{id: id, point: point}
}

// ID returns the arena-assigned identifier.
func (v *Vertex) ID() int { return v.id }

// Point returns the vertex's point.
func (v *Vertex) Point() geom.Point { return v.point }

// Less implements the lexicographic total order over vertex coordinates
// used to canonicalize face-vertex listings.
func (v *Vertex) Less(other *Vertex) bool {
	return v.point.Less(other.point)
}

// String renders the vertex for debugging.
func (v *Vertex) String() string {
	return fmt.Sprintf("Vertex#%d%s", v.id, v.point)
}
