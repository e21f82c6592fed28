package triangulation

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/simplex"
)

// Triangulation owns a live simplicial complex over an evolving point set: a
// face set, a vertex arena (finite vertices plus the d+1 infinite vertices
// spanning the outer boundary), and the insertion history. No external
// handle into a Face or HalfFacet should be retained across an Add call,
// since Add destroys and replaces faces mid-insertion.
type Triangulation struct {
	dim  int
	opts options

	nextVertexID int
	nextFaceID   int

	faces            map[int]*simplex.Face
	current          *simplex.Face
	infiniteVertices []*simplex.Vertex

	history     []geom.Point
	vertexByKey map[string]*simplex.Vertex
}

// New builds a triangulation of the given points. The dimension is inferred
// from the first point's affine dimension; every subsequent point (from
// points or from a later Add) must match it. Points are inserted one at a
// time via Add, in shuffled order unless WithRandomize(false) is given.
func New(points []geom.Point, opts ...Option) (*Triangulation, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("triangulation.New: %w", ErrEmptyInput)
	}

	o := newOptions(opts...)
	t := &Triangulation{
		dim:         points[0].AffineDim(),
		opts:        o,
		faces:       make(map[int]*simplex.Face),
		vertexByKey: make(map[string]*simplex.Vertex),
	}

	if err := t.initOuterSimplex(); err != nil {
		return nil, fmt.Errorf("triangulation.New: %w", err)
	}

	ordered := make([]geom.Point, len(points))
	copy(ordered, points)
	if o.randomize {
		rand.Shuffle(len(ordered), func(i, j int) { ordered[i], ordered[j] = ordered[j], ordered[i] })
	}

	for _, p := range ordered {
		if _, err := t.Add(p); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// initOuterSimplex seeds the d+1 infinite vertices (standard directions
// plus the all-negative direction) and the single Face spanning them.
func (t *Triangulation) initOuterSimplex() error {
	vertices := make([]*simplex.Vertex, 0, t.dim+1)

	for i := 0; i < t.dim; i++ {
		coords := make([]float64, t.dim+1) // d affine slots + trailing weight, left at 0
		coords[i] = 1
		p, err := geom.NewHomogeneousPoint(coords...)
		if err != nil {
			return err
		}
		v := t.newVertex(p)
		vertices = append(vertices, v)
		t.infiniteVertices = append(t.infiniteVertices, v)
	}

	negCoords := make([]float64, t.dim+1)
	for i := 0; i < t.dim; i++ {
		negCoords[i] = -1
	}
	negP, err := geom.NewHomogeneousPoint(negCoords...)
	if err != nil {
		return err
	}
	negV := t.newVertex(negP)
	vertices = append(vertices, negV)
	t.infiniteVertices = append(t.infiniteVertices, negV)

	f, err := simplex.NewFace(t.nextFaceID, vertices, nil)
	if err != nil {
		return err
	}
	t.nextFaceID++
	t.faces[f.ID()] = f
	t.current = f
	return nil
}

func (t *Triangulation) newVertex(p geom.Point) *simplex.Vertex {
	v := simplex.NewVertex(t.nextVertexID, p)
	t.nextVertexID++
	return v
}

// normalizePoint applies the WithHomogeneous policy: true trusts the
// point's own weight, false re-lifts from its affine coordinates to weight
// 1 regardless of what weight it already carried.
func (t *Triangulation) normalizePoint(p geom.Point) (geom.Point, error) {
	if t.opts.homogeneous {
		return p, nil
	}
	return geom.NewPoint(p.Affine()...)
}

// pointKey returns a stable, value-equality key for a point's affine
// coordinates, used to detect duplicate insertion.
func pointKey(p geom.Point) string {
	return fmt.Sprintf("%v", p.Affine())
}

// isInfiniteFace reports whether any of f's vertices is one of the d+1
// outer-boundary vertices seeded at construction.
func isInfiniteFace(f *simplex.Face) bool {
	for _, v := range f.Vertices() {
		if v.Point().IsInfinite() {
			return true
		}
	}
	return false
}

// Dim returns the triangulation's dimension.
func (t *Triangulation) Dim() int { return t.dim }

// Name returns the triangulation's label, as set by WithName.
func (t *Triangulation) Name() string { return t.opts.name }

// PointHistory returns the finite points inserted so far, in insertion
// order.
func (t *Triangulation) PointHistory() []geom.Point {
	out := make([]geom.Point, len(t.history))
	copy(out, t.history)
	return out
}

// NumFaces returns the number of live faces, finite and infinite.
func (t *Triangulation) NumFaces() int { return len(t.faces) }
