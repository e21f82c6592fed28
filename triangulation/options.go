package triangulation

import "github.com/katalvlaran/delaunay/simplex"

// Default option values.
const (
	DefaultRandomize   = true
	DefaultHomogeneous = true
	DefaultName        = "anon"
)

// observerConfig holds the optional visualization/debug callbacks (spec
// "tagged alternatives replacing runtime polymorphism": an explicit struct
// of enumerated hooks rather than ad-hoc optional attributes). The engine
// invokes whichever are non-nil and ignores the rest.
type observerConfig struct {
	onLocate       func(*simplex.Face)
	onCircumcircle func(*simplex.Face)
	onHighlight    func(*simplex.HalfFacet)
	onDeleteEdge   func(*simplex.HalfFacet)
	onRedraw       func()
}

type options struct {
	randomize   bool
	homogeneous bool
	name        string
	observers   observerConfig
}

// Option configures a Triangulation at construction time.
type Option func(*options)

func newOptions(opts ...Option) options {
	o := options{
		randomize:   DefaultRandomize,
		homogeneous: DefaultHomogeneous,
		name:        DefaultName,
	}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// WithRandomize controls whether the input point order is shuffled before
// incremental insertion (expected O(n log n) / O(n^ceil(d/2)) behavior).
// Default: true.
func WithRandomize(randomize bool) Option {
	return func(o *options) { o.randomize = randomize }
}

// WithHomogeneous controls how input points are interpreted: true (default)
// trusts each point's own weight component; false re-lifts every point to
// weight 1 from its affine coordinates, discarding whatever weight it
// already carried.
func WithHomogeneous(homogeneous bool) Option {
	return func(o *options) { o.homogeneous = homogeneous }
}

// WithName attaches a label to the triangulation, used only by String().
// Default: "anon".
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithOnLocate registers a callback invoked with the current face at every
// step of a visibility walk.
func WithOnLocate(fn func(*simplex.Face)) Option {
	return func(o *options) { o.observers.onLocate = fn }
}

// WithOnCircumcircle registers a callback invoked during cavity excavation
// with each neighboring face whose circumsphere strictly contains the point
// being inserted, as that face is absorbed into the cavity. Faces that pass
// the test are not reported.
func WithOnCircumcircle(fn func(*simplex.Face)) Option {
	return func(o *options) { o.observers.onCircumcircle = fn }
}

// WithOnHighlightEdge registers a callback invoked with each half-facet
// retained as a cavity-boundary facet during insertion.
func WithOnHighlightEdge(fn func(*simplex.HalfFacet)) Option {
	return func(o *options) { o.observers.onHighlight = fn }
}

// WithOnDeleteEdge registers a callback invoked with each half-facet whose
// owning face is absorbed into a cavity during insertion.
func WithOnDeleteEdge(fn func(*simplex.HalfFacet)) Option {
	return func(o *options) { o.observers.onDeleteEdge = fn }
}

// WithOnRedraw registers a callback invoked once after each insertion
// completes.
func WithOnRedraw(fn func()) Option {
	return func(o *options) { o.observers.onRedraw = fn }
}
