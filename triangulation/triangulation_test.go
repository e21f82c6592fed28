package triangulation_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/simplex"
	"github.com/katalvlaran/delaunay/triangulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, coords ...float64) geom.Point {
	t.Helper()
	p, err := geom.NewPoint(coords...)
	require.NoError(t, err)
	return p
}

// A single point yields 3 faces (each also spanning two infinite vertices,
// so none is finite), each containing the point, with exactly 3 boundary
// (null-twin) half-facets among them.
func TestSinglePointYieldsThreeFaces(t *testing.T) {
	p := mustPoint(t, -3, 2)

	tri, err := triangulation.New([]geom.Point{p}, triangulation.WithRandomize(false))
	require.NoError(t, err)

	faces := tri.Faces()
	require.Len(t, faces, 3)
	assert.Empty(t, tri.FacePointSets(false))

	nullTwins := 0
	for _, f := range faces {
		found := false
		for _, q := range f.Points() {
			if q.ApproxEqual(p, 1e-9) {
				found = true
			}
		}
		assert.True(t, found, "every face must contain the inserted point")
		for _, h := range f.IterFacets() {
			if h.Twin() == nil {
				nullTwins++
			}
		}
	}
	assert.Equal(t, 3, nullTwins)

	assert.True(t, tri.TestIsDelaunay())
}

// Seven fixed points with randomize=false produce a known, fixed set of six
// finite faces, independent of face and within-face ordering.
func TestFixedInsertionOrderProducesExpectedFaces(t *testing.T) {
	coords := [][2]float64{
		{-0.6, 3.2},
		{3.2, 2.1},
		{-2, 0},
		{1, -0.2},
		{3.6, -0.3},
		{-1.4, -2.1},
		{2.5, -1.7},
	}
	points := make([]geom.Point, len(coords))
	for i, c := range coords {
		points[i] = mustPoint(t, c[0], c[1])
	}

	tri, err := triangulation.New(points, triangulation.WithRandomize(false))
	require.NoError(t, err)

	assert.True(t, tri.TestIsDelaunay())

	expected := [][][2]float64{
		{{-2, 0}, {-0.6, 3.2}, {1, -0.2}},
		{{3.2, 2.1}, {-0.6, 3.2}, {1, -0.2}},
		{{3.2, 2.1}, {3.6, -0.3}, {1, -0.2}},
		{{2.5, -1.7}, {3.6, -0.3}, {1, -0.2}},
		{{2.5, -1.7}, {-1.4, -2.1}, {1, -0.2}},
		{{-1.4, -2.1}, {-2, 0}, {1, -0.2}},
	}

	got := tri.FacePointSets(false)
	require.Len(t, got, len(expected))

	assert.ElementsMatch(t, canonicalize(expected), canonicalizeFaces(t, got))
}

func canonicalize(faces [][][2]float64) []string {
	out := make([]string, len(faces))
	for i, f := range faces {
		labels := make([]string, len(f))
		for j, c := range f {
			labels[j] = fmt.Sprintf("%.6f,%.6f", c[0], c[1])
		}
		sort.Strings(labels)
		out[i] = fmt.Sprintf("%v", labels)
	}
	return out
}

func canonicalizeFaces(t *testing.T, faces [][]geom.Point) []string {
	t.Helper()
	out := make([]string, len(faces))
	for i, f := range faces {
		labels := make([]string, len(f))
		for j, p := range f {
			labels[j] = fmt.Sprintf("%.6f,%.6f", p.Affine()[0], p.Affine()[1])
		}
		sort.Strings(labels)
		out[i] = fmt.Sprintf("%v", labels)
	}
	return out
}

func TestAddDuplicatePointIsNoOp(t *testing.T) {
	p := mustPoint(t, 1, 1)
	tri, err := triangulation.New([]geom.Point{p}, triangulation.WithRandomize(false))
	require.NoError(t, err)

	before := tri.NumFaces()
	inserted, err := tri.Add(p)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, before, tri.NumFaces())
}

func TestLocateFindsContainingFace(t *testing.T) {
	points := []geom.Point{
		mustPoint(t, 0, 0),
		mustPoint(t, 4, 0),
		mustPoint(t, 0, 4),
		mustPoint(t, 4, 4),
	}
	tri, err := triangulation.New(points, triangulation.WithRandomize(false))
	require.NoError(t, err)

	f, err := tri.Locate(mustPoint(t, 1, 1))
	require.NoError(t, err)
	require.NotNil(t, f)
}

func TestEmptyInputRejected(t *testing.T) {
	_, err := triangulation.New(nil)
	assert.ErrorIs(t, err, triangulation.ErrEmptyInput)
}

func TestObserverHooksInvoked(t *testing.T) {
	var locateCalls, redrawCalls int
	p1 := mustPoint(t, 0, 0)
	p2 := mustPoint(t, 5, 5)

	tri, err := triangulation.New([]geom.Point{p1},
		triangulation.WithRandomize(false),
		triangulation.WithOnLocate(func(_ *simplex.Face) { locateCalls++ }),
		triangulation.WithOnRedraw(func() { redrawCalls++ }),
	)
	require.NoError(t, err)

	_, err = tri.Add(p2)
	require.NoError(t, err)

	assert.Greater(t, locateCalls, 0)
	assert.GreaterOrEqual(t, redrawCalls, 1)
}
