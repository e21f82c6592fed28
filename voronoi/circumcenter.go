package voronoi

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/matrix"
)

// circumcenter solves for the point equidistant from every point in pts via
// the linear system: rows of A are (v_i − v_0), b_i =
// ½(‖v_i‖² − ‖v_0‖²) for i ≥ 1, solved for x; x is the circumcenter.
//
// ok is false (and the zero Point returned) when A is singular — pts are
// affinely dependent, which should not happen for a genuine finite face but
// is guarded against regardless.
func circumcenter(pts []geom.Point) (center geom.Point, ok bool, err error) {
	if len(pts) == 0 {
		return geom.Point{}, false, fmt.Errorf("circumcenter: %w", ErrEmptyTriangulation)
	}
	d := pts[0].AffineDim()

	v0, err := geom.NewVector(pts[0].Affine()...)
	if err != nil {
		return geom.Point{}, false, fmt.Errorf("circumcenter: %w", err)
	}
	n0 := v0.NormSquared()

	diffs := make([]geom.Vector, 0, d)
	bVals := make([]float64, 0, d)
	for _, p := range pts[1:] {
		vi, err := geom.NewVector(p.Affine()...)
		if err != nil {
			return geom.Point{}, false, fmt.Errorf("circumcenter: %w", err)
		}
		diff, err := vi.Sub(v0)
		if err != nil {
			return geom.Point{}, false, fmt.Errorf("circumcenter: %w", err)
		}
		diffs = append(diffs, diff)
		bVals = append(bVals, 0.5*(vi.NormSquared()-n0))
	}

	colA, err := matrix.New(nil, diffs...)
	if err != nil {
		return geom.Point{}, false, fmt.Errorf("circumcenter: %w", err)
	}
	a := colA.Transpose()

	bVec, err := geom.NewVector(bVals...)
	if err != nil {
		return geom.Point{}, false, fmt.Errorf("circumcenter: %w", err)
	}
	bMat, err := matrix.New(nil, bVec)
	if err != nil {
		return geom.Point{}, false, fmt.Errorf("circumcenter: %w", err)
	}

	solX, err := a.Solve(bMat)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return geom.Point{}, false, nil
		}
		return geom.Point{}, false, fmt.Errorf("circumcenter: %w", err)
	}

	xVec, err := solX.Column(0)
	if err != nil {
		return geom.Point{}, false, fmt.Errorf("circumcenter: %w", err)
	}
	p, err := geom.NewPoint(xVec.Components()...)
	if err != nil {
		return geom.Point{}, false, fmt.Errorf("circumcenter: %w", err)
	}
	return p, true, nil
}

// degenerateDirection represents a circumcenter that could not be solved
// (an affinely dependent face) as a zero-direction infinite point, falling
// back to a direction-only representation.
func degenerateDirection(dim int) (geom.Point, error) {
	coords := make([]float64, dim+1) // affine zeros + trailing weight 0
	return geom.NewHomogeneousPoint(coords...)
}
