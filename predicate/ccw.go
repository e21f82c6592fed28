package predicate

import (
	"fmt"

	"github.com/katalvlaran/delaunay/geom"
)

// Ccw tests the orientation of the given points, returning +1, 0, or -1 for
// counterclockwise, collinear (cocircular/coplanar), and clockwise
// respectively. In n dimensions this is the sign of the determinant of the
// matrix whose columns are the points' extended homogeneous coordinates.
//
// If homogeneous is false, each point is treated as a plain affine point
// and lifted by appending a fresh weight of 1. If homogeneous is
// true and at least one point is finite (weight 1), the points' own stored
// extended coordinates are used directly — this is how the triangulation
// engine tests orientation against vertices that may themselves be at
// infinity. If every point is at infinity, Ccw appends a synthetic finite
// witness point and takes the determinant one dimension higher, which gives
// the correct orientation in the embedding space.
func Ccw(homogeneous bool, points ...geom.Point) (int, error) {
	if err := checkNonEmpty(points); err != nil {
		return 0, fmt.Errorf("Ccw: %w", err)
	}

	if !homogeneous {
		cols := make([]geom.Vector, len(points))
		for i, p := range points {
			v, err := affinePlusOne(p)
			if err != nil {
				return 0, fmt.Errorf("Ccw: %w", err)
			}
			cols[i] = v
		}
		return signDetOf(cols)
	}

	anyFinite := false
	for _, p := range points {
		if !p.IsInfinite() {
			anyFinite = true
			break
		}
	}
	if anyFinite {
		cols := make([]geom.Vector, len(points))
		for i, p := range points {
			cols[i] = p.ToVector()
		}
		return signDetOf(cols)
	}

	// Every point is at infinity: embed one dimension higher via a witness
	// point at (0, ..., 0, -1), lifting every column (weight included) by a
	// trailing 1.
	n := points[0].AffineDim()
	witnessComps := make([]float64, n+1)
	witnessComps[n] = -1
	witness, err := geom.NewHomogeneousPoint(witnessComps...)
	if err != nil {
		return 0, fmt.Errorf("Ccw: %w", err)
	}

	cols := make([]geom.Vector, len(points)+1)
	for i, p := range points {
		cols[i] = p.ToVector().Lift(constantOne)
	}
	cols[len(points)] = witness.ToVector().Lift(constantOne)
	return signDetOf(cols)
}

func constantOne(geom.Vector) float64 { return 1 }
