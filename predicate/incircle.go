package predicate

import (
	"fmt"

	"github.com/katalvlaran/delaunay/geom"
)

// Incircle returns +1, 0, or -1 for "inside, cocircular, outside" of the
// oriented sphere defined by the first len(points)-1 points, evaluated on
// the last point.
//
// Each point is first lifted to extended homogeneous coordinates exactly as
// Ccw does (directly, if homogeneous, otherwise by appending a fresh weight
// of 1), then lifted again by appending the squared norm of its affine part.
// The sign of the determinant of the resulting matrix, negated, is the
// answer in the ordinary all-finite case.
//
// If one or more points are at infinity, Incircle evaluates the test once
// per infinite point with that point's row replaced by the witness vector
// (0, ..., 0, -1), collects the distinct resulting signs, and returns their
// sum clamped to {-1, 0, +1}.
func Incircle(homogeneous bool, points ...geom.Point) (int, error) {
	if err := checkNonEmpty(points); err != nil {
		return 0, fmt.Errorf("Incircle: %w", err)
	}

	base := make([]geom.Vector, len(points))
	weights := make([]float64, len(points))
	for i, p := range points {
		var v geom.Vector
		var err error
		if homogeneous {
			v = p.ToVector()
		} else {
			v, err = affinePlusOne(p)
		}
		if err != nil {
			return 0, fmt.Errorf("Incircle: %w", err)
		}
		base[i] = v
		weights[i] = v.Components()[v.Dim()-1]
	}

	lifted := make([]geom.Vector, len(base))
	for i, v := range base {
		lifted[i] = v.Lift(affineNormSquared)
	}

	var infiniteIdx []int
	for i, w := range weights {
		if w == 0 {
			infiniteIdx = append(infiniteIdx, i)
		}
	}

	if len(infiniteIdx) == 0 {
		sign, err := signDetOf(lifted)
		if err != nil {
			return 0, fmt.Errorf("Incircle: %w", err)
		}
		return -sign, nil
	}

	seen := map[int]struct{}{}
	for _, idx := range infiniteIdx {
		replaced := make([]geom.Vector, len(lifted))
		copy(replaced, lifted)
		dim := lifted[idx].Dim()
		witnessComps := make([]float64, dim)
		witnessComps[dim-1] = -1
		witness, err := geom.NewVector(witnessComps...)
		if err != nil {
			return 0, fmt.Errorf("Incircle: %w", err)
		}
		replaced[idx] = witness

		sign, err := signDetOf(replaced)
		if err != nil {
			return 0, fmt.Errorf("Incircle: %w", err)
		}
		seen[sign] = struct{}{}
	}

	sum := 0
	for s := range seen {
		sum += s
	}
	switch {
	case sum > 1:
		return 1, nil
	case sum < -1:
		return -1, nil
	default:
		return sum, nil
	}
}

// affineNormSquared returns the squared norm of v's affine part, i.e. every
// component but the last (the homogeneous weight).
func affineNormSquared(v geom.Vector) float64 {
	comps := v.Components()
	var sum float64
	for _, c := range comps[:len(comps)-1] {
		sum += c * c
	}
	return sum
}
