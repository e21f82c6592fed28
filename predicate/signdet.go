package predicate

import (
	"fmt"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/matrix"
)

// signDetOf builds the square matrix whose columns are cols and returns the
// sign of its determinant.
func signDetOf(cols []geom.Vector) (int, error) {
	m, err := matrix.New(nil, cols...)
	if err != nil {
		return 0, fmt.Errorf("signDetOf: %w", err)
	}
	return m.SignDet()
}

// affinePlusOne lifts a point's affine coordinates by appending a fresh
// weight of 1, ignoring whatever weight the Point already carries. This is
// the "homogeneous = false" convention: the caller is treating p as a plain
// affine point, not as an already-extended one.
func affinePlusOne(p geom.Point) (geom.Vector, error) {
	affine := p.Affine()
	comps := make([]float64, len(affine)+1)
	copy(comps, affine)
	comps[len(comps)-1] = 1
	return geom.NewVector(comps...)
}

// checkNonEmpty is the shared guard both predicates open with.
func checkNonEmpty(points []geom.Point) error {
	if len(points) == 0 {
		return ErrEmptyInput
	}
	return nil
}
