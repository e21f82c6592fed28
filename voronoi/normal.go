package voronoi

import (
	"fmt"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/matrix"
)

// outwardNormal computes a normal to the hyperplane spanned by facetPts,
// oriented away from apex (the finite face's own vertex not on the
// facet), for use as a Voronoi ray direction pointing outward along the
// normal to the facet's supporting hyperplane.
//
// The normal is the generalized cross product of the facet's own D−1
// difference vectors in D-dim space: component k is (−1)^k times the
// determinant of the (D−1)×(D−1) matrix formed by deleting coordinate k
// from each difference vector.
func outwardNormal(facetPts []geom.Point, apex geom.Point) (geom.Vector, error) {
	d := len(facetPts)
	if d == 0 {
		return geom.Vector{}, fmt.Errorf("outwardNormal: %w", ErrEmptyTriangulation)
	}
	if d == 1 {
		n, err := geom.NewVector(1)
		if err != nil {
			return geom.Vector{}, err
		}
		return orient(n, facetPts[0], apex)
	}

	base, err := geom.NewVector(facetPts[0].Affine()...)
	if err != nil {
		return geom.Vector{}, fmt.Errorf("outwardNormal: %w", err)
	}
	diffs := make([]geom.Vector, 0, d-1)
	for _, p := range facetPts[1:] {
		v, err := geom.NewVector(p.Affine()...)
		if err != nil {
			return geom.Vector{}, fmt.Errorf("outwardNormal: %w", err)
		}
		diff, err := v.Sub(base)
		if err != nil {
			return geom.Vector{}, fmt.Errorf("outwardNormal: %w", err)
		}
		diffs = append(diffs, diff)
	}

	comps := make([]float64, d)
	for k := 0; k < d; k++ {
		minor := make([]geom.Vector, len(diffs))
		for i, diff := range diffs {
			vals := make([]float64, 0, d-1)
			for j := 0; j < d; j++ {
				if j == k {
					continue
				}
				c, err := diff.At(j)
				if err != nil {
					return geom.Vector{}, fmt.Errorf("outwardNormal: %w", err)
				}
				vals = append(vals, c)
			}
			mv, err := geom.NewVector(vals...)
			if err != nil {
				return geom.Vector{}, fmt.Errorf("outwardNormal: %w", err)
			}
			minor[i] = mv
		}

		m, err := matrix.New(nil, minor...)
		if err != nil {
			return geom.Vector{}, fmt.Errorf("outwardNormal: %w", err)
		}
		det, err := m.Det()
		if err != nil {
			return geom.Vector{}, fmt.Errorf("outwardNormal: %w", err)
		}
		if k%2 == 0 {
			comps[k] = det
		} else {
			comps[k] = -det
		}
	}

	n, err := geom.NewVector(comps...)
	if err != nil {
		return geom.Vector{}, fmt.Errorf("outwardNormal: %w", err)
	}

	centroidCoords := make([]float64, d)
	for _, p := range facetPts {
		for i, c := range p.Affine() {
			centroidCoords[i] += c / float64(len(facetPts))
		}
	}
	centroid, err := geom.NewPoint(centroidCoords...)
	if err != nil {
		return geom.Vector{}, fmt.Errorf("outwardNormal: %w", err)
	}
	return orient(n, centroid, apex)
}

// orient flips n, if necessary, so that it points away from apex relative
// to reference (a point on the hyperplane).
func orient(n geom.Vector, reference, apex geom.Point) (geom.Vector, error) {
	toApex, err := geom.NewVector(apex.Affine()...)
	if err != nil {
		return geom.Vector{}, err
	}
	refVec, err := geom.NewVector(reference.Affine()...)
	if err != nil {
		return geom.Vector{}, err
	}
	dir, err := toApex.Sub(refVec)
	if err != nil {
		return geom.Vector{}, err
	}
	dot, err := n.Dot(dir)
	if err != nil {
		return geom.Vector{}, err
	}
	if dot > 0 {
		return n.Scale(-1), nil
	}
	return n, nil
}
