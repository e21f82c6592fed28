// Package voronoi builds the Voronoi diagram dual to a completed Delaunay
// triangulation: one vertex per finite face (its circumcenter),
// one edge per interior half-facet joining two finite faces, and one ray
// per half-facet joining a finite face to an infinite one.
//
// The builder takes a read-only borrow of a *triangulation.Triangulation —
// it never mutates the triangulation and must not be called concurrently
// with an Add on the same triangulation.
package voronoi
