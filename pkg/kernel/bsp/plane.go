// Package bsp implements the Binary Space Partitioning polygon/plane
// carrier (spec component C7) and the recursive BSP tree (C8) that the
// CSG evaluator drives to perform boolean operations.
package bsp

import "github.com/chazu/meshkernel/pkg/kernel/vecmath"

// Epsilon is the fixed numerical tolerance used for every on-plane/on-edge
// classification decision in the BSP engine.
const Epsilon = 1e-5

// Plane is {p | n . p = w} for a unit normal n.
type Plane struct {
	Normal vecmath.Vec3
	W      float64
}

// PlaneFromPolygon derives a plane from a polygon's first vertex and
// stored normal: n = polygon.Normal (assumed unit), w = n . v0.
func PlaneFromPolygon(p Polygon) Plane {
	return Plane{Normal: p.Normal, W: vecmath.Dot(p.Normal, p.Vertices[0])}
}

// Classification enumerates how a polygon relates to a plane.
type Classification int

const (
	Coplanar Classification = iota
	Front
	Back
	Spanning
)

// signedDistance returns the signed distance d = n.v - w.
func (pl Plane) signedDistance(v vecmath.Vec3) float64 {
	return vecmath.Dot(pl.Normal, v) - pl.W
}

// Classify classifies every vertex of poly against pl and returns the
// overall classification.
func (pl Plane) Classify(poly Polygon) Classification {
	hasFront, hasBack := false, false
	for _, v := range poly.Vertices {
		d := pl.signedDistance(v)
		if d > Epsilon {
			hasFront = true
		} else if d < -Epsilon {
			hasBack = true
		}
	}
	switch {
	case hasFront && hasBack:
		return Spanning
	case hasFront:
		return Front
	case hasBack:
		return Back
	default:
		return Coplanar
	}
}

// Invert negates the plane in place: n -> -n, w -> -w.
func (pl *Plane) Invert() {
	pl.Normal = vecmath.Neg(pl.Normal)
	pl.W = -pl.W
}
