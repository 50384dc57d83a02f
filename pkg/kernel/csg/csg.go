// Package csg implements the CSG evaluator (spec component C9): it
// orchestrates binary union/difference/intersection of meshes through the
// bsp package's BSP protocol, with a bounding-box fast path for disjoint
// inputs, and reduces N inputs left to right.
package csg

import (
	"github.com/chazu/meshkernel/pkg/kernel/bsp"
	"github.com/chazu/meshkernel/pkg/kernel/mesh"
	"github.com/chazu/meshkernel/pkg/kernel/vecmath"
)

// Op identifies a boolean operation.
type Op int

const (
	Union Op = iota
	Difference
	Intersection
)

// Perform folds op left-to-right across meshes. An empty input list
// returns an empty mesh; a single input is returned unchanged.
func Perform(op Op, meshes []*mesh.Mesh) *mesh.Mesh {
	if len(meshes) == 0 {
		return mesh.New()
	}
	result := meshes[0]
	for _, next := range meshes[1:] {
		result = performBinary(op, result, next)
	}
	return result
}

func performBinary(op Op, a, b *mesh.Mesh) *mesh.Mesh {
	switch op {
	case Union:
		if a.IsEmpty() {
			return b
		}
		if b.IsEmpty() {
			return a
		}
	case Difference:
		if a.IsEmpty() {
			return mesh.New()
		}
		if b.IsEmpty() {
			return a
		}
	case Intersection:
		if a.IsEmpty() || b.IsEmpty() {
			return mesh.New()
		}
	}

	minA, maxA := a.BoundingBox()
	minB, maxB := b.BoundingBox()
	if !mesh.BoundingBoxesOverlap(minA, maxA, minB, maxB) {
		switch op {
		case Union:
			merged := mesh.New()
			merged.Merge(a)
			merged.Merge(b)
			return merged
		case Difference:
			return a
		case Intersection:
			return mesh.New()
		}
	}

	polysA := toBSPPolygons(a)
	polysB := toBSPPolygons(b)

	var result []bsp.Polygon
	switch op {
	case Union:
		treeA := bsp.Build(polysA)
		treeB := bsp.Build(polysB)
		treeA.ClipTo(treeB)
		treeB.ClipTo(treeA)
		treeB.Invert()
		treeB.ClipTo(treeA)
		treeB.Invert()
		result = append(treeA.AllPolygons(), treeB.AllPolygons()...)

	case Difference:
		treeA := bsp.Build(polysA)
		treeB := bsp.Build(polysB)
		treeA.Invert()
		treeA.ClipTo(treeB)
		treeB.ClipTo(treeA)
		treeB.Invert()
		treeB.ClipTo(treeA)
		treeB.Invert()
		result = append(treeA.AllPolygons(), treeB.AllPolygons()...)
		out := fromBSPPolygons(result)
		out.FlipWinding()
		return out

	case Intersection:
		// Clipping a tree replaces only the receiver's polygon lists and
		// reads only the argument's planes and subtrees. B is clipped
		// against treeAPristine, a separately built copy of A whose
		// polygon lists are left unclipped.
		treeA := bsp.Build(polysA)
		treeB := bsp.Build(polysB)
		treeAPristine := bsp.Build(polysA)
		treeA.ClipToInverse(treeB)
		treeB.ClipToInverse(treeAPristine)
		result = append(treeA.AllPolygons(), treeB.AllPolygons()...)
	}

	return fromBSPPolygons(result)
}

// toBSPPolygons converts a mesh to BSP polygons, one triangle per polygon,
// discarding triangles with degenerate (zero-magnitude) face normals.
func toBSPPolygons(m *mesh.Mesh) []bsp.Polygon {
	var polys []bsp.Polygon
	for _, t := range m.Triangles {
		v0, v1, v2 := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		n := vecmath.Cross(vecmath.Sub(v1, v0), vecmath.Sub(v2, v0))
		if vecmath.Dot(n, n) == 0 {
			continue
		}
		n = vecmath.Normalize(n)
		polys = append(polys, bsp.NewPolygon([]vecmath.Vec3{v0, v1, v2}, n))
	}
	return polys
}

// fromBSPPolygons reassembles BSP polygons (which may have more than 3
// vertices after splits) into a triangle mesh by fanning from vertex 0.
// All triangles of a polygon inherit that polygon's face normal (flat
// shading; smooth shading is not re-derived at this stage).
func fromBSPPolygons(polys []bsp.Polygon) *mesh.Mesh {
	m := mesh.New()
	for _, p := range polys {
		if len(p.Vertices) < 3 {
			continue
		}
		indices := make([]int, len(p.Vertices))
		for i, v := range p.Vertices {
			indices[i] = m.AddVertex(v, p.Normal)
		}
		for i := 1; i <= len(indices)-2; i++ {
			m.AddTriangle(indices[0], indices[i], indices[i+1])
		}
	}
	return m
}
