// Package mesh is the internal, double-precision triangle-mesh container
// used by the extruders and the CSG evaluator. It is converted to the
// flat float32 kernel.Mesh only at the outbound boundary.
package mesh

import (
	"math"

	"github.com/chazu/meshkernel/pkg/kernel"
	"github.com/chazu/meshkernel/pkg/kernel/vecmath"
)

// Triangle is a triple of indices into a Mesh's Vertices/Normals arrays.
type Triangle [3]int

// Mesh is an indexed triangle mesh: vertex positions, per-vertex normals
// (parallel array, same length as Vertices), and triangles as index
// triples. Triangle winding is counter-clockwise seen from outside the
// solid, per the stored normal (right-hand rule).
type Mesh struct {
	Vertices  []vecmath.Vec3
	Normals   []vecmath.Vec3
	Triangles []Triangle
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// IsEmpty reports whether the mesh has no vertices.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// AddVertex appends a vertex/normal pair and returns its index.
func (m *Mesh) AddVertex(p, n vecmath.Vec3) int {
	m.Vertices = append(m.Vertices, p)
	m.Normals = append(m.Normals, n)
	return len(m.Vertices) - 1
}

// AddTriangle appends a triangle referencing three existing vertex indices.
func (m *Mesh) AddTriangle(a, b, c int) {
	m.Triangles = append(m.Triangles, Triangle{a, b, c})
}

// Merge appends other's vertices, normals, and triangles into m, offsetting
// other's triangle indices by m's current vertex count. other is left
// unmodified.
func (m *Mesh) Merge(other *Mesh) {
	if other == nil || other.IsEmpty() {
		return
	}
	offset := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	m.Normals = append(m.Normals, other.Normals...)
	for _, t := range other.Triangles {
		m.Triangles = append(m.Triangles, Triangle{t[0] + offset, t[1] + offset, t[2] + offset})
	}
}

// FlipWinding reverses every triangle's vertex order and negates every
// stored normal. FlipWinding is an involution: applying it twice restores
// the original mesh.
func (m *Mesh) FlipWinding() {
	for i, t := range m.Triangles {
		m.Triangles[i] = Triangle{t[0], t[2], t[1]}
	}
	for i, n := range m.Normals {
		m.Normals[i] = vecmath.Neg(n)
	}
}

// BoundingBox returns the componentwise min/max over all vertices. Called
// on an empty mesh, it returns a zeroed box.
func (m *Mesh) BoundingBox() (min, max vecmath.Vec3) {
	if len(m.Vertices) == 0 {
		return vecmath.Vec3{}, vecmath.Vec3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = vecmath.MinComponents(min, v)
		max = vecmath.MaxComponents(max, v)
	}
	return min, max
}

// BoundingBoxesOverlap reports whether two axis-aligned boxes intersect
// (touching counts as overlapping). Used by the CSG disjoint fast path.
func BoundingBoxesOverlap(minA, maxA, minB, maxB vecmath.Vec3) bool {
	if maxA.X < minB.X || maxB.X < minA.X {
		return false
	}
	if maxA.Y < minB.Y || maxB.Y < minA.Y {
		return false
	}
	if maxA.Z < minB.Z || maxB.Z < minA.Z {
		return false
	}
	return true
}

// RecomputeNormals zeros all normals, accumulates each triangle's
// unnormalized face normal into its three incident vertices, then
// normalizes each vertex normal (vertices untouched by any non-degenerate
// triangle keep a zero normal, never NaN).
func (m *Mesh) RecomputeNormals() {
	for i := range m.Normals {
		m.Normals[i] = vecmath.Vec3{}
	}
	for _, t := range m.Triangles {
		v0, v1, v2 := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		faceNormal := vecmath.Cross(vecmath.Sub(v1, v0), vecmath.Sub(v2, v0))
		if vecmath.Dot(faceNormal, faceNormal) == 0 {
			continue
		}
		for _, idx := range t {
			m.Normals[idx] = vecmath.Add(m.Normals[idx], faceNormal)
		}
	}
	for i, n := range m.Normals {
		l := vecmath.Length(n)
		if l > 0 {
			m.Normals[i] = vecmath.Scale(n, 1/l)
		}
	}
}

// ToKernelMesh converts to the outbound flat float32 representation.
func (m *Mesh) ToKernelMesh() *kernel.Mesh {
	out := &kernel.Mesh{
		Vertices: make([]float32, 0, len(m.Vertices)*3),
		Normals:  make([]float32, 0, len(m.Normals)*3),
		Indices:  make([]uint32, 0, len(m.Triangles)*3),
	}
	for _, v := range m.Vertices {
		out.Vertices = append(out.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
	}
	for _, n := range m.Normals {
		out.Normals = append(out.Normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	for _, t := range m.Triangles {
		out.Indices = append(out.Indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}
	return out
}

// FromKernelMesh converts from the outbound flat float32 representation.
func FromKernelMesh(km *kernel.Mesh) *Mesh {
	if km == nil {
		return New()
	}
	m := &Mesh{}
	n := km.VertexCount()
	m.Vertices = make([]vecmath.Vec3, n)
	m.Normals = make([]vecmath.Vec3, n)
	for i := 0; i < n; i++ {
		m.Vertices[i] = vecmath.Vec3{
			X: float64(km.Vertices[i*3]),
			Y: float64(km.Vertices[i*3+1]),
			Z: float64(km.Vertices[i*3+2]),
		}
		if len(km.Normals) >= (i+1)*3 {
			m.Normals[i] = vecmath.Vec3{
				X: float64(km.Normals[i*3]),
				Y: float64(km.Normals[i*3+1]),
				Z: float64(km.Normals[i*3+2]),
			}
		}
	}
	triCount := km.TriangleCount()
	m.Triangles = make([]Triangle, triCount)
	for i := 0; i < triCount; i++ {
		m.Triangles[i] = Triangle{
			int(km.Indices[i*3]),
			int(km.Indices[i*3+1]),
			int(km.Indices[i*3+2]),
		}
	}
	return m
}

// AverageFaceNormal returns the average of all (unit) face normals across
// the mesh's triangles, used by winding-after-transform property tests.
// Degenerate triangles contribute nothing.
func (m *Mesh) AverageFaceNormal() vecmath.Vec3 {
	var sum vecmath.Vec3
	count := 0
	for _, t := range m.Triangles {
		v0, v1, v2 := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		n := vecmath.Cross(vecmath.Sub(v1, v0), vecmath.Sub(v2, v0))
		l := vecmath.Length(n)
		if l == 0 || math.IsNaN(l) {
			continue
		}
		sum = vecmath.Add(sum, vecmath.Scale(n, 1/l))
		count++
	}
	if count == 0 {
		return vecmath.Vec3{}
	}
	return vecmath.Scale(sum, 1/float64(count))
}
