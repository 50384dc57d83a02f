package mesh

import "github.com/chazu/meshkernel/pkg/kernel/vecmath"

// Volume computes the enclosed volume of a closed mesh via the divergence
// theorem: sum over triangles of v0 . (v1 x v2) / 6. Used only by tests to
// check CSG results against known closed-form volumes.
func (m *Mesh) Volume() float64 {
	var sum float64
	for _, t := range m.Triangles {
		v0, v1, v2 := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		sum += vecmath.Dot(v0, vecmath.Cross(v1, v2))
	}
	return sum / 6
}
