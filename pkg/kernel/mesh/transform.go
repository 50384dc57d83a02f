package mesh

import "github.com/chazu/meshkernel/pkg/kernel/vecmath"

// ApplyTransform applies an affine matrix to every vertex and the
// corresponding normal matrix (mat's inverse-transpose, see
// vecmath.Mat4.NormalMatrix) to every normal, then flips triangle winding if
// flip is set. flip should come from vecmath.RequiresWindingFlip for the
// transform that produced mat.
func (m *Mesh) ApplyTransform(mat vecmath.Mat4, flip bool) {
	normalMat := mat.NormalMatrix()
	for i, v := range m.Vertices {
		m.Vertices[i] = mat.MulPoint(v)
	}
	for i, n := range m.Normals {
		transformed := normalMat.MulDirection(n)
		m.Normals[i] = vecmath.Normalize(transformed)
	}
	if flip {
		m.FlipWinding()
	}
}
