package vecmath

import "math"

// Mat4 is a 4x4 matrix in column-major order: Cols[c] is the c-th column.
// Mat4{}.Cols[3] is the translation column for an affine transform.
type Mat4 struct {
	Cols [4][4]float64
}

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m.Cols[i][i] = 1
	}
	return m
}

// Translate builds a translation matrix: identity with column 3 = (v, 1).
func Translate(v Vec3) Mat4 {
	m := Identity()
	m.Cols[3] = [4]float64{v.X, v.Y, v.Z, 1}
	return m
}

// ScaleMat builds a diagonal scale matrix (v.x, v.y, v.z, 1).
func ScaleMat(v Vec3) Mat4 {
	m := Identity()
	m.Cols[0][0] = v.X
	m.Cols[1][1] = v.Y
	m.Cols[2][2] = v.Z
	return m
}

// RotateAxisDeg builds a rotation matrix of angleDeg degrees about axis,
// using the Rodrigues rotation formula. axis is normalized internally.
func RotateAxisDeg(angleDeg float64, axis Vec3) Mat4 {
	n := Normalize(axis)
	rad := angleDeg * math.Pi / 180
	s, c := math.Sin(rad), math.Cos(rad)
	t := 1 - c

	m := Identity()
	m.Cols[0] = [4]float64{t*n.X*n.X + c, t*n.X*n.Y + s*n.Z, t*n.X*n.Z - s*n.Y, 0}
	m.Cols[1] = [4]float64{t*n.X*n.Y - s*n.Z, t*n.Y*n.Y + c, t*n.Y*n.Z + s*n.X, 0}
	m.Cols[2] = [4]float64{t*n.X*n.Z + s*n.Y, t*n.Y*n.Z - s*n.X, t*n.Z*n.Z + c, 0}
	return m
}

// EulerDeg builds R = Rz . Ry . Rx from Euler angles in degrees.
func EulerDeg(anglesDeg Vec3) Mat4 {
	rx := RotateAxisDeg(anglesDeg.X, Vec3{X: 1})
	ry := RotateAxisDeg(anglesDeg.Y, Vec3{Y: 1})
	rz := RotateAxisDeg(anglesDeg.Z, Vec3{Z: 1})
	return rz.Mul(ry).Mul(rx)
}

// Mirror builds a reflection matrix about the plane through the origin
// with the given unit normal: I - 2*n*n^T, blocked into the upper 3x3.
func Mirror(normal Vec3) Mat4 {
	n := Normalize(normal)
	m := Identity()
	m.Cols[0][0] = 1 - 2*n.X*n.X
	m.Cols[0][1] = -2 * n.Y * n.X
	m.Cols[0][2] = -2 * n.Z * n.X
	m.Cols[1][0] = -2 * n.X * n.Y
	m.Cols[1][1] = 1 - 2*n.Y*n.Y
	m.Cols[1][2] = -2 * n.Z * n.Y
	m.Cols[2][0] = -2 * n.X * n.Z
	m.Cols[2][1] = -2 * n.Y * n.Z
	m.Cols[2][2] = 1 - 2*n.Z*n.Z
	return m
}

// Mul returns m * other (applying other first, then m).
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.Cols[k][r] * other.Cols[c][k]
			}
			out.Cols[c][r] = sum
		}
	}
	return out
}

// MulPoint transforms a point (w=1): applies rotation/scale and translation.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	return Vec3{
		X: m.Cols[0][0]*p.X + m.Cols[1][0]*p.Y + m.Cols[2][0]*p.Z + m.Cols[3][0],
		Y: m.Cols[0][1]*p.X + m.Cols[1][1]*p.Y + m.Cols[2][1]*p.Z + m.Cols[3][1],
		Z: m.Cols[0][2]*p.X + m.Cols[1][2]*p.Y + m.Cols[2][2]*p.Z + m.Cols[3][2],
	}
}

// MulDirection transforms a direction (w=0): applies only the upper 3x3
// block, ignoring translation. Normals are transformed by calling it on
// NormalMatrix's result (see NormalMatrix for why the forward block alone
// is not sufficient under non-uniform scale).
func (m Mat4) MulDirection(d Vec3) Vec3 {
	return Vec3{
		X: m.Cols[0][0]*d.X + m.Cols[1][0]*d.Y + m.Cols[2][0]*d.Z,
		Y: m.Cols[0][1]*d.X + m.Cols[1][1]*d.Y + m.Cols[2][1]*d.Z,
		Z: m.Cols[0][2]*d.X + m.Cols[1][2]*d.Y + m.Cols[2][2]*d.Z,
	}
}

// NormalMatrix returns the matrix that correctly transforms surface normals
// under m: the inverse-transpose of m's upper 3x3 block, with translation
// zeroed. For rotations and mirrors (orthogonal blocks) this equals the
// forward block, but for non-uniform scale it does not — scaling X up alone,
// the forward block tilts normals toward X, while the correct normals tilt
// toward the unscaled axes. Falls back to the
// forward block when the block is singular (e.g. a zero-scale axis), since
// there is no well-defined inverse to use instead.
func (m Mat4) NormalMatrix() Mat4 {
	var a [3][3]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			a[r][c] = m.Cols[c][r]
		}
	}

	var cof [3][3]float64
	cof[0][0] = a[1][1]*a[2][2] - a[1][2]*a[2][1]
	cof[0][1] = -(a[1][0]*a[2][2] - a[1][2]*a[2][0])
	cof[0][2] = a[1][0]*a[2][1] - a[1][1]*a[2][0]
	cof[1][0] = -(a[0][1]*a[2][2] - a[0][2]*a[2][1])
	cof[1][1] = a[0][0]*a[2][2] - a[0][2]*a[2][0]
	cof[1][2] = -(a[0][0]*a[2][1] - a[0][1]*a[2][0])
	cof[2][0] = a[0][1]*a[1][2] - a[0][2]*a[1][1]
	cof[2][1] = -(a[0][0]*a[1][2] - a[0][2]*a[1][0])
	cof[2][2] = a[0][0]*a[1][1] - a[0][1]*a[1][0]

	det := a[0][0]*cof[0][0] + a[0][1]*cof[0][1] + a[0][2]*cof[0][2]

	n := Identity()
	if det == 0 {
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				n.Cols[c][r] = a[r][c]
			}
		}
		return n
	}
	// Inverse-transpose of a equals its cofactor matrix divided by det,
	// with no further transpose needed (adjugate(a) = cofactor(a)^T, and
	// inverse(a) = adjugate(a)/det, so (inverse(a))^T = cofactor(a)/det).
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			n.Cols[c][r] = cof[r][c] / det
		}
	}
	return n
}

// TransformKind identifies which builder produced a TransformSpec, for use
// by RequiresWindingFlip.
type TransformKind int

const (
	KindTranslate TransformKind = iota
	KindRotate
	KindScale
	KindMirror
)

// RequiresWindingFlip reports whether applying a transform of the given
// kind with the given scale vector (only meaningful for KindScale) negates
// the determinant's sign and therefore requires flipping triangle winding
// after the transform is applied. True for every mirror; true for scale
// when an odd number of its components are negative.
func RequiresWindingFlip(kind TransformKind, scale Vec3) bool {
	switch kind {
	case KindMirror:
		return true
	case KindScale:
		neg := 0
		if scale.X < 0 {
			neg++
		}
		if scale.Y < 0 {
			neg++
		}
		if scale.Z < 0 {
			neg++
		}
		return neg%2 == 1
	default:
		return false
	}
}
