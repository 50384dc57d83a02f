// Package vecmath provides the vector and affine-matrix math shared by the
// extruders, the BSP engine, and the CSG evaluator. Vector math is built on
// top of github.com/deadsy/sdfx/vec/v3, the same vector type the sdfx kernel
// backend uses, so a mesh produced by the native BSP backend and a mesh
// produced by the sdfx backend speak the same coordinate language.
package vecmath

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vec3 is a 3-component double-precision vector.
type Vec3 = v3.Vec

// Add returns a + b.
func Add(a, b Vec3) Vec3 {
	return Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns a - b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns v scaled by s.
func Scale(v Vec3, s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns -v.
func Neg(v Vec3) Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product a . b.
func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length of v.
func Length(v Vec3) float64 {
	return math.Sqrt(Dot(v, v))
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged (degenerate input is handled by callers, not here).
func Normalize(v Vec3) Vec3 {
	l := Length(v)
	if l <= 0 {
		return v
	}
	return Scale(v, 1/l)
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b Vec3, t float64) Vec3 {
	return Add(a, Scale(Sub(b, a), t))
}

// MinComponents returns the componentwise minimum of a and b.
func MinComponents(a, b Vec3) Vec3 {
	return Vec3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxComponents returns the componentwise maximum of a and b.
func MaxComponents(a, b Vec3) Vec3 {
	return Vec3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
