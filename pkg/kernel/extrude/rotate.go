package extrude

import (
	"math"

	"github.com/chazu/meshkernel/pkg/kernel/mesh"
	"github.com/chazu/meshkernel/pkg/kernel/polygon2d"
	"github.com/chazu/meshkernel/pkg/kernel/vecmath"
)

// RotateParams configures a rotational extrusion.
type RotateParams struct {
	AngleDeg float64
	FnHint   int
}

// fullRevolutionEpsilon is the tolerance used to detect a full 360 sweep.
const fullRevolutionEpsilon = 1e-3

// Rotate revolves a profile (treated as (x, y) = (radius, height)) around
// the Y axis by AngleDeg. Profiles with fewer than 2 points produce an
// empty mesh.
func Rotate(profile polygon2d.Polygon2D, p RotateParams) *mesh.Mesh {
	m := len(profile.Points)
	if m < 2 {
		return mesh.New()
	}

	angleRad := p.AngleDeg * math.Pi / 180
	k := p.FnHint
	if k <= 0 {
		k = int(math.Floor(p.AngleDeg / 10))
		if k < 8 {
			k = 8
		}
	}
	full := math.Abs(p.AngleDeg-360) < fullRevolutionEpsilon

	ringCount := k
	if !full {
		ringCount = k + 1
	}

	rings := make([][]vecmath.Vec3, ringCount)
	for s := 0; s < ringCount; s++ {
		theta := angleRad * float64(s) / float64(k)
		cosT, sinT := math.Cos(theta), math.Sin(theta)
		ring := make([]vecmath.Vec3, m)
		for i, pt := range profile.Points {
			ring[i] = vecmath.Vec3{X: pt.X * cosT, Y: pt.Y, Z: pt.X * sinT}
		}
		rings[s] = ring
	}

	out := mesh.New()
	// Per-ring-pair vertex blocks, same faceting discipline as Linear.
	nextRing := func(s int) int {
		if full {
			return (s + 1) % k
		}
		return s + 1
	}
	segCount := k
	if !full {
		segCount = ringCount - 1
	}
	for s := 0; s < segCount; s++ {
		a, b := rings[s], rings[nextRing(s)]
		for i := 0; i < m-1; i++ {
			a0 := out.AddVertex(a[i], vecmath.Vec3{})
			a1 := out.AddVertex(a[i+1], vecmath.Vec3{})
			b0 := out.AddVertex(b[i], vecmath.Vec3{})
			b1 := out.AddVertex(b[i+1], vecmath.Vec3{})
			out.AddTriangle(a0, b0, b1)
			out.AddTriangle(a0, b1, a1)
		}
	}

	if !full && m >= 3 {
		startRing := rings[0]
		startBase := len(out.Vertices)
		for _, v := range startRing {
			out.AddVertex(v, vecmath.Vec3{})
		}
		for i := 1; i <= m-2; i++ {
			out.AddTriangle(startBase, startBase+i+1, startBase+i)
		}

		endRing := rings[ringCount-1]
		endBase := len(out.Vertices)
		for _, v := range endRing {
			out.AddVertex(v, vecmath.Vec3{})
		}
		for i := 1; i <= m-2; i++ {
			out.AddTriangle(endBase, endBase+i, endBase+i+1)
		}
	}

	out.RecomputeNormals()
	return out
}
