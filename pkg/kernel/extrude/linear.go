// Package extrude implements the linear, rotational, and loft extruders
// (spec components C4, C5, C6): each sweeps a 2D profile into a 3D mesh.
package extrude

import (
	"math"

	"github.com/chazu/meshkernel/pkg/kernel/mesh"
	"github.com/chazu/meshkernel/pkg/kernel/polygon2d"
	"github.com/chazu/meshkernel/pkg/kernel/vecmath"
)

// LinearParams configures a linear extrusion.
type LinearParams struct {
	Height    float64
	Center    bool
	TwistDeg  float64
	ScaleEndX float64
	ScaleEndY float64
	Slices    int
	FnHint    int
}

// Linear sweeps a CCW polygon along +Z, producing a closed mesh. Polygons
// with fewer than 3 points produce an empty mesh.
func Linear(poly polygon2d.Polygon2D, p LinearParams) *mesh.Mesh {
	n := len(poly.Points)
	if n < 3 {
		return mesh.New()
	}

	twistRad := p.TwistDeg * math.Pi / 180
	slices := p.Slices
	if twistRad != 0 {
		needed := int(math.Ceil(math.Abs(twistRad) / (math.Pi / 18)))
		if needed > slices {
			slices = needed
		}
	} else if slices < 1 {
		slices = 1
	}
	if slices < 1 {
		slices = 1
	}

	scaleX, scaleY := p.ScaleEndX, p.ScaleEndY
	if scaleX == 0 {
		scaleX = 1
	}
	if scaleY == 0 {
		scaleY = 1
	}

	var z0 float64
	if p.Center {
		z0 = -p.Height / 2
	}

	m := mesh.New()

	// ringAt returns the n vertex positions for slice index s.
	ringAt := func(s int) []vecmath.Vec3 {
		t := float64(s) / float64(slices)
		sx := 1 + (scaleX-1)*t
		sy := 1 + (scaleY-1)*t
		twist := p.TwistDeg * t * math.Pi / 180
		cosT, sinT := math.Cos(twist), math.Sin(twist)
		z := z0 + p.Height*t

		ring := make([]vecmath.Vec3, n)
		for i, pt := range poly.Points {
			x := pt.X * sx
			y := pt.Y * sy
			rx := x*cosT - y*sinT
			ry := x*sinT + y*cosT
			ring[i] = vecmath.Vec3{X: rx, Y: ry, Z: z}
		}
		return ring
	}

	rings := make([][]vecmath.Vec3, slices+1)
	for s := 0; s <= slices; s++ {
		rings[s] = ringAt(s)
	}

	// Side faces: per-slice-segment vertex blocks, not shared across
	// segments, so each segment gets its own faceted normals.
	for s := 0; s < slices; s++ {
		bottom, top := rings[s], rings[s+1]
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			bi := m.AddVertex(bottom[i], vecmath.Vec3{})
			bj := m.AddVertex(bottom[j], vecmath.Vec3{})
			ti := m.AddVertex(top[i], vecmath.Vec3{})
			tj := m.AddVertex(top[j], vecmath.Vec3{})
			m.AddTriangle(bi, bj, tj)
			m.AddTriangle(bi, tj, ti)
		}
	}

	// Bottom cap: fan (0, i+1, i), reversed so it faces -Z.
	bottomRing := rings[0]
	bottomStart := len(m.Vertices)
	for _, v := range bottomRing {
		m.AddVertex(v, vecmath.Vec3{X: 0, Y: 0, Z: -1})
	}
	for i := 1; i <= n-2; i++ {
		m.AddTriangle(bottomStart, bottomStart+i+1, bottomStart+i)
	}

	// Top cap: fan (0, i, i+1), faces +Z.
	topRing := rings[slices]
	topStart := len(m.Vertices)
	for _, v := range topRing {
		m.AddVertex(v, vecmath.Vec3{X: 0, Y: 0, Z: 1})
	}
	for i := 1; i <= n-2; i++ {
		m.AddTriangle(topStart, topStart+i, topStart+i+1)
	}

	// Face-normal accumulation discards the cap assignment above. The cap
	// rings have their own vertices, used only by cap triangles, so a
	// convex profile's cap normals come out as -Z and +Z again.
	m.RecomputeNormals()
	return m
}
