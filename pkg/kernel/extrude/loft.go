package extrude

import (
	"github.com/chazu/meshkernel/pkg/kernel/mesh"
	"github.com/chazu/meshkernel/pkg/kernel/polygon2d"
	"github.com/chazu/meshkernel/pkg/kernel/vecmath"
)

// LoftParams configures a loft extrusion across >= 2 profiles.
type LoftParams struct {
	Profiles       []polygon2d.Polygon2D
	Heights        []float64
	SlicesPerSpan  int
}

// smoothstep computes t^2 * (3 - 2t).
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Loft smoothly interpolates between profiles of equal point count (n >= 3)
// at the given Z heights. Mismatched profile counts, fewer than 2 profiles,
// or fewer than 3 points per profile all produce an empty mesh.
func Loft(p LoftParams) *mesh.Mesh {
	if len(p.Profiles) < 2 || len(p.Profiles) != len(p.Heights) {
		return mesh.New()
	}
	n := len(p.Profiles[0].Points)
	if n < 3 {
		return mesh.New()
	}
	for _, prof := range p.Profiles {
		if len(prof.Points) != n {
			return mesh.New()
		}
	}
	slicesPerSpan := p.SlicesPerSpan
	if slicesPerSpan < 1 {
		slicesPerSpan = 1
	}

	normalized := make([]polygon2d.Polygon2D, len(p.Profiles))
	for i, prof := range p.Profiles {
		normalized[i] = prof.EnsureCCW()
	}

	var rings [][]vecmath.Vec3
	for span := 0; span < len(normalized)-1; span++ {
		a, b := normalized[span], normalized[span+1]
		zA, zB := p.Heights[span], p.Heights[span+1]

		start := 0
		if span > 0 {
			start = 1
		}
		for s := start; s <= slicesPerSpan; s++ {
			t := float64(s) / float64(slicesPerSpan)
			tPrime := smoothstep(t)
			ring := make([]vecmath.Vec3, n)
			z := zA + (zB-zA)*t
			for i := range a.Points {
				x := a.Points[i].X + (b.Points[i].X-a.Points[i].X)*tPrime
				y := a.Points[i].Y + (b.Points[i].Y-a.Points[i].Y)*tPrime
				ring[i] = vecmath.Vec3{X: x, Y: y, Z: z}
			}
			rings = append(rings, ring)
		}
	}

	m := mesh.New()
	for r := 0; r < len(rings)-1; r++ {
		bottom, top := rings[r], rings[r+1]
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

	bottomRing := rings[0]
	bottomStart := len(m.Vertices)
	for _, v := range bottomRing {
		m.AddVertex(v, vecmath.Vec3{X: 0, Y: 0, Z: -1})
	}
	for i := 1; i <= n-2; i++ {
		m.AddTriangle(bottomStart, bottomStart+i+1, bottomStart+i)
	}

	topRing := rings[len(rings)-1]
	topStart := len(m.Vertices)
	for _, v := range topRing {
		m.AddVertex(v, vecmath.Vec3{X: 0, Y: 0, Z: 1})
	}
	for i := 1; i <= n-2; i++ {
		m.AddTriangle(topStart, topStart+i, topStart+i+1)
	}

	m.RecomputeNormals()
	return m
}
