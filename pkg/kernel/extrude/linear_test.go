package extrude

import (
	"testing"

	"github.com/chazu/meshkernel/pkg/kernel/polygon2d"
)

func triangleProfile() polygon2d.Polygon2D {
	return polygon2d.New([]polygon2d.Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
}

func TestLinearTooFewPointsIsEmpty(t *testing.T) {
	poly := polygon2d.New([]polygon2d.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}})
	m := Linear(poly, LinearParams{Height: 1, Slices: 1})
	if !m.IsEmpty() {
		t.Error("Linear extrusion of a 2-point polygon should be empty")
	}
}

func TestLinearSingleSliceTriangleCount(t *testing.T) {
	m := Linear(triangleProfile(), LinearParams{Height: 1, Slices: 1})
	if len(m.Triangles) != 8 {
		t.Errorf("triangle count = %d, want 8 (6 side + 1 bottom + 1 top)", len(m.Triangles))
	}
}

func TestLinearHeightAffectsBoundingBox(t *testing.T) {
	m := Linear(triangleProfile(), LinearParams{Height: 5, Slices: 1})
	min, max := m.BoundingBox()
	if min.Z != 0 {
		t.Errorf("uncentered extrusion min Z = %f, want 0", min.Z)
	}
	if max.Z != 5 {
		t.Errorf("uncentered extrusion max Z = %f, want 5", max.Z)
	}
}

func TestLinearCenteredStraddlesOrigin(t *testing.T) {
	m := Linear(triangleProfile(), LinearParams{Height: 4, Center: true, Slices: 1})
	min, max := m.BoundingBox()
	if min.Z != -2 || max.Z != 2 {
		t.Errorf("centered extrusion Z range = [%f, %f], want [-2, 2]", min.Z, max.Z)
	}
}

func TestLinearTwistForcesMinimumSliceCount(t *testing.T) {
	m := Linear(triangleProfile(), LinearParams{Height: 1, TwistDeg: 90, Slices: 1})
	// 90deg of twist at a max of 10deg per slice needs at least 9 slices,
	// i.e. strictly more side triangles than the untwisted single-slice case.
	untwisted := Linear(triangleProfile(), LinearParams{Height: 1, Slices: 1})
	if len(m.Triangles) <= len(untwisted.Triangles) {
		t.Errorf("twisted extrusion triangle count = %d, want more than untwisted %d",
			len(m.Triangles), len(untwisted.Triangles))
	}
}

func TestLinearScaleEndShrinksTopRing(t *testing.T) {
	m := Linear(triangleProfile(), LinearParams{Height: 1, Slices: 1, ScaleEndX: 0.5, ScaleEndY: 0.5})
	_, max := m.BoundingBox()
	if max.X > 1.0001 {
		t.Errorf("max X = %f, want <= 1 (top ring scaled down)", max.X)
	}
}
