package polygon2d

import "testing"

func unitSquareCCW() Polygon2D {
	return New([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
}

func TestSignedAreaTooFewPoints(t *testing.T) {
	p := New([]Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if p.SignedArea() != 0 {
		t.Errorf("SignedArea of a 2-point polygon = %f, want 0", p.SignedArea())
	}
}

func TestIsClockwiseCCWSquare(t *testing.T) {
	p := unitSquareCCW()
	if p.IsClockwise() {
		t.Error("unit square wound CCW reported as clockwise")
	}
}

func TestIsClockwiseCWSquare(t *testing.T) {
	p := New([]Point2D{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}})
	if !p.IsClockwise() {
		t.Error("reversed square reported as not clockwise")
	}
}

func TestEnsureCCWReversesClockwise(t *testing.T) {
	cw := New([]Point2D{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}})
	ccw := cw.EnsureCCW()
	if ccw.IsClockwise() {
		t.Error("EnsureCCW did not produce a CCW polygon")
	}
}

func TestEnsureCCWIdempotent(t *testing.T) {
	square := unitSquareCCW()
	once := square.EnsureCCW()
	twice := once.EnsureCCW()
	if len(once.Points) != len(twice.Points) {
		t.Fatalf("point count changed: %d vs %d", len(once.Points), len(twice.Points))
	}
	for i := range once.Points {
		if once.Points[i] != twice.Points[i] {
			t.Errorf("point %d differs after second EnsureCCW: %v vs %v", i, once.Points[i], twice.Points[i])
		}
	}
}

func TestEnsureCCWLeavesAlreadyCCWUnchanged(t *testing.T) {
	square := unitSquareCCW()
	ccw := square.EnsureCCW()
	for i := range square.Points {
		if square.Points[i] != ccw.Points[i] {
			t.Errorf("point %d reordered despite already being CCW: %v vs %v", i, square.Points[i], ccw.Points[i])
		}
	}
}
