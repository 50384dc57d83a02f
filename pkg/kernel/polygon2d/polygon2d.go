// Package polygon2d provides the 2D polygon type consumed by the extruders.
// Polygons are treated as simple (non-self-intersecting); validating that
// is out of scope here, same as the core spec's geometry kernel.
package polygon2d

// Point2D is a 2D point.
type Point2D struct {
	X, Y float64
}

// Polygon2D is an ordered sequence of 2D points.
type Polygon2D struct {
	Points []Point2D
}

// New builds a Polygon2D from a slice of points.
func New(points []Point2D) Polygon2D {
	return Polygon2D{Points: points}
}

// SignedArea computes the shoelace-style sum
// sum (x_j - x_i)(y_j + y_i) over consecutive pairs. Positive means the
// polygon winds clockwise.
func (p Polygon2D) SignedArea() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := p.Points[i], p.Points[j]
		sum += (b.X - a.X) * (b.Y + a.Y)
	}
	return sum
}

// IsClockwise reports whether the polygon winds clockwise.
func (p Polygon2D) IsClockwise() bool {
	return p.SignedArea() > 0
}

// EnsureCCW returns a copy of p wound counter-clockwise, reversing the
// point order if p is currently clockwise. Idempotent:
// EnsureCCW(EnsureCCW(p)) == EnsureCCW(p).
func (p Polygon2D) EnsureCCW() Polygon2D {
	if !p.IsClockwise() {
		return Polygon2D{Points: append([]Point2D(nil), p.Points...)}
	}
	reversed := make([]Point2D, len(p.Points))
	for i, pt := range p.Points {
		reversed[len(p.Points)-1-i] = pt
	}
	return Polygon2D{Points: reversed}
}
