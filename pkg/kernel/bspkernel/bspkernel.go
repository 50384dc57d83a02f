// Package bspkernel implements the kernel.Kernel interface using the
// in-module BSP-tree CSG evaluator: primitives are built by the extruders,
// booleans are performed by the csg package, and transforms are applied
// directly to the internal double-precision mesh.
package bspkernel

import (
	"github.com/chazu/meshkernel/pkg/kernel"
	"github.com/chazu/meshkernel/pkg/kernel/csg"
	"github.com/chazu/meshkernel/pkg/kernel/extrude"
	"github.com/chazu/meshkernel/pkg/kernel/mesh"
	"github.com/chazu/meshkernel/pkg/kernel/polygon2d"
	"github.com/chazu/meshkernel/pkg/kernel/vecmath"
)

// Compile-time interface check.
var _ kernel.Kernel = (*BSPKernel)(nil)

// defaultCylinderSegments is used when Cylinder is called with segments <= 0.
const defaultCylinderSegments = 32

// bspSolid wraps an internal *mesh.Mesh to implement kernel.Solid.
type bspSolid struct {
	m *mesh.Mesh
}

// BoundingBox returns the axis-aligned bounding box.
func (s *bspSolid) BoundingBox() (min, max [3]float64) {
	lo, hi := s.m.BoundingBox()
	return [3]float64{lo.X, lo.Y, lo.Z}, [3]float64{hi.X, hi.Y, hi.Z}
}

// BSPKernel implements kernel.Kernel using the package's own BSP CSG engine.
type BSPKernel struct{}

// New returns a new BSPKernel.
func New() *BSPKernel {
	return &BSPKernel{}
}

func unwrap(s kernel.Solid) *mesh.Mesh {
	return s.(*bspSolid).m
}

func wrap(m *mesh.Mesh) kernel.Solid {
	return &bspSolid{m: m}
}

// cloneMesh returns an independent copy so that transforming a solid never
// mutates one that a caller may still be holding a reference to.
func cloneMesh(m *mesh.Mesh) *mesh.Mesh {
	c := mesh.New()
	c.Merge(m)
	return c
}

// Box creates an axis-aligned box with its minimum corner at the origin and
// its opposite corner at (x, y, z).
func (k *BSPKernel) Box(x, y, z float64) kernel.Solid {
	profile := polygon2d.New([]polygon2d.Point2D{
		{X: 0, Y: 0}, {X: x, Y: 0}, {X: x, Y: y}, {X: 0, Y: y},
	})
	m := extrude.Linear(profile, extrude.LinearParams{Height: z, Slices: 1})
	return wrap(m)
}

// Cylinder creates a cylinder of the given height and radius along Z,
// centered on the Z axis with its base at z=0.
func (k *BSPKernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	if segments <= 0 {
		segments = defaultCylinderSegments
	}
	// Rotate revolves a (radius, height) profile around the Y axis; align
	// that revolution to the Z axis the interface promises. The profile
	// runs axis-top, rim-top, rim-bottom, axis-bottom, so the revolved
	// mesh is closed by its end discs and faces outward.
	profile := polygon2d.New([]polygon2d.Point2D{
		{X: 0, Y: height}, {X: radius, Y: height}, {X: radius, Y: 0}, {X: 0, Y: 0},
	})
	m := extrude.Rotate(profile, extrude.RotateParams{AngleDeg: 360, FnHint: segments})
	m.ApplyTransform(vecmath.RotateAxisDeg(90, vecmath.Vec3{X: 1}), false)
	return wrap(m)
}

// Union returns the boolean union of two solids.
func (k *BSPKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(csg.Perform(csg.Union, []*mesh.Mesh{unwrap(a), unwrap(b)}))
}

// Difference returns the boolean difference a - b.
func (k *BSPKernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(csg.Perform(csg.Difference, []*mesh.Mesh{unwrap(a), unwrap(b)}))
}

// Intersection returns the boolean intersection of two solids.
func (k *BSPKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(csg.Perform(csg.Intersection, []*mesh.Mesh{unwrap(a), unwrap(b)}))
}

// Translate moves a solid by (x, y, z).
func (k *BSPKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := cloneMesh(unwrap(s))
	m.ApplyTransform(vecmath.Translate(vecmath.Vec3{X: x, Y: y, Z: z}), false)
	return wrap(m)
}

// Rotate rotates a solid by Euler angles (degrees), applied X then Y then Z.
func (k *BSPKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := cloneMesh(unwrap(s))
	m.ApplyTransform(vecmath.EulerDeg(vecmath.Vec3{X: x, Y: y, Z: z}), false)
	return wrap(m)
}

// ToMesh converts a solid to the outbound flat float32 representation.
func (k *BSPKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	return unwrap(s).ToKernelMesh(), nil
}
