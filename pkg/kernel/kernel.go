// Package kernel defines the abstract geometry kernel interface.
// Implementations (bspkernel, sdfx, manifold) provide solid modeling and
// boolean operations behind this interface; callers program against
// Kernel and Solid without knowing which backend produced a value.
package kernel

// Solid is an opaque handle to a solid owned by a particular Kernel
// implementation. Values are not interchangeable between Kernel
// implementations.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box of the solid.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the geometry backend contract. A backend turns primitive
// parameters and boolean operations into Solid values, and Solid values
// into renderable Mesh values.
type Kernel interface {
	// Box creates an axis-aligned box with the given dimensions.
	Box(x, y, z float64) Solid

	// Cylinder creates a cylinder of the given height and radius along Z.
	// segments is a hint for backends that tessellate eagerly; implicit
	// (SDF-based) backends may ignore it.
	Cylinder(height, radius float64, segments int) Solid

	// Union, Difference, and Intersection perform the named boolean
	// operation on two solids.
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Translate and Rotate apply an affine transform to a solid. Rotate
	// takes Euler angles in degrees applied in X, then Y, then Z order.
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid

	// ToMesh tessellates a solid into a renderable triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}
