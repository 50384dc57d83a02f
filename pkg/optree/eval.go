package optree

import (
	"fmt"

	"github.com/chazu/meshkernel/pkg/kernel"
	"github.com/chazu/meshkernel/pkg/kernel/csg"
	"github.com/chazu/meshkernel/pkg/kernel/extrude"
	"github.com/chazu/meshkernel/pkg/kernel/mesh"
	"github.com/chazu/meshkernel/pkg/kernel/vecmath"
)

// transformStack accumulates spatial transforms during tree traversal.
type transformStack struct {
	translations []Vec3
	rotations    []Vec3
}

func newTransformStack() *transformStack {
	return &transformStack{}
}

func (ts *transformStack) pushTranslation(v Vec3) {
	ts.translations = append(ts.translations, v)
}

func (ts *transformStack) pushRotation(v Vec3) {
	ts.rotations = append(ts.rotations, v)
}

func (ts *transformStack) pop() {
	if len(ts.translations) > 0 {
		ts.translations = ts.translations[:len(ts.translations)-1]
	}
	if len(ts.rotations) > 0 {
		ts.rotations = ts.rotations[:len(ts.rotations)-1]
	}
}

func (ts *transformStack) accumulatedTranslation() Vec3 {
	var sum Vec3
	for _, t := range ts.translations {
		sum = Vec3{X: sum.X + t.X, Y: sum.Y + t.Y, Z: sum.Z + t.Z}
	}
	return sum
}

func (ts *transformStack) accumulatedRotation() Vec3 {
	var sum Vec3
	for _, r := range ts.rotations {
		sum = Vec3{X: sum.X + r.X, Y: sum.Y + r.Y, Z: sum.Z + r.Z}
	}
	return sum
}

// Evaluate walks root and produces one kernel.Mesh per primitive, extrusion,
// or boolean leaf it reaches, using k to realize primitives and transforms.
func Evaluate(root Op, k kernel.Kernel) ([]*kernel.Mesh, error) {
	return walk(root, k, newTransformStack())
}

func walk(n Op, k kernel.Kernel, ts *transformStack) ([]*kernel.Mesh, error) {
	switch n.Kind {
	case KindPrimitiveBox, KindPrimitiveCylinder:
		return handlePrimitive(n, k, ts)
	case KindTransform:
		return handleTransform(n, k, ts)
	case KindGroup:
		return handleGroup(n, k, ts)
	case KindBoolean:
		return handleBoolean(n, k, ts)
	case KindExtrudeLinear, KindExtrudeRotate, KindLoft:
		return handleExtrude(n, ts)
	default:
		return nil, fmt.Errorf("optree: unknown op kind %v", n.Kind)
	}
}

func partName(n Op) string {
	if n.Name != "" {
		return n.Name
	}
	return n.Kind.String()
}

// handlePrimitive creates geometry for a primitive op via the backend
// kernel, applying accumulated rotation then translation to the solid.
func handlePrimitive(n Op, k kernel.Kernel, ts *transformStack) ([]*kernel.Mesh, error) {
	var solid kernel.Solid

	switch data := n.Data.(type) {
	case BoxData:
		solid = k.Box(data.X, data.Y, data.Z)
	case CylinderData:
		segments := data.Segments
		if segments <= 0 {
			segments = 32
		}
		solid = k.Cylinder(data.Height, data.Radius, segments)
	default:
		return nil, fmt.Errorf("optree: primitive op %q has unsupported data type %T", n.Name, n.Data)
	}

	rot := ts.accumulatedRotation()
	if rot != (Vec3{}) {
		solid = k.Rotate(solid, rot.X, rot.Y, rot.Z)
	}
	trans := ts.accumulatedTranslation()
	if trans != (Vec3{}) {
		solid = k.Translate(solid, trans.X, trans.Y, trans.Z)
	}

	km, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("optree: ToMesh failed for op %q: %w", n.Name, err)
	}
	km.PartName = partName(n)
	return []*kernel.Mesh{km}, nil
}

// handleExtrude builds geometry directly via the extrude package — these
// ops are kernel-backend independent — then applies the accumulated
// transform to the resulting mesh before handing it back out.
func handleExtrude(n Op, ts *transformStack) ([]*kernel.Mesh, error) {
	var m *mesh.Mesh

	switch data := n.Data.(type) {
	case ExtrudeLinearData:
		m = extrude.Linear(data.Profile, data.Params)
	case ExtrudeRotateData:
		m = extrude.Rotate(data.Profile, data.Params)
	case LoftData:
		m = extrude.Loft(data.Params)
	default:
		return nil, fmt.Errorf("optree: extrude op %q has unsupported data type %T", n.Name, n.Data)
	}

	applyAccumulated(m, ts)
	km := m.ToKernelMesh()
	km.PartName = partName(n)
	return []*kernel.Mesh{km}, nil
}

// handleTransform pushes the transform, recurses into children, then pops.
func handleTransform(n Op, k kernel.Kernel, ts *transformStack) ([]*kernel.Mesh, error) {
	data, ok := n.Data.(TransformData)
	if !ok {
		return nil, fmt.Errorf("optree: transform op %q has unexpected data type %T", n.Name, n.Data)
	}

	translation := Vec3{}
	rotation := Vec3{}
	if data.Translation != nil {
		translation = *data.Translation
	}
	if data.Rotation != nil {
		rotation = *data.Rotation
	}
	ts.pushTranslation(translation)
	ts.pushRotation(rotation)

	var meshes []*kernel.Mesh
	for _, child := range n.Children {
		out, err := walk(child, k, ts)
		if err != nil {
			ts.pop()
			return nil, err
		}
		meshes = append(meshes, out...)
	}

	ts.pop()
	return meshes, nil
}

// handleGroup recurses into children transparently, concatenating outputs.
func handleGroup(n Op, k kernel.Kernel, ts *transformStack) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh
	for _, child := range n.Children {
		out, err := walk(child, k, ts)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, out...)
	}
	return meshes, nil
}

// handleBoolean evaluates exactly two children, flattens each side's
// outputs into a single internal mesh, and performs the boolean op via the
// backend-independent csg package (both operands are normalized through the
// internal mesh bridge regardless of which kernel.Kernel produced them).
func handleBoolean(n Op, k kernel.Kernel, ts *transformStack) ([]*kernel.Mesh, error) {
	data, ok := n.Data.(BooleanData)
	if !ok {
		return nil, fmt.Errorf("optree: boolean op %q has unexpected data type %T", n.Name, n.Data)
	}
	if len(n.Children) != 2 {
		return nil, fmt.Errorf("optree: boolean op %q needs exactly 2 children, got %d", n.Name, len(n.Children))
	}

	leftOut, err := walk(n.Children[0], k, ts)
	if err != nil {
		return nil, err
	}
	rightOut, err := walk(n.Children[1], k, ts)
	if err != nil {
		return nil, err
	}

	var op csg.Op
	switch data.Kind {
	case BoolUnion:
		op = csg.Union
	case BoolDifference:
		op = csg.Difference
	case BoolIntersection:
		op = csg.Intersection
	default:
		return nil, fmt.Errorf("optree: boolean op %q has unknown boolean kind %v", n.Name, data.Kind)
	}

	result := csg.Perform(op, []*mesh.Mesh{mergeToInternal(leftOut), mergeToInternal(rightOut)})
	km := result.ToKernelMesh()
	km.PartName = partName(n)
	return []*kernel.Mesh{km}, nil
}

func mergeToInternal(kms []*kernel.Mesh) *mesh.Mesh {
	m := mesh.New()
	for _, km := range kms {
		m.Merge(mesh.FromKernelMesh(km))
	}
	return m
}

func applyAccumulated(m *mesh.Mesh, ts *transformStack) {
	rot := ts.accumulatedRotation()
	if rot != (Vec3{}) {
		m.ApplyTransform(vecmath.EulerDeg(vecmath.Vec3{X: rot.X, Y: rot.Y, Z: rot.Z}), false)
	}
	trans := ts.accumulatedTranslation()
	if trans != (Vec3{}) {
		m.ApplyTransform(vecmath.Translate(vecmath.Vec3{X: trans.X, Y: trans.Y, Z: trans.Z}), false)
	}
}
