package optree_test

import (
	"testing"

	"github.com/chazu/meshkernel/pkg/kernel"
	"github.com/chazu/meshkernel/pkg/kernel/bspkernel"
	"github.com/chazu/meshkernel/pkg/kernel/extrude"
	"github.com/chazu/meshkernel/pkg/kernel/polygon2d"
	"github.com/chazu/meshkernel/pkg/optree"
)

func newKernel() kernel.Kernel {
	return bspkernel.New()
}

func box(name string, x, y, z float64) optree.Op {
	return optree.Op{
		Kind: optree.KindPrimitiveBox,
		Name: name,
		Data: optree.BoxData{X: x, Y: y, Z: z},
	}
}

func translate(name string, tx, ty, tz float64, children ...optree.Op) optree.Op {
	t := optree.Vec3{X: tx, Y: ty, Z: tz}
	return optree.Op{
		Kind:     optree.KindTransform,
		Name:     name,
		Children: children,
		Data:     optree.TransformData{Translation: &t},
	}
}

func group(name string, children ...optree.Op) optree.Op {
	return optree.Op{
		Kind:     optree.KindGroup,
		Name:     name,
		Children: children,
		Data:     optree.GroupData{},
	}
}

func boolean(name string, kind optree.BooleanKind, a, b optree.Op) optree.Op {
	return optree.Op{
		Kind:     optree.KindBoolean,
		Name:     name,
		Children: []optree.Op{a, b},
		Data:     optree.BooleanData{Kind: kind},
	}
}

func TestEvaluatePrimitiveBox(t *testing.T) {
	k := newKernel()
	root := box("plate", 10, 5, 1)

	meshes, err := optree.Evaluate(root, k)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(meshes))
	}
	if meshes[0].PartName != "plate" {
		t.Errorf("PartName = %q, want %q", meshes[0].PartName, "plate")
	}
	if meshes[0].TriangleCount() != 12 {
		t.Errorf("triangle count = %d, want 12", meshes[0].TriangleCount())
	}
}

func TestEvaluateTransformAppliesToChild(t *testing.T) {
	k := newKernel()
	root := translate("placed", 10, 0, 0, box("cube", 1, 1, 1))

	meshes, err := optree.Evaluate(root, k)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(meshes))
	}

	minX, maxX := minMaxX(meshes[0])
	if minX < 9.999 || maxX > 11.001 {
		t.Errorf("translated box X range = [%f, %f], want roughly [10, 11]", minX, maxX)
	}
}

func TestEvaluateGroupConcatenatesOutputs(t *testing.T) {
	k := newKernel()
	root := group("assembly",
		box("a", 1, 1, 1),
		translate("place-b", 5, 0, 0, box("b", 1, 1, 1)),
	)

	meshes, err := optree.Evaluate(root, k)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("got %d meshes, want 2", len(meshes))
	}
}

func TestEvaluateBooleanUnion(t *testing.T) {
	k := newKernel()
	root := boolean("combined", optree.BoolUnion,
		box("a", 1, 1, 1),
		translate("place-b", 5, 0, 0, box("b", 1, 1, 1)),
	)

	meshes, err := optree.Evaluate(root, k)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(meshes))
	}
	if meshes[0].TriangleCount() != 24 {
		t.Errorf("disjoint boolean union triangle count = %d, want 24", meshes[0].TriangleCount())
	}
}

func TestEvaluateBooleanRequiresTwoChildren(t *testing.T) {
	k := newKernel()
	root := optree.Op{
		Kind:     optree.KindBoolean,
		Name:     "bad",
		Children: []optree.Op{box("a", 1, 1, 1)},
		Data:     optree.BooleanData{Kind: optree.BoolUnion},
	}

	if _, err := optree.Evaluate(root, k); err == nil {
		t.Error("expected an error for a boolean op with one child")
	}
}

func TestEvaluateExtrudeLinear(t *testing.T) {
	k := newKernel()
	profile := polygon2d.New([]polygon2d.Point2D{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})
	root := optree.Op{
		Kind: optree.KindExtrudeLinear,
		Name: "panel",
		Data: optree.ExtrudeLinearData{
			Profile: profile,
			Params:  extrude.LinearParams{Height: 2, Slices: 1},
		},
	}

	meshes, err := optree.Evaluate(root, k)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(meshes))
	}
	if meshes[0].IsEmpty() {
		t.Error("extrude-linear op with a square profile produced no geometry")
	}
}

func minMaxX(m *kernel.Mesh) (min, max float64) {
	min, max = m.Vertices[0], m.Vertices[0]
	for i := 0; i < len(m.Vertices); i += 3 {
		x := m.Vertices[i]
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}
