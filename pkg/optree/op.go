// Package optree is a minimal recursive operation tree used to drive a
// kernel.Kernel end to end: primitives, booleans, transforms, extrusions,
// and groups, composed the way an upstream feature-tree evaluator would
// compose them. It exists to exercise the geometry kernel realistically in
// tests and examples, not to model a full design/feature-tree product.
package optree

import (
	"github.com/chazu/meshkernel/pkg/kernel/extrude"
	"github.com/chazu/meshkernel/pkg/kernel/polygon2d"
)

// Kind enumerates the types of nodes in an operation tree.
type Kind int

const (
	KindPrimitiveBox Kind = iota
	KindPrimitiveCylinder
	KindBoolean
	KindTransform
	KindExtrudeLinear
	KindExtrudeRotate
	KindLoft
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindPrimitiveBox:
		return "primitive-box"
	case KindPrimitiveCylinder:
		return "primitive-cylinder"
	case KindBoolean:
		return "boolean"
	case KindTransform:
		return "transform"
	case KindExtrudeLinear:
		return "extrude-linear"
	case KindExtrudeRotate:
		return "extrude-rotate"
	case KindLoft:
		return "loft"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Vec3 is a plain 3-component vector used for transform op parameters.
type Vec3 struct {
	X, Y, Z float64
}

// Data is the interface for kind-specific op payloads.
type Data interface {
	opData()
}

// BoxData parameterizes a KindPrimitiveBox op.
type BoxData struct {
	X, Y, Z float64
}

func (BoxData) opData() {}

// CylinderData parameterizes a KindPrimitiveCylinder op. Segments <= 0 is
// replaced by 32 before the backend is called.
type CylinderData struct {
	Height, Radius float64
	Segments       int
}

func (CylinderData) opData() {}

// BooleanKind identifies which boolean a KindBoolean op performs.
type BooleanKind int

const (
	BoolUnion BooleanKind = iota
	BoolDifference
	BoolIntersection
)

// BooleanData parameterizes a KindBoolean op. The op must have exactly two
// children.
type BooleanData struct {
	Kind BooleanKind
}

func (BooleanData) opData() {}

// TransformData parameterizes a KindTransform op. A nil field means no
// translation/rotation is applied on that axis group.
type TransformData struct {
	Translation *Vec3
	Rotation    *Vec3 // Euler degrees, applied X then Y then Z
}

func (TransformData) opData() {}

// ExtrudeLinearData parameterizes a KindExtrudeLinear op.
type ExtrudeLinearData struct {
	Profile polygon2d.Polygon2D
	Params  extrude.LinearParams
}

func (ExtrudeLinearData) opData() {}

// ExtrudeRotateData parameterizes a KindExtrudeRotate op.
type ExtrudeRotateData struct {
	Profile polygon2d.Polygon2D
	Params  extrude.RotateParams
}

func (ExtrudeRotateData) opData() {}

// LoftData parameterizes a KindLoft op.
type LoftData struct {
	Params extrude.LoftParams
}

func (LoftData) opData() {}

// GroupData parameterizes a KindGroup op. It carries no fields; children are
// evaluated and their outputs concatenated.
type GroupData struct{}

func (GroupData) opData() {}

// Op is one node of an operation tree.
type Op struct {
	Kind     Kind
	Name     string
	Children []Op
	Data     Data
}
