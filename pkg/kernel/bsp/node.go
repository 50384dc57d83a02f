package bsp

// MaxDepth is the hard recursion cap for tree build. Polygons that would
// require splitting beyond this depth are retained unsplit at the current
// node instead — graceful degradation, never an error.
const MaxDepth = 100

// Node is a recursive BSP tree node: an optional splitting plane, the
// polygons coplanar with that plane (both orientations), and optional
// front/back subtrees.
type Node struct {
	Plane    *Plane
	Polygons []Polygon
	Front    *Node
	Back     *Node
}

// Build constructs a BSP tree from an initial polygon list.
func Build(polygons []Polygon) *Node {
	if len(polygons) == 0 {
		return nil
	}
	n := &Node{}
	n.build(polygons, 0)
	return n
}

// build is the recursive worker. The first polygon handed to a brand-new
// node sets that node's plane and is filed into the node's own coplanar
// list directly (it is trivially coplanar with a plane derived from
// itself); every subsequent polygon is split/classified against that
// plane.
func (n *Node) build(polygons []Polygon, depth int) {
	if len(polygons) == 0 {
		return
	}
	if n.Plane == nil {
		pl := PlaneFromPolygon(polygons[0])
		n.Plane = &pl
		n.Polygons = append(n.Polygons, polygons[0])
		polygons = polygons[1:]
	}
	if len(polygons) == 0 {
		return
	}
	if depth >= MaxDepth {
		n.Polygons = append(n.Polygons, polygons...)
		return
	}

	var front, back []Polygon
	for _, p := range polygons {
		cf, cb, f, b := Split(*n.Plane, p)
		n.Polygons = append(n.Polygons, cf...)
		n.Polygons = append(n.Polygons, cb...)
		front = append(front, f...)
		back = append(back, b...)
	}

	if len(front) > 0 {
		if n.Front == nil {
			n.Front = &Node{}
		}
		n.Front.build(front, depth+1)
	}
	if len(back) > 0 {
		if n.Back == nil {
			n.Back = &Node{}
		}
		n.Back.build(back, depth+1)
	}
}

// Invert reverses every polygon's vertex order and negates its normal,
// negates the node's plane, swaps the front and back subtrees, and
// recurses. After Invert, the tree represents the complement of the
// original solid. Invert is involutive.
func (n *Node) Invert() {
	if n == nil {
		return
	}
	for i, p := range n.Polygons {
		n.Polygons[i] = p.Flip()
	}
	if n.Plane != nil {
		n.Plane.Invert()
	}
	n.Front, n.Back = n.Back, n.Front
	n.Front.Invert()
	n.Back.Invert()
}

// ClipPolygons removes the parts of polys that lie inside the solid
// represented by n. Front fragments recurse into the front subtree (or
// pass through if there is none); back fragments recurse into the back
// subtree if present, else are discarded (they are inside the solid).
func (n *Node) ClipPolygons(polys []Polygon) []Polygon {
	if n == nil || n.Plane == nil {
		return append([]Polygon(nil), polys...)
	}

	var front, back []Polygon
	for _, p := range polys {
		cf, cb, f, b := Split(*n.Plane, p)
		front = append(front, cf...)
		front = append(front, f...)
		back = append(back, cb...)
		back = append(back, b...)
	}

	if n.Front != nil {
		front = n.Front.ClipPolygons(front)
	}
	if n.Back != nil {
		back = n.Back.ClipPolygons(back)
	} else {
		back = nil
	}

	return append(front, back...)
}

// ClipPolygonsInverse is the dual of ClipPolygons: it keeps only the parts
// of polys that lie inside the solid represented by n.
func (n *Node) ClipPolygonsInverse(polys []Polygon) []Polygon {
	if n == nil || n.Plane == nil {
		return append([]Polygon(nil), polys...)
	}

	var front, back []Polygon
	for _, p := range polys {
		cf, cb, f, b := Split(*n.Plane, p)
		front = append(front, cf...)
		front = append(front, f...)
		back = append(back, cb...)
		back = append(back, b...)
	}

	if n.Front != nil {
		front = n.Front.ClipPolygonsInverse(front)
	} else {
		front = nil
	}
	if n.Back != nil {
		back = n.Back.ClipPolygonsInverse(back)
	}

	return append(front, back...)
}

// ClipTo removes, in place, all geometry of n that lies inside other.
func (n *Node) ClipTo(other *Node) {
	if n == nil {
		return
	}
	n.Polygons = other.ClipPolygons(n.Polygons)
	n.Front.ClipTo(other)
	n.Back.ClipTo(other)
}

// ClipToInverse keeps, in place, only the geometry of n that lies inside
// other.
func (n *Node) ClipToInverse(other *Node) {
	if n == nil {
		return
	}
	n.Polygons = other.ClipPolygonsInverse(n.Polygons)
	n.Front.ClipToInverse(other)
	n.Back.ClipToInverse(other)
}

// AllPolygons flattens the entire tree's polygon lists, in order.
func (n *Node) AllPolygons() []Polygon {
	if n == nil {
		return nil
	}
	out := append([]Polygon(nil), n.Polygons...)
	out = append(out, n.Front.AllPolygons()...)
	out = append(out, n.Back.AllPolygons()...)
	return out
}

// Clone returns a deep copy of the tree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Front: n.Front.Clone(), Back: n.Back.Clone()}
	if n.Plane != nil {
		pl := *n.Plane
		c.Plane = &pl
	}
	c.Polygons = make([]Polygon, len(n.Polygons))
	for i, p := range n.Polygons {
		c.Polygons[i] = p.Clone()
	}
	return c
}
