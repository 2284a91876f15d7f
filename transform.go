package grove

import "math"

// Transform is a node in the spatial hierarchy. Every GameObject owns exactly
// one Transform; the parent/child links between Transforms are what form the
// object tree.
//
// Hierarchical operations accumulate absolutely: translating or rotating a
// Transform applies the same delta to every descendant's own Position and
// Rotation. There is no local/world split.
type Transform struct {
	Position Vector2D
	Rotation float64 // degrees
	Scale    Vector2D

	gameObject *GameObject
	parent     *Transform
	children   []*Transform
}

func newTransform(g *GameObject) Transform {
	return Transform{Scale: VectorOne, gameObject: g}
}

// GameObject returns the object that owns this transform.
func (t *Transform) GameObject() *GameObject {
	return t.gameObject
}

// Name returns the owning object's name.
func (t *Transform) Name() string {
	return t.gameObject.Name
}

// Tag returns the owning object's tag.
func (t *Transform) Tag() string {
	return t.gameObject.Tag
}

// Parent returns the parent transform, or nil for a root.
func (t *Transform) Parent() *Transform {
	return t.parent
}

// Root returns the topmost ancestor, or t itself when it has no parent.
func (t *Transform) Root() *Transform {
	r := t
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (t *Transform) Children() []*Transform {
	return t.children
}

// ChildCount returns the number of direct children.
func (t *Transform) ChildCount() int {
	return len(t.children)
}

// --- Plain setters (no propagation) ---

// SetPosition sets the position of this transform only.
func (t *Transform) SetPosition(p Vector2D) {
	t.Position = p
}

// SetRotation sets the rotation (in degrees) of this transform only.
func (t *Transform) SetRotation(deg float64) {
	t.Rotation = deg
}

// SetScale sets the scale of this transform only.
func (t *Transform) SetScale(s Vector2D) {
	t.Scale = s
}

// --- Hierarchical motion ---

// Translate moves this transform and all its descendants by delta.
func (t *Transform) Translate(delta Vector2D) {
	t.Position.X += delta.X
	t.Position.Y += delta.Y
	for _, child := range t.children {
		child.Translate(delta)
	}
}

// Rotate adds deg degrees to the rotation of this transform and all its descendants.
// Positions are not affected.
func (t *Transform) Rotate(deg float64) {
	t.Rotation += deg
	for _, child := range t.children {
		child.Rotate(deg)
	}
}

// RotateAround orbits this transform and all its descendants around point by
// deg degrees, adding deg to each rotation as well.
func (t *Transform) RotateAround(point Vector2D, deg float64) {
	rel := t.Position.Sub(point)
	radius := rel.Magnitude()
	angle := math.Atan2(rel.Y, rel.X) + deg*math.Pi/180

	sin, cos := math.Sincos(angle)
	t.Position.X = cos*radius + point.X
	t.Position.Y = sin*radius + point.Y
	t.Rotation += deg

	for _, child := range t.children {
		child.RotateAround(point, deg)
	}
}

// --- Tree manipulation ---

// SetParent makes t the last child of parent, detaching it from any current
// parent first. Passing nil detaches t. Calling it again with the same parent
// moves t to the end of the sibling list; t is never listed twice.
// Panics if parent belongs to another scene or is a descendant of t (cycle).
func (t *Transform) SetParent(parent *Transform) {
	if parent == nil {
		t.DetachFromParent()
		return
	}
	s := t.gameObject.scene
	if s.debug {
		debugCheckDestroyed(t.gameObject, "SetParent (child)")
		debugCheckDestroyed(parent.gameObject, "SetParent (parent)")
	}
	if parent.gameObject.scene != s {
		panic("grove: cannot parent a transform to one from another scene")
	}
	if parent.IsDescendantOf(t) || parent == t {
		panic("grove: setting parent would create a cycle")
	}
	t.DetachFromParent()
	t.parent = parent
	parent.children = append(parent.children, t)
	if s.debug {
		s.debugCheckTreeDepth(t)
		s.debugCheckChildCount(parent)
	}
}

// DetachFromParent removes t from its parent's child list. No-op when t has no parent.
func (t *Transform) DetachFromParent() {
	if t.parent == nil {
		return
	}
	t.parent.removeChildByPtr(t)
	t.parent = nil
}

// DetachChildren orphans every child of t. Children are NOT destroyed.
func (t *Transform) DetachChildren() {
	for i, child := range t.children {
		child.parent = nil
		t.children[i] = nil
	}
	t.children = t.children[:0]
}

// Find returns the first direct child whose object is named name, or nil.
// Grandchildren are not searched.
func (t *Transform) Find(name string) *Transform {
	for _, child := range t.children {
		if child.gameObject.Name == name {
			return child
		}
	}
	return nil
}

// GetChild returns the child at index, or nil if index is out of range.
func (t *Transform) GetChild(index int) *Transform {
	if index < 0 || index >= len(t.children) {
		return nil
	}
	return t.children[index]
}

// IsChildOf reports whether parent is the direct parent of t.
// It does not look further up the hierarchy; see IsDescendantOf.
func (t *Transform) IsChildOf(parent *Transform) bool {
	return parent != nil && t.parent == parent
}

// IsDescendantOf reports whether ancestor appears anywhere above t.
func (t *Transform) IsDescendantOf(ancestor *Transform) bool {
	if ancestor == nil {
		return false
	}
	for p := t.parent; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// --- Sibling order ---

// SiblingIndex returns t's position in its parent's child list, or 0 when t
// has no parent.
func (t *Transform) SiblingIndex() int {
	if t.parent == nil {
		return 0
	}
	for i, c := range t.parent.children {
		if c == t {
			return i
		}
	}
	return 0
}

// SetAsFirstSibling swaps t with the first child of its parent.
func (t *Transform) SetAsFirstSibling() {
	if t.parent == nil {
		return
	}
	t.swapWith(0)
}

// SetAsLastSibling swaps t with the last child of its parent.
func (t *Transform) SetAsLastSibling() {
	if t.parent == nil {
		return
	}
	t.swapWith(len(t.parent.children) - 1)
}

// SetSiblingIndex swaps t with whichever sibling occupies index. The index is
// clamped into range. Siblings in between are not shifted.
func (t *Transform) SetSiblingIndex(index int) {
	if t.parent == nil {
		return
	}
	last := len(t.parent.children) - 1
	if index > last {
		index = last
	}
	if index < 0 {
		index = 0
	}
	t.swapWith(index)
}

func (t *Transform) swapWith(index int) {
	siblings := t.parent.children
	cur := t.SiblingIndex()
	siblings[cur], siblings[index] = siblings[index], siblings[cur]
}

// removeChildByPtr removes child from t.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (t *Transform) removeChildByPtr(child *Transform) {
	for i, c := range t.children {
		if c == child {
			copy(t.children[i:], t.children[i+1:])
			t.children[len(t.children)-1] = nil
			t.children = t.children[:len(t.children)-1]
			return
		}
	}
}
