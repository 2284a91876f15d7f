package grove

import (
	"fmt"

	"go.uber.org/zap"
)

// Instantiate clones g and its whole hierarchy into g's scene and returns the
// root clone. The clone is named "<name> #<n>" where n is the scene's
// instance counter at the time of the call. Tag, position, rotation, and
// scale are copied; every behaviour and component is cloned (see Cloner) and
// attached to the matching clone without calling Awake. Once the subtree
// exists, Relink is called on every cloned component that implements Relinker.
//
// The clone is a root object; use InstantiateInParent to parent it.
func Instantiate(g *GameObject) *GameObject {
	s := g.scene
	if s.debug {
		debugCheckDestroyed(g, "Instantiate")
	}
	m := newCloneMap()
	clone := instantiate(g, nil, m)
	m.relink()

	s.log.Debug("game object instantiated",
		zap.String("source", g.Name),
		zap.Uint32("source_instance", g.instanceID),
		zap.String("object", clone.Name),
		zap.Uint32("instance", clone.instanceID),
		zap.Int("objects", len(m.objects)))
	s.emit(LifecycleEvent{
		Type:       EventInstantiated,
		InstanceID: clone.instanceID,
		Name:       clone.Name,
		Tag:        clone.Tag,
		SourceID:   g.instanceID,
	})
	return clone
}

// InstantiateInParent is Instantiate followed by parenting the clone to parent.
func InstantiateInParent(g *GameObject, parent *Transform) *GameObject {
	clone := Instantiate(g)
	clone.transform.SetParent(parent)
	return clone
}

// InstantiateAt is Instantiate followed by moving the clone to position and
// rotation. Descendants keep their offsets from the root.
func InstantiateAt(g *GameObject, position Vector2D, rotation float64) *GameObject {
	clone := Instantiate(g)
	t := &clone.transform
	t.Translate(position.Sub(t.Position))
	t.Rotate(rotation - t.Rotation)
	return clone
}

func instantiate(g *GameObject, parent *Transform, m *CloneMap) *GameObject {
	s := g.scene
	clone := s.CreateGameObject(fmt.Sprintf("%s #%d", g.Name, s.nextInstanceID))
	clone.Tag = g.Tag
	clone.transform.Position = g.transform.Position
	clone.transform.Rotation = g.transform.Rotation
	clone.transform.Scale = g.transform.Scale
	if parent != nil {
		clone.transform.SetParent(parent)
	}
	m.objects[g] = clone

	for _, child := range g.transform.children {
		instantiate(child.gameObject, &clone.transform, m)
	}

	for _, b := range g.behaviours {
		c := cloneComponent(b)
		clone.attach(c)
		m.add(b, c)
	}
	for _, orig := range g.components {
		c := cloneComponent(orig)
		clone.attach(c)
		m.add(orig, c)
	}
	return clone
}

// InstantiateComponent clones c's object (see Instantiate) and returns the
// component at the same position in the clone. The second result is false
// if the clone has no matching component, which can only happen when a
// Cloner returned a different kind of component.
func InstantiateComponent[T Component](c T) (T, bool) {
	g := c.componentBase().gameObject
	return cloneComponentAt[T](g, c, Instantiate(g))
}

// InstantiateComponentInParent is InstantiateComponent with the cloned
// object parented to parent.
func InstantiateComponentInParent[T Component](c T, parent *Transform) (T, bool) {
	g := c.componentBase().gameObject
	return cloneComponentAt[T](g, c, InstantiateInParent(g, parent))
}

// InstantiateComponentAt is InstantiateComponent with the cloned object moved
// to position and rotation.
func InstantiateComponentAt[T Component](c T, position Vector2D, rotation float64) (T, bool) {
	g := c.componentBase().gameObject
	return cloneComponentAt[T](g, c, InstantiateAt(g, position, rotation))
}

func cloneComponentAt[T Component](orig *GameObject, c T, clone *GameObject) (T, bool) {
	var found Component
	if b, ok := any(c).(Behaviour); ok {
		if cb := clone.BehaviourAt(orig.BehaviourIndex(b)); cb != nil {
			found = cb
		}
	} else {
		found = clone.ComponentAt(orig.ComponentIndex(c))
	}
	v, ok := found.(T)
	return v, ok
}

// Destroy queues g for destruction at the end of its scene's current (or
// next) Update. Until then g stays in the scene and keeps updating.
func Destroy(g *GameObject) {
	g.scene.destroy(g)
}

// DestroyImmediate destroys g's descendants depth-first, then g itself:
// components receive OnDestroy, the transform is detached from its parent,
// and the object is removed from the scene. Destroying an object twice is a
// no-op. Avoid calling it on other objects from inside Update; use Destroy.
func DestroyImmediate(g *GameObject) {
	g.scene.destroyImmediate(g)
}

// DestroyComponent queues c for removal at the end of its object's current
// (or next) Update.
func DestroyComponent(c Component) {
	base := c.componentBase()
	if base.gameObject == nil || base.destroyed {
		return
	}
	g := base.gameObject
	g.staged = append(g.staged, c)
}

// DestroyComponentImmediate removes c from its object right away and calls
// OnDestroy.
func DestroyComponentImmediate(c Component) {
	base := c.componentBase()
	if base.gameObject == nil {
		return
	}
	base.gameObject.RemoveComponent(c)
}
