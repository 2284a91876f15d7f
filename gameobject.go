package grove

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// GameObject is a named, tagged container owning one Transform and an
// ordered set of components. Create them with Scene.CreateGameObject.
type GameObject struct {
	Name string
	Tag  string

	transform  Transform
	scene      *Scene
	instanceID uint32

	behaviours []Behaviour
	components []Component

	// components queued by DestroyComponent, removed at the end of Update
	staged []Component

	iterBuf   []Component // reused buffer for lifecycle passes
	iterDepth int
	started   bool
	destroyed bool
}

func newGameObject(s *Scene, name string, id uint32) *GameObject {
	g := &GameObject{Name: name, scene: s, instanceID: id}
	g.transform = newTransform(g)
	return g
}

// Transform returns the object's transform.
func (g *GameObject) Transform() *Transform {
	return &g.transform
}

// Scene returns the scene that owns the object.
func (g *GameObject) Scene() *Scene {
	return g.scene
}

// InstanceID returns the scene-unique id assigned at creation.
func (g *GameObject) InstanceID() uint32 {
	return g.instanceID
}

// CompareTag reports whether the object is tagged tag.
func (g *GameObject) CompareTag(tag string) bool {
	return g.Tag == tag
}

// IsDestroyed reports whether the object has been removed from its scene.
func (g *GameObject) IsDestroyed() bool {
	return g.destroyed
}

// Logger returns the scene logger annotated with this object's name and id.
func (g *GameObject) Logger() *zap.Logger {
	return g.scene.log.With(zap.String("object", g.Name), zap.Uint32("instance", g.instanceID))
}

// Behaviours returns the behaviour list in attachment order.
// The returned slice MUST NOT be mutated by the caller.
func (g *GameObject) Behaviours() []Behaviour {
	return g.behaviours
}

// Components returns the non-behaviour component list in attachment order.
// The returned slice MUST NOT be mutated by the caller.
func (g *GameObject) Components() []Component {
	return g.components
}

// --- Attachment ---

// AddComponent creates a zero-value T, attaches it to g, calls Awake if T
// implements Awaker, and returns it.
//
//	player := grove.AddComponent[Player](obj)
func AddComponent[T any, PT interface {
	*T
	Component
}](g *GameObject) PT {
	c := PT(new(T))
	g.AddComponents(c)
	return c
}

// AddComponents attaches already-constructed components in order, calling
// Awake on each right after it is attached. Behaviours go to the behaviour
// list, everything else to the component list.
// Panics if a component is nil or already attached to an object.
func (g *GameObject) AddComponents(cs ...Component) {
	if g.scene.debug {
		debugCheckDestroyed(g, "AddComponents")
	}
	for _, c := range cs {
		if c == nil {
			panic("grove: cannot add nil component")
		}
		if base := c.componentBase(); base.gameObject != nil && !base.destroyed {
			panic("grove: component is already attached to a game object")
		}
		g.attach(c)
		if a, ok := c.(Awaker); ok {
			a.Awake()
		}
	}
}

// attach binds c to g and appends it to the matching list without calling Awake.
func (g *GameObject) attach(c Component) {
	c.componentBase().attach(g)
	if b, ok := c.(Behaviour); ok {
		g.behaviours = append(g.behaviours, b)
		return
	}
	g.components = append(g.components, c)
}

// --- Lifecycle ---

// Start calls Start on every behaviour, then every component, in attachment
// order. Each component is started at most once; components attached after
// Start are started before their first Update.
func (g *GameObject) Start() {
	g.started = true
	for _, c := range g.snapshot() {
		g.startComponent(c)
	}
	g.releaseSnapshot()
}

// Update calls Update on every enabled behaviour, then every component, in
// attachment order. Components queued with DestroyComponent during the pass
// are removed once it completes.
func (g *GameObject) Update() {
	for _, c := range g.snapshot() {
		base := c.componentBase()
		if base.destroyed || base.gameObject != g {
			continue
		}
		if g.started {
			g.startComponent(c)
		}
		if b, ok := c.(Behaviour); ok && b.behaviourBase().disabled {
			continue
		}
		if u, ok := c.(Updater); ok {
			u.Update()
		}
	}
	g.releaseSnapshot()
	g.drainStaged()
}

// Render calls Render on every component that implements Renderer.
// Behaviours never render.
func (g *GameObject) Render(screen *ebiten.Image) {
	for _, c := range g.components {
		if r, ok := c.(Renderer); ok {
			r.Render(screen)
		}
	}
}

func (g *GameObject) startComponent(c Component) {
	base := c.componentBase()
	if base.started || base.destroyed {
		return
	}
	base.started = true
	if s, ok := c.(Starter); ok {
		s.Start()
	}
}

// snapshot copies behaviours then components into the reusable iteration
// buffer so lifecycle calls may add or remove components safely. A nested
// call gets its own copy.
func (g *GameObject) snapshot() []Component {
	g.iterDepth++
	buf := g.iterBuf[:0]
	if g.iterDepth > 1 {
		buf = make([]Component, 0, len(g.behaviours)+len(g.components))
	}
	for _, b := range g.behaviours {
		buf = append(buf, b)
	}
	buf = append(buf, g.components...)
	if g.iterDepth == 1 {
		g.iterBuf = buf
	}
	return buf
}

func (g *GameObject) releaseSnapshot() {
	g.iterDepth--
	if g.iterDepth == 0 {
		clear(g.iterBuf)
		g.iterBuf = g.iterBuf[:0]
	}
}

func (g *GameObject) drainStaged() {
	for i := 0; i < len(g.staged); i++ {
		g.RemoveComponent(g.staged[i])
	}
	clear(g.staged)
	g.staged = g.staged[:0]
}

// RemoveComponent detaches c from g right away and calls OnDestroy.
// No-op when c is not attached to g.
func (g *GameObject) RemoveComponent(c Component) {
	base := c.componentBase()
	if base.gameObject != g || base.destroyed {
		return
	}
	if b, ok := c.(Behaviour); ok {
		i := g.BehaviourIndex(b)
		if i < 0 {
			return
		}
		copy(g.behaviours[i:], g.behaviours[i+1:])
		g.behaviours[len(g.behaviours)-1] = nil
		g.behaviours = g.behaviours[:len(g.behaviours)-1]
	} else {
		i := g.ComponentIndex(c)
		if i < 0 {
			return
		}
		copy(g.components[i:], g.components[i+1:])
		g.components[len(g.components)-1] = nil
		g.components = g.components[:len(g.components)-1]
	}
	base.destroyed = true
	if d, ok := c.(Destroyer); ok {
		d.OnDestroy()
	}
}

// --- Index access ---

// ComponentIndex returns the position of c in the component list, or -1.
func (g *GameObject) ComponentIndex(c Component) int {
	for i, comp := range g.components {
		if comp == c {
			return i
		}
	}
	return -1
}

// BehaviourIndex returns the position of b in the behaviour list, or -1.
func (g *GameObject) BehaviourIndex(b Behaviour) int {
	for i, beh := range g.behaviours {
		if beh == b {
			return i
		}
	}
	return -1
}

// ComponentAt returns the component at index, or nil if out of range.
func (g *GameObject) ComponentAt(index int) Component {
	if index < 0 || index >= len(g.components) {
		return nil
	}
	return g.components[index]
}

// BehaviourAt returns the behaviour at index, or nil if out of range.
func (g *GameObject) BehaviourAt(index int) Behaviour {
	if index < 0 || index >= len(g.behaviours) {
		return nil
	}
	return g.behaviours[index]
}

// --- Lookup ---

// isBehaviourType reports whether T is statically known to be a behaviour type.
func isBehaviourType[T any]() bool {
	var zero T
	_, ok := any(zero).(Behaviour)
	return ok
}

// GetComponent returns the first component on g assignable to T. T may be a
// concrete component pointer type or an interface. Behaviour types are looked
// up in the behaviour list only; other types search behaviours, then components.
func GetComponent[T any](g *GameObject) (T, bool) {
	for _, b := range g.behaviours {
		if v, ok := any(b).(T); ok {
			return v, true
		}
	}
	if !isBehaviourType[T]() {
		for _, c := range g.components {
			if v, ok := c.(T); ok {
				return v, true
			}
		}
	}
	var zero T
	return zero, false
}

// GetComponents returns every component on g assignable to T, behaviours first.
func GetComponents[T any](g *GameObject) []T {
	var out []T
	return appendComponents(out, g)
}

func appendComponents[T any](out []T, g *GameObject) []T {
	for _, b := range g.behaviours {
		if v, ok := any(b).(T); ok {
			out = append(out, v)
		}
	}
	if !isBehaviourType[T]() {
		for _, c := range g.components {
			if v, ok := c.(T); ok {
				out = append(out, v)
			}
		}
	}
	return out
}

// GetComponentInChildren searches g, then its descendants depth-first in
// child order, and returns the first match.
func GetComponentInChildren[T any](g *GameObject) (T, bool) {
	if v, ok := GetComponent[T](g); ok {
		return v, true
	}
	for _, child := range g.transform.children {
		if v, ok := GetComponentInChildren[T](child.gameObject); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// GetComponentsInChildren returns every match on g and its descendants,
// depth-first, g's own components first.
func GetComponentsInChildren[T any](g *GameObject) []T {
	var out []T
	return appendComponentsInChildren(out, g)
}

func appendComponentsInChildren[T any](out []T, g *GameObject) []T {
	out = appendComponents(out, g)
	for _, child := range g.transform.children {
		out = appendComponentsInChildren(out, child.gameObject)
	}
	return out
}

// GetComponentInParent searches g, then each ancestor in turn, and returns
// the first match.
func GetComponentInParent[T any](g *GameObject) (T, bool) {
	for t := &g.transform; t != nil; t = t.parent {
		if v, ok := GetComponent[T](t.gameObject); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// GetComponentsInParent returns every match on g and its ancestors, nearest first.
func GetComponentsInParent[T any](g *GameObject) []T {
	var out []T
	for t := &g.transform; t != nil; t = t.parent {
		out = appendComponents(out, t.gameObject)
	}
	return out
}
