package grove

import (
	"fmt"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Component is a unit of state and logic attached to a GameObject. Concrete
// components embed ComponentBase (or BehaviourBase) and opt into lifecycle
// calls by implementing Awaker, Starter, Updater, Renderer, or Destroyer.
type Component interface {
	componentBase() *ComponentBase
}

// Behaviour is a Component that can be toggled on and off. Disabled
// behaviours skip Update. Behaviours never render.
type Behaviour interface {
	Component
	behaviourBase() *BehaviourBase
}

// --- Capabilities ---

// Awaker is implemented by components that want a call as soon as they are attached.
type Awaker interface {
	Awake()
}

// Starter is implemented by components that want a call before their first Update.
type Starter interface {
	Start()
}

// Updater is implemented by components that run every frame.
type Updater interface {
	Update()
}

// Renderer is implemented by components that draw. screen may be nil when the
// scene is stepped headless.
type Renderer interface {
	Render(screen *ebiten.Image)
}

// Destroyer is implemented by components that want a call when they, or the
// object they are attached to, are destroyed.
type Destroyer interface {
	OnDestroy()
}

// Cloner lets a component control how Instantiate copies it. The returned
// value must be a new component of the same kind (behaviour or plain
// component). Components that do not implement Cloner are shallow-copied.
type Cloner interface {
	Clone() Component
}

// Relinker is implemented by components that hold references to other
// components or objects. After Instantiate has cloned a whole subtree it
// calls Relink on every clone so those references can be pointed at the
// corresponding clones instead of the originals.
type Relinker interface {
	Relink(m *CloneMap)
}

// --- ComponentBase ---

// ComponentBase is embedded by every component. It holds the back-reference
// to the owning GameObject.
type ComponentBase struct {
	gameObject *GameObject
	started    bool
	destroyed  bool
}

func (c *ComponentBase) componentBase() *ComponentBase { return c }

// attach binds the component to g and resets per-attachment state.
func (c *ComponentBase) attach(g *GameObject) {
	c.gameObject = g
	c.started = false
	c.destroyed = false
}

// GameObject returns the object this component is attached to, or nil before attachment.
func (c *ComponentBase) GameObject() *GameObject {
	return c.gameObject
}

// Transform returns the owning object's transform.
func (c *ComponentBase) Transform() *Transform {
	return &c.gameObject.transform
}

// Tag returns the owning object's tag.
func (c *ComponentBase) Tag() string {
	return c.gameObject.Tag
}

// CompareTag reports whether the owning object is tagged tag.
func (c *ComponentBase) CompareTag(tag string) bool {
	return c.gameObject.Tag == tag
}

// FindObjectByName searches the owning scene. See Scene.FindObjectByName.
func (c *ComponentBase) FindObjectByName(name string) *GameObject {
	return c.gameObject.scene.FindObjectByName(name)
}

// FindObjectsByTag searches the owning scene. See Scene.FindObjectsByTag.
func (c *ComponentBase) FindObjectsByTag(tag string) []*GameObject {
	return c.gameObject.scene.FindObjectsByTag(tag)
}

// Logger returns the scene logger annotated with the owning object.
func (c *ComponentBase) Logger() *zap.Logger {
	return c.gameObject.Logger()
}

// IsDestroyed reports whether the component has been removed from its object.
func (c *ComponentBase) IsDestroyed() bool {
	return c.destroyed
}

// --- BehaviourBase ---

// BehaviourBase is embedded by behaviours. Behaviours start enabled.
type BehaviourBase struct {
	ComponentBase
	disabled bool
}

func (b *BehaviourBase) behaviourBase() *BehaviourBase { return b }

// Enabled reports whether the behaviour receives Update calls.
func (b *BehaviourBase) Enabled() bool {
	return !b.disabled
}

// SetEnabled turns Update calls on or off. Awake and Start are not affected.
func (b *BehaviourBase) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// IsActiveAndEnabled reports whether the behaviour is enabled and attached to
// a live object.
func (b *BehaviourBase) IsActiveAndEnabled() bool {
	return !b.disabled && !b.destroyed && b.gameObject != nil && !b.gameObject.destroyed
}

// Name returns the owning object's name.
func (b *BehaviourBase) Name() string {
	return b.gameObject.Name
}

// --- Cloning ---

// CloneMap records the originals and clones produced by one Instantiate call.
type CloneMap struct {
	objects    map[*GameObject]*GameObject
	components map[Component]Component
	order      []Component
}

func newCloneMap() *CloneMap {
	return &CloneMap{
		objects:    make(map[*GameObject]*GameObject),
		components: make(map[Component]Component),
	}
}

// GameObject returns the clone of g, or g itself when g was not part of the
// instantiated subtree.
func (m *CloneMap) GameObject(g *GameObject) *GameObject {
	if c, ok := m.objects[g]; ok {
		return c
	}
	return g
}

// Component returns the clone of c, or c itself when c was not part of the
// instantiated subtree.
func (m *CloneMap) Component(c Component) Component {
	if c == nil {
		return nil
	}
	if cl, ok := m.components[c]; ok {
		return cl
	}
	return c
}

// Remap is the typed form of CloneMap.Component.
func Remap[T Component](m *CloneMap, c T) T {
	if cl, ok := m.Component(c).(T); ok {
		return cl
	}
	return c
}

func (m *CloneMap) add(orig, clone Component) {
	m.components[orig] = clone
	m.order = append(m.order, clone)
}

// relink calls Relink on every clone in the order they were made.
func (m *CloneMap) relink() {
	for _, c := range m.order {
		if r, ok := c.(Relinker); ok {
			r.Relink(m)
		}
	}
}

// cloneComponent copies c through Cloner when available, otherwise by
// shallow-copying the struct c points to.
func cloneComponent(c Component) Component {
	if cl, ok := c.(Cloner); ok {
		return cl.Clone()
	}
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("grove: cannot clone %T: implement Cloner", c))
	}
	cp := reflect.New(v.Elem().Type())
	cp.Elem().Set(v.Elem())
	return cp.Interface().(Component)
}
