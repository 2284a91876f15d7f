package grove

import (
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Scene owns every GameObject in a level and drives their lifecycle. It
// hands out instance ids and holds the end-of-frame destruction queue.
type Scene struct {
	Name string

	id    uuid.UUID
	log   *zap.Logger
	sink  EventSink
	debug bool

	objects        []*GameObject
	pendingDestroy []*GameObject
	nextInstanceID uint32

	setup     func(*Scene)
	setupDone bool
	started   bool

	updateBuf []*GameObject // reused snapshot for Update and Render
	iterDepth int
}

// NewScene creates an empty scene. Logging is disabled until SetLogger is called.
func NewScene(name string) *Scene {
	return &Scene{
		Name: name,
		id:   uuid.New(),
		log:  zap.NewNop(),
	}
}

// ID returns the scene's unique id, used to tag log lines and lifecycle events.
func (s *Scene) ID() uuid.UUID {
	return s.id
}

// SetLogger sets the logger used for lifecycle and debug output. A nil
// logger disables logging.
func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.log = l.With(zap.String("scene", s.Name), zap.Stringer("scene_id", s.id))
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *zap.Logger {
	return s.log
}

// SetEventSink sets the optional receiver of lifecycle events.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, tree operations
// on destroyed objects panic, deep trees and very wide nodes are reported as
// warnings, and per-frame timing is logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetSetupFunc registers the function that populates the scene. It runs once,
// from Setup.
func (s *Scene) SetSetupFunc(fn func(*Scene)) {
	s.setup = fn
}

// Setup runs the setup function registered with SetSetupFunc. Only the first
// call has any effect.
func (s *Scene) Setup() {
	if s.setupDone {
		return
	}
	s.setupDone = true
	if s.setup != nil {
		s.setup(s)
	}
}

// Started reports whether Start has been called.
func (s *Scene) Started() bool {
	return s.started
}

// --- Objects ---

// CreateGameObject creates an object owned by the scene and assigns it the
// next instance id.
func (s *Scene) CreateGameObject(name string) *GameObject {
	g := newGameObject(s, name, s.nextInstanceID)
	s.nextInstanceID++
	s.objects = append(s.objects, g)
	s.log.Debug("game object created", zap.String("object", name), zap.Uint32("instance", g.instanceID))
	s.emit(LifecycleEvent{Type: EventCreated, InstanceID: g.instanceID, Name: g.Name, Tag: g.Tag})
	return g
}

// LatestInstanceID returns the id the next created object will receive.
func (s *Scene) LatestInstanceID() uint32 {
	return s.nextInstanceID
}

// GameObjects returns the live objects in creation order.
// The returned slice MUST NOT be mutated by the caller.
func (s *Scene) GameObjects() []*GameObject {
	return s.objects
}

// NumGameObjects returns the number of live objects.
func (s *Scene) NumGameObjects() int {
	return len(s.objects)
}

// FindObjectByName returns the first object named name, or nil.
func (s *Scene) FindObjectByName(name string) *GameObject {
	for _, g := range s.objects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// FindObjectsByTag returns every object tagged tag, in creation order.
func (s *Scene) FindObjectsByTag(tag string) []*GameObject {
	var out []*GameObject
	for _, g := range s.objects {
		if g.Tag == tag {
			out = append(out, g)
		}
	}
	return out
}

// FindObjectByInstanceID returns the live object with the given id, or nil.
func (s *Scene) FindObjectByInstanceID(id uint32) *GameObject {
	for _, g := range s.objects {
		if g.instanceID == id {
			return g
		}
	}
	return nil
}

// --- Lifecycle ---

// Start starts every object in creation order. Objects created afterwards are
// started at the beginning of their first Update.
func (s *Scene) Start() {
	s.started = true
	for _, g := range s.snapshot() {
		if g.destroyed {
			continue
		}
		s.startObject(g)
	}
	s.releaseSnapshot()
}

// Update updates every object that existed when the call began, in creation
// order, then destroys the objects queued with Destroy.
func (s *Scene) Update() {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	objs := s.snapshot()
	for _, g := range objs {
		if g.destroyed {
			continue
		}
		if s.started && !g.started {
			s.startObject(g)
		}
		g.Update()
	}
	updated := len(objs)
	s.releaseSnapshot()

	var stats debugStats
	if s.debug {
		stats.updateTime = time.Since(t0)
		stats.updatedCount = updated
		t0 = time.Now()
	}

	stats.destroyedCount = s.drainDestroyQueue()

	if s.debug {
		stats.destroyTime = time.Since(t0)
		stats.objectCount = len(s.objects)
		s.debugLog(stats)
	}
}

// Render renders every object in creation order. screen may be nil.
func (s *Scene) Render(screen *ebiten.Image) {
	for _, g := range s.snapshot() {
		if g.destroyed {
			continue
		}
		g.Render(screen)
	}
	s.releaseSnapshot()
}

func (s *Scene) startObject(g *GameObject) {
	g.Start()
	s.emit(LifecycleEvent{Type: EventStarted, InstanceID: g.instanceID, Name: g.Name, Tag: g.Tag})
}

// drainDestroyQueue destroys queued objects, including any queued while
// draining, and returns how many were destroyed.
func (s *Scene) drainDestroyQueue() int {
	n := 0
	for i := 0; i < len(s.pendingDestroy); i++ {
		g := s.pendingDestroy[i]
		if g.destroyed {
			continue
		}
		n += s.destroyImmediate(g)
	}
	clear(s.pendingDestroy)
	s.pendingDestroy = s.pendingDestroy[:0]
	return n
}

// PendingDestroyCount returns the number of objects queued for destruction.
func (s *Scene) PendingDestroyCount() int {
	return len(s.pendingDestroy)
}

// destroy queues g for destruction at the end of the current Update.
func (s *Scene) destroy(g *GameObject) {
	if g.destroyed {
		return
	}
	s.pendingDestroy = append(s.pendingDestroy, g)
}

// destroyImmediate destroys g's descendants depth-first, then g itself, and
// returns how many objects were removed.
func (s *Scene) destroyImmediate(g *GameObject) int {
	if g.destroyed {
		return 0
	}
	g.destroyed = true
	n := 1

	t := &g.transform
	for len(t.children) > 0 {
		child := t.children[0]
		if child.gameObject.destroyed {
			t.removeChildByPtr(child)
			child.parent = nil
			continue
		}
		n += s.destroyImmediate(child.gameObject)
	}

	for _, c := range g.snapshot() {
		base := c.componentBase()
		if base.destroyed {
			continue
		}
		base.destroyed = true
		if d, ok := c.(Destroyer); ok {
			d.OnDestroy()
		}
	}
	g.releaseSnapshot()
	clear(g.staged)
	g.staged = g.staged[:0]

	t.DetachFromParent()
	s.removeObject(g)

	s.log.Debug("game object destroyed", zap.String("object", g.Name), zap.Uint32("instance", g.instanceID))
	s.emit(LifecycleEvent{Type: EventDestroyed, InstanceID: g.instanceID, Name: g.Name, Tag: g.Tag})
	return n
}

func (s *Scene) removeObject(g *GameObject) {
	for i, o := range s.objects {
		if o == g {
			copy(s.objects[i:], s.objects[i+1:])
			s.objects[len(s.objects)-1] = nil
			s.objects = s.objects[:len(s.objects)-1]
			return
		}
	}
}

// snapshot copies the object list into the reusable buffer so lifecycle
// calls may create or destroy objects while it is being walked. A nested
// call (e.g. Render from inside Update) gets its own copy.
func (s *Scene) snapshot() []*GameObject {
	s.iterDepth++
	if s.iterDepth > 1 {
		return append([]*GameObject(nil), s.objects...)
	}
	s.updateBuf = append(s.updateBuf[:0], s.objects...)
	return s.updateBuf
}

func (s *Scene) releaseSnapshot() {
	s.iterDepth--
	if s.iterDepth == 0 {
		clear(s.updateBuf)
		s.updateBuf = s.updateBuf[:0]
	}
}

func (s *Scene) emit(e LifecycleEvent) {
	if s.sink == nil {
		return
	}
	e.SceneID = s.id
	s.sink.EmitLifecycle(e)
}
