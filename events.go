package grove

import "github.com/google/uuid"

// EventSink is the interface for optional ECS integration.
// When set on a Scene, lifecycle events are forwarded to it.
type EventSink interface {
	EmitLifecycle(event LifecycleEvent)
}

// LifecycleEventType identifies a kind of lifecycle event.
type LifecycleEventType uint8

const (
	EventCreated      LifecycleEventType = iota // fires when CreateGameObject adds an object
	EventStarted                                // fires after an object's Start pass
	EventDestroyed                              // fires after an object is removed from the scene
	EventInstantiated                           // fires once per Instantiate, for the root clone
)

// String returns the event type name.
func (t LifecycleEventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventStarted:
		return "started"
	case EventDestroyed:
		return "destroyed"
	case EventInstantiated:
		return "instantiated"
	default:
		return "unknown"
	}
}

// LifecycleEvent carries lifecycle data for the ECS bridge.
type LifecycleEvent struct {
	Type       LifecycleEventType
	SceneID    uuid.UUID
	InstanceID uint32
	Name       string
	Tag        string
	// SourceID is the instance id of the original object (valid for EventInstantiated).
	SourceID uint32
}
