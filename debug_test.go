package grove

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observedScene returns a debug-mode scene whose logger records every entry
// at or above level.
func observedScene(level zapcore.Level) (*Scene, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	s := NewScene("debug")
	s.SetLogger(zap.New(core))
	s.SetDebugMode(true)
	return s, logs
}

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, contains) {
			t.Errorf("panic message should mention %q, got: %s", contains, msg)
		}
	}()
	fn()
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DestroyedChildPanics(t *testing.T) {
	s, _ := observedScene(zapcore.WarnLevel)
	parent := s.CreateGameObject("parent")
	child := s.CreateGameObject("child")
	DestroyImmediate(child)

	expectPanic(t, "destroyed", func() {
		child.Transform().SetParent(parent.Transform())
	})
}

func TestDebugMode_DestroyedParentPanics(t *testing.T) {
	s, _ := observedScene(zapcore.WarnLevel)
	parent := s.CreateGameObject("parent")
	child := s.CreateGameObject("child")
	DestroyImmediate(parent)

	expectPanic(t, "destroyed", func() {
		child.Transform().SetParent(parent.Transform())
	})
}

func TestDebugMode_AddComponentsOnDestroyedPanics(t *testing.T) {
	s, _ := observedScene(zapcore.WarnLevel)
	g := s.CreateGameObject("gone")
	DestroyImmediate(g)

	expectPanic(t, "AddComponents", func() {
		AddComponent[counter](g)
	})
}

func TestDebugMode_InstantiateDestroyedPanics(t *testing.T) {
	s, _ := observedScene(zapcore.WarnLevel)
	g := s.CreateGameObject("gone")
	DestroyImmediate(g)

	expectPanic(t, "Instantiate", func() {
		Instantiate(g)
	})
}

func TestReleaseMode_DestroyedParentNoPanic(t *testing.T) {
	s := NewScene("release")
	parent := s.CreateGameObject("parent")
	child := s.CreateGameObject("child")
	DestroyImmediate(parent)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("release mode should not panic on destroyed object, got: %v", r)
		}
	}()
	child.Transform().SetParent(parent.Transform())
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	s, logs := observedScene(zapcore.WarnLevel)

	current := s.CreateGameObject("root").Transform()
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := s.CreateGameObject(fmt.Sprintf("depth_%d", i)).Transform()
		child.SetParent(current)
		current = child
	}

	if logs.FilterMessage("tree depth exceeds threshold").Len() == 0 {
		t.Errorf("expected tree depth warning, got: %v", logs.All())
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	s, logs := observedScene(zapcore.WarnLevel)

	parent := s.CreateGameObject("many_children").Transform()
	for i := 0; i < debugMaxChildCount+1; i++ {
		s.CreateGameObject(fmt.Sprintf("c_%d", i)).Transform().SetParent(parent)
	}

	entries := logs.FilterMessage("child count exceeds threshold").All()
	if len(entries) == 0 {
		t.Fatal("expected child count warning")
	}
	if got := entries[0].ContextMap()["object"]; got != "many_children" {
		t.Errorf("object field = %v, want many_children", got)
	}
}

func TestDebugMode_NoWarningsForShallowTrees(t *testing.T) {
	s, logs := observedScene(zapcore.WarnLevel)
	root := s.CreateGameObject("root").Transform()
	s.CreateGameObject("child").Transform().SetParent(root)

	if logs.Len() != 0 {
		t.Errorf("expected no warnings, got: %v", logs.All())
	}
}

func TestDebugMode_FrameStatsLogged(t *testing.T) {
	s, logs := observedScene(zapcore.DebugLevel)
	s.CreateGameObject("a")
	Destroy(s.CreateGameObject("b"))
	s.Start()

	s.Update()

	frames := logs.FilterMessage("frame").All()
	if len(frames) != 1 {
		t.Fatalf("frame entries = %d, want 1", len(frames))
	}
	ctx := frames[0].ContextMap()
	if ctx["updated"] != int64(2) {
		t.Errorf("updated = %v, want 2", ctx["updated"])
	}
	if ctx["destroyed"] != int64(1) {
		t.Errorf("destroyed = %v, want 1", ctx["destroyed"])
	}
	if ctx["objects"] != int64(1) {
		t.Errorf("objects = %v, want 1", ctx["objects"])
	}
	if ctx["scene"] != "debug" {
		t.Errorf("scene = %v, want debug", ctx["scene"])
	}
}

func TestReleaseMode_NoFrameStats(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewScene("release")
	s.SetLogger(zap.New(core))

	s.Update()

	if logs.FilterMessage("frame").Len() != 0 {
		t.Error("frame stats should only be logged in debug mode")
	}
}

func TestLifecycleLogging(t *testing.T) {
	s, logs := observedScene(zapcore.DebugLevel)
	g := s.CreateGameObject("obj")
	Instantiate(g)
	DestroyImmediate(g)

	for _, msg := range []string{"game object created", "game object instantiated", "game object destroyed"} {
		if logs.FilterMessage(msg).Len() == 0 {
			t.Errorf("missing %q log entry", msg)
		}
	}
}

func TestObjectLoggerFields(t *testing.T) {
	s, logs := observedScene(zapcore.InfoLevel)
	c := AddComponent[counter](s.CreateGameObject("obj"))

	c.Logger().Info("hello")

	entries := logs.FilterMessage("hello").All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["object"] != "obj" {
		t.Errorf("object = %v, want obj", ctx["object"])
	}
	if ctx["instance"] != uint32(0) {
		t.Errorf("instance = %v, want 0", ctx["instance"])
	}
	if ctx["scene_id"] != s.ID().String() {
		t.Errorf("scene_id = %v, want %s", ctx["scene_id"], s.ID())
	}
}

func TestSetLoggerNil(t *testing.T) {
	s := NewScene("nil")
	s.SetLogger(nil)
	if s.Logger() == nil {
		t.Fatal("Logger should never be nil")
	}
	s.Logger().Info("discarded") // should not panic
}
