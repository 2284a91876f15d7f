package grove

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type tweenKind uint8

const (
	tweenPosition tweenKind = iota
	tweenRotation
	tweenScale
)

// TweenGroup animates up to two Transform fields simultaneously. Create one
// via TweenPosition, TweenRotation, or TweenScale and either call Update(dt)
// yourself each frame or hand it to a Tweener. If the target object is
// destroyed, the group stops immediately.
//
// Position and rotation are applied through Translate and Rotate, so
// descendants of the target move with it.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	kind   tweenKind
	target *Transform
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values to the
// target. If the target object has been destroyed, Done is set to true and
// no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target.gameObject.destroyed {
		g.Done = true
		return
	}

	var vals [2]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	t := g.target
	switch g.kind {
	case tweenPosition:
		t.Translate(Vector2D{vals[0] - t.Position.X, vals[1] - t.Position.Y})
	case tweenRotation:
		t.Rotate(vals[0] - t.Rotation)
	case tweenScale:
		t.Scale = Vector2D{vals[0], vals[1]}
	}
}

// TweenPosition creates a TweenGroup that moves t (and its descendants) to
// the given position over duration seconds using the easing function.
func TweenPosition(t *Transform, to Vector2D, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, kind: tweenPosition, target: t}
	g.tweens[0] = gween.New(float32(t.Position.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(t.Position.Y), float32(to.Y), duration, fn)
	return g
}

// TweenRotation creates a TweenGroup that rotates t (and its descendants) to
// the given angle in degrees.
func TweenRotation(t *Transform, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, kind: tweenRotation, target: t}
	g.tweens[0] = gween.New(float32(t.Rotation), float32(to), duration, fn)
	return g
}

// TweenScale creates a TweenGroup that animates t's scale. Scale does not
// propagate to descendants.
func TweenScale(t *Transform, to Vector2D, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, kind: tweenScale, target: t}
	g.tweens[0] = gween.New(float32(t.Scale.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(t.Scale.Y), float32(to.Y), duration, fn)
	return g
}

// Tweener is a behaviour that advances its tween groups once per Update,
// using the game's tick length (1/TPS) as the time step. Finished groups are
// dropped. Clones start with no tweens.
type Tweener struct {
	BehaviourBase
	groups []*TweenGroup
}

// Add starts driving g and returns it.
func (tw *Tweener) Add(g *TweenGroup) *TweenGroup {
	tw.groups = append(tw.groups, g)
	return g
}

// MoveTo tweens the owning object's position.
func (tw *Tweener) MoveTo(to Vector2D, duration float32, fn ease.TweenFunc) *TweenGroup {
	return tw.Add(TweenPosition(tw.Transform(), to, duration, fn))
}

// RotateTo tweens the owning object's rotation.
func (tw *Tweener) RotateTo(to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return tw.Add(TweenRotation(tw.Transform(), to, duration, fn))
}

// ScaleTo tweens the owning object's scale.
func (tw *Tweener) ScaleTo(to Vector2D, duration float32, fn ease.TweenFunc) *TweenGroup {
	return tw.Add(TweenScale(tw.Transform(), to, duration, fn))
}

// Len returns the number of unfinished groups.
func (tw *Tweener) Len() int {
	return len(tw.groups)
}

// Update advances every group by one tick.
func (tw *Tweener) Update() {
	tw.Advance(float32(1.0 / float64(ebiten.TPS())))
}

// Advance advances every group by dt seconds and drops finished ones.
func (tw *Tweener) Advance(dt float32) {
	n := 0
	for _, g := range tw.groups {
		g.Update(dt)
		if !g.Done {
			tw.groups[n] = g
			n++
		}
	}
	clear(tw.groups[n:])
	tw.groups = tw.groups[:n]
}

// Clone returns a Tweener with the same enabled state and no tweens.
func (tw *Tweener) Clone() Component {
	return &Tweener{BehaviourBase: tw.BehaviourBase}
}

// OnDestroy drops all groups.
func (tw *Tweener) OnDestroy() {
	clear(tw.groups)
	tw.groups = nil
}
