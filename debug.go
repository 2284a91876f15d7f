package grove

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and object counts.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime     time.Duration
	destroyTime    time.Duration
	updatedCount   int
	destroyedCount int
	objectCount    int
}

// debugLog writes per-frame stats to the scene logger.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.log.Debug("frame",
		zap.Duration("update", stats.updateTime),
		zap.Duration("destroy", stats.destroyTime),
		zap.Duration("total", stats.updateTime+stats.destroyTime),
		zap.Int("updated", stats.updatedCount),
		zap.Int("destroyed", stats.destroyedCount),
		zap.Int("objects", stats.objectCount),
	)
}

// debugCheckDestroyed panics with a descriptive message when a destroyed
// object is used in a tree operation. Only called in debug mode.
func debugCheckDestroyed(g *GameObject, op string) {
	if g.destroyed {
		panic(fmt.Sprintf("grove debug: %s on destroyed object %q (instance %d)", op, g.Name, g.instanceID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func (s *Scene) debugCheckTreeDepth(t *Transform) {
	depth := 0
	for p := t; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		s.log.Warn("tree depth exceeds threshold",
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth),
			zap.String("object", t.gameObject.Name))
	}
}

// debugCheckChildCount warns if a transform has more than 1000 children.
const debugMaxChildCount = 1000

func (s *Scene) debugCheckChildCount(t *Transform) {
	if len(t.children) > debugMaxChildCount {
		s.log.Warn("child count exceeds threshold",
			zap.Int("children", len(t.children)),
			zap.Int("threshold", debugMaxChildCount),
			zap.String("object", t.gameObject.Name))
	}
}
