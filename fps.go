package grove

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshInterval is how often, in seconds, FPSCounter re-reads the rates.
const fpsRefreshInterval = 0.5

// FPSCounter is a component that prints the current FPS and TPS at its
// object's position. The text is refreshed every half second.
type FPSCounter struct {
	ComponentBase
	text    string
	elapsed float64
}

// Update accumulates tick time and refreshes the text when due.
func (f *FPSCounter) Update() {
	f.elapsed += 1.0 / float64(ebiten.TPS())
	if f.text != "" && f.elapsed < fpsRefreshInterval {
		return
	}
	f.elapsed = 0
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

// Text returns the most recently formatted text.
func (f *FPSCounter) Text() string {
	return f.text
}

// Render prints the text. No-op when screen is nil.
func (f *FPSCounter) Render(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	p := f.Transform().Position
	ebitenutil.DebugPrintAt(screen, f.text, int(p.X), int(p.Y))
}
