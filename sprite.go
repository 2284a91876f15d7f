package grove

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteRenderer draws Image at its object's transform. Pivot is a
// normalized anchor within the image: (0,0) is the top-left corner,
// (0.5,0.5) the center. Draw order follows scene and component order.
type SpriteRenderer struct {
	ComponentBase
	Image *ebiten.Image
	Pivot Vector2D
	Blend ebiten.Blend

	// Alpha multiplies the image's alpha. The zero value draws opaque.
	Alpha float64
}

// Render draws the sprite. No-op when screen or Image is nil.
func (r *SpriteRenderer) Render(screen *ebiten.Image) {
	if screen == nil || r.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{Blend: r.Blend}
	op.GeoM = r.geoM()
	if r.Alpha > 0 && r.Alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(r.Alpha))
	}
	screen.DrawImage(r.Image, op)
}

// geoM composes Translate(-pivot) -> Scale -> Rotate -> Translate(position).
func (r *SpriteRenderer) geoM() ebiten.GeoM {
	var m ebiten.GeoM
	t := r.Transform()
	if r.Image != nil {
		b := r.Image.Bounds()
		m.Translate(-r.Pivot.X*float64(b.Dx()), -r.Pivot.Y*float64(b.Dy()))
	}
	m.Scale(t.Scale.X, t.Scale.Y)
	m.Rotate(t.Rotation * math.Pi / 180)
	m.Translate(t.Position.X, t.Position.Y)
	return m
}
