package grove

import (
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// RunConfig configures Run. It can be built as a literal or loaded from YAML
// with LoadRunConfig.
type RunConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// TPS is the number of Update calls per second.
	TPS int `yaml:"tps"`
	// MaxFrames ends the game after that many updates. Zero runs until the
	// window is closed.
	MaxFrames int `yaml:"max_frames"`
	// Debug turns on Scene debug mode.
	Debug bool `yaml:"debug"`
	// ShowFPS adds an object with an FPSCounter to the scene.
	ShowFPS bool `yaml:"show_fps"`
}

// DefaultRunConfig returns a 640x480 window ticking at ebiten's default TPS.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:  "grove",
		Width:  640,
		Height: 480,
		TPS:    ebiten.DefaultTPS,
	}
}

// LoadRunConfig parses YAML into a RunConfig. Keys that are absent keep their
// DefaultRunConfig values; an empty document yields the defaults.
func LoadRunConfig(r io.Reader) (RunConfig, error) {
	cfg := DefaultRunConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return RunConfig{}, fmt.Errorf("parse run config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c RunConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("run config: window size %dx%d must be positive", c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("run config: tps %d must be positive", c.TPS)
	case c.MaxFrames < 0:
		return fmt.Errorf("run config: max_frames %d must not be negative", c.MaxFrames)
	}
	return nil
}

// Run opens a window and drives scene until the window is closed or
// cfg.MaxFrames updates have run. It calls Setup and Start first if they have
// not run yet.
func Run(scene *Scene, cfg RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	begin(scene)
	if cfg.ShowFPS {
		AddComponent[FPSCounter](scene.CreateGameObject("fps"))
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)

	err := ebiten.RunGame(&game{scene: scene, cfg: cfg})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run scene %q: %w", scene.Name, err)
	}
	return nil
}

// Step runs frames Update/Render cycles without a window, rendering to a nil
// screen. It calls Setup and Start first if they have not run yet.
func Step(scene *Scene, frames int) {
	begin(scene)
	for i := 0; i < frames; i++ {
		scene.Update()
		scene.Render(nil)
	}
}

func begin(scene *Scene) {
	scene.Setup()
	if !scene.started {
		scene.Start()
	}
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene  *Scene
	cfg    RunConfig
	frames int
}

func (g *game) Update() error {
	g.scene.Update()
	g.frames++
	if g.cfg.MaxFrames > 0 && g.frames >= g.cfg.MaxFrames {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Render(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
