package grove

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRunConfig(t *testing.T) {
	cfg := DefaultRunConfig()
	assert.Equal(t, "grove", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, ebiten.DefaultTPS, cfg.TPS)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRunConfig(t *testing.T) {
	src := `
title: Player Demo
width: 320
height: 240
max_frames: 120
debug: true
show_fps: true
`
	cfg, err := LoadRunConfig(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, RunConfig{
		Title:     "Player Demo",
		Width:     320,
		Height:    240,
		TPS:       ebiten.DefaultTPS,
		MaxFrames: 120,
		Debug:     true,
		ShowFPS:   true,
	}, cfg)
}

func TestLoadRunConfigEmpty(t *testing.T) {
	cfg, err := LoadRunConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultRunConfig(), cfg)
}

func TestLoadRunConfigErrors(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"unknown field", "fullscreen: true\n", "parse run config"},
		{"bad type", "width: wide\n", "parse run config"},
		{"zero width", "width: 0\n", "window size"},
		{"negative tps", "tps: -1\n", "tps"},
		{"negative frames", "max_frames: -5\n", "max_frames"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRunConfig(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	err := Run(NewScene("bad"), RunConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run config")
}

func TestStepRunsSetupAndStart(t *testing.T) {
	s := NewScene("step")
	var probe *probeBehaviour
	s.SetSetupFunc(func(sc *Scene) {
		probe = AddComponent[probeBehaviour](sc.CreateGameObject("probe"))
	})

	Step(s, 3)

	require.NotNil(t, probe)
	assert.True(t, s.Started())
	assert.Equal(t, 1, probe.awakes)
	assert.Equal(t, 1, probe.starts)
	assert.Equal(t, 3, probe.updates)

	Step(s, 2)
	assert.Equal(t, 1, probe.starts, "Setup and Start run once")
	assert.Equal(t, 5, probe.updates)
}

func TestStepRendersComponents(t *testing.T) {
	s := NewScene("step")
	c := AddComponent[probeComponent](s.CreateGameObject("probe"))

	Step(s, 4)

	assert.Equal(t, 4, c.renders)
}

func TestStepPlayerDemo(t *testing.T) {
	s := NewScene("demo")
	var original *GameObject
	s.SetSetupFunc(func(sc *Scene) {
		original = sc.CreateGameObject("Player")
		AddComponent[player](original)
		AddComponent[playerController](original)
		weapon := sc.CreateGameObject("Weapon")
		weapon.Transform().SetParent(original.Transform())
		Instantiate(original)
	})

	Step(s, 100)

	assert.True(t, original.IsDestroyed())
	assert.Zero(t, s.NumGameObjects(), "both players and their weapons are gone")
}

func TestGameTerminatesAtMaxFrames(t *testing.T) {
	s := NewScene("game")
	g := &game{scene: s, cfg: RunConfig{Width: 1, Height: 1, TPS: 60, MaxFrames: 2}}

	assert.NoError(t, g.Update())
	assert.ErrorIs(t, g.Update(), ebiten.Termination)

	w, h := g.Layout(100, 100)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}
