package grove

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// probeBehaviour records every lifecycle call it receives.
type probeBehaviour struct {
	BehaviourBase
	label string
	calls *[]string

	awakes, starts, updates, destroys int
}

func (p *probeBehaviour) record(what string) {
	if p.calls != nil {
		*p.calls = append(*p.calls, p.label+"."+what)
	}
}

func (p *probeBehaviour) Awake()     { p.awakes++; p.record("awake") }
func (p *probeBehaviour) Start()     { p.starts++; p.record("start") }
func (p *probeBehaviour) Update()    { p.updates++; p.record("update") }
func (p *probeBehaviour) OnDestroy() { p.destroys++; p.record("destroy") }

// Behaviours never render; this must not be called.
func (p *probeBehaviour) Render(*ebiten.Image) { p.record("render") }

// probeComponent is the plain-component counterpart of probeBehaviour.
type probeComponent struct {
	ComponentBase
	label string
	calls *[]string

	awakes, starts, updates, renders, destroys int
}

func (p *probeComponent) record(what string) {
	if p.calls != nil {
		*p.calls = append(*p.calls, p.label+"."+what)
	}
}

func (p *probeComponent) Awake()               { p.awakes++; p.record("awake") }
func (p *probeComponent) Start()               { p.starts++; p.record("start") }
func (p *probeComponent) Update()              { p.updates++; p.record("update") }
func (p *probeComponent) Render(*ebiten.Image) { p.renders++; p.record("render") }
func (p *probeComponent) OnDestroy()           { p.destroys++; p.record("destroy") }

// player walks right one unit per frame and loses health on every wall hit.
type player struct {
	BehaviourBase
	health int
}

func (p *player) Awake() {
	p.health = 10
}

func (p *player) Update() {
	p.Transform().Translate(VectorRight)
}

func (p *player) HitWall() {
	p.health--
	if p.health == 0 {
		Destroy(p.GameObject())
	}
}

// playerController bounces the player off a wall at x == 4.
type playerController struct {
	BehaviourBase
	player *player
}

func (c *playerController) Start() {
	c.player, _ = GetComponent[*player](c.GameObject())
}

func (c *playerController) Update() {
	if c.player == nil {
		return
	}
	if c.Transform().Position.X >= 4 {
		c.Transform().Translate(VectorLeft)
		c.player.HitWall()
	}
}

func (c *playerController) Relink(m *CloneMap) {
	c.player = Remap(m, c.player)
}

// counter is a plain component with no capabilities beyond Update.
type counter struct {
	ComponentBase
	n int
}

func (c *counter) Update() { c.n++ }

// namer is satisfied by every behaviour; used for interface lookups.
type namer interface {
	Name() string
}
