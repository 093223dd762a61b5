// Package flappy implements a Flappy Bird-style game.
// The actor flies through gaps in scrolling obstacles and can pick up
// timed power-ups. World coordinates are independent of the screen.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Game implements the Flappy game logic.
type Game struct {
	variant  Variant
	override *config.FlappyConfig
	cfg      config.FlappyConfig
	runtime  core.RuntimeConfig

	viewW, viewH float64
	resize       *[2]int // Pending screen size, applied at the next restart

	rng      *rand.Rand
	actor    Actor
	stream   *Stream
	powerups *Engine

	wallsSolid bool
	phase      core.Phase
	paused     bool
	score      int
	elapsed    time.Duration // Session time, frozen while paused
	ticks      uint64
	pickups    int
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// UseConfig makes the game use cfg instead of loading it from disk.
// The variant overlay still applies.
func (g *Game) UseConfig(cfg config.FlappyConfig) {
	g.override = &cfg
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return g.variant.Description
}

// Config returns the effective configuration of the last Reset.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// KeyRelease returns how long the terminal waits before treating a held key
// as released. Zero means every key event is a separate tap.
func (g *Game) KeyRelease() time.Duration {
	if g.cfg.Controls.Scheme == config.SchemeHop {
		return 0
	}
	return g.cfg.Controls.KeyRelease()
}

// Viewport returns the world size.
func (g *Game) Viewport() (w, h float64) {
	return g.viewW, g.viewH
}

func (g *Game) loadConfig() (config.FlappyConfig, error) {
	if g.override != nil {
		return *g.override, nil
	}
	return config.LoadFlappy(configPath)
}

// Reset loads configuration and puts the game in the Idle state.
// Invalid configuration is reported here and the game is left unusable.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	g.variant.overlay(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	w, h, err := cfg.ResolveViewport(rc.ScreenW, rc.ScreenH)
	if err != nil {
		return err
	}

	if rc.Tick <= 0 {
		rc.Tick = core.DefaultTick
	}
	g.cfg = cfg
	g.runtime = rc
	g.viewW, g.viewH = w, h
	g.resize = nil

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.stream = NewStream(g.rng, g.streamConfig())
	g.powerups = NewEngine(g.rng, cfg.PowerUps.Duration())

	g.phase = core.PhaseIdle
	g.paused = false
	g.restart()
	return nil
}

// Resize records a new screen size. The viewport is immutable during a
// session, so the size takes effect when the next session starts.
func (g *Game) Resize(cols, rows int) {
	g.resize = &[2]int{cols, rows}
}

func (g *Game) streamConfig() StreamConfig {
	chance := g.cfg.PowerUps.MarkerChance
	if !g.cfg.PowerUps.Enabled {
		chance = 0
	}
	return StreamConfig{
		Geometry:     g.geometry(),
		ViewW:        g.viewW,
		Speed:        g.cfg.Obstacles.Speed,
		Spacing:      g.cfg.Obstacles.Spacing,
		MarkerChance: chance,
	}
}

func (g *Game) geometry() Geometry {
	return Geometry{
		Width:        g.cfg.Obstacles.Width,
		Gap:          g.cfg.Obstacles.Gap,
		MarkerRadius: g.cfg.PowerUps.MarkerRadius,
		ViewH:        g.viewH,
	}
}

func (g *Game) defaultSize() Size {
	return Size{W: g.cfg.Actor.Width, H: g.cfg.Actor.Height}
}

// referenceX is the fixed horizontal point used for scoring. It does not
// follow the actor's current size.
func (g *Game) referenceX() float64 {
	return g.viewW/2 - g.cfg.Actor.Width/2
}

// Step advances the game by one tick. dt is the wall-clock time since the
// previous tick and drives power-up expiry.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	var events []core.Event

	if in.Has(core.ActionPause) && g.phase == core.PhaseRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.phase != core.PhaseRunning {
		if g.wantsStart(in) {
			g.begin()
			events = append(events, core.Event{Kind: core.EventStarted})
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	events = g.applyControls(in, events)

	if dt <= 0 {
		dt = g.runtime.Tick
	}
	events = g.tick(dt, events)

	return core.StepResult{State: g.State(), Events: events}
}

// tick runs the fixed per-tick pipeline of a running session.
func (g *Game) tick(dt time.Duration, events []core.Event) []core.Event {
	g.elapsed += dt
	g.ticks++

	if k, ok := g.powerups.Expire(g.elapsed); ok {
		g.setEffects(k.Revert(g.effects(), g.tuning()))
		events = append(events, core.Event{Kind: core.EventPowerUpExpired, Detail: k.String()})
	}

	g.actor.Update()

	if passed := g.stream.Advance(g.referenceX()); passed > 0 {
		g.score += passed
		events = append(events, core.Event{Kind: core.EventScored})
	}

	c := Detect(g.actor.Box(g.viewW), g.stream.Obstacles(), g.geometry(), g.wallsSolid)
	if c.Crashed {
		g.phase = core.PhaseEnded
		g.powerups.Reset()
		return append(events, core.Event{Kind: core.EventCrashed, Detail: c.Cause})
	}

	for _, i := range c.Markers {
		k, ok := g.powerups.Activate(g.elapsed)
		if !ok {
			break
		}
		g.pickups++
		g.setEffects(k.Apply(g.effects(), g.tuning()))
		if g.cfg.PowerUps.SingleUse {
			g.stream.consume(i)
		}
		events = append(events, core.Event{Kind: core.EventPowerUpActivated, Detail: k.String()})
	}

	return events
}

func (g *Game) effects() Effects {
	return Effects{
		Size:       g.actor.Size,
		WallsSolid: g.wallsSolid,
		Velocity:   g.actor.Velocity,
	}
}

func (g *Game) setEffects(e Effects) {
	g.actor.Size = e.Size
	g.wallsSolid = e.WallsSolid
	g.actor.Velocity = e.Velocity
}

// tuning reverts reverse gravity to the scheme's resting fall velocity.
func (g *Game) tuning() Tuning {
	fall := g.cfg.Controls.ReleaseVelocity
	if g.cfg.Controls.Scheme == config.SchemeHop {
		fall = g.cfg.Controls.HopVelocity
	}
	return Tuning{
		DefaultSize:     g.defaultSize(),
		ShrinkFactor:    g.cfg.Actor.ShrinkFactor,
		ReverseVelocity: g.cfg.PowerUps.ReverseVelocity,
		ReleaseVelocity: fall,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    g.score,
		GameOver: g.phase == core.PhaseEnded,
		Paused:   g.paused,
		Ticks:    g.ticks,
		PowerUps: g.pickups,
	}
}
