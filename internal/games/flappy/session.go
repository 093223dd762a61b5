package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// wantsStart reports whether the input starts a session from Idle or Ended.
func (g *Game) wantsStart(in core.InputFrame) bool {
	return in.Has(core.ActionPress) || in.Has(core.ActionTap) || in.Has(core.ActionRestart)
}

// begin starts a new running session. A pending resize is applied first.
func (g *Game) begin() {
	if g.resize != nil {
		if w, h, err := g.cfg.ResolveViewport(g.resize[0], g.resize[1]); err == nil {
			g.viewW, g.viewH = w, h
			g.stream.Reconfigure(g.streamConfig())
		}
		g.resize = nil
	}
	g.restart()
	g.phase = core.PhaseRunning
}

// restart puts the actor, stream and power-ups back to their initial state.
func (g *Game) restart() {
	g.actor = NewActor(g.defaultSize(), g.cfg.Trail.Length)
	g.actor.Y = g.viewH/2 - g.actor.Size.H/2

	g.stream.Reset()
	g.powerups.Reset()
	g.wallsSolid = true

	g.paused = false
	g.score = 0
	g.elapsed = 0
	g.ticks = 0
	g.pickups = 0
}

// applyControls applies press and release input for a running session.
// In the hop scheme a press counts as a tap and release is ignored; in
// the hold scheme a tap counts as a press.
func (g *Game) applyControls(in core.InputFrame, events []core.Event) []core.Event {
	pressed := in.Has(core.ActionPress) || in.Has(core.ActionTap)
	ctl := g.cfg.Controls

	if ctl.Scheme == config.SchemeHop {
		if pressed {
			g.actor.Velocity = ctl.HopVelocity
			g.actor.Y = max(g.actor.Y-ctl.HopLift, 0)
			events = append(events, core.Event{Kind: core.EventFlap})
		}
		return events
	}

	if pressed {
		g.actor.Velocity = ctl.PressVelocity
		events = append(events, core.Event{Kind: core.EventFlap})
	}
	if in.Has(core.ActionRelease) {
		g.actor.Velocity = ctl.ReleaseVelocity
	}
	return events
}
