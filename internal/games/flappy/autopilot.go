package flappy

import (
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Autopilot steers the actor toward the centre of the next gap.
// It drives headless simulations and attract screens.
type Autopilot struct {
	controls config.Controls
}

// NewAutopilot creates an autopilot for the given control settings.
func NewAutopilot(controls config.Controls) Autopilot {
	return Autopilot{controls: controls}
}

// Decide returns the input for the next tick given the last frame.
// A session that is not running is started.
func (a Autopilot) Decide(f Frame) core.InputFrame {
	if f.Phase != core.PhaseRunning {
		return core.Frame(core.ActionPress)
	}

	target := f.ViewH / 2
	for _, o := range f.Obstacles {
		if o.Upper.Right() > f.Actor.Left() {
			target = (o.Upper.Bottom() + o.Lower.Top()) / 2
			break
		}
	}

	centre := (f.Actor.Top() + f.Actor.Bottom()) / 2

	if a.controls.Scheme == config.SchemeHop {
		if centre-a.controls.HopLift/2 > target {
			return core.Frame(core.ActionTap)
		}
		return core.NewInputFrame()
	}

	if centre > target {
		return core.Frame(core.ActionPress)
	}
	return core.Frame(core.ActionRelease)
}

// SimResult summarizes a headless autopilot run.
type SimResult struct {
	Score    int
	PowerUps int
	Ticks    uint64
	Crashed  bool
	Hash     uint64 // Hash of the final frame
}

// Simulate lets the autopilot fly a reset game for at most maxTicks steps
// of dt each. The run stops early on a crash.
func Simulate(g *Game, maxTicks int, dt time.Duration) SimResult {
	pilot := NewAutopilot(g.Config().Controls)
	for range maxTicks {
		if g.Step(pilot.Decide(g.Frame()), dt).State.GameOver {
			break
		}
	}

	st := g.State()
	return SimResult{
		Score:    st.Score,
		PowerUps: st.PowerUps,
		Ticks:    st.Ticks,
		Crashed:  st.GameOver,
		Hash:     g.Frame().Hash(),
	}
}
