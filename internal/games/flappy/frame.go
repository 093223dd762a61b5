package flappy

import (
	"math"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Overlay texts shown while the session is not running.
const (
	TextGameOver   = "Game Over"
	TextTapToStart = "Tap to Start"
	TextPaused     = "Paused"
)

// ObstacleFrame is the drawable form of one obstacle.
type ObstacleFrame struct {
	Upper     core.Box
	Lower     core.Box
	Solid     bool // False while walls are invisible; draw an outline only
	HasMarker bool
	Marker    core.Box
}

// TrailPoint is one past actor position. Opacity and Scale grow with recency.
type TrailPoint struct {
	Box     core.Box
	Opacity float64
	Scale   float64
}

// Frame is everything a front end needs to draw one tick.
type Frame struct {
	ViewW, ViewH float64
	Actor        core.Box
	Obstacles    []ObstacleFrame
	Trail        []TrailPoint
	Score        int
	Phase        core.Phase
	Paused       bool
	Overlay      []string
	PowerUp      string
	Remaining    time.Duration
	Tick         uint64
}

// Frame builds the render outputs for the current state.
func (g *Game) Frame() Frame {
	geo := g.geometry()
	f := Frame{
		ViewW:  g.viewW,
		ViewH:  g.viewH,
		Actor:  g.actor.Box(g.viewW),
		Score:  g.score,
		Phase:  g.phase,
		Paused: g.paused,
		Tick:   g.ticks,
	}

	obstacles := g.stream.Obstacles()
	f.Obstacles = make([]ObstacleFrame, len(obstacles))
	for i, o := range obstacles {
		f.Obstacles[i] = ObstacleFrame{
			Upper:     o.Upper(geo),
			Lower:     o.Lower(geo),
			Solid:     g.wallsSolid,
			HasMarker: o.MarkerLive(),
			Marker:    o.Marker(geo),
		}
	}

	trail := g.actor.Trail()
	f.Trail = make([]TrailPoint, len(trail))
	for i, y := range trail {
		ratio := float64(i+1) / float64(len(trail))
		f.Trail[i] = TrailPoint{
			Box:     core.NewBox(f.Actor.X, y, f.Actor.W, f.Actor.H),
			Opacity: ratio,
			Scale:   ratio,
		}
	}

	if k, ok := g.powerups.Active(); ok {
		f.PowerUp = k.String()
		f.Remaining = g.powerups.Remaining(g.elapsed)
	}

	switch {
	case g.phase == core.PhaseIdle:
		f.Overlay = []string{TextTapToStart}
	case g.phase == core.PhaseEnded:
		f.Overlay = []string{TextGameOver, TextTapToStart}
	case g.paused:
		f.Overlay = []string{TextPaused}
	}

	return f
}

// Hash returns a deterministic hash of the frame for replay comparison.
func (f Frame) Hash() uint64 {
	var h uint64 = 17
	mix := func(v uint64) { h = h*31 + v }
	box := func(b core.Box) {
		mix(math.Float64bits(b.X))
		mix(math.Float64bits(b.Y))
		mix(math.Float64bits(b.W))
		mix(math.Float64bits(b.H))
	}

	box(f.Actor)
	for _, o := range f.Obstacles {
		box(o.Upper)
		box(o.Lower)
		if o.Solid {
			mix(1)
		}
		if o.HasMarker {
			box(o.Marker)
		}
	}
	for _, t := range f.Trail {
		mix(math.Float64bits(t.Box.Y))
	}
	mix(uint64(f.Score))
	mix(uint64(f.Phase))
	mix(f.Tick)
	for _, r := range f.PowerUp {
		mix(uint64(r))
	}
	return h
}
