package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Obstacle is a vertical wall with a gap the actor must fly through.
type Obstacle struct {
	X          float64 // Left edge
	GapOffset  float64 // Top of the gap
	Scored     bool    // Whether the actor has passed this obstacle
	HasPowerUp bool    // Whether a power-up marker sits in the gap
	Consumed   bool    // Marker already used (single-use mode only)
}

// Geometry holds the dimensions shared by every obstacle.
type Geometry struct {
	Width        float64
	Gap          float64
	MarkerRadius float64
	ViewH        float64
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right(g Geometry) float64 {
	return o.X + g.Width
}

// Upper returns the solid zone above the gap.
func (o Obstacle) Upper(g Geometry) core.Box {
	return core.NewBox(o.X, 0, g.Width, o.GapOffset)
}

// Lower returns the solid zone below the gap, down to the viewport bottom.
func (o Obstacle) Lower(g Geometry) core.Box {
	top := o.GapOffset + g.Gap
	return core.NewBox(o.X, top, g.Width, max(g.ViewH-top, 0))
}

// Marker returns the power-up zone centred in the gap.
func (o Obstacle) Marker(g Geometry) core.Box {
	return core.Centered(o.X+g.Width/2, o.GapOffset+g.Gap/2, g.MarkerRadius)
}

// MarkerLive reports whether the obstacle carries a usable marker.
func (o Obstacle) MarkerLive() bool {
	return o.HasPowerUp && !o.Consumed
}

// StreamConfig holds the parameters of the obstacle stream.
type StreamConfig struct {
	Geometry
	ViewW        float64
	Speed        float64 // World units per tick
	Spacing      float64 // Spawn when the tail is this far from the right edge
	MarkerChance float64
}

// Stream is the ordered sequence of obstacles, oldest (leftmost) first.
type Stream struct {
	cfg   StreamConfig
	rng   *rand.Rand
	items []Obstacle
}

// NewStream creates an empty stream drawing randomness from rng.
func NewStream(rng *rand.Rand, cfg StreamConfig) *Stream {
	return &Stream{
		cfg:   cfg,
		rng:   rng,
		items: make([]Obstacle, 0, 8),
	}
}

// Reset replaces the stream contents with one fresh obstacle.
func (s *Stream) Reset() {
	s.items = append(s.items[:0], s.spawn())
}

// Reconfigure changes the stream parameters. Existing obstacles are kept.
func (s *Stream) Reconfigure(cfg StreamConfig) {
	s.cfg = cfg
}

// spawn creates an obstacle at the right edge with a random gap and an
// independent chance of carrying a marker.
func (s *Stream) spawn() Obstacle {
	gap := s.rng.Float64() * (s.cfg.ViewH / 2)
	marker := s.rng.Float64() < s.cfg.MarkerChance
	return Obstacle{
		X:          s.cfg.ViewW,
		GapOffset:  gap,
		HasPowerUp: marker,
	}
}

// Advance runs one tick of the stream: shift, score, prune, spawn.
// referenceX is the actor's fixed horizontal reference. Returns the
// number of obstacles passed this tick.
func (s *Stream) Advance(referenceX float64) int {
	passed := 0

	for i := range s.items {
		o := &s.items[i]
		o.X -= s.cfg.Speed
		if !o.Scored && referenceX > o.Right(s.cfg.Geometry) {
			o.Scored = true
			passed++
		}
	}

	// At most one removal per tick
	if len(s.items) > 0 && s.items[0].Right(s.cfg.Geometry) < 0 {
		s.items = s.items[1:]
	}

	if len(s.items) == 0 || s.items[len(s.items)-1].X < s.cfg.ViewW-s.cfg.Spacing {
		s.items = append(s.items, s.spawn())
	}

	return passed
}

// Obstacles returns the current obstacles, oldest first.
func (s *Stream) Obstacles() []Obstacle {
	return s.items
}

// Len returns the number of obstacles in the stream.
func (s *Stream) Len() int {
	return len(s.items)
}

// consume marks the marker at index i as used.
func (s *Stream) consume(i int) {
	if i >= 0 && i < len(s.items) {
		s.items[i].Consumed = true
	}
}
