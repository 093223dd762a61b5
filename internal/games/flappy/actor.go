package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Size is the actor's bounding box extent in world units.
type Size struct {
	W, H float64
}

// Scale returns the size multiplied by f in both dimensions.
func (s Size) Scale(f float64) Size {
	return Size{W: s.W * f, H: s.H * f}
}

// Actor is the controllable sprite. It only moves vertically; the
// horizontal position is fixed at the centre of the viewport.
type Actor struct {
	Y        float64 // Top edge
	Velocity float64 // Added to Y every tick
	Size     Size

	trail    []float64
	trailLen int
}

// NewActor creates an actor of the given size with a bounded trail.
func NewActor(size Size, trailLen int) Actor {
	return Actor{
		Size:     size,
		trail:    make([]float64, 0, trailLen),
		trailLen: trailLen,
	}
}

// Update moves the actor by its velocity and records the new position.
func (a *Actor) Update() {
	a.Y += a.Velocity

	if len(a.trail) == a.trailLen {
		copy(a.trail, a.trail[1:])
		a.trail = a.trail[:len(a.trail)-1]
	}
	a.trail = append(a.trail, a.Y)
}

// Trail returns past positions, oldest first.
func (a *Actor) Trail() []float64 {
	return a.trail
}

// Box returns the actor's bounding box for a viewport of the given width.
func (a *Actor) Box(viewW float64) core.Box {
	return core.NewBox(viewW/2-a.Size.W/2, a.Y, a.Size.W, a.Size.H)
}
