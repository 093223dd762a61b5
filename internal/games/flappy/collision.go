package flappy

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Crash causes reported in events.
const (
	CauseTop      = "top"
	CauseObstacle = "obstacle"
)

// Collision is the outcome of one collision pass.
type Collision struct {
	Crashed bool
	Cause   string
	Markers []int // Indexes of obstacles whose marker zone the actor touches
}

// Detect tests the actor box against the top boundary, every obstacle's
// solid zones and every live marker. Solid zones only count when
// wallsSolid is set; markers are tested regardless. Markers are not
// collected once the actor has crashed.
func Detect(actor core.Box, obstacles []Obstacle, g Geometry, wallsSolid bool) Collision {
	if actor.Top() <= 0 {
		return Collision{Crashed: true, Cause: CauseTop}
	}

	var c Collision
	for i, o := range obstacles {
		upper := o.Upper(g)
		if wallsSolid && actor.OverlapsX(upper) && !actor.WithinY(o.GapOffset, o.GapOffset+g.Gap) {
			c.Crashed = true
			c.Cause = CauseObstacle
		}
		if o.MarkerLive() && actor.Intersects(o.Marker(g)) {
			c.Markers = append(c.Markers, i)
		}
	}

	if c.Crashed {
		c.Markers = nil
	}
	return c
}
