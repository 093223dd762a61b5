package flappy

import (
	"math/rand"
	"time"
)

// Kind identifies a power-up.
type Kind int

const (
	Shrink         Kind = iota // Actor shrinks to a fraction of its size
	InvisibleWalls             // Obstacles lose their solid zones and fill
	ReverseGravity             // Actor is kicked upward
	kindCount                  // Sentinel for counting kinds
)

// Catalog lists every power-up in pick order.
var Catalog = [kindCount]Kind{Shrink, InvisibleWalls, ReverseGravity}

// String returns the display name of the power-up.
func (k Kind) String() string {
	switch k {
	case Shrink:
		return "Shrink"
	case InvisibleWalls:
		return "Invisible Walls"
	case ReverseGravity:
		return "Reverse Gravity"
	default:
		return "?"
	}
}

// Glyph returns the HUD character for the power-up.
func (k Kind) Glyph() rune {
	switch k {
	case Shrink:
		return 's'
	case InvisibleWalls:
		return 'i'
	case ReverseGravity:
		return 'r'
	default:
		return '?'
	}
}

// Effects is the part of the session a power-up can change.
type Effects struct {
	Size       Size
	WallsSolid bool
	Velocity   float64
}

// Tuning holds the constants power-ups apply and revert to.
type Tuning struct {
	DefaultSize     Size
	ShrinkFactor    float64
	ReverseVelocity float64
	ReleaseVelocity float64
}

// Apply returns the effects with this power-up switched on.
func (k Kind) Apply(e Effects, t Tuning) Effects {
	switch k {
	case Shrink:
		e.Size = t.DefaultSize.Scale(t.ShrinkFactor)
	case InvisibleWalls:
		e.WallsSolid = false
	case ReverseGravity:
		e.Velocity = t.ReverseVelocity
	}
	return e
}

// Revert returns the effects with this power-up switched off.
func (k Kind) Revert(e Effects, t Tuning) Effects {
	switch k {
	case Shrink:
		e.Size = t.DefaultSize
	case InvisibleWalls:
		e.WallsSolid = true
	case ReverseGravity:
		e.Velocity = t.ReleaseVelocity
	}
	return e
}

// Engine activates one power-up at a time and expires it after a fixed
// duration of session time. Kinds are drawn without replacement until
// the catalog is exhausted.
type Engine struct {
	rng      *rand.Rand
	duration time.Duration

	used     [kindCount]bool
	active   bool
	current  Kind
	deadline time.Duration
}

// NewEngine creates a power-up engine.
func NewEngine(rng *rand.Rand, duration time.Duration) *Engine {
	return &Engine{rng: rng, duration: duration}
}

// Reset cancels any active power-up and forgets used kinds.
func (e *Engine) Reset() {
	e.used = [kindCount]bool{}
	e.active = false
	e.deadline = 0
}

// Active returns the active power-up, if any.
func (e *Engine) Active() (Kind, bool) {
	return e.current, e.active
}

// Used returns the kinds drawn since the last used-set reset, in catalog order.
func (e *Engine) Used() []Kind {
	var kinds []Kind
	for _, k := range Catalog {
		if e.used[k] {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (e *Engine) pick() Kind {
	available := make([]Kind, 0, len(Catalog))
	for _, k := range Catalog {
		if !e.used[k] {
			available = append(available, k)
		}
	}
	if len(available) == 0 {
		e.used = [kindCount]bool{}
		available = append(available, Catalog[:]...)
	}

	k := available[e.rng.Intn(len(available))]
	e.used[k] = true
	return k
}

// Activate starts a new power-up at session time now.
// Returns false if one is already active.
func (e *Engine) Activate(now time.Duration) (Kind, bool) {
	if e.active {
		return 0, false
	}
	e.current = e.pick()
	e.active = true
	e.deadline = now + e.duration
	return e.current, true
}

// Expire ends the active power-up once now reaches its deadline.
// Returns the expired kind.
func (e *Engine) Expire(now time.Duration) (Kind, bool) {
	if !e.active || now < e.deadline {
		return 0, false
	}
	e.active = false
	return e.current, true
}

// Remaining returns the time left on the active power-up.
func (e *Engine) Remaining(now time.Duration) time.Duration {
	if !e.active {
		return 0
	}
	return max(e.deadline-now, 0)
}
