package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Screen dimensions are in terminal cells; games map them to their own world space.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Tick    time.Duration // Fixed simulation step (default 33ms)
	Seed    int64         // RNG seed for deterministic gameplay
	Player  string        // Name recorded with saved scores
}

// DefaultTick is the cadence of the simulation clock.
const DefaultTick = 33 * time.Millisecond

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    DefaultTick,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// TickRate returns the number of ticks per second for the configured step.
func (c RuntimeConfig) TickRate() int {
	if c.Tick <= 0 {
		return int(time.Second / DefaultTick)
	}
	return int(time.Second / c.Tick)
}

// Phase is the coarse lifecycle state of a game, as seen by the platform.
type Phase int

const (
	PhaseIdle    Phase = iota // Waiting for the first press
	PhaseRunning              // Simulation is ticking
	PhaseEnded                // Game over, waiting for a restart press
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Ticks    uint64 // Simulation ticks since the session started
	PowerUps int    // Power-ups collected this session
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventStarted EventKind = iota
	EventFlap
	EventScored
	EventPowerUpActivated
	EventPowerUpExpired
	EventCrashed
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventFlap:
		return "flap"
	case EventScored:
		return "scored"
	case EventPowerUpActivated:
		return "powerup_activated"
	case EventPowerUpExpired:
		return "powerup_expired"
	case EventCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Event is emitted by Game.Step for sound cues and logging.
type Event struct {
	Kind   EventKind
	Detail string // e.g. the power-up name or the crash cause
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
