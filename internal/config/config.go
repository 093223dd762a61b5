// Package config provides YAML-based game configuration loading and
// validation for the flappy games.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a configuration value cannot drive a session.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Control schemes.
const (
	SchemeHold = "hold"
	SchemeHop  = "hop"
)

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	Viewport  Viewport  `yaml:"viewport"`
	Actor     Actor     `yaml:"actor"`
	Obstacles Obstacles `yaml:"obstacles"`
	Controls  Controls  `yaml:"controls"`
	PowerUps  PowerUps  `yaml:"powerups"`
	Trail     Trail     `yaml:"trail"`
}

// Viewport defines the world size, either fixed or scaled from screen cells.
type Viewport struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Actor defines the controllable sprite.
type Actor struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	ShrinkFactor float64 `yaml:"shrink_factor"`
}

// Obstacles defines the scrolling gated obstacles.
type Obstacles struct {
	Width   float64 `yaml:"width"`
	Gap     float64 `yaml:"gap"`
	Speed   float64 `yaml:"speed"`   // World units per tick
	Spacing float64 `yaml:"spacing"` // Tail distance from the right edge before a new spawn
}

// Controls defines the input scheme and the velocities it sets.
type Controls struct {
	Scheme          string  `yaml:"scheme"`
	PressVelocity   float64 `yaml:"press_velocity"`
	ReleaseVelocity float64 `yaml:"release_velocity"`
	HopVelocity     float64 `yaml:"hop_velocity"`
	HopLift         float64 `yaml:"hop_lift"`
	KeyReleaseMS    int     `yaml:"key_release_ms"`
}

// KeyRelease returns the terminal key-release emulation delay.
func (c Controls) KeyRelease() time.Duration {
	return time.Duration(c.KeyReleaseMS) * time.Millisecond
}

// PowerUps defines marker spawning and power-up effects.
type PowerUps struct {
	Enabled         bool    `yaml:"enabled"`
	MarkerChance    float64 `yaml:"marker_chance"`
	MarkerRadius    float64 `yaml:"marker_radius"`
	DurationMS      int     `yaml:"duration_ms"`
	ReverseVelocity float64 `yaml:"reverse_velocity"`
	SingleUse       bool    `yaml:"single_use"`
}

// Duration returns how long an activated power-up lasts.
func (p PowerUps) Duration() time.Duration {
	return time.Duration(p.DurationMS) * time.Millisecond
}

// Trail defines the cosmetic motion trail.
type Trail struct {
	Length int `yaml:"length"`
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

// Validate checks every value a session depends on.
// A zero viewport size is allowed; it is resolved against the screen later.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Viewport.Width < 0:
		return invalid("viewport.width", "must not be negative, got %v", c.Viewport.Width)
	case c.Viewport.Height < 0:
		return invalid("viewport.height", "must not be negative, got %v", c.Viewport.Height)
	case c.Viewport.Width == 0 && c.Viewport.CellWidth <= 0:
		return invalid("viewport.cell_width", "must be positive, got %v", c.Viewport.CellWidth)
	case c.Viewport.Height == 0 && c.Viewport.CellHeight <= 0:
		return invalid("viewport.cell_height", "must be positive, got %v", c.Viewport.CellHeight)
	case c.Actor.Width <= 0 || c.Actor.Height <= 0:
		return invalid("actor", "size must be positive, got %vx%v", c.Actor.Width, c.Actor.Height)
	case c.Actor.ShrinkFactor <= 0 || c.Actor.ShrinkFactor > 1:
		return invalid("actor.shrink_factor", "must be in (0, 1], got %v", c.Actor.ShrinkFactor)
	case c.Obstacles.Width <= 0:
		return invalid("obstacles.width", "must be positive, got %v", c.Obstacles.Width)
	case c.Obstacles.Gap <= 0:
		return invalid("obstacles.gap", "must be positive, got %v", c.Obstacles.Gap)
	case c.Obstacles.Speed <= 0:
		return invalid("obstacles.speed", "must be positive, got %v", c.Obstacles.Speed)
	case c.Obstacles.Spacing <= 0:
		return invalid("obstacles.spacing", "must be positive, got %v", c.Obstacles.Spacing)
	case c.Actor.Height > c.Obstacles.Gap:
		return invalid("actor.height", "actor (%v) does not fit the gap (%v)", c.Actor.Height, c.Obstacles.Gap)
	case c.Controls.Scheme != SchemeHold && c.Controls.Scheme != SchemeHop:
		return invalid("controls.scheme", "unknown scheme %q", c.Controls.Scheme)
	case c.Controls.KeyReleaseMS < 0:
		return invalid("controls.key_release_ms", "must not be negative, got %d", c.Controls.KeyReleaseMS)
	case c.PowerUps.MarkerChance < 0 || c.PowerUps.MarkerChance > 1:
		return invalid("powerups.marker_chance", "must be in [0, 1], got %v", c.PowerUps.MarkerChance)
	case c.PowerUps.MarkerRadius <= 0:
		return invalid("powerups.marker_radius", "must be positive, got %v", c.PowerUps.MarkerRadius)
	case c.PowerUps.DurationMS <= 0:
		return invalid("powerups.duration_ms", "must be positive, got %d", c.PowerUps.DurationMS)
	case c.Trail.Length < 1:
		return invalid("trail.length", "must be at least 1, got %d", c.Trail.Length)
	}
	return nil
}

// ResolveViewport returns the world size for a screen of cols x rows cells.
// Fixed sizes win over the cell scale.
func (c FlappyConfig) ResolveViewport(cols, rows int) (w, h float64, err error) {
	w, h = c.Viewport.Width, c.Viewport.Height
	if w == 0 {
		w = float64(cols) * c.Viewport.CellWidth
	}
	if h == 0 {
		h = float64(rows) * c.Viewport.CellHeight
	}
	if w <= 0 || h <= 0 {
		return 0, 0, invalid("viewport", "size must be positive, got %vx%v", w, h)
	}
	return w, h, nil
}
