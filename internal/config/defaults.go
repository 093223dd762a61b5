package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy configuration.
// Mirrors defaults/flappy.yaml; used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Viewport: Viewport{
			CellWidth:  8,
			CellHeight: 16,
		},
		Actor: Actor{
			Width:        30,
			Height:       30,
			ShrinkFactor: 0.7,
		},
		Obstacles: Obstacles{
			Width:   50,
			Gap:     175,
			Speed:   5,
			Spacing: 300,
		},
		Controls: Controls{
			Scheme:          SchemeHold,
			PressVelocity:   -10,
			ReleaseVelocity: 10,
			HopVelocity:     5,
			HopLift:         50,
			KeyReleaseMS:    200,
		},
		PowerUps: PowerUps{
			Enabled:         true,
			MarkerChance:    0.25,
			MarkerRadius:    15,
			DurationMS:      5000,
			ReverseVelocity: -15,
		},
		Trail: Trail{
			Length: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
