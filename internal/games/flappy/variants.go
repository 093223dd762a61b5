package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

// Variant is a registered flavour of the game.
type Variant struct {
	ID          string
	Title       string
	Description string
	Scheme      string // Control scheme override; empty keeps the config value
	NoMarkers   bool   // Disable power-up markers
}

// Registered variants.
var (
	Classic = Variant{
		ID:          "flappy-classic",
		Title:       "Flappy Classic",
		Description: "Hold to rise, release to fall. No power-ups.",
		Scheme:      config.SchemeHold,
		NoMarkers:   true,
	}
	Standard = Variant{
		ID:          "flappy",
		Title:       "Flappy",
		Description: "Hold to rise, release to fall. Grab markers for power-ups.",
	}
	Hop = Variant{
		ID:          "flappy-hop",
		Title:       "Flappy Hop",
		Description: "Every tap hops the bird up. Power-ups included.",
		Scheme:      config.SchemeHop,
	}
)

// overlay applies the variant's settings on top of a loaded config.
func (v Variant) overlay(cfg *config.FlappyConfig) {
	if v.Scheme != "" {
		cfg.Controls.Scheme = v.Scheme
	}
	if v.NoMarkers {
		cfg.PowerUps.Enabled = false
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path used when a game resets.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	for _, v := range []Variant{Standard, Hop, Classic} {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
