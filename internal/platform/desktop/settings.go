package desktop

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// Settings are the per-device preferences of the window front end.
type Settings struct {
	Variant string         `yaml:"variant"`
	Volume  float64        `yaml:"volume"`
	Muted   bool           `yaml:"muted"`
	Best    map[string]int `yaml:"best"`
}

// DefaultSettings returns the settings of a fresh install.
func DefaultSettings() Settings {
	return Settings{
		Variant: "flappy",
		Volume:  0.6,
		Best:    map[string]int{},
	}
}

// SettingsStore keeps Settings in gdata storage. A nil manager keeps them
// in memory only, which is what tests and unsupported platforms get.
type SettingsStore struct {
	data     *gdata.Manager
	settings Settings
}

// NewSettingsStore loads saved settings. A load failure is returned
// alongside a usable store holding the defaults.
func NewSettingsStore(m *gdata.Manager) (*SettingsStore, error) {
	s := &SettingsStore{data: m, settings: DefaultSettings()}
	return s, s.Load()
}

// OpenSettings opens the gdata storage for appName and loads settings from it.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("settings: open storage: %w", err)
	}
	return NewSettingsStore(m)
}

// Load replaces the in-memory settings with the saved ones.
func (s *SettingsStore) Load() error {
	s.settings = DefaultSettings()
	if s.data == nil || !s.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	raw, err := s.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("settings: decode: %w", err)
	}
	if loaded.Best == nil {
		loaded.Best = map[string]int{}
	}
	loaded.Volume = clampVolume(loaded.Volume)
	s.settings = loaded
	return nil
}

// Save persists the current settings. Without storage it does nothing.
func (s *SettingsStore) Save() error {
	if s.data == nil {
		return nil
	}
	raw, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := s.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Settings returns a copy of the current settings.
func (s *SettingsStore) Settings() Settings {
	out := s.settings
	out.Best = make(map[string]int, len(s.settings.Best))
	for k, v := range s.settings.Best {
		out.Best[k] = v
	}
	return out
}

// SetMuted toggles sound in memory; call Save to persist.
func (s *SettingsStore) SetMuted(muted bool) {
	s.settings.Muted = muted
}

// SetVolume sets the cue volume, clamped to [0, 1].
func (s *SettingsStore) SetVolume(v float64) {
	s.settings.Volume = clampVolume(v)
}

// SetVariant remembers the last played variant.
func (s *SettingsStore) SetVariant(id string) {
	s.settings.Variant = id
}

// Best returns the best score recorded for a variant.
func (s *SettingsStore) Best(gameID string) int {
	return s.settings.Best[gameID]
}

// RecordScore keeps score if it beats the stored best and reports whether it did.
func (s *SettingsStore) RecordScore(gameID string, score int) bool {
	if score <= s.settings.Best[gameID] {
		return false
	}
	s.settings.Best[gameID] = score
	return true
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
