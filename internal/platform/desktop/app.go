// Package desktop runs the game in a window through Ebitengine.
// The same App serves the desktop binary and the mobile bindings.
package desktop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

// Window-mode world size used when the config leaves the viewport unset.
const (
	DefaultWidth  = 400
	DefaultHeight = 800
)

// SoundPlayer plays a cue for a game event.
type SoundPlayer interface {
	Play(kind core.EventKind)
}

type muter interface {
	SetMuted(muted bool)
}

// Options configures an App.
type Options struct {
	Variant    string // Registered variant id; empty uses the saved one
	ConfigPath string
	Tick       time.Duration
	Seed       int64
	Settings   *SettingsStore
	Sound      SoundPlayer
	Logger     *log.Logger
}

// App adapts a flappy game to ebiten.Game.
type App struct {
	game     *flappy.Game
	settings *SettingsStore
	sound    SoundPlayer
	log      *log.Logger

	last       time.Time
	carry      bool
	state      core.GameState
	scoreSaved bool
}

// NewApp builds and resets the configured variant.
func NewApp(opts Options) (*App, error) {
	if opts.Settings == nil {
		opts.Settings, _ = NewSettingsStore(nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Variant == "" {
		opts.Variant = opts.Settings.Settings().Variant
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Tick <= 0 {
		opts.Tick = core.DefaultTick
	}

	created, err := registry.Create(opts.Variant)
	if err != nil {
		return nil, err
	}
	game, ok := created.(*flappy.Game)
	if !ok {
		return nil, fmt.Errorf("desktop: %s is not a flappy variant", opts.Variant)
	}

	cfg, err := config.LoadFlappy(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.Viewport.Width == 0 {
		cfg.Viewport.Width = DefaultWidth
	}
	if cfg.Viewport.Height == 0 {
		cfg.Viewport.Height = DefaultHeight
	}
	game.UseConfig(cfg)
	rc := core.RuntimeConfig{Tick: opts.Tick, Seed: opts.Seed}
	if err := game.Reset(rc); err != nil {
		return nil, err
	}

	opts.Settings.SetVariant(opts.Variant)
	a := &App{
		game:     game,
		settings: opts.Settings,
		sound:    opts.Sound,
		log:      opts.Logger.With("game", opts.Variant),
		state:    game.State(),
	}
	a.applyMute(opts.Settings.Settings().Muted)
	// obstacles move a fixed distance per update, so updates run at the tick rate
	ebiten.SetTPS(rc.TickRate())
	return a, nil
}

// Update advances the game by the wall-clock time since the previous call.
func (a *App) Update() error {
	now := time.Now()
	dt := time.Duration(0)
	if !a.last.IsZero() {
		dt = now.Sub(a.last)
	}
	a.last = now

	p := readPointer()
	if p.quit {
		a.saveSettings()
		return ebiten.Termination
	}
	if p.mute {
		muted := !a.settings.Settings().Muted
		a.settings.SetMuted(muted)
		a.applyMute(muted)
	}

	var in core.InputFrame
	in, a.carry = p.frame(a.carry)
	a.step(in, dt)
	return nil
}

// step runs one tick and handles its events. dt of zero uses the nominal tick.
func (a *App) step(in core.InputFrame, dt time.Duration) {
	result := a.game.Step(in, dt)
	a.state = result.State

	for _, ev := range result.Events {
		if a.sound != nil {
			a.sound.Play(ev.Kind)
		}
		switch ev.Kind {
		case core.EventStarted:
			a.scoreSaved = false
		case core.EventCrashed:
			a.log.Info("game over", "score", a.state.Score, "cause", ev.Detail)
		}
	}

	if a.state.GameOver && !a.scoreSaved {
		a.scoreSaved = true
		if a.settings.RecordScore(a.game.ID(), a.state.Score) {
			a.log.Info("new best", "score", a.state.Score)
		}
		a.saveSettings()
	}
}

func (a *App) applyMute(muted bool) {
	if m, ok := a.sound.(muter); ok {
		m.SetMuted(muted)
	}
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		a.log.Warn("saving settings failed", "err", err)
	}
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	DrawFrame(screen, a.game.Frame(), a.settings.Best(a.game.ID()))
}

// Layout reports the world size; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	w, h := a.game.Viewport()
	return int(w), int(h)
}

// Run opens a window and plays until it is closed.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}

	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	app.saveSettings()
	return nil
}
