package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// footerHeight is the number of terminal rows reserved below the playfield.
const footerHeight = 1

// ScoreStore is the subset of the score database the terminal UI needs.
type ScoreStore interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
	HighScore(gameID string) (int, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// SoundPlayer plays a cue for a game event.
type SoundPlayer interface {
	Play(kind core.EventKind)
}

// keyReleaser is implemented by games that want press and release edges
// from the keyboard.
type keyReleaser interface {
	KeyRelease() time.Duration
}

// resizer is implemented by games that accept a new viewport between sessions.
type resizer interface {
	Resize(cols, rows int)
}

// Options configures a game model.
type Options struct {
	Runtime core.RuntimeConfig
	Store   ScoreStore
	Sound   SoundPlayer
	Logger  *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// GameModel is the Bubble Tea model for one playable variant.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	opts     Options
	config   core.RuntimeConfig
	log      *log.Logger
	keys     GameKeyMap
	help     help.Model
	hold     holdTracker
	input    core.InputFrame
	state    core.GameState
	lastTick time.Time
	loop     uint64
	best     int

	scoreSaved bool // score of the current session already stored
	embedded   bool // running inside SessionModel
	quitting   bool
	backToMenu bool
}

// NewGameModel resets the game for the configured screen and wraps it in a model.
// The bottom row of the screen is kept for the key help footer.
func NewGameModel(game registry.Game, opts Options) (GameModel, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Tick <= 0 {
		cfg.Tick = core.DefaultTick
	}
	if cfg.Player == "" {
		cfg.Player = storage.DefaultPlayer
	}

	rc := cfg
	rc.ScreenH = max(cfg.ScreenH-footerHeight, 1)
	if err := game.Reset(rc); err != nil {
		return GameModel{}, fmt.Errorf("reset %s: %w", game.ID(), err)
	}

	m := GameModel{
		game:   game,
		screen: core.NewScreen(rc.ScreenW, rc.ScreenH),
		opts:   opts,
		config: cfg,
		log:    opts.logger().With("game", game.ID(), "player", cfg.Player),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
		state:  game.State(),
		loop:   nextLoop(),
	}
	if kr, ok := game.(keyReleaser); ok {
		m.hold.window = kr.KeyRelease()
	}
	if opts.Store != nil {
		if best, err := opts.Store.HighScore(game.ID()); err == nil {
			m.best = best
		}
	}
	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.Tick, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		if action := MapMouse(msg); action != core.ActionNone {
			m.input.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPress:
		if m.hold.window <= 0 {
			m.input.Set(core.ActionTap)
		} else if m.hold.press(now) {
			m.input.Set(core.ActionPress)
		}

	case core.ActionRelease:
		if m.hold.release() {
			m.input.Set(core.ActionRelease)
		}

	case core.ActionRestart:
		if m.state.GameOver || m.state.Phase == core.PhaseIdle {
			m.input.Set(core.ActionRestart)
		}

	case core.ActionBack:
		// mid-flight, back pauses first
		if m.state.Phase == core.PhaseRunning && !m.state.Paused {
			m.input.Set(core.ActionPause)
			return m, nil
		}
		m.backToMenu = true
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}

	case core.ActionPause:
		m.input.Set(core.ActionPause)
	}

	return m, nil
}

// handleResize processes window resize events. The game picks up the new
// size when the next session starts.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := max(msg.Height-footerHeight, 1)
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, rows)
	m.help.Width = msg.Width
	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, rows)
	}
	return m, nil
}

// handleTick advances the simulation by the wall-clock time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.Tick
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.hold.expire(now) {
		m.input.Set(core.ActionRelease)
	}

	in := m.input
	m.input = core.NewInputFrame()
	// A press and release inside one tick would cancel out; keep the
	// release for the next tick so the flap lands.
	if in.Has(core.ActionPress) && in.Has(core.ActionRelease) {
		delete(in.Actions, core.ActionRelease)
		m.input.Set(core.ActionRelease)
	}

	result := m.game.Step(in, dt)
	m.state = result.State

	for _, ev := range result.Events {
		m.handleEvent(ev)
	}

	if m.state.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.Tick, m.loop)
}

func (m *GameModel) handleEvent(ev core.Event) {
	if m.opts.Sound != nil {
		m.opts.Sound.Play(ev.Kind)
	}

	switch ev.Kind {
	case core.EventStarted:
		m.scoreSaved = false
		m.hold.release()
		m.log.Debug("session started")
	case core.EventPowerUpActivated, core.EventPowerUpExpired:
		m.log.Debug(ev.Kind.String(), "powerup", ev.Detail)
	case core.EventCrashed:
		m.log.Info("game over", "score", m.state.Score, "cause", ev.Detail, "ticks", m.state.Ticks)
	}
}

// saveScore stores the finished session. Zero scores are not recorded.
func (m *GameModel) saveScore() {
	if m.state.Score > m.best {
		m.best = m.state.Score
	}
	if m.opts.Store == nil || m.state.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		GameID:   m.game.ID(),
		Player:   m.config.Player,
		Score:    m.state.Score,
		PowerUps: m.state.PowerUps,
		Ticks:    m.state.Ticks,
	})
	if err != nil {
		m.log.Warn("saving score failed", "err", err)
	}
}

// saveScreenshot writes the current screen to ~/.flappy/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the playfield and the footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := fmt.Sprintf("%s  best %d", m.help.View(m.keys), max(m.best, m.state.Score))
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// State returns the game state after the latest tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// BackToMenu reports whether the player asked to leave the game.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Quitting reports whether the player asked to quit.
func (m GameModel) Quitting() bool {
	return m.quitting
}

// Run plays a single variant until the player quits.
func Run(game registry.Game, opts Options) error {
	model, err := NewGameModel(game, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
