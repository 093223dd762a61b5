package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full flow: menu, game, scoreboard and back.
// It is the top-level model of the menu command and of SSH sessions.
type SessionModel struct {
	opts     Options
	view     sessionView
	menu     MenuModel
	game     GameModel
	board    ScoreboardModel
	lastGame string
	quitting bool
}

// NewSessionModel starts a session on the menu.
func NewSessionModel(opts Options) SessionModel {
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Store, opts.Runtime),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.board = NewScoreboardModel(m.opts.Store, m.lastGame, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.view = viewScores
		return m, m.board.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}

	return m, cmd
}

// startGame builds the selected variant. A failure returns to the menu
// with the error shown.
func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime)

	game, err := registry.Create(id)
	if err != nil {
		m.menu.err = err
		return m, nil
	}
	gm, err := NewGameModel(game, m.opts)
	if err != nil {
		m.opts.logger().Error("cannot start game", "game", id, "err", err)
		m.menu.err = err
		return m, nil
	}
	gm.embedded = true

	m.game = gm
	m.lastGame = id
	m.view = viewGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	if m.game.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.view = viewMenu
		m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime)
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if bm, ok := next.(ScoreboardModel); ok {
		m.board = bm
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		m.view = viewMenu
		m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime)
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.board.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
