package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// GameKeyMap holds the key bindings used while a session is on screen.
type GameKeyMap struct {
	Flap    key.Binding
	Fall    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultGameKeyMap returns the standard in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space", "flap"),
		),
		Fall: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓", "fall"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Fall},
		{k.Pause, k.Restart},
		{k.Back, k.Quit},
	}
}

// MenuKeyMap holds the menu and scoreboard bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the standard menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Scores}, {k.Back, k.Quit}}
}

// MapKey translates a key message to a game action.
// Flap maps to ActionPress and Fall to ActionRelease.
func (k GameKeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Flap):
		return core.ActionPress
	case key.Matches(msg, k.Fall):
		return core.ActionRelease
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MapMouse translates a mouse event to a press or release.
// Only the left button presses; any release counts since many
// terminals do not report which button was let go.
func MapMouse(msg tea.MouseMsg) core.Action {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return core.ActionPress
		}
	case tea.MouseActionRelease:
		return core.ActionRelease
	}
	return core.ActionNone
}

// holdTracker turns terminal key events into press and release edges.
// Terminals report no key-up, so a key counts as held while auto-repeat
// keeps arriving within the release window.
type holdTracker struct {
	window   time.Duration
	held     bool
	lastSeen time.Time
}

// press records a key event and reports whether it starts a new hold.
func (h *holdTracker) press(now time.Time) bool {
	h.lastSeen = now
	if h.held {
		return false
	}
	h.held = true
	return true
}

// release ends the hold early and reports whether one was active.
func (h *holdTracker) release() bool {
	if !h.held {
		return false
	}
	h.held = false
	return true
}

// expire ends the hold once no repeat arrived for a full window.
func (h *holdTracker) expire(now time.Time) bool {
	if h.held && now.Sub(h.lastSeen) >= h.window {
		h.held = false
		return true
	}
	return false
}
