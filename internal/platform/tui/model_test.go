package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// fakeGame records every Step call and reports whatever state the test sets.
type fakeGame struct {
	release time.Duration
	inputs  []core.InputFrame
	dts     []time.Duration
	next    core.StepResult
	resets  int
	resized [2]int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Description() string { return "records input" }
func (g *fakeGame) Reset(core.RuntimeConfig) error { g.resets++; return nil }
func (g *fakeGame) Render(dst *core.Screen) { dst.Clear() }
func (g *fakeGame) State() core.GameState { return g.next.State }
func (g *fakeGame) KeyRelease() time.Duration { return g.release }
func (g *fakeGame) Resize(cols, rows int) { g.resized = [2]int{cols, rows} }
func (g *fakeGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.inputs = append(g.inputs, in)
	g.dts = append(g.dts, dt)
	res := g.next
	g.next.Events = nil
	return res
}

type fakeStore struct {
	saved []storage.ScoreEntry
	best  int
}

func (s *fakeStore) SaveScore(e storage.ScoreEntry) (int64, error) {
	s.saved = append(s.saved, e)
	return int64(len(s.saved)), nil
}
func (s *fakeStore) HighScore(string) (int, error) { return s.best, nil }
func (s *fakeStore) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return s.saved, nil
}

type fakeSound struct{ played []core.EventKind }

func (s *fakeSound) Play(kind core.EventKind) { s.played = append(s.played, kind) }

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	quitKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func newTestModel(t *testing.T, g *fakeGame, opts Options) GameModel {
	t.Helper()
	opts.Runtime = core.RuntimeConfig{ScreenW: 40, ScreenH: 21, Tick: 33 * time.Millisecond, Seed: 1}
	m, err := NewGameModel(g, opts)
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}
	return m
}

func sendKey(m GameModel, msg tea.KeyMsg, now time.Time) GameModel {
	next, _ := m.handleKey(msg, now)
	return next.(GameModel)
}

func sendTick(m GameModel, now time.Time) GameModel {
	next, _ := m.Update(TickMsg{At: now, Loop: m.loop})
	return next.(GameModel)
}

func TestNewGameModelReservesFooter(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if m.screen.Height() != 20 {
		t.Errorf("screen height = %d, want 20", m.screen.Height())
	}
}

func TestHoldKeyProducesPressThenRelease(t *testing.T) {
	g := &fakeGame{release: 200 * time.Millisecond}
	m := newTestModel(t, g, Options{})
	t0 := time.Unix(1000, 0)

	m = sendKey(m, spaceKey, t0)
	m = sendTick(m, t0.Add(10*time.Millisecond))
	if !g.inputs[0].Has(core.ActionPress) {
		t.Fatal("first tick should carry the press")
	}

	// auto-repeat keeps the hold alive without new presses
	m = sendKey(m, spaceKey, t0.Add(100*time.Millisecond))
	m = sendTick(m, t0.Add(150*time.Millisecond))
	if g.inputs[1].Has(core.ActionPress) || g.inputs[1].Has(core.ActionRelease) {
		t.Errorf("repeat tick = %v, want empty", g.inputs[1].Actions)
	}

	sendTick(m, t0.Add(400*time.Millisecond))
	if !g.inputs[2].Has(core.ActionRelease) {
		t.Error("hold should expire into a release")
	}
}

func TestFallKeyReleasesHold(t *testing.T) {
	g := &fakeGame{release: time.Second}
	m := newTestModel(t, g, Options{})
	t0 := time.Unix(1000, 0)

	m = sendKey(m, spaceKey, t0)
	m = sendTick(m, t0)
	m = sendKey(m, downKey, t0.Add(10*time.Millisecond))
	sendTick(m, t0.Add(20*time.Millisecond))

	if !g.inputs[1].Has(core.ActionRelease) {
		t.Error("fall key should release the hold")
	}
}

func TestZeroWindowSendsTaps(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})
	t0 := time.Unix(1000, 0)

	m = sendKey(m, spaceKey, t0)
	m = sendTick(m, t0)
	m = sendKey(m, spaceKey, t0.Add(40*time.Millisecond))
	sendTick(m, t0.Add(50*time.Millisecond))

	for i, in := range g.inputs {
		if !in.Has(core.ActionTap) || in.Has(core.ActionPress) {
			t.Errorf("tick %d: %v, want a tap", i, in.Actions)
		}
	}
}

func TestSameTickReleaseIsDeferred(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})
	t0 := time.Unix(1000, 0)

	next, _ := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(GameModel)
	next, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionRelease})
	m = next.(GameModel)

	m = sendTick(m, t0)
	sendTick(m, t0.Add(33*time.Millisecond))

	if !g.inputs[0].Has(core.ActionPress) || g.inputs[0].Has(core.ActionRelease) {
		t.Errorf("first tick = %v, want press only", g.inputs[0].Actions)
	}
	if !g.inputs[1].Has(core.ActionRelease) {
		t.Errorf("second tick = %v, want release", g.inputs[1].Actions)
	}
}

func TestTickMeasuresWallClock(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})
	t0 := time.Unix(1000, 0)

	m = sendTick(m, t0)
	sendTick(m, t0.Add(50*time.Millisecond))

	if g.dts[0] != 33*time.Millisecond {
		t.Errorf("first dt = %v, want nominal tick", g.dts[0])
	}
	if g.dts[1] != 50*time.Millisecond {
		t.Errorf("second dt = %v, want 50ms", g.dts[1])
	}
}

func TestStaleTickIgnored(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	_, cmd := m.Update(TickMsg{At: time.Now(), Loop: m.loop + 1})
	if cmd != nil || len(g.inputs) != 0 {
		t.Error("tick from another loop should be dropped")
	}
}

func TestGameOverSavesScoreOnce(t *testing.T) {
	g := &fakeGame{}
	store := &fakeStore{}
	sound := &fakeSound{}
	m := newTestModel(t, g, Options{Store: store, Sound: sound})
	t0 := time.Unix(1000, 0)

	g.next = core.StepResult{
		State:  core.GameState{Phase: core.PhaseEnded, GameOver: true, Score: 7, PowerUps: 2, Ticks: 300},
		Events: []core.Event{{Kind: core.EventCrashed, Detail: "obstacle"}},
	}
	m = sendTick(m, t0)
	sendTick(m, t0.Add(33*time.Millisecond))

	if len(store.saved) != 1 {
		t.Fatalf("saved %d entries, want 1", len(store.saved))
	}
	e := store.saved[0]
	if e.GameID != "fake" || e.Score != 7 || e.PowerUps != 2 || e.Ticks != 300 || e.Player != storage.DefaultPlayer {
		t.Errorf("saved entry = %+v", e)
	}
	if len(sound.played) != 1 || sound.played[0] != core.EventCrashed {
		t.Errorf("played = %v, want one crash cue", sound.played)
	}
}

func TestZeroScoreNotSaved(t *testing.T) {
	g := &fakeGame{}
	store := &fakeStore{}
	m := newTestModel(t, g, Options{Store: store})

	g.next = core.StepResult{State: core.GameState{Phase: core.PhaseEnded, GameOver: true}}
	sendTick(m, time.Unix(1000, 0))

	if len(store.saved) != 0 {
		t.Errorf("saved %d entries, want 0", len(store.saved))
	}
}

func TestBackPausesMidFlight(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})
	m.state = core.GameState{Phase: core.PhaseRunning}

	next, cmd := m.handleKey(escKey, time.Now())
	if next.(GameModel).BackToMenu() || cmd != nil {
		t.Error("back must not leave mid-flight")
	}
	if !next.(GameModel).input.Has(core.ActionPause) {
		t.Error("back mid-flight should queue a pause")
	}

	m.state.Paused = true
	next, cmd = m.handleKey(escKey, time.Now())
	if !next.(GameModel).BackToMenu() {
		t.Error("back should work while paused")
	}
	if cmd == nil {
		t.Fatal("standalone back should quit the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("standalone back should return tea.Quit")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, Options{})
	next, cmd := m.handleKey(quitKey, time.Now())
	if !next.(GameModel).Quitting() || cmd == nil {
		t.Error("q should quit")
	}
	if next.(GameModel).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestResizeForwardsPlayfieldSize(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(GameModel)

	if g.resized != [2]int{100, 29} {
		t.Errorf("resized = %v, want [100 29]", g.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}
