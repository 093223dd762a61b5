package desktop

import (
	"testing"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

type recordingSound struct {
	played []core.EventKind
	muted  bool
}

func (s *recordingSound) Play(kind core.EventKind) { s.played = append(s.played, kind) }
func (s *recordingSound) SetMuted(muted bool)      { s.muted = muted }

func TestPointerFrame(t *testing.T) {
	tests := []struct {
		name      string
		p         pointerState
		carry     bool
		want      []core.Action
		carryNext bool
	}{
		{"idle", pointerState{}, false, nil, false},
		{"press", pointerState{pressed: true}, false, []core.Action{core.ActionPress}, false},
		{"release", pointerState{released: true}, false, []core.Action{core.ActionRelease}, false},
		{"tap defers release", pointerState{pressed: true, released: true}, false, []core.Action{core.ActionPress}, true},
		{"carried release", pointerState{}, true, []core.Action{core.ActionRelease}, false},
		{"press beats carry", pointerState{pressed: true}, true, []core.Action{core.ActionPress}, false},
		{"pause and restart", pointerState{pause: true, restart: true}, false, []core.Action{core.ActionPause, core.ActionRestart}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, carry := tt.p.frame(tt.carry)
			if carry != tt.carryNext {
				t.Errorf("carry = %v, want %v", carry, tt.carryNext)
			}
			if want := core.Frame(tt.want...); len(in.Actions) != len(want.Actions) {
				t.Errorf("actions = %v, want %v", in.Actions, want.Actions)
			}
			for _, a := range tt.want {
				if !in.Has(a) {
					t.Errorf("missing %v", a)
				}
			}
		})
	}
}

func TestTrailColorFades(t *testing.T) {
	faint, strong := trailColor(0.1), trailColor(1)
	if faint.A >= strong.A {
		t.Errorf("alpha %d should be below %d", faint.A, strong.A)
	}
	if c := trailColor(5); c != strong {
		t.Errorf("opacity above 1 = %v, want %v", c, strong)
	}
}

func TestScaledBoxKeepsCentre(t *testing.T) {
	b := scaledBox(core.NewBox(10, 10, 20, 40), 0.5)
	if b.W != 10 || b.H != 20 || b.X != 15 || b.Y != 20 {
		t.Errorf("scaledBox = %+v", b)
	}
}

func TestAppPlaysUntilCrash(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	sound := &recordingSound{}
	settings, _ := NewSettingsStore(nil)
	settings.SetMuted(true)

	app, err := NewApp(Options{Variant: "flappy-classic", Seed: 3, Settings: settings, Sound: sound})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	if !sound.muted {
		t.Error("saved mute flag should reach the sound player")
	}
	if w, h := app.Layout(0, 0); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("Layout = %dx%d", w, h)
	}

	app.step(core.Frame(core.ActionPress), 0)
	if app.state.Phase != core.PhaseRunning {
		t.Fatalf("phase = %v, want running", app.state.Phase)
	}
	app.step(core.Frame(core.ActionPress), 0)
	for i := 0; i < 200 && !app.state.GameOver; i++ {
		app.step(core.NewInputFrame(), 33*time.Millisecond)
	}
	if !app.state.GameOver {
		t.Fatal("holding flap should hit the ceiling")
	}
	if !app.scoreSaved {
		t.Error("game over should be recorded")
	}
	if sound.played[0] != core.EventStarted || sound.played[len(sound.played)-1] != core.EventCrashed {
		t.Errorf("played = %v", sound.played)
	}
}
