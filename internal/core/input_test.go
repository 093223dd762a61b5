package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionPress) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionPress)
	if !f.Has(ActionPress) || f.Has(ActionRelease) {
		t.Error("Set should mark only the given action")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}

	g := Frame(ActionTap, ActionPause)
	if !g.Has(ActionTap) || !g.Has(ActionPause) {
		t.Error("Frame should set every listed action")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionPress, "Press"},
		{ActionRelease, "Release"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("%d.String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}

func TestTickRate(t *testing.T) {
	tests := []struct {
		tick time.Duration
		want int
	}{
		{33 * time.Millisecond, 30},
		{50 * time.Millisecond, 20},
		{0, 30},
	}
	for _, tc := range tests {
		rc := RuntimeConfig{Tick: tc.tick}
		if got := rc.TickRate(); got != tc.want {
			t.Errorf("TickRate(%v) = %d, expected %d", tc.tick, got, tc.want)
		}
	}
}
