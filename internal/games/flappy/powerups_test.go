package flappy

import (
	"math/rand"
	"testing"
	"time"
)

func TestEngineExpiresAtDeadline(t *testing.T) {
	e := NewEngine(rand.New(rand.NewSource(1)), 5*time.Second)

	k, ok := e.Activate(time.Second)
	if !ok {
		t.Fatal("first activation should succeed")
	}
	if _, ok := e.Activate(2 * time.Second); ok {
		t.Error("activation while active should be refused")
	}
	if got := e.Remaining(3 * time.Second); got != 3*time.Second {
		t.Errorf("Remaining() = %v, expected 3s", got)
	}

	if _, ok := e.Expire(5999 * time.Millisecond); ok {
		t.Error("power-up expired before its deadline")
	}
	expired, ok := e.Expire(6 * time.Second)
	if !ok || expired != k {
		t.Errorf("Expire() = %v, %v; expected %v, true", expired, ok, k)
	}
	if _, active := e.Active(); active {
		t.Error("engine should be idle after expiry")
	}
}

func TestEngineUsedSetResetsWhenExhausted(t *testing.T) {
	e := NewEngine(rand.New(rand.NewSource(7)), time.Second)
	seen := make(map[Kind]bool)

	var now time.Duration
	for i := 0; i < len(Catalog); i++ {
		k, ok := e.Activate(now)
		if !ok {
			t.Fatalf("activation %d refused", i+1)
		}
		if seen[k] {
			t.Fatalf("activation %d repeated %v before the catalog was exhausted", i+1, k)
		}
		seen[k] = true
		now += time.Second
		e.Expire(now)
	}

	if got := len(e.Used()); got != len(Catalog) {
		t.Fatalf("used set has %d kinds after %d activations", got, len(Catalog))
	}

	if _, ok := e.Activate(now); !ok {
		t.Fatal("fourth activation refused")
	}
	if got := len(e.Used()); got != 1 {
		t.Errorf("used set should reset on the fourth activation, has %d", got)
	}
}

func TestEngineResetCancelsActive(t *testing.T) {
	e := NewEngine(rand.New(rand.NewSource(3)), time.Second)
	e.Activate(0)
	e.Reset()

	if _, ok := e.Active(); ok {
		t.Error("reset should cancel the active power-up")
	}
	if _, ok := e.Expire(time.Hour); ok {
		t.Error("a canceled power-up must not expire later")
	}
	if len(e.Used()) != 0 {
		t.Error("reset should clear the used set")
	}
}

func TestKindApplyRevert(t *testing.T) {
	tun := Tuning{
		DefaultSize:     Size{W: 30, H: 30},
		ShrinkFactor:    0.7,
		ReverseVelocity: -15,
		ReleaseVelocity: 10,
	}
	base := Effects{Size: tun.DefaultSize, WallsSolid: true, Velocity: 3}

	tests := []struct {
		kind     Kind
		applied  Effects
		reverted Effects
	}{
		{
			kind:     Shrink,
			applied:  Effects{Size: Size{W: 21, H: 21}, WallsSolid: true, Velocity: 3},
			reverted: base,
		},
		{
			kind:     InvisibleWalls,
			applied:  Effects{Size: tun.DefaultSize, WallsSolid: false, Velocity: 3},
			reverted: base,
		},
		{
			kind:     ReverseGravity,
			applied:  Effects{Size: tun.DefaultSize, WallsSolid: true, Velocity: -15},
			reverted: Effects{Size: tun.DefaultSize, WallsSolid: true, Velocity: 10},
		},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			applied := tc.kind.Apply(base, tun)
			if applied != tc.applied {
				t.Errorf("Apply() = %+v, expected %+v", applied, tc.applied)
			}
			if reverted := tc.kind.Revert(applied, tun); reverted != tc.reverted {
				t.Errorf("Revert() = %+v, expected %+v", reverted, tc.reverted)
			}
		})
	}
}

func TestKindNamesUnique(t *testing.T) {
	names := make(map[string]bool)
	for _, k := range Catalog {
		if names[k.String()] {
			t.Errorf("duplicate power-up name %q", k.String())
		}
		names[k.String()] = true
	}
}
