package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

var testGeometry = Geometry{Width: 50, Gap: 175, MarkerRadius: 15, ViewH: 800}

func TestDetectSolidZones(t *testing.T) {
	tests := []struct {
		name      string
		actorY    float64
		obstacleX float64
		solid     bool
		crashed   bool
		cause     string
	}{
		{"inside gap", 350, 180, true, false, ""},
		{"top flush with gap", 300, 180, true, false, ""},
		{"above gap", 290, 180, true, true, CauseObstacle},
		{"bottom flush with gap", 445, 180, true, false, ""},
		{"below gap", 446, 180, true, true, CauseObstacle},
		{"touching left edge only", 100, 215, true, false, ""},
		{"walls invisible", 100, 180, false, false, ""},
		{"top boundary", 0, 1000, true, true, CauseTop},
		{"top boundary ignores invisible walls", -3, 1000, false, true, CauseTop},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actor := core.NewBox(185, tc.actorY, 30, 30)
			obstacles := []Obstacle{{X: tc.obstacleX, GapOffset: 300}}

			c := Detect(actor, obstacles, testGeometry, tc.solid)
			if c.Crashed != tc.crashed || c.Cause != tc.cause {
				t.Errorf("Detect() = %+v, expected crashed=%v cause=%q", c, tc.crashed, tc.cause)
			}
		})
	}
}

func TestDetectMarkers(t *testing.T) {
	actor := core.NewBox(185, 385, 30, 30)
	marker := Obstacle{X: 170, GapOffset: 312.5, HasPowerUp: true}

	if c := Detect(actor, []Obstacle{marker}, testGeometry, true); len(c.Markers) != 1 || c.Markers[0] != 0 {
		t.Errorf("expected marker hit, got %+v", c)
	}

	if c := Detect(actor, []Obstacle{marker}, testGeometry, false); len(c.Markers) != 1 {
		t.Error("marker detection should not depend on walls")
	}

	used := marker
	used.Consumed = true
	if c := Detect(actor, []Obstacle{used}, testGeometry, true); len(c.Markers) != 0 {
		t.Error("consumed markers should be ignored")
	}

	// Crash on the same pass suppresses activation
	wall := Obstacle{X: 170, GapOffset: 0}
	if c := Detect(actor, []Obstacle{marker, wall}, testGeometry, true); !c.Crashed || len(c.Markers) != 0 {
		t.Errorf("crash should suppress markers, got %+v", c)
	}

	// Marker zone edges are exclusive
	far := core.NewBox(185, 415, 30, 30)
	if c := Detect(far, []Obstacle{marker}, testGeometry, true); len(c.Markers) != 0 {
		t.Error("touching the zone edge should not count")
	}
}

func TestStreamSpawnBounds(t *testing.T) {
	s := NewStream(rand.New(rand.NewSource(99)), StreamConfig{
		Geometry:     testGeometry,
		ViewW:        400,
		Speed:        5,
		Spacing:      300,
		MarkerChance: 0.25,
	})

	markers := 0
	for i := 0; i < 1000; i++ {
		o := s.spawn()
		if o.X != 400 || o.Scored {
			t.Fatalf("spawned obstacle %+v", o)
		}
		if o.GapOffset < 0 || o.GapOffset >= 400 {
			t.Fatalf("gap offset %v outside [0, 400)", o.GapOffset)
		}
		if o.HasPowerUp {
			markers++
		}
	}
	if markers < 150 || markers > 350 {
		t.Errorf("%d markers in 1000 spawns, expected about 250", markers)
	}
}

func TestStreamSmallViewportNeverEmpties(t *testing.T) {
	s := NewStream(rand.New(rand.NewSource(5)), StreamConfig{
		Geometry: testGeometry,
		ViewW:    200,
		Speed:    5,
		Spacing:  300,
	})
	s.Reset()

	for i := 0; i < 500; i++ {
		s.Advance(85)
		if s.Len() == 0 || s.Len() > 3 {
			t.Fatalf("tick %d: stream length %d", i, s.Len())
		}
	}
}
