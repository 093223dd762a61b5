package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"apart horizontally", NewBox(0, 0, 10, 10), NewBox(15, 0, 10, 10), false},
		{"apart vertically", NewBox(0, 0, 10, 10), NewBox(0, 15, 10, 10), false},
		{"touching edges", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"touching bottom", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 10), false},
		{"contained", NewBox(0, 0, 20, 20), NewBox(5, 5, 5, 5), true},
		{"fractional overlap", NewBox(0, 0, 10, 10), NewBox(9.5, 9.5, 1, 1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxWithinY(t *testing.T) {
	b := NewBox(0, 100, 30, 30)

	tests := []struct {
		top, bottom float64
		expected    bool
	}{
		{100, 130, true},
		{50, 225, true},
		{100.5, 225, false},
		{0, 129.9, false},
	}

	for _, tc := range tests {
		if got := b.WithinY(tc.top, tc.bottom); got != tc.expected {
			t.Errorf("WithinY(%v, %v) = %v, expected %v", tc.top, tc.bottom, got, tc.expected)
		}
	}
}

func TestCentered(t *testing.T) {
	b := Centered(100, 50, 15)
	if b.Left() != 85 || b.Right() != 115 || b.Top() != 35 || b.Bottom() != 65 {
		t.Errorf("Centered() = %+v", b)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF should restrict to range")
	}
}
