package desktop

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestStorage(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	m, err := gdata.Open(gdata.Config{AppName: "flappy_settings_test"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return m
}

func TestSettingsDefaultsWithoutStorage(t *testing.T) {
	s, err := NewSettingsStore(nil)
	if err != nil {
		t.Fatalf("NewSettingsStore: %v", err)
	}
	got := s.Settings()
	if got.Variant != "flappy" || got.Volume != 0.6 || got.Muted {
		t.Errorf("defaults = %+v", got)
	}
	if err := s.Save(); err != nil {
		t.Errorf("Save without storage: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	m := openTestStorage(t)

	s, err := NewSettingsStore(m)
	if err != nil {
		t.Fatalf("NewSettingsStore: %v", err)
	}
	s.SetMuted(true)
	s.SetVolume(2)
	s.SetVariant("flappy-hop")
	s.RecordScore("flappy-hop", 9)
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := NewSettingsStore(m)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := reloaded.Settings()
	if !got.Muted || got.Volume != 1 || got.Variant != "flappy-hop" {
		t.Errorf("reloaded = %+v", got)
	}
	if reloaded.Best("flappy-hop") != 9 {
		t.Errorf("best = %d, want 9", reloaded.Best("flappy-hop"))
	}
}

func TestRecordScoreKeepsBest(t *testing.T) {
	s, _ := NewSettingsStore(nil)
	tests := []struct {
		score int
		want  bool
		best  int
	}{
		{0, false, 0},
		{5, true, 5},
		{3, false, 5},
		{5, false, 5},
		{8, true, 8},
	}
	for _, tt := range tests {
		if got := s.RecordScore("flappy", tt.score); got != tt.want {
			t.Errorf("RecordScore(%d) = %v, want %v", tt.score, got, tt.want)
		}
		if s.Best("flappy") != tt.best {
			t.Errorf("after %d best = %d, want %d", tt.score, s.Best("flappy"), tt.best)
		}
	}
}

func TestSettingsCopyIsDetached(t *testing.T) {
	s, _ := NewSettingsStore(nil)
	s.RecordScore("flappy", 4)
	snap := s.Settings()
	snap.Best["flappy"] = 100
	if s.Best("flappy") != 4 {
		t.Error("mutating a copy changed the store")
	}
}
