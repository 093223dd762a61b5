package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// drain streams s to the end and returns the samples.
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return nil
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, NewTone(440, 100*time.Millisecond, WaveSine, rate), rate.N(time.Second))
	if want := rate.N(100 * time.Millisecond); len(samples) != want {
		t.Errorf("tone streamed %d samples, want %d", len(samples), want)
	}
}

func TestSquareWaveValues(t *testing.T) {
	rate := beep.SampleRate(8000)
	samples := drain(t, NewTone(200, 20*time.Millisecond, WaveSquare, rate), rate.N(time.Second))
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %f, want ±1", i, s[0])
		}
	}
}

func TestDecayFades(t *testing.T) {
	rate := beep.SampleRate(8000)
	samples := drain(t, NewDecay(NewTone(0, 200*time.Millisecond, WaveSquare, rate), 20*time.Millisecond, rate), rate.N(time.Second))
	first := math.Abs(samples[0][0])
	last := math.Abs(samples[len(samples)-1][0])
	if first != 1 {
		t.Errorf("first sample = %f, want 1", first)
	}
	if last > 0.01 {
		t.Errorf("last sample = %f, want near silence", last)
	}
}

func TestCues(t *testing.T) {
	rate := beep.SampleRate(22050)
	kinds := []core.EventKind{
		core.EventStarted,
		core.EventFlap,
		core.EventScored,
		core.EventPowerUpActivated,
		core.EventPowerUpExpired,
		core.EventCrashed,
	}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			cue := Cue(kind, rate, 0.5)
			if cue == nil {
				t.Fatal("Cue() = nil")
			}
			samples := drain(t, cue, rate.N(2*time.Second))
			if len(samples) == 0 {
				t.Fatal("cue produced no samples")
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d = %v out of range or not mono", i, s)
				}
			}
		})
	}
}

func TestMutedVolumeIsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	for i, s := range drain(t, Cue(core.EventScored, rate, 0), rate.N(time.Second)) {
		if s[0] != 0 {
			t.Fatalf("sample %d = %f, want 0", i, s[0])
		}
	}
}

func TestUninitializedManagerIsQuiet(t *testing.T) {
	sm := NewSoundManager(1)
	sm.Play(core.EventFlap)
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("Muted() = false after SetMuted(true)")
	}
	sm.Cleanup()
}
