package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// sweep is an oscillator whose pitch glides linearly from start to end.
// A constant tone has start == end.
type sweep struct {
	start, end float64
	wave       Wave
	rate       beep.SampleRate
	total      int
	pos        int
	phase      float64
	rng        *rand.Rand
}

// NewTone returns a constant-pitch tone of the given duration.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, d, wave, rate)
}

// NewSweep returns a tone gliding from one pitch to another.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start: from,
		end:   to,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
		rng:   rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.pos) / float64(s.total)
		freq := s.start + (s.end-s.start)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// decay fades a stream out exponentially with the given time constant.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	tau      float64
	pos      int
}

// NewDecay shapes s with an exponential fade so cues end without a click.
func NewDecay(s beep.Streamer, tau time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, tau: tau.Seconds()}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.pos) / float64(d.rate)
		gain := math.Exp(-t / d.tau)
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// withVolume scales s linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a short decaying tone, the building block of every cue.
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewDecay(NewTone(freq, d, wave, rate), d/2, rate)
}

// Cue builds the sound for a game event, or nil when the event is silent.
func Cue(kind core.EventKind, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch kind {
	case core.EventStarted:
		s = note(660, 60*time.Millisecond, WaveSquare, rate)
	case core.EventFlap:
		s = NewDecay(NewSweep(420, 760, 90*time.Millisecond, WaveSine, rate), 60*time.Millisecond, rate)
	case core.EventScored:
		s = beep.Seq(
			note(987.77, 70*time.Millisecond, WaveSquare, rate),
			note(1318.51, 140*time.Millisecond, WaveSquare, rate),
		)
	case core.EventPowerUpActivated:
		s = beep.Seq(
			note(523.25, 60*time.Millisecond, WaveSine, rate),
			note(659.25, 60*time.Millisecond, WaveSine, rate),
			note(783.99, 120*time.Millisecond, WaveSine, rate),
		)
	case core.EventPowerUpExpired:
		s = beep.Seq(
			note(783.99, 60*time.Millisecond, WaveSine, rate),
			note(523.25, 120*time.Millisecond, WaveSine, rate),
		)
	case core.EventCrashed:
		s = beep.Mix(
			withVolume(NewDecay(NewTone(0, 350*time.Millisecond, WaveNoise, rate), 90*time.Millisecond, rate), 0.45),
			withVolume(NewDecay(NewSweep(140, 50, 350*time.Millisecond, WaveSine, rate), 150*time.Millisecond, rate), 0.55),
		)
	default:
		return nil
	}
	return withVolume(s, volume)
}
