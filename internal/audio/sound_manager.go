// Package audio synthesizes short cues for game events and plays them
// through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager mixes event cues onto the speaker.
// The zero value is not usable; call NewSoundManager.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager playing cues at the given linear volume.
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		ctrl:   &beep.Ctrl{Streamer: mixer},
		volume: volume,
	}
}

// Initialize opens the speaker. It is safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// Play queues the cue for kind. It does nothing before Initialize.
func (sm *SoundManager) Play(kind core.EventKind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	cue := Cue(kind, sampleRate, sm.volume)
	if cue == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()
}

// SetMuted silences or resumes all output without dropping queued cues.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.ctrl.Paused = muted
}

// Muted reports whether output is silenced.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.ctrl.Paused
}

// Cleanup drops every queued cue and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}
