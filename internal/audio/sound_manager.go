// Package audio plays the optional bounce sound effects.
package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Config controls how often bounce sounds may play.
type Config struct {
	MinInterval time.Duration
	MaxVoices   int
}

// SoundManager plays bounce tones through the speaker. The speaker is
// initialised on the first play; Cleanup stops everything.
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rng         *rand.Rand
	mixer       *beep.Mixer
	initialized bool
	failed      bool
	lastPlay    time.Time
	now         func() time.Time
	init        func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
}

// NewSoundManager creates a manager that has not touched the audio device yet.
func NewSoundManager(cfg Config, rng *rand.Rand) *SoundManager {
	if cfg.MaxVoices <= 0 {
		cfg.MaxVoices = 8
	}
	return &SoundManager{
		cfg:   cfg,
		rng:   rng,
		mixer: &beep.Mixer{},
		now:   time.Now,
		init:  speaker.Init,
		play:  speaker.Play,
	}
}

func (sm *SoundManager) ensure() bool {
	if sm.initialized {
		return true
	}
	if sm.failed {
		return false
	}
	if err := sm.init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		sm.failed = true
		return false
	}
	sm.play(sm.mixer)
	sm.initialized = true
	return true
}

// PlayBounce plays one random bounce tone unless rate-limited. It reports
// whether a tone was queued.
func (sm *SoundManager) PlayBounce() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	if !sm.lastPlay.IsZero() && now.Sub(sm.lastPlay) < sm.cfg.MinInterval {
		return false
	}
	if !sm.ensure() {
		return false
	}
	speaker.Lock()
	voices := sm.mixer.Len()
	speaker.Unlock()
	if voices >= sm.cfg.MaxVoices {
		return false
	}
	tone, err := RandomBounceTone(sm.rng, sampleRate)
	if err != nil {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(tone)
	speaker.Unlock()
	sm.lastPlay = now
	return true
}

// Failed reports whether the audio device could not be opened.
func (sm *SoundManager) Failed() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.failed
}

// Cleanup drops every queued tone.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}
