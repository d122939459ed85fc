// Package audio plays synthesized game sounds through the system speaker
package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/game"
	"github.com/lixenwraith/vi-pong/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Sound identifies a game sound effect
type Sound uint8

const (
	SoundPaddle Sound = iota
	SoundWall
	SoundScore
	soundCount
)

func (s Sound) String() string {
	switch s {
	case SoundPaddle:
		return "paddle"
	case SoundWall:
		return "wall"
	case SoundScore:
		return "score"
	}
	return "unknown"
}

// SoundManager mixes effects into a single speaker stream
// Every method is a no-op until Initialize succeeds, so a missing audio device
// only silences the game
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool

	played [soundCount]atomic.Int64
}

// NewSoundManager creates a manager with master volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
	}
}

// Initialize opens the speaker and starts streaming the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether sounds reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play queues one sound effect
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume <= 0 {
		return
	}

	streamer := GetSoundEffect(s, sampleRate, sm.volume)
	if streamer == nil {
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()

	sm.played[s].Add(1)
}

// Played returns how many times s was queued
func (sm *SoundManager) Played(s Sound) int64 {
	if s >= soundCount {
		return 0
	}
	return sm.played[s].Load()
}

// HandleEvent plays the sound for one simulation step's events
func (sm *SoundManager) HandleEvent(ev game.Event) {
	if s, ok := soundFor(ev); ok {
		sm.Play(s)
	}
}

// soundFor picks one sound per step; a point outranks a paddle hit outranks a wall
func soundFor(ev game.Event) (Sound, bool) {
	switch {
	case ev.Scored():
		return SoundScore, true
	case ev.Has(game.EventPaddleHit):
		return SoundPaddle, true
	case ev.Has(game.EventWallBounce):
		return SoundWall, true
	}
	return 0, false
}

// Start initializes the manager, logging rather than returning failure
func Start(volume float64) *SoundManager {
	sm := NewSoundManager(volume)
	if err := sm.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	return sm
}
