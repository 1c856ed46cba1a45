package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

// SoundManager plays game sound effects through the beep speaker
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{cfg: DefaultAudioConfig()}
}

// Initialize opens the speaker with cfg
// Returns ErrAudioDisabled when cfg turns audio off; callers treat any error as non-fatal
func (sm *SoundManager) Initialize(cfg *AudioConfig) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm.cfg = cfg
	if !cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
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

// Play starts a sound effect; tier only affects the paddle blip
func (sm *SoundManager) Play(soundType SoundType, tier int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := GetSoundEffect(soundType, tier, sm.cfg)
	if streamer == nil {
		return
	}
	speaker.Play(streamer)
}

// ToggleMute flips the mute state and returns the new state
// Muting silences sounds already playing
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Clear()
	}
	return sm.muted
}

// SetMuted sets the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// IsMuted returns the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// HandleEvent plays the sound mapped to a game event, if any
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	st, tier, ok := SoundForEvent(ev)
	if !ok {
		return
	}
	sm.Play(st, tier)
}

// SoundForEvent maps game events to sound effects
func SoundForEvent(ev event.GameEvent) (SoundType, int, bool) {
	switch ev.Type {
	case event.EventPaddleHit:
		tier := 0
		if p, ok := ev.Payload.(*event.PaddleHitPayload); ok {
			tier = p.Tier
		}
		return SoundPaddle, tier, true
	case event.EventWallBounce:
		return SoundWall, 0, true
	case event.EventScoreChanged:
		return SoundScore, 0, true
	case event.EventMatchOver:
		return SoundMatchOver, 0, true
	}
	return 0, 0, false
}
