package audio

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-pong/parameter"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "VI_PONG_AUDIO_ENABLED"
	EnvMasterVolume = "VI_PONG_MASTER_VOLUME"
	EnvSFXVolumes   = "VI_PONG_SFX_VOLUMES"
	EnvSampleRate   = "VI_PONG_SAMPLE_RATE"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundPaddle:    0.8,
			SoundWall:      0.5,
			SoundScore:     0.7,
			SoundMatchOver: 0.6,
		},
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are logged and the default kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		} else {
			log.Printf("audio config: %s=%q: %v", EnvAudioEnabled, enabled, err)
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		} else {
			log.Printf("audio config: %s=%q: %v", EnvMasterVolume, volume, err)
		}
	}

	// JSON object keyed by sound name, e.g. {"paddle":0.5,"wall":0}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				st, ok := soundByName(name)
				if !ok {
					log.Printf("audio config: unknown sound %q", name)
					continue
				}
				cfg.EffectVolumes[st] = min(max(v, 0), 1)
			}
		} else {
			log.Printf("audio config: %s: %v", EnvSFXVolumes, err)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		} else {
			log.Printf("audio config: %s=%q ignored", EnvSampleRate, sampleRate)
		}
	}

	return cfg
}
