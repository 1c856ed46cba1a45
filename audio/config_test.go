package audio

import (
	"testing"

	"github.com/lixenwraith/vi-pong/parameter"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != parameter.AudioSampleRate {
		t.Errorf("Expected default sample rate %d, got %d", parameter.AudioSampleRate, cfg.SampleRate)
	}
	for st := SoundPaddle; st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %s to be set", st)
		}
	}
}

func TestLoadAudioConfig(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *AudioConfig)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			check: func(t *testing.T, cfg *AudioConfig) {
				def := DefaultAudioConfig()
				if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
					t.Errorf("Expected defaults, got %+v", cfg)
				}
			},
		},
		{
			name: "disabled",
			env:  map[string]string{EnvAudioEnabled: "false"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.Enabled {
					t.Error("Expected Enabled=false")
				}
			},
		},
		{
			name: "bad bool keeps default",
			env:  map[string]string{EnvAudioEnabled: "maybe"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if !cfg.Enabled {
					t.Error("Expected default Enabled=true")
				}
			},
		},
		{
			name: "master volume",
			env:  map[string]string{EnvMasterVolume: "75"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.MasterVolume != 0.75 {
					t.Errorf("Expected 0.75, got %v", cfg.MasterVolume)
				}
			},
		},
		{
			name: "master volume clamped",
			env:  map[string]string{EnvMasterVolume: "250"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.MasterVolume != 1 {
					t.Errorf("Expected clamp to 1, got %v", cfg.MasterVolume)
				}
			},
		},
		{
			name: "effect volumes",
			env:  map[string]string{EnvSFXVolumes: `{"paddle":0.25,"match_over":0,"bogus":1}`},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.EffectVolumes[SoundPaddle] != 0.25 {
					t.Errorf("Expected paddle 0.25, got %v", cfg.EffectVolumes[SoundPaddle])
				}
				if cfg.EffectVolumes[SoundMatchOver] != 0 {
					t.Errorf("Expected match_over 0, got %v", cfg.EffectVolumes[SoundMatchOver])
				}
				if cfg.EffectVolumes[SoundWall] != DefaultAudioConfig().EffectVolumes[SoundWall] {
					t.Error("Expected unspecified volumes unchanged")
				}
			},
		},
		{
			name: "bad json keeps defaults",
			env:  map[string]string{EnvSFXVolumes: `{paddle`},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.EffectVolumes[SoundPaddle] != DefaultAudioConfig().EffectVolumes[SoundPaddle] {
					t.Error("Expected default paddle volume")
				}
			},
		},
		{
			name: "sample rate",
			env:  map[string]string{EnvSampleRate: "48000"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.SampleRate != 48000 {
					t.Errorf("Expected 48000, got %d", cfg.SampleRate)
				}
			},
		},
		{
			name: "non-positive sample rate ignored",
			env:  map[string]string{EnvSampleRate: "0"},
			check: func(t *testing.T, cfg *AudioConfig) {
				if cfg.SampleRate != parameter.AudioSampleRate {
					t.Errorf("Expected default rate, got %d", cfg.SampleRate)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvAudioEnabled, EnvMasterVolume, EnvSFXVolumes, EnvSampleRate} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.check(t, LoadAudioConfig())
		})
	}
}

func TestSoundTypeString(t *testing.T) {
	for st := SoundPaddle; st < soundTypeCount; st++ {
		got, ok := soundByName(st.String())
		if !ok || got != st {
			t.Errorf("Expected %s to resolve to itself, got %v ok=%v", st, got, ok)
		}
	}
	if SoundType(99).String() != "unknown" {
		t.Error("Expected unknown for out-of-range sound")
	}
}
