package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Paddle Sound
const (
	PaddleSoundFrequency     = 440.0
	PaddleSoundTierStep      = 55.0 // Hz added per ball tier
	PaddleSoundDuration      = 60 * time.Millisecond
	PaddleSoundAttack        = 2 * time.Millisecond
	PaddleSoundRelease       = 40 * time.Millisecond
	PaddleSoundMaxTierFactor = 8
)

// Wall Sound
const (
	WallSoundFrequency = 220.0
	WallSoundDuration  = 40 * time.Millisecond
	WallSoundAttack    = 2 * time.Millisecond
	WallSoundRelease   = 25 * time.Millisecond
)

// Score Sound
const (
	ScoreSoundFrequency = 110.0
	ScoreSoundDuration  = 250 * time.Millisecond
	ScoreSoundAttack    = 5 * time.Millisecond
	ScoreSoundRelease   = 150 * time.Millisecond
)

// Match Over Chime
const (
	ChimeNote1Frequency = 987.77  // B5
	ChimeNote2Frequency = 1318.51 // E6
	ChimeNote1Duration  = 120 * time.Millisecond
	ChimeNote2Duration  = 400 * time.Millisecond
	ChimeAttack         = 5 * time.Millisecond
	ChimeNote1Release   = 40 * time.Millisecond
	ChimeNote2Release   = 300 * time.Millisecond
)
