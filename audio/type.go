package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddle    SoundType = iota // Ball hits a paddle, pitch follows tier
	SoundWall                       // Ball bounces off a wall
	SoundScore                      // Ball leaves the field
	SoundMatchOver                  // Winning score reached
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundPaddle:    "paddle",
	SoundWall:      "wall",
	SoundScore:     "score",
	SoundMatchOver: "match_over",
}

// String returns the config key of the sound
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// soundByName resolves a config key
func soundByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
