package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/vi-pong/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a finite wave, optionally sweeping linearly to endFreq
// Used where beep's generators fall short: pitch sweeps and tones above Nyquist
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream and ends it after duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := e.totalSamples - e.position
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)

	releaseStart := e.attackSamples + e.sustainSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// effectVolume is the final gain of a sound, clamped to unity
func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return min(cfg.EffectVolumes[st]*cfg.MasterVolume, 1)
}

// paddleFrequency rises with each paddle hit, capped
func paddleFrequency(tier int) float64 {
	tier = min(max(tier, 0), parameter.PaddleSoundMaxTierFactor)
	return parameter.PaddleSoundFrequency + parameter.PaddleSoundTierStep*float64(tier)
}

// CreatePaddleSound generates a sine blip whose pitch follows the ball tier
func CreatePaddleSound(cfg *AudioConfig, tier int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := paddleFrequency(tier)

	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist for a low sample rate
		tone = NewOscillator(freq, parameter.PaddleSoundDuration, WaveSine, rate)
	}
	shaped := NewEnvelope(tone, parameter.PaddleSoundDuration, parameter.PaddleSoundAttack, parameter.PaddleSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundPaddle))
}

// squareTone returns beep's square wave cut to d
func squareTone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	tone, err := generators.SquareTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, d, WaveSquare, rate)
	}
	return beep.Take(rate.N(d), tone)
}

// CreateWallSound generates a short square tick
func CreateWallSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := squareTone(rate, parameter.WallSoundFrequency, parameter.WallSoundDuration)
	shaped := NewEnvelope(osc, parameter.WallSoundDuration, parameter.WallSoundAttack, parameter.WallSoundRelease, rate)

	// Square waves are loud at unit amplitude
	return newVolume(shaped, effectVolume(cfg, SoundWall)*0.5)
}

// CreateScoreSound generates a falling saw buzz
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.ScoreSoundFrequency*2, parameter.ScoreSoundFrequency, parameter.ScoreSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.ScoreSoundDuration, parameter.ScoreSoundAttack, parameter.ScoreSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundScore))
}

// CreateMatchOverSound generates a two-note chime
func CreateMatchOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := squareTone(rate, parameter.ChimeNote1Frequency, parameter.ChimeNote1Duration)
	n1Shaped := NewEnvelope(n1, parameter.ChimeNote1Duration, parameter.ChimeAttack, parameter.ChimeNote1Release, rate)

	n2 := squareTone(rate, parameter.ChimeNote2Frequency, parameter.ChimeNote2Duration)
	n2Shaped := NewEnvelope(n2, parameter.ChimeNote2Duration, parameter.ChimeAttack, parameter.ChimeNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	return newVolume(sequence, effectVolume(cfg, SoundMatchOver)*0.5)
}

// GetSoundEffect returns the streamer for a sound type; tier only affects the paddle blip
func GetSoundEffect(soundType SoundType, tier int, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPaddle:
		return CreatePaddleSound(cfg, tier)
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundScore:
		return CreateScoreSound(cfg)
	case SoundMatchOver:
		return CreateMatchOverSound(cfg)
	default:
		return nil
	}
}

// SoundDuration returns the nominal length of a sound
func SoundDuration(soundType SoundType) time.Duration {
	switch soundType {
	case SoundPaddle:
		return parameter.PaddleSoundDuration
	case SoundWall:
		return parameter.WallSoundDuration
	case SoundScore:
		return parameter.ScoreSoundDuration
	case SoundMatchOver:
		return parameter.ChimeNote1Duration + parameter.ChimeNote2Duration
	}
	return 0
}
