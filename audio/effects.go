package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/pitch-fighter/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length periodic wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
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
		case WaveTriangle:
			val = 1.0 - 4.0*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps a streamer with attack and release ramps over the given duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att = total / 2
		rel = total - att
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer with a linear volume
// math.Log2(0) is -Inf, zero volume is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone builds one enveloped note
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, parameter.ToneAttack, parameter.ToneRelease, rate)
}

// CreateWallBounceSound is a short low thud
func CreateWallBounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(parameter.WallBounceFreq, parameter.WallBounceDuration, WaveTriangle, rate)
	return newVolume(s, cfg.volumeFor(SoundWallBounce))
}

// CreateKickSound is a brighter square pulse
func CreateKickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(parameter.KickFreq, parameter.KickDuration, WaveSquare, rate)
	return newVolume(s, cfg.volumeFor(SoundKick))
}

// CreateGoalSound mixes the fundamental with an octave overtone
func CreateGoalSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := tone(parameter.GoalFreq, parameter.GoalDuration, WaveSine, rate)
	over := tone(parameter.GoalFreq*2, parameter.GoalDuration, WaveSine, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(mixed, cfg.volumeFor(SoundGoal))
}

// CreateWhistleSound is a high sine
func CreateWhistleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(parameter.WhistleFreq, parameter.WhistleDuration, WaveSine, rate)
	return newVolume(s, cfg.volumeFor(SoundWhistle))
}

// CreateGameOverSound plays a falling two-note sequence
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := tone(parameter.GameOverFreq1, parameter.GameOverDuration, WaveSquare, rate)
	n2 := tone(parameter.GameOverFreq2, parameter.GameOverDuration, WaveSquare, rate)

	return newVolume(beep.Seq(n1, n2), cfg.volumeFor(SoundGameOver))
}

// GetSoundEffect returns the streamer for the given type, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundWallBounce:
		return CreateWallBounceSound(cfg)
	case SoundKick:
		return CreateKickSound(cfg)
	case SoundGoal:
		return CreateGoalSound(cfg)
	case SoundWhistle:
		return CreateWhistleSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
