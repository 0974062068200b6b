// Package audio synthesizes the arena's sound effects with beep.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape
type WaveType int

// Oscillator shapes
const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Effect names a synthesized sound
type Effect int

// Effects played for arena events
const (
	EffectShot Effect = iota
	EffectHit
	EffectKill
	EffectHurt
	EffectWaveStart
	EffectWaveClear
	EffectGameOver
)

func (e Effect) String() string {
	switch e {
	case EffectShot:
		return "Shot"
	case EffectHit:
		return "Hit"
	case EffectKill:
		return "Kill"
	case EffectHurt:
		return "Hurt"
	case EffectWaveStart:
		return "WaveStart"
	case EffectWaveClear:
		return "WaveClear"
	case EffectGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Effects lists every playable effect
var Effects = []Effect{EffectShot, EffectHit, EffectKill, EffectHurt, EffectWaveStart, EffectWaveClear, EffectGameOver}

type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a mono tone of the given shape duplicated on both channels
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
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

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer: s,
		attack:   min(rate.N(attack), total),
		release:  min(rate.N(release), total),
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left <= e.release {
			vol = min(vol, float64(left-1)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. vol <= 0 is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one enveloped tone
func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 3*time.Millisecond, d/2, rate)
}

// Synthesize builds a fresh streamer for effect at the given loudness, or nil for an unknown effect
func Synthesize(effect Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	var gain float64

	switch effect {
	case EffectShot:
		s, gain = note(660, 60*time.Millisecond, WaveSquare, rate), 0.2
	case EffectHit:
		s, gain = note(220, 50*time.Millisecond, WaveSaw, rate), 0.3
	case EffectKill:
		// B5 then E6
		s = beep.Seq(
			note(987.77, 70*time.Millisecond, WaveSquare, rate),
			note(1318.51, 140*time.Millisecond, WaveSquare, rate),
		)
		gain = 0.3
	case EffectHurt:
		d := 120 * time.Millisecond
		s = beep.Mix(
			newVolume(note(0, d, WaveNoise, rate), 0.6),
			newVolume(note(110, d, WaveSaw, rate), 0.4),
		)
		gain = 0.45
	case EffectWaveStart:
		s = beep.Seq(
			note(440, 90*time.Millisecond, WaveSine, rate),
			note(554.37, 90*time.Millisecond, WaveSine, rate),
			note(659.25, 160*time.Millisecond, WaveSine, rate),
		)
		gain = 0.4
	case EffectWaveClear:
		d := 400 * time.Millisecond
		s = beep.Mix(
			newVolume(note(880, d, WaveSine, rate), 0.7),
			newVolume(note(1760, d/2, WaveSine, rate), 0.3),
		)
		gain = 0.4
	case EffectGameOver:
		s = beep.Seq(
			note(392, 200*time.Millisecond, WaveSine, rate),
			note(329.63, 200*time.Millisecond, WaveSine, rate),
			note(261.63, 400*time.Millisecond, WaveSine, rate),
		)
		gain = 0.5
	default:
		return nil
	}

	return newVolume(s, gain*volume)
}
