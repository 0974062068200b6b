package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/infrastructure/config"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns every sample, giving up after limit
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) <= limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return nil
}

func TestOscillator_Length(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tt.wave, testRate)

			samples := drain(t, osc, int(testRate))

			assert.Len(t, samples, testRate.N(100*time.Millisecond))
			for _, s := range samples {
				assert.GreaterOrEqual(t, s[0], -1.0)
				assert.LessOrEqual(t, s[0], 1.0)
				assert.Equal(t, s[0], s[1], "mono on both channels")
			}
			assert.NoError(t, osc.Err())
		})
	}
}

func TestOscillator_SquareValues(t *testing.T) {
	samples := drain(t, NewOscillator(220, 50*time.Millisecond, WaveSquare, testRate), int(testRate))

	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %f, want ±1", i, s[0])
		}
	}
}

func TestOscillator_DrainedReturnsFalse(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, testRate)
	drain(t, osc, int(testRate))

	n, ok := osc.Stream(make([][2]float64, 16))
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestEnvelope_Shape(t *testing.T) {
	d := 100 * time.Millisecond
	// A square wave has constant magnitude, so the envelope is visible directly
	env := NewEnvelope(NewOscillator(100, d, WaveSquare, testRate), d, 10*time.Millisecond, 20*time.Millisecond, testRate)

	samples := drain(t, env, int(testRate))
	require.Len(t, samples, testRate.N(d))

	assert.Equal(t, 0.0, math.Abs(samples[0][0]), "attack starts silent")
	assert.Equal(t, 0.0, math.Abs(samples[len(samples)-1][0]), "release ends silent")

	mid := len(samples) / 2
	assert.Equal(t, 1.0, math.Abs(samples[mid][0]), "full level between attack and release")

	attack := testRate.N(10 * time.Millisecond)
	assert.Less(t, math.Abs(samples[attack/2][0]), 1.0)
}

func TestNewVolume_Silent(t *testing.T) {
	s := newVolume(NewOscillator(440, 10*time.Millisecond, WaveSquare, testRate), 0)

	for _, sample := range drain(t, s, int(testRate)) {
		assert.Equal(t, 0.0, sample[0])
	}
}

func TestSynthesize(t *testing.T) {
	for _, effect := range Effects {
		t.Run(effect.String(), func(t *testing.T) {
			s := Synthesize(effect, testRate, 1)
			require.NotNil(t, s)

			samples := drain(t, s, 2*int(testRate))
			assert.NotEmpty(t, samples)
			for _, sample := range samples {
				assert.LessOrEqual(t, math.Abs(sample[0]), 1.0)
			}
		})
	}
}

func TestSynthesize_Unknown(t *testing.T) {
	assert.Nil(t, Synthesize(Effect(99), testRate, 1))
	assert.Equal(t, "Unknown", Effect(99).String())
}

func TestNewManager(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.AudioConfig
		wantRate   beep.SampleRate
		wantVolume float64
	}{
		{"configured", config.AudioConfig{Enabled: true, MasterVolume: 0.4, SampleRate: 48000}, 48000, 0.4},
		{"default rate", config.AudioConfig{Enabled: true, MasterVolume: 0.5}, DefaultSampleRate, 0.5},
		{"volume clamped", config.AudioConfig{MasterVolume: 3}, DefaultSampleRate, 1},
		{"negative volume", config.AudioConfig{MasterVolume: -1}, DefaultSampleRate, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.cfg)
			assert.Equal(t, tt.wantRate, m.SampleRate())
			assert.Equal(t, tt.wantVolume, m.volume)
			assert.False(t, m.Active())
		})
	}
}

func TestManager_Disabled(t *testing.T) {
	m := NewManager(config.AudioConfig{Enabled: false, SampleRate: 44100})

	require.NoError(t, m.Initialize())
	assert.False(t, m.Active())

	// No speaker: these must be no-ops
	m.Play(EffectShot)
	m.Close()
	assert.Equal(t, 0, m.mixer.Len())
}

func TestManager_ToggleMute(t *testing.T) {
	m := NewManager(config.AudioConfig{})

	assert.False(t, m.Muted())
	assert.True(t, m.ToggleMute())
	assert.True(t, m.Muted())
	assert.False(t, m.ToggleMute())
}
