package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/arena/internal/infrastructure/config"
)

// DefaultSampleRate is used when the config leaves sample_rate unset
const DefaultSampleRate = beep.SampleRate(44100)

// Manager plays effects through the speaker.
// Play is safe to call from the game loop while the speaker goroutine streams.
type Manager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	enabled     bool
	muted       bool
	initialized bool

	mixer  *beep.Mixer
	master *effects.Volume
}

// NewManager creates a manager from the audio config. Nothing is played
// until Initialize succeeds.
func NewManager(cfg config.AudioConfig) *Manager {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = DefaultSampleRate
	}

	mixer := &beep.Mixer{}
	return &Manager{
		rate:    rate,
		volume:  min(max(cfg.MasterVolume, 0), 1),
		enabled: cfg.Enabled,
		mixer:   mixer,
		master:  &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Initialize opens the speaker. A disabled manager stays silent and returns nil.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !m.enabled {
		return nil
	}

	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		m.enabled = false
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(m.master)
	m.initialized = true
	log.Printf("Audio initialized: %d Hz, volume %.2f", m.rate, m.volume)
	return nil
}

// Play starts effect. It does nothing before Initialize or while muted.
func (m *Manager) Play(effect Effect) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	s := Synthesize(effect, m.rate, m.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips the mute flag and returns the new value
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = !m.muted
	if m.initialized {
		speaker.Lock()
		m.master.Silent = m.muted
		if m.muted {
			m.mixer.Clear()
		}
		speaker.Unlock()
	}
	return m.muted
}

// Muted reports whether output is muted
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Active reports whether the speaker is open
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// SampleRate returns the output sample rate
func (m *Manager) SampleRate() beep.SampleRate {
	return m.rate
}

// Close drops queued effects and disables the manager for good
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
	m.enabled = false
}
