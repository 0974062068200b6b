package main

import (
	"log"

	"github.com/younwookim/arena/internal/application/scene/arena"
	"github.com/younwookim/arena/internal/infrastructure/audio"
)

// effectFor maps an arena event to its sound, if it has one
func effectFor(kind arena.EventKind) (audio.Effect, bool) {
	switch kind {
	case arena.EventShot:
		return audio.EffectShot, true
	case arena.EventEnemyHit:
		return audio.EffectHit, true
	case arena.EventEnemyKilled:
		return audio.EffectKill, true
	case arena.EventPlayerHurt:
		return audio.EffectHurt, true
	case arena.EventWaveStarted:
		return audio.EffectWaveStart, true
	case arena.EventWaveCleared:
		return audio.EffectWaveClear, true
	case arena.EventGameOver:
		return audio.EffectGameOver, true
	default:
		return 0, false
	}
}

// soundHandler returns an arena.Options.OnEvent callback that plays effects on m
func soundHandler(m *audio.Manager) func(arena.Event) {
	return func(e arena.Event) {
		if e.Kind == arena.EventMuteToggled {
			log.Printf("Audio muted: %v", m.ToggleMute())
			return
		}
		if effect, ok := effectFor(e.Kind); ok {
			m.Play(effect)
		}
	}
}
