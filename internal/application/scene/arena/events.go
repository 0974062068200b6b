package arena

// EventKind identifies something that happened during a Step
type EventKind int

// Event kinds emitted by Step. Amount carries damage for hits, coins for
// kills and game over, and the wave number for wave events.
const (
	EventShot EventKind = iota
	EventEnemyHit
	EventEnemyKilled
	EventPlayerHurt
	EventWaveStarted
	EventWaveCleared
	EventGameOver
	EventRestart
	EventMuteToggled
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "Shot"
	case EventEnemyHit:
		return "EnemyHit"
	case EventEnemyKilled:
		return "EnemyKilled"
	case EventPlayerHurt:
		return "PlayerHurt"
	case EventWaveStarted:
		return "WaveStarted"
	case EventWaveCleared:
		return "WaveCleared"
	case EventGameOver:
		return "GameOver"
	case EventRestart:
		return "Restart"
	case EventMuteToggled:
		return "MuteToggled"
	default:
		return "Unknown"
	}
}

// Event is emitted through Scene.OnEvent.
// Amount is damage for hits, coins for kills and the wave number for wave events.
type Event struct {
	Kind   EventKind
	Amount int
	X, Y   float64
}
