package state

// GameState represents the current state of a run
type GameState int

// Run states. Only StatePlaying simulates.
const (
	StatePlaying GameState = iota
	StatePaused
	StateShop
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateShop:
		return "Shop"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the world advances in this state.
// Paused, Shop and GameOver freeze the simulation; rendering continues.
func (s GameState) Simulating() bool {
	return s == StatePlaying
}

// IsModal reports whether an overlay is blocking play
func (s GameState) IsModal() bool {
	return s == StatePaused || s == StateShop
}
