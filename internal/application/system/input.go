package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/arena/internal/domain/entity"
)

// KeyMap binds actions to keys. Any key in a list triggers the action.
type KeyMap struct {
	Up, Down, Left, Right []ebiten.Key
	Pause                 []ebiten.Key
	Shop                  []ebiten.Key
	Restart               []ebiten.Key
	Mute                  []ebiten.Key
}

// DefaultKeyMap returns WASD plus arrow keys movement
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:    []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Left:    []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:   []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Pause:   []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape},
		Shop:    []ebiten.Key{ebiten.KeySpace},
		Restart: []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter},
		Mute:    []ebiten.Key{ebiten.KeyM},
	}
}

// InputSystem reads the keyboard and mouse once per frame
type InputSystem struct {
	keys KeyMap
}

// NewInputSystem creates a new input system
func NewInputSystem(keys KeyMap) *InputSystem {
	return &InputSystem{keys: keys}
}

// InputState holds one frame of input.
// Movement and Fire are held state; the toggles are edge-triggered.
type InputState struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	MouseX int
	MouseY int
	Fire   bool

	TogglePause bool
	ToggleShop  bool
	Restart     bool
	ToggleMute  bool
}

// Directions returns the held movement keys
func (in InputState) Directions() entity.Directions {
	return entity.Directions{
		Up:    in.Up,
		Down:  in.Down,
		Left:  in.Left,
		Right: in.Right,
	}
}

// Aim returns the cursor position in arena coordinates
func (in InputState) Aim() (float64, float64) {
	return float64(in.MouseX), float64(in.MouseY)
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Up:          anyPressed(s.keys.Up),
		Down:        anyPressed(s.keys.Down),
		Left:        anyPressed(s.keys.Left),
		Right:       anyPressed(s.keys.Right),
		MouseX:      mx,
		MouseY:      my,
		Fire:        ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		TogglePause: anyJustPressed(s.keys.Pause),
		ToggleShop:  anyJustPressed(s.keys.Shop),
		Restart:     anyJustPressed(s.keys.Restart),
		ToggleMute:  anyJustPressed(s.keys.Mute),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
