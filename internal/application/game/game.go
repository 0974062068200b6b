// Package game adapts a Scene to ebiten.Game and handles Scene transitions.
package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/arena/internal/application/scene"
)

const (
	// DefaultDT is the step used until SetDT is called
	DefaultDT = 1.0 / 60.0
	// MaxDT caps a single step
	MaxDT = 0.1
)

// Game implements ebiten.Game.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  int
}

// New creates a Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      DefaultDT,
	}
	g.current.OnEnter()
	return g
}

// Update steps the current scene by the fixed dt and switches scenes
// when it returns a successor.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.frames++

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// ClampDT returns the step Game actually runs with for dt. Values above
// MaxDT are clamped; non-positive and NaN values become DefaultDT.
func ClampDT(dt float64) float64 {
	switch {
	case math.IsNaN(dt) || dt <= 0:
		return DefaultDT
	case dt > MaxDT:
		return MaxDT
	default:
		return dt
	}
}

// SetDT sets the step passed to Scene.Update, clamped by ClampDT.
func (g *Game) SetDT(dt float64) {
	g.dt = ClampDT(dt)
}

// DT returns the current step
func (g *Game) DT() float64 {
	return g.dt
}

// Frames returns how many updates have completed
func (g *Game) Frames() int {
	return g.frames
}

// Scene returns the active scene
func (g *Game) Scene() scene.Scene {
	return g.current
}

// Close exits the active scene. Call it once RunGame returns.
func (g *Game) Close() {
	g.current.OnExit()
}
