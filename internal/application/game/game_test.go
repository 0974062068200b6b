package game

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/arena/internal/application/scene"
)

// mockScene is a test double for the Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 1024, 768)

	assert.NotNil(t, g)
	assert.Equal(t, 1, initial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Equal(t, DefaultDT, g.DT())
	assert.Same(t, initial, g.Scene())
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 1024, 768)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, initial.updateCalled)
	assert.Equal(t, DefaultDT, initial.lastDT)
	assert.Equal(t, 1, g.Frames())
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	initial := &mockScene{}
	g := New(initial, 320, 240)

	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, initial.drawCalled)
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, 1024, 768)

	w, h := g.Layout(2048, 1536)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

func TestGame_SetDT(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"30 fps", 1.0 / 30, 1.0 / 30},
		{"at cap", MaxDT, MaxDT},
		{"stalled frame is clamped", 0.5, MaxDT},
		{"zero restores default", 0, DefaultDT},
		{"negative restores default", -1, DefaultDT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &mockScene{}
			g := New(s, 320, 240)
			g.SetDT(tt.dt)

			assert.Equal(t, tt.want, g.DT())
			assert.NoError(t, g.Update())
			assert.Equal(t, tt.want, s.lastDT)
		})
	}
}

func TestClampDT(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"60 fps", 1.0 / 60, 1.0 / 60},
		{"infinite step from zero framerate", math.Inf(1), MaxDT},
		{"NaN", math.NaN(), DefaultDT},
		{"negative infinity", math.Inf(-1), DefaultDT},
		{"1 fps", 1, MaxDT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampDT(tt.dt))

			g := New(&mockScene{}, 320, 240)
			g.SetDT(tt.dt)
			assert.Equal(t, ClampDT(tt.dt), g.DT(), "SetDT runs the clamped step")
		})
	}
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}
	scene1.nextScene = scene2

	g := New(scene1, 320, 240)

	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled)
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")
	assert.Same(t, scene2, g.Scene())

	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled)
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, 320, 240)

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Equal(t, 5, scene1.updateCalled)
	assert.Equal(t, 0, scene1.onExitCalled)
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}
	g := New(scene1, 320, 240)

	err := g.Update()
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, g.Frames(), "failed updates are not counted")
}

func TestGame_Close(t *testing.T) {
	s := &mockScene{}
	g := New(s, 320, 240)

	g.Close()
	assert.Equal(t, 1, s.onExitCalled)
}
