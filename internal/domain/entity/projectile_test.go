package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testArena = Arena{Width: 1024, Height: 768}

func TestNewProjectile(t *testing.T) {
	p := NewProjectile(100, 200, 300, -400, 25, true)

	require.NotNil(t, p)
	assert.Equal(t, 96.0, p.X)
	assert.Equal(t, 196.0, p.Y)
	assert.Equal(t, 100.0, p.CenterX())
	assert.Equal(t, 200.0, p.CenterY())
	assert.Equal(t, float64(ProjectileSize), p.W)
	assert.Equal(t, 300.0, p.VX)
	assert.Equal(t, -400.0, p.VY)
	assert.Equal(t, 25, p.Damage)
	assert.True(t, p.Friendly)
	assert.True(t, p.Alive())
	assert.Equal(t, ProjectileLifetime, p.Lifetime)
}

func TestProjectile_Update_Moves(t *testing.T) {
	p := NewProjectile(100, 100, 500, 0, 25, true)

	p.Update(0.1, testArena)

	assert.InDelta(t, 146.0, p.X, 1e-9)
	assert.InDelta(t, 0.1, p.Age, 1e-9)
	assert.True(t, p.Alive())
}

func TestProjectile_Update_ZeroDt(t *testing.T) {
	p := NewProjectile(100, 100, 500, 500, 25, true)

	p.Update(0, testArena)

	assert.Equal(t, 96.0, p.X)
	assert.Equal(t, 96.0, p.Y)
	assert.True(t, p.Alive())
}

func TestProjectile_Lifetime(t *testing.T) {
	// Stationary so only age matters
	p := NewProjectile(500, 300, 0, 0, 10, true)

	for i := 0; i < 29; i++ {
		p.Update(0.1, testArena)
		require.True(t, p.Alive(), "alive at age %.1f", p.Age)
	}

	// age reaches 3.0 (within float error) on the 30th step; step past it to be exact
	p.Update(0.1+1e-9, testArena)
	assert.False(t, p.Alive())
}

func TestProjectile_Lifetime_ExactBoundary(t *testing.T) {
	p := NewProjectile(500, 300, 0, 0, 10, true)

	p.Update(2.999, testArena)
	assert.True(t, p.Alive())

	p.Update(0.001, testArena)
	assert.False(t, p.Alive())
}

func TestProjectile_OutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64
		vx, vy float64
		alive  bool
	}{
		{name: "inside margin left", cx: -40, cy: 300, vx: -1, alive: true},
		{name: "past left margin", cx: -60, cy: 300, vx: -1, alive: false},
		{name: "past right margin", cx: 1024 + 60, cy: 300, vx: 1, alive: false},
		{name: "past top margin", cx: 500, cy: -60, vy: -1, alive: false},
		{name: "past bottom margin", cx: 500, cy: 768 + 60, vy: 1, alive: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(tt.cx, tt.cy, tt.vx, tt.vy, 10, true)
			p.Update(0.001, testArena)
			assert.Equal(t, tt.alive, p.Alive())
		})
	}
}

func TestProjectile_DeadDoesNotMove(t *testing.T) {
	p := NewProjectile(100, 100, 500, 0, 25, true)
	p.Hit()

	p.Update(1, testArena)

	assert.Equal(t, 96.0, p.X)
	assert.False(t, p.Alive())
}
