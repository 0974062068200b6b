package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayerStats() PlayerStats {
	return PlayerStats{
		MaxHealth:        100,
		MaxMana:          50,
		MoveSpeed:        300,
		ManaRegen:        20,
		ProjectileCost:   5,
		ProjectileSpeed:  500,
		ProjectileDamage: 25,
	}
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(512, 384, testPlayerStats())

	require.NotNil(t, p)
	assert.Equal(t, 496.0, p.X)
	assert.Equal(t, 368.0, p.Y)
	assert.Equal(t, 512.0, p.CenterX())
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 100, p.MaxHealth)
	assert.Equal(t, 50.0, p.Mana)
	assert.True(t, p.Alive())
}

func TestPlayer_HandleInput_Speed(t *testing.T) {
	tests := []struct {
		name   string
		dirs   Directions
		moving bool
	}{
		{name: "none", dirs: Directions{}},
		{name: "up", dirs: Directions{Up: true}, moving: true},
		{name: "down", dirs: Directions{Down: true}, moving: true},
		{name: "left", dirs: Directions{Left: true}, moving: true},
		{name: "right", dirs: Directions{Right: true}, moving: true},
		{name: "up-left", dirs: Directions{Up: true, Left: true}, moving: true},
		{name: "up-right", dirs: Directions{Up: true, Right: true}, moving: true},
		{name: "down-left", dirs: Directions{Down: true, Left: true}, moving: true},
		{name: "down-right", dirs: Directions{Down: true, Right: true}, moving: true},
		{name: "up-down cancel", dirs: Directions{Up: true, Down: true}},
		{name: "all four cancel", dirs: Directions{Up: true, Down: true, Left: true, Right: true}},
		{name: "left-right cancel with up", dirs: Directions{Up: true, Left: true, Right: true}, moving: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(512, 384, testPlayerStats())

			proj := p.HandleInput(tt.dirs, 0, 0, false)

			assert.Nil(t, proj)
			speed := math.Hypot(p.VX, p.VY)
			if tt.moving {
				assert.InDelta(t, 300.0, speed, 1e-9)
			} else {
				assert.Equal(t, 0.0, speed)
			}
		})
	}
}

func TestPlayer_HandleInput_Fire(t *testing.T) {
	p := NewPlayer(512, 384, testPlayerStats())

	proj := p.HandleInput(Directions{}, 612, 384, true)

	require.NotNil(t, proj)
	assert.True(t, proj.Friendly)
	assert.InDelta(t, 500.0, proj.VX, 1e-9)
	assert.InDelta(t, 0.0, proj.VY, 1e-9)
	assert.Equal(t, 45.0, p.Mana)
}

func TestPlayer_Shoot(t *testing.T) {
	p := NewPlayer(100, 100, testPlayerStats())

	proj := p.Shoot(100, 0)

	require.NotNil(t, proj)
	assert.Equal(t, 100.0, proj.CenterX())
	assert.Equal(t, 100.0, proj.CenterY())
	assert.InDelta(t, 0.0, proj.VX, 1e-9)
	assert.InDelta(t, -500.0, proj.VY, 1e-9)
	assert.Equal(t, 25, proj.Damage)
	assert.Equal(t, 45.0, p.Mana)
}

func TestPlayer_Shoot_InsufficientMana(t *testing.T) {
	p := NewPlayer(100, 100, testPlayerStats())
	p.Mana = 4.9

	assert.Nil(t, p.Shoot(300, 300))
	assert.Nil(t, p.HandleInput(Directions{}, 300, 300, true))
	assert.Equal(t, 4.9, p.Mana)
}

func TestPlayer_Shoot_AtOwnCenter(t *testing.T) {
	p := NewPlayer(100, 100, testPlayerStats())

	assert.Nil(t, p.Shoot(100, 100))
	assert.Nil(t, p.HandleInput(Directions{}, 100, 100, true))
	assert.Equal(t, 50.0, p.Mana)
}

func TestPlayer_Update_ClampsToArena(t *testing.T) {
	arena := Arena{Width: 1024, Height: 768}
	p := NewPlayer(30, 30, testPlayerStats())
	p.HandleInput(Directions{Up: true, Left: true}, 0, 0, false)

	for i := 0; i < 60; i++ {
		p.Update(1.0/60, arena)
	}

	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 0.0, p.Y)

	p.HandleInput(Directions{Down: true, Right: true}, 0, 0, false)
	for i := 0; i < 600; i++ {
		p.Update(1.0/60, arena)
	}

	assert.Equal(t, 1024.0-PlayerSize, p.X)
	assert.Equal(t, 768.0-PlayerSize, p.Y)
}

func TestPlayer_Update_ZeroDt(t *testing.T) {
	arena := Arena{Width: 1024, Height: 768}
	p := NewPlayer(512, 384, testPlayerStats())
	p.HandleInput(Directions{Right: true}, 0, 0, false)

	p.Update(0, arena)

	assert.Equal(t, 496.0, p.X)
	assert.Equal(t, 368.0, p.Y)
}

func TestPlayer_ManaRegen(t *testing.T) {
	arena := Arena{Width: 1024, Height: 768}
	p := NewPlayer(512, 384, testPlayerStats())
	p.Mana = 10

	p.Update(0.5, arena)
	assert.InDelta(t, 20.0, p.Mana, 1e-9)

	for i := 0; i < 100; i++ {
		p.Update(0.1, arena)
		require.LessOrEqual(t, p.Mana, p.MaxMana)
	}
	assert.Equal(t, 50.0, p.Mana)
}

func TestPlayer_ManaNeverNegative(t *testing.T) {
	p := NewPlayer(512, 384, testPlayerStats())

	shots := 0
	for i := 0; i < 20; i++ {
		if p.Shoot(0, 0) != nil {
			shots++
		}
		require.GreaterOrEqual(t, p.Mana, 0.0)
	}
	assert.Equal(t, 10, shots)
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := NewPlayer(0, 0, testPlayerStats())

	p.TakeDamage(30)
	assert.Equal(t, 70, p.Health)
	assert.True(t, p.Alive())

	p.TakeDamage(100)
	assert.Equal(t, 0, p.Health)
	assert.False(t, p.Alive())

	// Dead is terminal
	p.TakeDamage(10)
	assert.Equal(t, 0, p.Health)
	assert.False(t, p.Alive())
}

func TestPlayer_Ratios(t *testing.T) {
	p := NewPlayer(0, 0, testPlayerStats())
	p.Health = 25
	p.Mana = 10

	assert.Equal(t, 0.25, p.HealthRatio())
	assert.Equal(t, 0.2, p.ManaRatio())
}
