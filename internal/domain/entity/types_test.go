package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	assert.True(t, r.Overlaps(Rect{X: 25, Y: 25, W: 10, H: 10}))
	assert.True(t, r.Overlaps(r))
	assert.False(t, r.Overlaps(Rect{X: 30, Y: 10, W: 5, H: 5}), "right edge touch")
	assert.False(t, r.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 10}), "top edge touch")
	assert.False(t, r.Overlaps(Rect{X: 100, Y: 100, W: 5, H: 5}))
}

func TestArena_Clamp(t *testing.T) {
	arena := Arena{Width: 200, Height: 100}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{name: "inside", x: 50, y: 50, wantX: 50, wantY: 50},
		{name: "past top-left", x: -10, y: -3, wantX: 0, wantY: 0},
		{name: "past bottom-right", x: 190, y: 95, wantX: 168, wantY: 68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := arena.Clamp(tt.x, tt.y, 32, 32)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestArena_Center(t *testing.T) {
	arena := Arena{Width: 1024, Height: 768}

	assert.Equal(t, 512.0, arena.CenterX())
	assert.Equal(t, 384.0, arena.CenterY())
}
