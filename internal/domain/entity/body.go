package entity

import "math"

// Body is the positional part shared by every arena entity.
// X, Y is the top-left corner in pixels; VX, VY are pixels per second.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	dead bool
}

// NewBody creates a live body at the given top-left position
func NewBody(x, y, w, h float64) Body {
	return Body{X: x, Y: y, W: w, H: h}
}

// Alive reports whether the body is still live
func (b *Body) Alive() bool {
	return !b.dead
}

// Kill marks the body dead. There is no way back.
func (b *Body) Kill() {
	b.dead = true
}

// CenterX returns the horizontal center
func (b *Body) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical center
func (b *Body) CenterY() float64 {
	return b.Y + b.H/2
}

// Rect returns the axis-aligned bounding box
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Integrate advances the position by the current velocity.
// Non-finite velocity components are zeroed first so the position stays finite.
func (b *Body) Integrate(dt float64) {
	if !finite(b.VX) {
		b.VX = 0
	}
	if !finite(b.VY) {
		b.VY = 0
	}
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// MoveTowards points the velocity at (tx, ty) with the given speed.
// When the target is exactly the center the velocity is left as is.
func (b *Body) MoveTowards(tx, ty, speed float64) {
	dx := tx - b.CenterX()
	dy := ty - b.CenterY()
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	b.VX = dx / dist * speed
	b.VY = dy / dist * speed
}

// DistanceTo returns the center-to-center distance
func (b *Body) DistanceTo(other *Body) float64 {
	return math.Hypot(b.CenterX()-other.CenterX(), b.CenterY()-other.CenterY())
}

// CollidesWith reports exact AABB overlap. Touching edges do not collide.
func (b *Body) CollidesWith(other *Body) bool {
	return b.Rect().Overlaps(other.Rect())
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
