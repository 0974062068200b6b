package entity

// Rect is an axis-aligned rectangle in pixels
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rectangles intersect
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Arena is the fixed-bounds play field. The origin is the top-left corner.
type Arena struct {
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the arena
func (a Arena) CenterX() float64 {
	return a.Width / 2
}

// CenterY returns the vertical center of the arena
func (a Arena) CenterY() float64 {
	return a.Height / 2
}

// Clamp keeps a w*h box at (x, y) fully inside the arena
func (a Arena) Clamp(x, y, w, h float64) (float64, float64) {
	return clamp(x, 0, a.Width-w), clamp(y, 0, a.Height-h)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
