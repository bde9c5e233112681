// Package core holds the types shared by the game modes and the front-ends:
// the screen buffer, input frames, colors and runtime config. It has no
// terminal dependencies so game logic can be tested without one.
package core

// Rect is an area of the screen. Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w by h rect whose center is (cx, cy).
func CenteredRect(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Right() int { return r.X + r.W }

func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
