// Package layout turns carousel descriptors into screen rectangles.
package layout

import "github.com/iburimskiy/sliding-scale/internal/carousel"

// minHitOpacity keeps nearly faded tiles from swallowing clicks.
const minHitOpacity = 0.05

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Geometry anchors the ring on screen. Tile is the unscaled tile edge and
// Unit the pixel length of one lateral unit.
type Geometry struct {
	CenterX, CenterY float64
	Tile             float64
	Unit             float64
}

// Place returns the on-screen square of a tile with descriptor d.
func (g Geometry) Place(d carousel.Descriptor) Rect {
	size := g.Tile * d.Scale
	cx := g.CenterX + d.Lateral*g.Unit
	return Rect{X: cx - size/2, Y: g.CenterY - size/2, W: size, H: size}
}

// HitTest returns the index of the top-most visible tile under (x, y).
// items must be in paint order, back to front.
func (g Geometry) HitTest(items []carousel.Placement, x, y float64) (int, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		d := items[i].Descriptor
		if !d.Visible || d.Opacity < minHitOpacity {
			continue
		}
		if g.Place(d).Contains(x, y) {
			return items[i].Index, true
		}
	}
	return 0, false
}

// Indicators lays out n dots of the given size centred on cx along y.
func Indicators(n int, cx, y, size, gap float64) []Rect {
	total := float64(n)*size + float64(n-1)*gap
	x := cx - total/2
	out := make([]Rect, n)
	for i := range out {
		out[i] = Rect{X: x, Y: y, W: size, H: size}
		x += size + gap
	}
	return out
}

// HitRects returns the index of the first rect containing (x, y).
func HitRects(rects []Rect, x, y float64) (int, bool) {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Button is a press-then-release control. It clicks only when a pointer goes
// down and comes back up inside Rect, whether that pointer is a mouse or a
// finger.
type Button struct {
	Rect    Rect
	Hovered bool
	Pressed bool
}

// Hover records whether the cursor is over the button.
func (b *Button) Hover(x, y float64) {
	b.Hovered = b.Rect.Contains(x, y)
}

// Press arms the button when (x, y) is inside it and reports whether it was.
func (b *Button) Press(x, y float64) bool {
	hit := b.Rect.Contains(x, y)
	if hit {
		b.Pressed = true
	}
	return hit
}

// Release disarms the button and reports a click when it was armed and
// (x, y) is still inside it.
func (b *Button) Release(x, y float64) bool {
	clicked := b.Pressed && b.Rect.Contains(x, y)
	b.Pressed = false
	return clicked
}
