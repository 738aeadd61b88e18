// Package geometry holds the value types the layout engine computes with:
// rectangles, sizes, points, edge insets and nine-point alignment.
package geometry

// Rect is a frame in root-relative pixel coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromSize returns a Rect at the origin with the given size.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// ZeroRect returns the empty rect at the origin.
func ZeroRect() Rect {
	return Rect{}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions of the rect.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// MidX returns the horizontal center.
func (r Rect) MidX() float32 {
	return r.X + r.Width/2
}

// MidY returns the vertical center.
func (r Rect) MidY() float32 {
	return r.Y + r.Height/2
}

// Center returns the center point of the rect.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// IsEmpty returns true if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if p is inside the rect.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect returns true if other lies fully inside r.
// An empty other is contained by anything. The comparison allows for
// float32 rounding in accumulated positions.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	const eps = 1e-3
	return other.X >= r.X-eps && other.Y >= r.Y-eps &&
		other.Right() <= r.Right()+eps && other.Bottom() <= r.Bottom()+eps
}

// Inset returns a new Rect shrunk by the given insets.
// Width and height never go below zero.
func (r Rect) Inset(e EdgeInsets) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  max(r.Width-e.Horizontal(), 0),
		Height: max(r.Height-e.Vertical(), 0),
	}
}

// Outset returns a new Rect expanded outward by the given insets.
func (r Rect) Outset(e EdgeInsets) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Horizontal(),
		Height: r.Height + e.Vertical(),
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the overlap of two rects, or the zero Rect if they
// don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Union returns the smallest rect containing both rects.
// If either rect is empty, returns the other.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}
