package geometry

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float32
}

// NewSize creates a Size.
func NewSize(width, height float32) Size {
	return Size{Width: width, Height: height}
}

// Square returns a Size with both sides equal to side.
func Square(side float32) Size {
	return Size{Width: side, Height: side}
}

// Inset shrinks the size by the insets, flooring each axis at zero.
func (s Size) Inset(e EdgeInsets) Size {
	return Size{
		Width:  max(s.Width-e.Horizontal(), 0),
		Height: max(s.Height-e.Vertical(), 0),
	}
}

// Outset grows the size by the insets.
func (s Size) Outset(e EdgeInsets) Size {
	return Size{Width: s.Width + e.Horizontal(), Height: s.Height + e.Vertical()}
}

// Max returns the element-wise maximum.
func (s Size) Max(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// Min returns the element-wise minimum.
func (s Size) Min(o Size) Size {
	return Size{Width: min(s.Width, o.Width), Height: min(s.Height, o.Height)}
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Point is a position in pixels.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
