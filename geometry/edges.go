package geometry

// EdgeInsets is a per-side inward offset, in CSS order.
type EdgeInsets struct {
	Top, Right, Bottom, Left float32
}

// Insets creates EdgeInsets following CSS order: top, right, bottom, left.
func Insets(top, right, bottom, left float32) EdgeInsets {
	return EdgeInsets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// UniformInsets creates EdgeInsets with the same value on all sides.
func UniformInsets(n float32) EdgeInsets {
	return EdgeInsets{Top: n, Right: n, Bottom: n, Left: n}
}

// SymmetricInsets creates EdgeInsets with vertical (top/bottom) and
// horizontal (left/right) values.
func SymmetricInsets(v, h float32) EdgeInsets {
	return EdgeInsets{Top: v, Right: h, Bottom: v, Left: h}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float32 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float32 {
	return e.Top + e.Bottom
}

// IsZero returns true if all sides are zero.
func (e EdgeInsets) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// Add returns the per-side sum of two insets.
func (e EdgeInsets) Add(o EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Top:    e.Top + o.Top,
		Right:  e.Right + o.Right,
		Bottom: e.Bottom + o.Bottom,
		Left:   e.Left + o.Left,
	}
}
