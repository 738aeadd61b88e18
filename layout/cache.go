package layout

import "github.com/agiangrant/ctdlayout/geometry"

// Optional is a number that may be absent.
type Optional struct {
	Value float32
	Valid bool
}

// Some returns a present Optional.
func Some(v float32) Optional {
	return Optional{Value: v, Valid: true}
}

// Or returns the value, or def when absent.
func (o Optional) Or(def float32) float32 {
	if o.Valid {
		return o.Value
	}
	return def
}

// CacheEntry is the per-node layout state of one pass. Entries live in a
// slice parallel to the engine's node arena and are cleared every pass.
type CacheEntry struct {
	// Frame is zero until the position pass reaches the node.
	Frame       geometry.Rect
	ContentSize geometry.Size

	Padding   geometry.EdgeInsets
	Alignment geometry.Alignment

	FlexGrow   Optional
	FlexShrink Optional
	FlexBasis  Optional

	MinWidth  Optional
	MaxWidth  Optional
	MinHeight Optional
	MaxHeight Optional

	// ClipToBounds is set for scroll views and nodes asking to clip.
	ClipToBounds bool
	// ScrollOffset is the clamped offset of a scroll view's content.
	ScrollOffset geometry.Point

	Measured bool
}

// clampWidth applies min_width then max_width.
func (c *CacheEntry) clampWidth(w float32) float32 {
	if c.MinWidth.Valid && w < c.MinWidth.Value {
		w = c.MinWidth.Value
	}
	if c.MaxWidth.Valid && w > c.MaxWidth.Value {
		w = c.MaxWidth.Value
	}
	return w
}

// clampHeight applies min_height then max_height.
func (c *CacheEntry) clampHeight(h float32) float32 {
	if c.MinHeight.Valid && h < c.MinHeight.Value {
		h = c.MinHeight.Value
	}
	if c.MaxHeight.Valid && h > c.MaxHeight.Value {
		h = c.MaxHeight.Value
	}
	return h
}

func (c *CacheEntry) clamp(s geometry.Size) geometry.Size {
	return geometry.Size{Width: c.clampWidth(s.Width), Height: c.clampHeight(s.Height)}
}

// fit clamps to min/max and then to the available size.
func (c *CacheEntry) fit(s, available geometry.Size) geometry.Size {
	return c.clamp(s).Min(available)
}

// axis is a stack direction.
type axis uint8

const (
	vertical axis = iota
	horizontal
)

func (a axis) main(s geometry.Size) float32 {
	if a == horizontal {
		return s.Width
	}
	return s.Height
}

func (a axis) cross(s geometry.Size) float32 {
	if a == horizontal {
		return s.Height
	}
	return s.Width
}

func (a axis) size(main, cross float32) geometry.Size {
	if a == horizontal {
		return geometry.Size{Width: main, Height: cross}
	}
	return geometry.Size{Width: cross, Height: main}
}

// rect builds a frame from main and cross axis origin and extent.
func (a axis) rect(mainPos, crossPos, main, cross float32) geometry.Rect {
	if a == horizontal {
		return geometry.NewRect(mainPos, crossPos, main, cross)
	}
	return geometry.NewRect(crossPos, mainPos, cross, main)
}

func (a axis) origin(r geometry.Rect) (mainPos, crossPos float32) {
	if a == horizontal {
		return r.X, r.Y
	}
	return r.Y, r.X
}

func (a axis) clampMain(c *CacheEntry, v float32) float32 {
	if a == horizontal {
		return c.clampWidth(v)
	}
	return c.clampHeight(v)
}

func (a axis) clampCross(c *CacheEntry, v float32) float32 {
	if a == horizontal {
		return c.clampHeight(v)
	}
	return c.clampWidth(v)
}
