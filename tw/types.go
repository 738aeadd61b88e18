package tw

import (
	"github.com/agiangrant/ctdlayout/geometry"
	"github.com/agiangrant/ctdlayout/props"
)

// PartialStyle is the set of layout properties a run of classes sets.
// Nil fields were not mentioned and leave earlier values alone.
type PartialStyle struct {
	// Spacing
	PaddingTop    *float32
	PaddingRight  *float32
	PaddingBottom *float32
	PaddingLeft   *float32
	Spacing       *float32

	// Sizing
	Width     *float32
	Height    *float32
	MinWidth  *float32
	MinHeight *float32
	MaxWidth  *float32
	MaxHeight *float32

	// Flex
	FlexGrow   *float32
	FlexShrink *float32
	FlexBasis  *float32

	// Alignment, split by axis so items-* and justify-* compose
	AlignX *float32 // 0 leading, 0.5 center, 1 trailing
	AlignY *float32

	// Typography
	FontStyle *string
	FontSize  *float32

	// Images
	AspectRatio *float32

	// Overflow
	ClipToBounds    *bool
	ScrollDirection *string
}

// Merge copies every field set in p over s. Later classes win.
func (s *PartialStyle) Merge(p PartialStyle) {
	mergeFloat(&s.PaddingTop, p.PaddingTop)
	mergeFloat(&s.PaddingRight, p.PaddingRight)
	mergeFloat(&s.PaddingBottom, p.PaddingBottom)
	mergeFloat(&s.PaddingLeft, p.PaddingLeft)
	mergeFloat(&s.Spacing, p.Spacing)

	mergeFloat(&s.Width, p.Width)
	mergeFloat(&s.Height, p.Height)
	mergeFloat(&s.MinWidth, p.MinWidth)
	mergeFloat(&s.MinHeight, p.MinHeight)
	mergeFloat(&s.MaxWidth, p.MaxWidth)
	mergeFloat(&s.MaxHeight, p.MaxHeight)

	mergeFloat(&s.FlexGrow, p.FlexGrow)
	mergeFloat(&s.FlexShrink, p.FlexShrink)
	mergeFloat(&s.FlexBasis, p.FlexBasis)

	mergeFloat(&s.AlignX, p.AlignX)
	mergeFloat(&s.AlignY, p.AlignY)

	if p.FontStyle != nil {
		s.FontStyle = p.FontStyle
	}
	mergeFloat(&s.FontSize, p.FontSize)
	mergeFloat(&s.AspectRatio, p.AspectRatio)

	if p.ClipToBounds != nil {
		s.ClipToBounds = p.ClipToBounds
	}
	if p.ScrollDirection != nil {
		s.ScrollDirection = p.ScrollDirection
	}
}

func mergeFloat(dst **float32, src *float32) {
	if src != nil {
		*dst = src
	}
}

// IsEmpty reports whether no field is set.
func (s PartialStyle) IsEmpty() bool {
	return s == PartialStyle{}
}

// Properties converts the style into layout property keys. Padding sides
// that were never set stay zero once any side is set.
func (s PartialStyle) Properties() props.Properties {
	out := props.Properties{}

	if s.PaddingTop != nil || s.PaddingRight != nil || s.PaddingBottom != nil || s.PaddingLeft != nil {
		out["padding"] = props.Insets(geometry.Insets(
			deref(s.PaddingTop), deref(s.PaddingRight), deref(s.PaddingBottom), deref(s.PaddingLeft),
		))
	}

	setNumber(out, "spacing", s.Spacing)
	setNumber(out, "width", s.Width)
	setNumber(out, "height", s.Height)
	setNumber(out, "min_width", s.MinWidth)
	setNumber(out, "min_height", s.MinHeight)
	setNumber(out, "max_width", s.MaxWidth)
	setNumber(out, "max_height", s.MaxHeight)
	setNumber(out, "flex_grow", s.FlexGrow)
	setNumber(out, "flex_shrink", s.FlexShrink)
	setNumber(out, "flex_basis", s.FlexBasis)
	setNumber(out, "font_size", s.FontSize)
	setNumber(out, "aspect_ratio", s.AspectRatio)

	if s.AlignX != nil || s.AlignY != nil {
		out["alignment"] = props.String(alignmentFor(s.AlignX, s.AlignY).String())
	}
	if s.FontStyle != nil {
		out["font_style"] = props.String(*s.FontStyle)
	}
	if s.ClipToBounds != nil {
		out["clip_to_bounds"] = props.Bool(*s.ClipToBounds)
	}
	if s.ScrollDirection != nil {
		out["direction"] = props.String(*s.ScrollDirection)
	}

	return out
}

// alignmentFor combines per-axis positions into one of the nine alignments.
// An unset axis is centered.
func alignmentFor(x, y *float32) geometry.Alignment {
	col := 1
	row := 1
	if x != nil {
		col = int(*x * 2)
	}
	if y != nil {
		row = int(*y * 2)
	}

	grid := [3][3]geometry.Alignment{
		{geometry.TopLeading, geometry.Top, geometry.TopTrailing},
		{geometry.Leading, geometry.Center, geometry.Trailing},
		{geometry.BottomLeading, geometry.Bottom, geometry.BottomTrailing},
	}
	return grid[row][col]
}

func setNumber(out props.Properties, key string, v *float32) {
	if v != nil {
		out[key] = props.Number(*v)
	}
}

func deref(v *float32) float32 {
	if v == nil {
		return 0
	}
	return *v
}

func floatPtr(v float32) *float32 { return &v }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
