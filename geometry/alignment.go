package geometry

import "strings"

// Alignment is one of nine anchor positions inside a rect.
// The zero value is Center.
type Alignment uint8

const (
	Center Alignment = iota
	TopLeading
	Top
	TopTrailing
	Leading
	Trailing
	BottomLeading
	Bottom
	BottomTrailing
)

var alignmentNames = [...]string{
	Center:         "center",
	TopLeading:     "top_leading",
	Top:            "top",
	TopTrailing:    "top_trailing",
	Leading:        "leading",
	Trailing:       "trailing",
	BottomLeading:  "bottom_leading",
	Bottom:         "bottom",
	BottomTrailing: "bottom_trailing",
}

// String returns the snake_case name used in property stores.
func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return "center"
}

// ParseAlignment maps a name to an Alignment. Case, '_', '-' and spaces are
// ignored, and left/right are accepted for leading/trailing, so "TopLeading",
// "top_leading" and "top-left" all resolve to TopLeading.
// Unknown names return Center and false.
func ParseAlignment(s string) (Alignment, bool) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, strings.ToLower(s))
	key = strings.ReplaceAll(key, "left", "leading")
	key = strings.ReplaceAll(key, "right", "trailing")

	switch key {
	case "center", "centre":
		return Center, true
	case "topleading":
		return TopLeading, true
	case "top":
		return Top, true
	case "toptrailing":
		return TopTrailing, true
	case "leading":
		return Leading, true
	case "trailing":
		return Trailing, true
	case "bottomleading":
		return BottomLeading, true
	case "bottom":
		return Bottom, true
	case "bottomtrailing":
		return BottomTrailing, true
	}
	return Center, false
}

// factors returns where the alignment sits on each axis:
// 0 for the leading/top edge, 0.5 for the middle, 1 for the trailing/bottom edge.
func (a Alignment) factors() (fx, fy float32) {
	switch a {
	case TopLeading:
		return 0, 0
	case Top:
		return 0.5, 0
	case TopTrailing:
		return 1, 0
	case Leading:
		return 0, 0.5
	case Trailing:
		return 1, 0.5
	case BottomLeading:
		return 0, 1
	case Bottom:
		return 0.5, 1
	case BottomTrailing:
		return 1, 1
	default:
		return 0.5, 0.5
	}
}

// Point returns the anchor point of the alignment within r.
func (a Alignment) Point(r Rect) Point {
	fx, fy := a.factors()
	return Point{X: r.X + r.Width*fx, Y: r.Y + r.Height*fy}
}

// Origin returns the top-left corner for a child of the given size anchored
// at this alignment inside r. The child's extent is subtracted in proportion
// to the anchor: none at a leading edge, half in the middle, all of it at a
// trailing edge.
func (a Alignment) Origin(r Rect, child Size) Point {
	fx, fy := a.factors()
	anchor := a.Point(r)
	return Point{X: anchor.X - child.Width*fx, Y: anchor.Y - child.Height*fy}
}
