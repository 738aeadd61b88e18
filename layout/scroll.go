package layout

import (
	"math"

	"github.com/agiangrant/ctdlayout"
	"github.com/agiangrant/ctdlayout/geometry"
)

// unbounded is the available extent along a scroll view's scrolling axis.
var unbounded = float32(math.Inf(1))

// bounded returns v, or zero when v is unbounded. Nodes that fill their
// available extent collapse along an unbounded axis.
func bounded(v float32) float32 {
	if math.IsInf(float64(v), 1) {
		return 0
	}
	return v
}

// measureScroll reports the available size. The first child is measured
// with no limit along the scrolling axes and becomes the scroll content;
// further children are ignored.
func (e *Engine) measureScroll(h handle, s scrollSpec, available geometry.Size) geometry.Size {
	child := e.slots[h].first
	if child == noHandle {
		return geometry.NewSize(bounded(available.Width), bounded(available.Height))
	}

	inner := available
	if s.direction != scrollHorizontal {
		inner.Height = unbounded
	}
	if s.direction != scrollVertical {
		inner.Width = unbounded
	}
	content := e.measure(child, inner, measureCtx{parent: ctdlayout.KindScrollView})

	// A scroll view nested along its parent's scrolling axis takes its
	// content's extent there.
	size := available
	if math.IsInf(float64(size.Width), 1) {
		size.Width = content.Width
	}
	if math.IsInf(float64(size.Height), 1) {
		size.Height = content.Height
	}
	return size
}

// positionScroll places the content at the viewport origin shifted by the
// clamped scroll offset. Along the scrolling axes the content keeps its
// measured size; across them it takes the viewport's.
func (e *Engine) positionScroll(h handle, s scrollSpec, viewport geometry.Rect) {
	child := e.slots[h].first
	if child == noHandle {
		e.entries[h].ScrollOffset = geometry.Point{}
		return
	}

	measured := e.entries[child].ContentSize
	size := viewport.Size()
	if s.direction != scrollHorizontal {
		size.Height = measured.Height
	}
	if s.direction != scrollVertical {
		size.Width = measured.Width
	}

	offset := clampScrollOffset(s, size, viewport.Size())
	e.entries[h].ScrollOffset = offset

	e.position(child, geometry.NewRect(viewport.X-offset.X, viewport.Y-offset.Y, size.Width, size.Height))
}

// clampScrollOffset keeps the offset within [0, content - viewport] on the
// scrolling axes and zeroes it on the others.
func clampScrollOffset(s scrollSpec, content, viewport geometry.Size) geometry.Point {
	var off geometry.Point
	if s.direction != scrollHorizontal {
		off.Y = clampRange(s.offset.Y, 0, max(content.Height-viewport.Height, 0))
	}
	if s.direction != scrollVertical {
		off.X = clampRange(s.offset.X, 0, max(content.Width-viewport.Width, 0))
	}
	return off
}

func clampRange(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
