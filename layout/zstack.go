package layout

import (
	"github.com/agiangrant/ctdlayout"
	"github.com/agiangrant/ctdlayout/geometry"
)

// measureZStack takes the element-wise maximum of the children. Padding and
// edge insets are removed before measuring and added back afterwards.
func (e *Engine) measureZStack(h handle, s zstackSpec, available geometry.Size) geometry.Size {
	entry := &e.entries[h]
	insets := entry.Padding.Add(s.edgeInsets)
	inner := available.Inset(insets)
	ctx := measureCtx{parent: ctdlayout.KindZStack}

	var size geometry.Size
	for c := e.slots[h].first; c != noHandle; c = e.slots[c].next {
		size = size.Max(e.measure(c, inner, ctx))
	}

	return entry.clamp(size).Outset(insets)
}

// positionZStack anchors every child at its content size inside the
// content frame. Children may overlap and overflow.
func (e *Engine) positionZStack(h handle, s zstackSpec, inner geometry.Rect) {
	content := inner.Inset(s.edgeInsets)
	align := e.entries[h].Alignment

	for c := e.slots[h].first; c != noHandle; c = e.slots[c].next {
		size := e.entries[c].ContentSize
		origin := align.Origin(content, size)
		e.position(c, geometry.NewRect(origin.X, origin.Y, size.Width, size.Height))
	}
}
