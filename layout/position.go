package layout

import "github.com/agiangrant/ctdlayout/geometry"

// position records h's frame and places its children inside the frame
// minus padding. A node that was never measured is skipped.
func (e *Engine) position(h handle, frame geometry.Rect) {
	entry := &e.entries[h]
	if !entry.Measured {
		return
	}
	entry.Frame = frame
	inner := frame.Inset(entry.Padding)

	e.debugLog("position %s#%d (%.1f,%.1f %.1fx%.1f)",
		e.nodes[h].Kind, e.nodes[h].ID(), frame.X, frame.Y, frame.Width, frame.Height)

	switch s := e.specs[h].(type) {
	case stackSpec:
		e.positionStack(h, s, inner)
	case zstackSpec:
		e.positionZStack(h, s, inner)
	case scrollSpec:
		e.positionScroll(h, s, inner)
	case overlaySpec:
		e.positionOverlay(h, inner)
	case textSpec, buttonSpec, imageSpec, spacerSpec, dividerSpec:
		// Leaves only record their own frame.
	}
}

// positionStack places children one after another along the axis. Each
// child starts at its flex basis (or content size); free space goes to
// flex_grow and a deficit is taken back through flex_shrink, weighted by
// size. No child extends past the end of the inner frame. Across the axis
// children fill the inner frame up to their own min/max limits.
func (e *Engine) positionStack(h handle, s stackSpec, inner geometry.Rect) {
	n := e.childCount(h)
	if n == 0 {
		return
	}
	a := s.axis

	sizes := acquireSizes(n)
	defer releaseSizes(sizes)

	var total, totalGrow, totalShrink float32
	i := 0
	for c := e.slots[h].first; c != noHandle; c = e.slots[c].next {
		child := &e.entries[c]
		sizes[i] = child.FlexBasis.Or(a.main(child.ContentSize))
		total += sizes[i]
		totalGrow += max(child.FlexGrow.Or(0), 0)
		totalShrink += max(child.FlexShrink.Or(0), 0) * sizes[i]
		i++
	}

	free := a.main(inner.Size()) - total - s.spacing*float32(n-1)
	i = 0
	for c := e.slots[h].first; c != noHandle; c = e.slots[c].next {
		child := &e.entries[c]
		switch {
		case free > 0 && totalGrow > 0:
			sizes[i] += free * max(child.FlexGrow.Or(0), 0) / totalGrow
		case free < 0 && totalShrink > 0:
			share := max(child.FlexShrink.Or(0), 0) * sizes[i] / totalShrink
			sizes[i] = max(sizes[i]+free*share, 0)
		}
		sizes[i] = a.clampMain(child, sizes[i])
		i++
	}

	if free > 0 && totalGrow > 0 {
		e.debugLog("  stack grow: free=%.1f grow=%.1f", free, totalGrow)
	}

	cursor, crossPos := a.origin(inner)
	end := cursor + a.main(inner.Size())
	crossExtent := a.cross(inner.Size())
	i = 0
	for c := e.slots[h].first; c != noHandle; c = e.slots[c].next {
		size := min(sizes[i], max(end-cursor, 0))
		cross := min(a.clampCross(&e.entries[c], crossExtent), crossExtent)
		e.position(c, a.rect(min(cursor, end), crossPos, size, cross))
		cursor += size + s.spacing
		i++
	}
}

// positionOverlay places every child at the inner origin with its content
// size.
func (e *Engine) positionOverlay(h handle, inner geometry.Rect) {
	for c := e.slots[h].first; c != noHandle; c = e.slots[c].next {
		size := e.entries[c].ContentSize
		e.position(c, geometry.NewRect(inner.X, inner.Y, size.Width, size.Height))
	}
}
