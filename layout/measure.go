package layout

import (
	"github.com/agiangrant/ctdlayout"
	"github.com/agiangrant/ctdlayout/geometry"
)

// measureCtx is what a container tells the children it measures.
type measureCtx struct {
	parent ctdlayout.Kind
}

// measure resolves h's typed properties, computes its content size against the
// available size and records both in its cache entry.
func (e *Engine) measure(h handle, available geometry.Size, ctx measureCtx) geometry.Size {
	entry := &e.entries[h]
	spec := resolve(e.nodes[h], e.cfg.Metrics, entry)
	e.specs[h] = spec

	var size geometry.Size
	switch s := spec.(type) {
	case stackSpec:
		size = e.measureStack(h, s, available)
	case zstackSpec:
		size = e.measureZStack(h, s, available)
	case scrollSpec:
		size = e.measureScroll(h, s, available)
	case textSpec:
		size = e.measureText(h, s, available)
	case buttonSpec:
		size = e.measureButton(h, s, available)
	case imageSpec:
		size = e.measureImage(h, s, available)
	case spacerSpec:
		size = e.measureSpacer(h, s, available, ctx)
	case dividerSpec:
		size = e.measureDivider(h, s, available, ctx)
	case overlaySpec:
		size = e.measureOverlay(h, available)
	}

	entry.ContentSize = size
	entry.Measured = true

	e.debugLog("measure %s#%d avail(%.1f,%.1f) -> (%.1f,%.1f)",
		e.nodes[h].Kind, e.nodes[h].ID(), available.Width, available.Height, size.Width, size.Height)
	return size
}

// measureStack sums children along the axis and takes the widest across it.
// Each child sees what is left of the inner size along the axis after the
// children before it and their spacing.
func (e *Engine) measureStack(h handle, s stackSpec, available geometry.Size) geometry.Size {
	entry := &e.entries[h]
	inner := available.Inset(entry.Padding)
	ctx := measureCtx{parent: e.nodes[h].Kind}
	remaining := s.axis.main(inner)

	var main, cross float32
	n := 0
	for c := e.slots[h].first; c != noHandle; c = e.slots[c].next {
		if n > 0 {
			main += s.spacing
			remaining = max(remaining-s.spacing, 0)
		}
		size := e.measure(c, s.axis.size(remaining, s.axis.cross(inner)), ctx)
		main += s.axis.main(size)
		remaining = max(remaining-s.axis.main(size), 0)
		cross = max(cross, s.axis.cross(size))
		n++
	}

	return entry.clamp(s.axis.size(main, cross).Outset(entry.Padding))
}

// measureOverlay stacks children at the same origin.
func (e *Engine) measureOverlay(h handle, available geometry.Size) geometry.Size {
	entry := &e.entries[h]
	inner := available.Inset(entry.Padding)
	ctx := measureCtx{parent: e.nodes[h].Kind}

	var size geometry.Size
	for c := e.slots[h].first; c != noHandle; c = e.slots[c].next {
		size = size.Max(e.measure(c, inner, ctx))
	}
	return entry.clamp(size.Outset(entry.Padding))
}
