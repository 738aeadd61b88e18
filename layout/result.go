package layout

import (
	"github.com/agiangrant/ctdlayout"
	"github.com/agiangrant/ctdlayout/geometry"
)

// Item is the resolved geometry of one node.
type Item struct {
	ID     ctdlayout.NodeID
	Kind   ctdlayout.Kind
	Parent ctdlayout.NodeID // zero for the root
	Depth  int

	Frame       geometry.Rect
	ContentSize geometry.Size

	// ClipsChildren is set for scroll views and nodes with clip_to_bounds.
	ClipsChildren bool
	ScrollOffset  geometry.Point

	// Clip is the intersection of the frames of every clipping ancestor.
	// It is only meaningful when Clipped is set.
	Clip    geometry.Rect
	Clipped bool
}

// Visible returns the part of the frame not clipped away by ancestors.
func (it Item) Visible() geometry.Rect {
	if !it.Clipped {
		return it.Frame
	}
	return it.Frame.Intersect(it.Clip)
}

// Result maps node IDs to resolved geometry. Items keep pre-order.
type Result struct {
	items []Item
	index map[ctdlayout.NodeID]int
}

func newResult(n int) *Result {
	return &Result{
		items: make([]Item, 0, n),
		index: make(map[ctdlayout.NodeID]int, n),
	}
}

// result copies the arena into a Result the engine no longer references.
func (e *Engine) result() *Result {
	r := newResult(len(e.nodes))

	for h, n := range e.nodes {
		entry := &e.entries[h]
		sl := e.slots[h]
		it := Item{
			ID:            n.ID(),
			Kind:          n.Kind,
			Depth:         int(sl.depth),
			Frame:         entry.Frame,
			ContentSize:   entry.ContentSize,
			ClipsChildren: entry.ClipToBounds,
			ScrollOffset:  entry.ScrollOffset,
		}

		if sl.parent != noHandle {
			parent := r.items[sl.parent]
			it.Parent = parent.ID
			it.Clip, it.Clipped = parent.Clip, parent.Clipped
			if parent.ClipsChildren {
				if it.Clipped {
					it.Clip = it.Clip.Intersect(parent.Frame)
				} else {
					it.Clip, it.Clipped = parent.Frame, true
				}
			}
		}

		r.index[it.ID] = len(r.items)
		r.items = append(r.items, it)
	}

	return r
}

// Len returns the number of nodes laid out.
func (r *Result) Len() int {
	return len(r.items)
}

// Item returns the geometry of the node with the given ID.
func (r *Result) Item(id ctdlayout.NodeID) (Item, bool) {
	i, ok := r.index[id]
	if !ok {
		return Item{}, false
	}
	return r.items[i], true
}

// Frame returns the resolved frame of a node.
func (r *Result) Frame(id ctdlayout.NodeID) (geometry.Rect, bool) {
	it, ok := r.Item(id)
	return it.Frame, ok
}

// ContentSize returns the measured size of a node.
func (r *Result) ContentSize(id ctdlayout.NodeID) (geometry.Size, bool) {
	it, ok := r.Item(id)
	return it.ContentSize, ok
}

// ClipRect returns the region a node is clipped to. It reports false when
// no ancestor clips the node.
func (r *Result) ClipRect(id ctdlayout.NodeID) (geometry.Rect, bool) {
	it, ok := r.Item(id)
	if !ok || !it.Clipped {
		return geometry.Rect{}, false
	}
	return it.Clip, true
}

// Items returns every item in pre-order.
func (r *Result) Items() []Item {
	return r.items
}

// Walk calls fn for every item in pre-order until fn returns false.
func (r *Result) Walk(fn func(Item) bool) {
	for _, it := range r.items {
		if !fn(it) {
			return
		}
	}
}

// HitTest returns the topmost node at p: the deepest node containing the
// point, preferring later siblings, ignoring regions clipped away by
// ancestors.
func (r *Result) HitTest(p geometry.Point) (ctdlayout.NodeID, bool) {
	// Reverse pre-order visits later siblings before earlier ones and
	// children before their parents.
	for i := len(r.items) - 1; i >= 0; i-- {
		it := r.items[i]
		if !it.Frame.Contains(p) {
			continue
		}
		if it.Clipped && !it.Clip.Contains(p) {
			continue
		}
		return it.ID, true
	}
	return 0, false
}
