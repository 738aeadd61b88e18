package layout

import "github.com/agiangrant/ctdlayout"

type handle = int32

const (
	rootHandle handle = 0
	noHandle   handle = -1
)

// slot links a node to its relatives in the arena.
type slot struct {
	parent handle
	first  handle
	last   handle
	next   handle
	depth  int32
}

// reset truncates the arena, keeping its storage.
func (e *Engine) reset() {
	clear(e.nodes)
	clear(e.specs)
	e.nodes = e.nodes[:0]
	e.slots = e.slots[:0]
	e.specs = e.specs[:0]
	e.entries = e.entries[:0]
	clear(e.index)
}

// build flattens the tree in pre-order and sizes the parallel slices.
func (e *Engine) build(root *ctdlayout.Node) {
	if e.index == nil {
		e.index = make(map[ctdlayout.NodeID]handle)
	}
	e.flatten(root, noHandle, 0)

	n := len(e.nodes)
	if cap(e.entries) < n {
		e.entries = make([]CacheEntry, n)
	} else {
		e.entries = e.entries[:n]
		clear(e.entries)
	}
	if cap(e.specs) < n {
		e.specs = make([]nodeSpec, n)
	} else {
		e.specs = e.specs[:n]
	}
}

func (e *Engine) flatten(n *ctdlayout.Node, parent handle, depth int32) {
	h := handle(len(e.nodes))
	e.nodes = append(e.nodes, n)
	e.index[n.ID()] = h
	e.slots = append(e.slots, slot{parent: parent, first: noHandle, last: noHandle, next: noHandle, depth: depth})

	if parent != noHandle {
		p := &e.slots[parent]
		if p.first == noHandle {
			p.first = h
		} else {
			e.slots[p.last].next = h
		}
		p.last = h
	}

	for _, child := range n.Children {
		if child != nil {
			e.flatten(child, h, depth+1)
		}
	}
}

// childCount returns the number of children of h.
func (e *Engine) childCount(h handle) int {
	count := 0
	for c := e.slots[h].first; c != noHandle; c = e.slots[c].next {
		count++
	}
	return count
}
