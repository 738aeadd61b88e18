// Package layout computes frames for a ctdlayout node tree: a measure pass
// (children before parents) followed by a position pass (parents before
// children), with the results written back onto the tree or returned as a
// separate Result.
package layout

import (
	"log"

	"github.com/agiangrant/ctdlayout"
	"github.com/agiangrant/ctdlayout/config"
	"github.com/agiangrant/ctdlayout/geometry"
)

// Config contains configuration for the engine
type Config struct {
	Metrics config.Metrics

	// Debug traces every measure and position step to Logger.
	Debug  bool
	Logger *log.Logger
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() Config {
	return Config{
		Metrics: config.Default(),
		Logger:  log.Default(),
	}
}

// Engine runs layout passes. An Engine keeps its arena between calls and is
// not safe for concurrent use; use one Engine per goroutine.
type Engine struct {
	cfg Config

	// Arena: nodes flattened in pre-order, with parallel slices indexed by
	// handle.
	nodes   []*ctdlayout.Node
	slots   []slot
	entries []CacheEntry
	specs   []nodeSpec

	// index maps node IDs of the current pass to their handles.
	index map[ctdlayout.NodeID]handle
}

// New creates an engine with the given configuration
func New(cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) debugLog(format string, args ...any) {
	if e.cfg.Debug {
		e.cfg.Logger.Printf(format, args...)
	}
}

// ComputeLayout measures and positions the tree inside a container of the
// given size, then writes x, y, width and height onto every node. It
// returns root.
func (e *Engine) ComputeLayout(root *ctdlayout.Node, container geometry.Size) *ctdlayout.Node {
	if e.run(root, container) {
		e.apply(false)
	}
	return root
}

// ComputeLayoutWithClipping is ComputeLayout that also writes
// clip_to_bounds onto every node.
func (e *Engine) ComputeLayoutWithClipping(root *ctdlayout.Node, container geometry.Size) *ctdlayout.Node {
	if e.run(root, container) {
		e.apply(true)
	}
	return root
}

// Layout measures and positions the tree without touching it, returning
// the resolved geometry keyed by node ID.
func (e *Engine) Layout(root *ctdlayout.Node, container geometry.Size) *Result {
	if !e.run(root, container) {
		return newResult(0)
	}
	return e.result()
}

// run performs the measure and position passes. It reports false for an
// empty tree.
func (e *Engine) run(root *ctdlayout.Node, container geometry.Size) bool {
	e.reset()
	if root == nil {
		return false
	}
	e.build(root)

	e.debugLog("layout: %d nodes in %.0fx%.0f", len(e.nodes), container.Width, container.Height)

	e.measure(rootHandle, container, measureCtx{})

	rootEntry := &e.entries[rootHandle]
	frame := geometry.RectFromSize(rootEntry.fit(container, container))
	e.position(rootHandle, frame)
	return true
}

// Entry returns the cache entry of the node with the given ID from the last
// pass.
func (e *Engine) Entry(id ctdlayout.NodeID) (CacheEntry, bool) {
	h, ok := e.index[id]
	if !ok {
		return CacheEntry{}, false
	}
	return e.entries[h], true
}
