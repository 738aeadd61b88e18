package ctdlayout

import (
	"sync"

	"github.com/agiangrant/ctdlayout/tw"
)

// styleCache caches parsed styles for repeated class strings.
var (
	styleCache   = make(map[string]*tw.ComputedStyles)
	styleCacheMu sync.RWMutex
)

// resolveStyles returns cached or freshly parsed styles for a class string.
func resolveStyles(classes string) *tw.ComputedStyles {
	if classes == "" {
		return nil
	}

	styleCacheMu.RLock()
	if cached, ok := styleCache[classes]; ok {
		styleCacheMu.RUnlock()
		return cached
	}
	styleCacheMu.RUnlock()

	styleCacheMu.Lock()
	defer styleCacheMu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := styleCache[classes]; ok {
		return cached
	}

	styles := tw.ParseClasses(classes)
	styleCache[classes] = &styles
	return &styles
}

// WithClasses sets Tailwind-style classes. The base (mobile) styles become
// class-derived properties; explicitly set properties still win.
func (n *Node) WithClasses(classes string) *Node {
	n.Classes = classes
	n.classProps = nil
	if styles := resolveStyles(classes); styles != nil {
		n.classProps = styles.Base.Properties()
	}
	return n
}

// ComputedStyles returns the parsed classes, or nil when the node has none.
func (n *Node) ComputedStyles() *tw.ComputedStyles {
	return resolveStyles(n.Classes)
}

// ApplyResponsive re-resolves class-derived properties for a container
// width across the whole subtree.
func (n *Node) ApplyResponsive(width float32, breakpoints tw.BreakpointConfig) {
	n.Walk(func(c *Node) bool {
		if styles := resolveStyles(c.Classes); styles != nil {
			c.classProps = styles.PropertiesForWidth(width, breakpoints)
		}
		return true
	})
}

// ClearStyleCache clears the style cache. Useful for testing or hot reload.
func ClearStyleCache() {
	styleCacheMu.Lock()
	styleCache = make(map[string]*tw.ComputedStyles)
	styleCacheMu.Unlock()
}

// StyleCacheSize returns the number of cached style entries.
func StyleCacheSize() int {
	styleCacheMu.RLock()
	defer styleCacheMu.RUnlock()
	return len(styleCache)
}
