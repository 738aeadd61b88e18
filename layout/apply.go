package layout

import (
	"github.com/agiangrant/ctdlayout"
	"github.com/agiangrant/ctdlayout/props"
)

// apply writes every node's frame onto the node. Nodes the passes skipped
// get a zero frame so every node carries all four keys.
func (e *Engine) apply(withClipping bool) {
	for h, n := range e.nodes {
		entry := &e.entries[h]
		n.ApplyFrame(entry.Frame)
		if withClipping {
			n.SetOutput(ctdlayout.KeyClipToBounds, props.Bool(entry.ClipToBounds))
		}
	}
}
