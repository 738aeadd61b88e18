package treefile

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/agiangrant/ctdlayout/geometry"
	"github.com/agiangrant/ctdlayout/layout"
)

// FrameRecord is one laid-out node as written by EncodeResult.
type FrameRecord struct {
	ID     uint64  `json:"id"`
	Kind   string  `json:"kind"`
	Parent uint64  `json:"parent,omitempty"`
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`

	ClipToBounds bool      `json:"clip_to_bounds,omitempty"`
	Clip         *RectJSON `json:"clip,omitempty"`
	ScrollX      float32   `json:"scroll_x,omitempty"`
	ScrollY      float32   `json:"scroll_y,omitempty"`
}

// RectJSON is a rectangle in result output.
type RectJSON struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

func rectJSON(r geometry.Rect) *RectJSON {
	return &RectJSON{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Records flattens a result into pre-order records.
func Records(r *layout.Result) []FrameRecord {
	items := r.Items()
	out := make([]FrameRecord, 0, len(items))
	for _, it := range items {
		rec := FrameRecord{
			ID:           uint64(it.ID),
			Kind:         string(it.Kind),
			Parent:       uint64(it.Parent),
			X:            it.Frame.X,
			Y:            it.Frame.Y,
			Width:        it.Frame.Width,
			Height:       it.Frame.Height,
			ClipToBounds: it.ClipsChildren,
			ScrollX:      it.ScrollOffset.X,
			ScrollY:      it.ScrollOffset.Y,
		}
		if it.Clipped {
			rec.Clip = rectJSON(it.Clip)
		}
		out = append(out, rec)
	}
	return out
}

// EncodeResult writes the result as an indented JSON array in pre-order.
func EncodeResult(w io.Writer, r *layout.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(Records(r)), "failed to encode layout result")
}
