// Package render paints layout results into images for inspection. Frames
// are outlined with a color per depth, leaves are tinted, clipping nodes get
// a dashed border and every node is labelled with its kind. Nodes may also
// be filled with their own background color.
package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/agiangrant/ctdlayout"
	"github.com/agiangrant/ctdlayout/geometry"
	"github.com/agiangrant/ctdlayout/layout"
	"github.com/agiangrant/ctdlayout/props"
)

// Options controls how a result is painted.
type Options struct {
	// Scale multiplies every coordinate. Zero means 1.
	Scale float64
	// Labels draws each node's kind in the top-left corner of its frame.
	Labels   bool
	FontSize float64
	// ShowClipped paints the parts of frames clipped away by ancestors in
	// a faded color instead of hiding them.
	ShowClipped bool
	// Backgrounds fills the frames of the listed nodes with a 0xRRGGBBAA
	// color before their outline is drawn.
	Backgrounds map[ctdlayout.NodeID]uint32
}

// DefaultOptions returns labelled output at 1x.
func DefaultOptions() Options {
	return Options{Scale: 1, Labels: true, FontSize: 11}
}

var palette = []color.NRGBA{
	{0x1f, 0x77, 0xb4, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
}

// Renderer paints results onto a fixed-size canvas.
type Renderer struct {
	context *gg.Context
	opts    Options
	face    font.Face
}

// NewRenderer creates a renderer for a canvas of the given logical size.
func NewRenderer(size geometry.Size, opts Options) (*Renderer, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 11
	}

	w := int(math.Ceil(float64(size.Width) * opts.Scale))
	h := int(math.Ceil(float64(size.Height) * opts.Scale))
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("invalid canvas size %vx%v", size.Width, size.Height)
	}

	r := &Renderer{context: gg.NewContext(w, h), opts: opts}

	if opts.Labels {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse label font")
		}
		r.face = truetype.NewFace(f, &truetype.Options{Size: opts.FontSize})
		r.context.SetFontFace(r.face)
	}

	return r, nil
}

// Render clears the canvas and paints every item of res in pre-order, so
// children are drawn over their parents.
func (r *Renderer) Render(res *layout.Result) {
	dc := r.context
	dc.Identity()
	dc.ResetClip()
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.Scale(r.opts.Scale, r.opts.Scale)

	for _, it := range res.Items() {
		if it.Clipped && !r.opts.ShowClipped {
			vis := it.Visible()
			if vis.IsEmpty() {
				continue
			}
			r.clipTo(it.Clip)
			r.drawItem(it, 1)
			dc.ResetClip()
			continue
		}
		alpha := 1.0
		if it.Clipped && it.Visible() != it.Frame {
			alpha = 0.35
		}
		r.drawItem(it, alpha)
	}
}

func (r *Renderer) clipTo(clip geometry.Rect) {
	r.context.DrawRectangle(float64(clip.X), float64(clip.Y), float64(clip.Width), float64(clip.Height))
	r.context.Clip()
}

func (r *Renderer) drawItem(it layout.Item, alpha float64) {
	dc := r.context
	c := palette[it.Depth%len(palette)]
	x, y := float64(it.Frame.X), float64(it.Frame.Y)
	w, h := float64(it.Frame.Width), float64(it.Frame.Height)

	if bg, ok := r.opts.Backgrounds[it.ID]; ok && w > 0 && h > 0 {
		dc.SetColor(withAlpha(rgba(bg), alpha))
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
	}

	if !it.Kind.IsContainer() && w > 0 && h > 0 {
		dc.SetColor(withAlpha(c, 0.15*alpha))
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
	}

	dc.SetColor(withAlpha(c, alpha))
	dc.SetLineWidth(1 / r.opts.Scale)
	if it.ClipsChildren {
		dc.SetDash(4/r.opts.Scale, 2/r.opts.Scale)
	}
	// Half-pixel offset keeps hairlines sharp.
	dc.DrawRectangle(x+0.5/r.opts.Scale, y+0.5/r.opts.Scale, max(w-1/r.opts.Scale, 0), max(h-1/r.opts.Scale, 0))
	dc.Stroke()
	dc.SetDash()

	if r.face != nil && h >= r.opts.FontSize && w > 0 {
		dc.SetColor(withAlpha(c, alpha))
		dc.DrawStringAnchored(string(it.Kind), x+2, y+1, 0, 1)
	}
}

func rgba(c uint32) color.NRGBA {
	return color.NRGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}
}

// Backgrounds collects the background_color of every node in the tree that
// sets one, for Options.Backgrounds.
func Backgrounds(root *ctdlayout.Node) map[ctdlayout.NodeID]uint32 {
	out := make(map[ctdlayout.NodeID]uint32)
	root.Walk(func(n *ctdlayout.Node) bool {
		if c := props.ColorOr(n, "background_color", 0); c != 0 {
			out[n.ID()] = c
		}
		return true
	})
	return out
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * a))
	return c
}

// Image returns the canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// EncodePNG writes the canvas as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return errors.Wrap(r.context.EncodePNG(w), "failed to encode PNG")
}

// SavePNG writes the canvas to a PNG file.
func (r *Renderer) SavePNG(filename string) error {
	return errors.Wrapf(r.context.SavePNG(filename), "failed to save %s", filename)
}

// File renders res on a canvas of the given size and saves it as PNG.
func File(filename string, res *layout.Result, size geometry.Size, opts Options) error {
	r, err := NewRenderer(size, opts)
	if err != nil {
		return err
	}
	r.Render(res)
	return r.SavePNG(filename)
}
