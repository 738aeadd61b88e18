package layout

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/agiangrant/ctdlayout"
	"github.com/agiangrant/ctdlayout/geometry"
)

// charCount counts characters after NFC composition, so a base letter with
// a combining accent counts once.
func charCount(s string) float32 {
	return float32(utf8.RuneCountInString(norm.NFC.String(s)))
}

// measureText uses the fixed character-width model. Height is one line;
// embedded newlines are not measured.
func (e *Engine) measureText(h handle, s textSpec, available geometry.Size) geometry.Size {
	entry := &e.entries[h]

	scale := float32(1)
	if s.fontSize.Valid && s.style.FontSize > 0 {
		scale = s.fontSize.Value / s.style.FontSize
	}

	size := geometry.Size{
		Width:  charCount(s.content) * s.style.CharWidth * scale,
		Height: s.style.LineHeight,
	}
	return entry.fit(size.Outset(entry.Padding), available)
}

func (e *Engine) measureButton(h handle, s buttonSpec, available geometry.Size) geometry.Size {
	entry := &e.entries[h]
	ratio := s.fontSize / buttonBaseFontSize

	textWidth := charCount(s.label) * s.preset.CharWidth * ratio
	width := textWidth + 2*s.preset.HorizontalPadding
	if s.hasIcon {
		width += 0.6 * s.preset.BaseHeight
	}
	width = min(entry.clampWidth(width), available.Width)

	if s.loading {
		if s.hideText {
			width = max(s.indicator+16, textWidth)
		} else {
			width += s.indicator + 8
		}
		width = min(entry.clampWidth(width), available.Width)
	}

	height := s.fixedHeight.Or(s.preset.BaseHeight * ratio)
	height = min(entry.clampHeight(height), available.Height)

	return geometry.Size{Width: width, Height: height}
}

// measureImage resolves the size from whichever of width, height and
// aspect_ratio (width / height) are set.
func (e *Engine) measureImage(h handle, s imageSpec, available geometry.Size) geometry.Size {
	entry := &e.entries[h]
	w, ht, ratio := s.width, s.height, s.aspectRatio

	var size geometry.Size
	switch {
	case w.Valid && ht.Valid:
		size = geometry.NewSize(w.Value, ht.Value)
	case w.Valid && ratio.Valid:
		size = geometry.NewSize(w.Value, w.Value/ratio.Value)
	case ht.Valid && ratio.Valid:
		size = geometry.NewSize(ht.Value*ratio.Value, ht.Value)
	case w.Valid:
		size = geometry.Square(w.Value)
	case ht.Valid:
		size = geometry.Square(ht.Value)
	case ratio.Valid:
		w := bounded(available.Width)
		size = geometry.NewSize(w, w/ratio.Value)
	default:
		size = geometry.Square(min(available.Width, available.Height, e.cfg.Metrics.ImageDefaultSize))
	}

	return entry.fit(size, available)
}

// measureSpacer spans only its stack's axis. Outside a stack it is square.
func (e *Engine) measureSpacer(h handle, s spacerSpec, available geometry.Size, ctx measureCtx) geometry.Size {
	entry := &e.entries[h]
	length := s.size.Or(s.minLength)

	var size geometry.Size
	switch ctx.parent {
	case ctdlayout.KindVStack:
		size = geometry.NewSize(0, length)
	case ctdlayout.KindHStack:
		size = geometry.NewSize(length, 0)
	default:
		size = geometry.Square(length)
	}
	return entry.fit(size, available)
}

// measureDivider fills the available width, or the available height when
// it separates the children of an HStack.
func (e *Engine) measureDivider(h handle, s dividerSpec, available geometry.Size, ctx measureCtx) geometry.Size {
	entry := &e.entries[h]
	pad := entry.Padding

	size := geometry.NewSize(bounded(available.Width), s.thickness+pad.Vertical())
	if ctx.parent == ctdlayout.KindHStack {
		size = geometry.NewSize(s.thickness+pad.Horizontal(), bounded(available.Height))
	}
	return entry.fit(size, available)
}
