package layout

import (
	"strings"

	"github.com/agiangrant/ctdlayout"
	"github.com/agiangrant/ctdlayout/config"
	"github.com/agiangrant/ctdlayout/geometry"
	"github.com/agiangrant/ctdlayout/props"
)

// defaultTable holds the values of absent properties that do not depend on
// the node kind or the metrics. Keys missing here default to zero, false,
// the empty string or unset.
var defaultTable = props.Properties{
	"alignment":               props.String(geometry.Center.String()),
	"font_style":              props.String("body"),
	"size_preset":             props.String("medium"),
	"loading_indicator_size":  props.Number(16),
	"thickness":               props.Number(1),
	"direction":               props.String("vertical"),
	"min_length":              props.Number(0),
	"scroll_x":                props.Number(0),
	"scroll_y":                props.Number(0),
	"is_loading":              props.Bool(false),
	"hide_text_while_loading": props.Bool(false),
	"clip_to_bounds":          props.Bool(false),
}

// buttonBaseFontSize is the font size button presets are measured at.
const buttonBaseFontSize = 16

// Defaults returns a copy of the default table.
func Defaults() props.Properties {
	return defaultTable.Clone()
}

// withDefaults falls back to the default table for absent keys.
type withDefaults struct {
	src props.Source
}

func (w withDefaults) Lookup(key string) (props.Value, bool) {
	if v, ok := w.src.Lookup(key); ok {
		return v, true
	}
	return defaultTable.Lookup(key)
}

// Typed lookups also fall back to the table when the node's value does not
// parse as the wanted type.

func (w withDefaults) float(key string, def float32) float32 {
	if n, ok := props.Float(w.src, key); ok {
		return n
	}
	return props.FloatOr(defaultTable, key, def)
}

func (w withDefaults) str(key string) string {
	return props.StringOr(w.src, key, props.StringOr(defaultTable, key, ""))
}

func (w withDefaults) boolean(key string) bool {
	return props.BoolOr(w.src, key, props.BoolOr(defaultTable, key, false))
}

// nodeSpec is the typed view of one node's properties.
type nodeSpec interface {
	isNodeSpec()
}

type stackSpec struct {
	axis           axis
	spacing        float32
	equalSpacing   bool
	layoutPriority float32
}

type zstackSpec struct {
	edgeInsets geometry.EdgeInsets
}

type textSpec struct {
	content  string
	style    config.TextStyle
	fontSize Optional
}

type buttonSpec struct {
	label       string
	preset      config.ButtonPreset
	fontSize    float32
	hasIcon     bool
	loading     bool
	hideText    bool
	indicator   float32
	fixedHeight Optional
}

type imageSpec struct {
	width, height, aspectRatio Optional
}

type scrollDirection uint8

const (
	scrollVertical scrollDirection = iota
	scrollHorizontal
	scrollBoth
)

type scrollSpec struct {
	direction scrollDirection
	offset    geometry.Point
}

type spacerSpec struct {
	size      Optional
	minLength float32
}

type dividerSpec struct {
	thickness float32
}

// overlaySpec lays out kinds the engine does not know.
type overlaySpec struct{}

func (stackSpec) isNodeSpec()   {}
func (zstackSpec) isNodeSpec()  {}
func (textSpec) isNodeSpec()    {}
func (buttonSpec) isNodeSpec()  {}
func (imageSpec) isNodeSpec()   {}
func (scrollSpec) isNodeSpec()  {}
func (spacerSpec) isNodeSpec()  {}
func (dividerSpec) isNodeSpec() {}
func (overlaySpec) isNodeSpec() {}

func optional(src props.Source, key string) Optional {
	if v := props.OptionalFloat(src, key); v != nil {
		return Some(*v)
	}
	return Optional{}
}

// positive drops zero and negative values.
func positive(o Optional) Optional {
	if o.Valid && !(o.Value > 0) {
		return Optional{}
	}
	return o
}

// resolveCommon copies the properties every kind reads into the entry.
func resolveCommon(src withDefaults, entry *CacheEntry) {
	entry.Padding = props.InsetsOr(src, "padding", geometry.EdgeInsets{})
	entry.Alignment, _ = geometry.ParseAlignment(src.str("alignment"))
	entry.FlexGrow = optional(src, "flex_grow")
	entry.FlexShrink = optional(src, "flex_shrink")
	entry.FlexBasis = optional(src, "flex_basis")
	entry.MinWidth = optional(src, "min_width")
	entry.MaxWidth = optional(src, "max_width")
	entry.MinHeight = optional(src, "min_height")
	entry.MaxHeight = optional(src, "max_height")
	entry.ClipToBounds = src.boolean("clip_to_bounds")
}

// resolve builds the typed spec for a node and fills the common part of its
// cache entry.
func resolve(n *ctdlayout.Node, m config.Metrics, entry *CacheEntry) nodeSpec {
	src := withDefaults{n.Inputs()}
	resolveCommon(src, entry)

	switch n.Kind {
	case ctdlayout.KindVStack, ctdlayout.KindHStack:
		s := stackSpec{
			axis:           vertical,
			spacing:        src.float("spacing", m.DefaultSpacing),
			equalSpacing:   src.boolean("equal_spacing"),
			layoutPriority: src.float("layout_priority", 0),
		}
		if n.Kind == ctdlayout.KindHStack {
			s.axis = horizontal
		}
		return s

	case ctdlayout.KindZStack:
		return zstackSpec{edgeInsets: props.InsetsOr(src, "edge_insets", geometry.EdgeInsets{})}

	case ctdlayout.KindText:
		return textSpec{
			content:  src.str("content"),
			style:    m.TextStyle(strings.ToLower(src.str("font_style"))),
			fontSize: positive(optional(src, "font_size")),
		}

	case ctdlayout.KindButton:
		return buttonSpec{
			label:       src.str("label"),
			preset:      m.ButtonPreset(strings.ToLower(src.str("size_preset"))),
			fontSize:    positive(optional(src, "font_size")).Or(buttonBaseFontSize),
			hasIcon:     src.str("icon") != "",
			loading:     src.boolean("is_loading"),
			hideText:    src.boolean("hide_text_while_loading"),
			indicator:   src.float("loading_indicator_size", 0),
			fixedHeight: optional(src, "fixed_height"),
		}

	case ctdlayout.KindImage:
		return imageSpec{
			width:       optional(src, "width"),
			height:      optional(src, "height"),
			aspectRatio: positive(optional(src, "aspect_ratio")),
		}

	case ctdlayout.KindScrollView:
		entry.ClipToBounds = true
		return scrollSpec{
			direction: parseScrollDirection(src.str("direction")),
			offset: geometry.Pt(
				src.float("scroll_x", 0),
				src.float("scroll_y", 0),
			),
		}

	case ctdlayout.KindSpacer:
		s := spacerSpec{
			size:      optional(src, "size"),
			minLength: src.float("min_length", 0),
		}
		if !s.size.Valid && !entry.FlexGrow.Valid {
			entry.FlexGrow = Some(1)
		}
		return s

	case ctdlayout.KindDivider:
		return dividerSpec{thickness: src.float("thickness", 0)}
	}

	return overlaySpec{}
}

func parseScrollDirection(s string) scrollDirection {
	switch strings.ToLower(s) {
	case "horizontal", "x":
		return scrollHorizontal
	case "both", "xy":
		return scrollBoth
	}
	return scrollVertical
}

func (d scrollDirection) String() string {
	switch d {
	case scrollHorizontal:
		return "horizontal"
	case scrollBoth:
		return "both"
	}
	return "vertical"
}
