// Package tw parses Tailwind-style utility class strings into layout
// properties. Only classes that influence geometry are understood; colors,
// borders, transitions and interaction-state variants are ignored the same
// way unknown classes are.
package tw

import (
	"strconv"
	"strings"

	"github.com/agiangrant/ctdlayout/props"
)

// Breakpoint represents a responsive breakpoint.
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM              // ≥640px
	BreakpointMD              // ≥768px
	BreakpointLG              // ≥1024px
	BreakpointXL              // ≥1280px
	Breakpoint2XL             // ≥1536px
)

// ComputedStyles holds parsed styles per breakpoint.
type ComputedStyles struct {
	Base PartialStyle

	SM  PartialStyle
	MD  PartialStyle
	LG  PartialStyle
	XL  PartialStyle
	XXL PartialStyle
}

// ParsedClass is a class split into its variant prefixes and base utility.
type ParsedClass struct {
	Breakpoint Breakpoint
	// Stateful marks hover:, focus:, dark: and similar variants. They depend
	// on interaction or theme state that layout never sees.
	Stateful       bool
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like w-[120px]
}

// ArbitraryValue is a property-[value] utility.
type ArbitraryValue struct {
	Property string // e.g. "w", "p", "aspect"
	Value    string // e.g. "120px", "2.5rem", "4/3"
}

// ParseClasses parses a class string into per-breakpoint styles.
// Example: "p-4 gap-2 md:p-8 min-w-[120px] grow"
func ParseClasses(classStr string) ComputedStyles {
	var computed ComputedStyles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)
		if parsed.Stateful {
			continue
		}

		var partial PartialStyle
		if parsed.ArbitraryValue != nil {
			partial = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			partial = parseUtility(parsed.BaseClass)
		}
		if partial.IsEmpty() {
			// Unknown class, silently ignore (like Tailwind CSS)
			continue
		}

		targetFor(&computed, parsed.Breakpoint).Merge(partial)
	}

	return computed
}

// Parse is shorthand for the base (breakpoint-independent) properties of a
// class string.
func Parse(classStr string) props.Properties {
	cs := ParseClasses(classStr)
	return cs.Base.Properties()
}

// parseClass splits a class into variant modifiers and base utility.
// "md:p-4" → ParsedClass{Breakpoint: MD, BaseClass: "p-4"}
// "w-[120px]" → ParsedClass{ArbitraryValue: {Property: "w", Value: "120px"}}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		Breakpoint: BreakpointBase,
		BaseClass:  parts[len(parts)-1],
	}

	for _, variant := range parts[:len(parts)-1] {
		switch variant {
		case "sm":
			pc.Breakpoint = BreakpointSM
		case "md":
			pc.Breakpoint = BreakpointMD
		case "lg":
			pc.Breakpoint = BreakpointLG
		case "xl":
			pc.Breakpoint = BreakpointXL
		case "2xl":
			pc.Breakpoint = Breakpoint2XL
		default:
			pc.Stateful = true
		}
	}

	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc
}

// extractArbitraryValue parses arbitrary value syntax.
// "min-w-[120px]" → ArbitraryValue{Property: "min-w", Value: "120px"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	return &ArbitraryValue{
		Property: strings.TrimSuffix(class[:bracketIdx], "-"),
		Value:    strings.TrimSuffix(class[bracketIdx+1:], "]"),
	}
}

func targetFor(computed *ComputedStyles, bp Breakpoint) *PartialStyle {
	switch bp {
	case BreakpointSM:
		return &computed.SM
	case BreakpointMD:
		return &computed.MD
	case BreakpointLG:
		return &computed.LG
	case BreakpointXL:
		return &computed.XL
	case Breakpoint2XL:
		return &computed.XXL
	}
	return &computed.Base
}

// fontSizes is the Tailwind type scale in pixels.
var fontSizes = map[string]float32{
	"xs":   12,
	"sm":   14,
	"base": 16,
	"lg":   18,
	"xl":   20,
	"2xl":  24,
	"3xl":  30,
	"4xl":  36,
}

// parseUtility resolves a non-arbitrary utility class. Spacing and sizing
// classes use the 4px scale: p-4 is 16px, w-px is 1px.
func parseUtility(class string) PartialStyle {
	var p PartialStyle

	switch class {
	case "grow", "flex-grow":
		p.FlexGrow = floatPtr(1)
		return p
	case "grow-0", "flex-grow-0":
		p.FlexGrow = floatPtr(0)
		return p
	case "shrink", "flex-shrink":
		p.FlexShrink = floatPtr(1)
		return p
	case "shrink-0", "flex-shrink-0":
		p.FlexShrink = floatPtr(0)
		return p
	case "flex-1":
		p.FlexGrow, p.FlexShrink, p.FlexBasis = floatPtr(1), floatPtr(1), floatPtr(0)
		return p
	case "flex-none":
		p.FlexGrow, p.FlexShrink = floatPtr(0), floatPtr(0)
		return p
	case "aspect-square":
		p.AspectRatio = floatPtr(1)
		return p
	case "aspect-video":
		p.AspectRatio = floatPtr(16.0 / 9.0)
		return p
	case "overflow-hidden", "overflow-clip", "clip":
		p.ClipToBounds = boolPtr(true)
		return p
	case "overflow-visible":
		p.ClipToBounds = boolPtr(false)
		return p
	case "overflow-x-auto", "overflow-x-scroll":
		p.ScrollDirection = strPtr("horizontal")
		return p
	case "overflow-y-auto", "overflow-y-scroll":
		p.ScrollDirection = strPtr("vertical")
		return p
	case "overflow-auto", "overflow-scroll":
		p.ScrollDirection = strPtr("both")
		return p
	case "text-title", "text-body", "text-caption":
		p.FontStyle = strPtr(strings.TrimPrefix(class, "text-"))
		return p
	}

	if size, ok := fontSizes[strings.TrimPrefix(class, "text-")]; ok && strings.HasPrefix(class, "text-") {
		p.FontSize = floatPtr(size)
		return p
	}

	// Alignment: items-* is the vertical axis, justify-* the horizontal one.
	if axis, ok := strings.CutPrefix(class, "items-"); ok {
		p.AlignY = alignPosition(axis)
		return p
	}
	if axis, ok := strings.CutPrefix(class, "justify-"); ok {
		p.AlignX = alignPosition(axis)
		return p
	}

	// Scale-based utilities: prefix-N
	dash := strings.LastIndex(class, "-")
	if dash <= 0 {
		return p
	}
	prefix, raw := class[:dash], class[dash+1:]
	val := scaleValue(raw)
	if val == nil {
		return p
	}
	applyDimension(&p, prefix, val)
	return p
}

func alignPosition(s string) *float32 {
	switch s {
	case "start":
		return floatPtr(0)
	case "center":
		return floatPtr(0.5)
	case "end":
		return floatPtr(1)
	}
	return nil
}

// scaleValue converts a spacing-scale token to pixels.
func scaleValue(raw string) *float32 {
	if raw == "px" {
		return floatPtr(1)
	}
	n, err := strconv.ParseFloat(raw, 32)
	if err != nil || n < 0 {
		return nil
	}
	return floatPtr(float32(n) * 4)
}

// applyDimension routes a resolved pixel value to the fields its prefix names.
// Shared by scale utilities and arbitrary values.
func applyDimension(p *PartialStyle, prefix string, val *float32) bool {
	switch prefix {
	case "p":
		p.PaddingTop, p.PaddingRight, p.PaddingBottom, p.PaddingLeft = val, val, val, val
	case "px":
		p.PaddingLeft, p.PaddingRight = val, val
	case "py":
		p.PaddingTop, p.PaddingBottom = val, val
	case "pt":
		p.PaddingTop = val
	case "pr":
		p.PaddingRight = val
	case "pb":
		p.PaddingBottom = val
	case "pl":
		p.PaddingLeft = val
	case "gap", "space-x", "space-y":
		p.Spacing = val
	case "w":
		p.Width = val
	case "h":
		p.Height = val
	case "size":
		p.Width, p.Height = val, val
	case "min-w":
		p.MinWidth = val
	case "min-h":
		p.MinHeight = val
	case "max-w":
		p.MaxWidth = val
	case "max-h":
		p.MaxHeight = val
	case "basis":
		p.FlexBasis = val
	default:
		return false
	}
	return true
}

// parseArbitraryValue converts an arbitrary value into a PartialStyle.
func parseArbitraryValue(arb *ArbitraryValue) PartialStyle {
	var partial PartialStyle

	switch arb.Property {
	case "grow":
		partial.FlexGrow = parseFloat(arb.Value)
	case "shrink":
		partial.FlexShrink = parseFloat(arb.Value)
	case "aspect":
		partial.AspectRatio = parseRatio(arb.Value)
	case "text":
		partial.FontSize = parseDimension(arb.Value)
	default:
		if val := parseDimension(arb.Value); val != nil {
			applyDimension(&partial, arb.Property, val)
		}
	}

	return partial
}

// parseDimension parses px, rem/em (16px) and unitless values.
// Percentages are rejected: nothing in layout resolves relative sizes.
func parseDimension(value string) *float32 {
	value = strings.TrimSpace(value)

	multiplier := float32(1)
	switch {
	case strings.HasSuffix(value, "%"):
		return nil
	case strings.HasSuffix(value, "px"):
		value = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "rem"):
		value = strings.TrimSuffix(value, "rem")
		multiplier = 16
	case strings.HasSuffix(value, "em"):
		value = strings.TrimSuffix(value, "em")
		multiplier = 16
	}

	n, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return nil
	}
	return floatPtr(float32(n) * multiplier)
}

func parseFloat(value string) *float32 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if err != nil {
		return nil
	}
	return floatPtr(float32(n))
}

// parseRatio parses "4/3" or a plain number.
func parseRatio(value string) *float32 {
	num, den, found := strings.Cut(value, "/")
	if !found {
		return parseFloat(value)
	}
	n, d := parseFloat(num), parseFloat(den)
	if n == nil || d == nil || *d == 0 {
		return nil
	}
	return floatPtr(*n / *d)
}
