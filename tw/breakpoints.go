package tw

import "github.com/agiangrant/ctdlayout/props"

// BreakpointConfig holds the pixel thresholds for responsive breakpoints.
// Tailwind uses mobile-first design: styles apply at the breakpoint width and above.
type BreakpointConfig struct {
	SM  float32 `toml:"sm"`  // ≥640px by default
	MD  float32 `toml:"md"`  // ≥768px by default
	LG  float32 `toml:"lg"`  // ≥1024px by default
	XL  float32 `toml:"xl"`  // ≥1280px by default
	XXL float32 `toml:"xxl"` // ≥1536px by default (2xl)
}

// DefaultBreakpoints returns the standard Tailwind CSS v4 breakpoint values.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{
		SM:  640,
		MD:  768,
		LG:  1024,
		XL:  1280,
		XXL: 1536,
	}
}

// ActiveBreakpoint returns the highest breakpoint the width satisfies.
func (c BreakpointConfig) ActiveBreakpoint(width float32) Breakpoint {
	if width >= c.XXL {
		return Breakpoint2XL
	}
	if width >= c.XL {
		return BreakpointXL
	}
	if width >= c.LG {
		return BreakpointLG
	}
	if width >= c.MD {
		return BreakpointMD
	}
	if width >= c.SM {
		return BreakpointSM
	}
	return BreakpointBase
}

// ResolveForWidth merges styles from base up through the active breakpoint.
// This implements Tailwind's mobile-first cascade: base → sm → md → lg → xl → 2xl
// Only properties that are explicitly set at each level override previous values.
func (cs *ComputedStyles) ResolveForWidth(width float32, config BreakpointConfig) PartialStyle {
	result := cs.Base

	if width >= config.SM {
		result.Merge(cs.SM)
	}
	if width >= config.MD {
		result.Merge(cs.MD)
	}
	if width >= config.LG {
		result.Merge(cs.LG)
	}
	if width >= config.XL {
		result.Merge(cs.XL)
	}
	if width >= config.XXL {
		result.Merge(cs.XXL)
	}

	return result
}

// PropertiesForWidth is ResolveForWidth converted to layout properties.
func (cs *ComputedStyles) PropertiesForWidth(width float32, config BreakpointConfig) props.Properties {
	return cs.ResolveForWidth(width, config).Properties()
}

// IsResponsive reports whether any breakpoint variant was parsed.
func (cs *ComputedStyles) IsResponsive() bool {
	return !cs.SM.IsEmpty() || !cs.MD.IsEmpty() || !cs.LG.IsEmpty() ||
		!cs.XL.IsEmpty() || !cs.XXL.IsEmpty()
}
