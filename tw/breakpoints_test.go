package tw

import (
	"testing"

	"github.com/agiangrant/ctdlayout/props"
)

func TestActiveBreakpoint(t *testing.T) {
	cfg := DefaultBreakpoints()

	tests := []struct {
		width float32
		want  Breakpoint
	}{
		{320, BreakpointBase},
		{640, BreakpointSM},
		{800, BreakpointMD},
		{1024, BreakpointLG},
		{1300, BreakpointXL},
		{2000, Breakpoint2XL},
	}

	for _, tt := range tests {
		if got := cfg.ActiveBreakpoint(tt.width); got != tt.want {
			t.Errorf("ActiveBreakpoint(%v) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestResolveForWidth(t *testing.T) {
	cs := ParseClasses("p-2 gap-1 md:p-4 lg:gap-6 xl:p-8")
	cfg := DefaultBreakpoints()

	tests := []struct {
		name    string
		width   float32
		padding float32
		spacing float32
	}{
		{"mobile", 400, 8, 4},
		{"tablet", 800, 16, 4},
		{"laptop", 1100, 16, 24},
		{"desktop", 1400, 32, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := cs.PropertiesForWidth(tt.width, cfg)
			e, _ := p["padding"].AsInsets()
			if e.Top != tt.padding || e.Left != tt.padding {
				t.Errorf("padding = %v, want %v", e, tt.padding)
			}
			if got := props.FloatOr(p, "spacing", 0); got != tt.spacing {
				t.Errorf("spacing = %v, want %v", got, tt.spacing)
			}
		})
	}

	if !cs.IsResponsive() {
		t.Error("expected IsResponsive() = true")
	}
	if base := ParseClasses("p-2"); base.IsResponsive() {
		t.Error("expected IsResponsive() = false without breakpoint variants")
	}
}
