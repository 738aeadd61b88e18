package tw

import (
	"testing"

	"github.com/agiangrant/ctdlayout/geometry"
	"github.com/agiangrant/ctdlayout/props"
)

func TestParseClasses(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, ComputedStyles)
	}{
		{
			name:  "padding scale",
			input: "p-4",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.PaddingTop == nil || *s.Base.PaddingTop != 16.0 {
					t.Errorf("expected Base.PaddingTop=16.0, got %v", s.Base.PaddingTop)
				}
				if s.Base.PaddingLeft == nil || *s.Base.PaddingLeft != 16.0 {
					t.Errorf("expected Base.PaddingLeft=16.0, got %v", s.Base.PaddingLeft)
				}
			},
		},
		{
			name:  "axis padding overrides",
			input: "p-2 px-6 pt-1",
			validate: func(t *testing.T, s ComputedStyles) {
				if *s.Base.PaddingTop != 4 || *s.Base.PaddingBottom != 8 {
					t.Errorf("expected top=4 bottom=8, got %v/%v", *s.Base.PaddingTop, *s.Base.PaddingBottom)
				}
				if *s.Base.PaddingLeft != 24 || *s.Base.PaddingRight != 24 {
					t.Errorf("expected left=right=24, got %v/%v", *s.Base.PaddingLeft, *s.Base.PaddingRight)
				}
			},
		},
		{
			name:  "gap sets spacing",
			input: "gap-2",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Spacing == nil || *s.Base.Spacing != 8 {
					t.Errorf("expected Spacing=8, got %v", s.Base.Spacing)
				}
			},
		},
		{
			name:  "px unit",
			input: "w-px",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Width == nil || *s.Base.Width != 1 {
					t.Errorf("expected Width=1, got %v", s.Base.Width)
				}
			},
		},
		{
			name:  "min and max sizes",
			input: "min-w-10 max-w-[300px] min-h-[2rem]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.MinWidth == nil || *s.Base.MinWidth != 40 {
					t.Errorf("expected MinWidth=40, got %v", s.Base.MinWidth)
				}
				if s.Base.MaxWidth == nil || *s.Base.MaxWidth != 300 {
					t.Errorf("expected MaxWidth=300, got %v", s.Base.MaxWidth)
				}
				if s.Base.MinHeight == nil || *s.Base.MinHeight != 32 {
					t.Errorf("expected MinHeight=32, got %v", s.Base.MinHeight)
				}
			},
		},
		{
			name:  "flex shorthands",
			input: "flex-1",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.FlexGrow == nil || *s.Base.FlexGrow != 1 {
					t.Errorf("expected FlexGrow=1, got %v", s.Base.FlexGrow)
				}
				if s.Base.FlexBasis == nil || *s.Base.FlexBasis != 0 {
					t.Errorf("expected FlexBasis=0, got %v", s.Base.FlexBasis)
				}
			},
		},
		{
			name:  "arbitrary grow",
			input: "grow-[3]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.FlexGrow == nil || *s.Base.FlexGrow != 3 {
					t.Errorf("expected FlexGrow=3, got %v", s.Base.FlexGrow)
				}
			},
		},
		{
			name:  "aspect ratio",
			input: "aspect-[4/2]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.AspectRatio == nil || *s.Base.AspectRatio != 2 {
					t.Errorf("expected AspectRatio=2, got %v", s.Base.AspectRatio)
				}
			},
		},
		{
			name:  "percentages are not layout values",
			input: "w-[33%]",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Width != nil {
					t.Errorf("expected Width unset, got %v", *s.Base.Width)
				}
			},
		},
		{
			name:  "typography",
			input: "text-title text-2xl",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.FontStyle == nil || *s.Base.FontStyle != "title" {
					t.Errorf("expected FontStyle=title, got %v", s.Base.FontStyle)
				}
				if s.Base.FontSize == nil || *s.Base.FontSize != 24 {
					t.Errorf("expected FontSize=24, got %v", s.Base.FontSize)
				}
			},
		},
		{
			name:  "stateful variants are ignored",
			input: "p-2 hover:p-8 dark:gap-4 focus:w-10",
			validate: func(t *testing.T, s ComputedStyles) {
				if *s.Base.PaddingTop != 8 {
					t.Errorf("expected PaddingTop=8, got %v", *s.Base.PaddingTop)
				}
				if s.Base.Spacing != nil || s.Base.Width != nil {
					t.Error("expected stateful classes to be skipped")
				}
			},
		},
		{
			name:  "responsive variant",
			input: "p-2 md:p-8",
			validate: func(t *testing.T, s ComputedStyles) {
				if *s.Base.PaddingTop != 8 {
					t.Errorf("expected Base.PaddingTop=8, got %v", *s.Base.PaddingTop)
				}
				if s.MD.PaddingTop == nil || *s.MD.PaddingTop != 32 {
					t.Errorf("expected MD.PaddingTop=32, got %v", s.MD.PaddingTop)
				}
			},
		},
		{
			name:  "unknown classes are ignored",
			input: "bg-blue-500 rounded cursor-pointer",
			validate: func(t *testing.T, s ComputedStyles) {
				if !s.Base.IsEmpty() {
					t.Errorf("expected empty base, got %+v", s.Base)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseClasses(tt.input)
			tt.validate(t, result)
		})
	}
}

func TestParseToProperties(t *testing.T) {
	p := Parse("px-4 py-2 gap-3 items-end justify-end overflow-hidden min-w-[120px]")

	if e := props.InsetsOr(p, "padding", geometry.EdgeInsets{}); e != geometry.SymmetricInsets(8, 16) {
		t.Errorf("padding = %v, want v=8 h=16", e)
	}
	if n := props.FloatOr(p, "spacing", -1); n != 12 {
		t.Errorf("spacing = %v, want 12", n)
	}
	if a := props.StringOr(p, "alignment", ""); a != "bottom_trailing" {
		t.Errorf("alignment = %q, want bottom_trailing", a)
	}
	if !props.BoolOr(p, "clip_to_bounds", false) {
		t.Error("clip_to_bounds = false, want true")
	}
	if n := props.FloatOr(p, "min_width", 0); n != 120 {
		t.Errorf("min_width = %v, want 120", n)
	}
	if _, ok := p["width"]; ok {
		t.Error("width should not be set")
	}
}

func TestAlignmentComposition(t *testing.T) {
	tests := []struct {
		classes string
		want    string
	}{
		{"items-start justify-start", "top_leading"},
		{"items-start", "top"},
		{"justify-end", "trailing"},
		{"items-center justify-center", "center"},
		{"items-end justify-start", "bottom_leading"},
	}

	for _, tt := range tests {
		t.Run(tt.classes, func(t *testing.T) {
			if got := props.StringOr(Parse(tt.classes), "alignment", ""); got != tt.want {
				t.Errorf("alignment = %q, want %q", got, tt.want)
			}
		})
	}
}

func BenchmarkParseClasses(b *testing.B) {
	input := "px-4 py-2 gap-2 min-w-[120px] grow md:px-8 hover:p-2 bg-blue-500"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseClasses(input)
	}
}
