package geometry

import "testing"

func TestAlignment_Point(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	tests := []struct {
		align Alignment
		want  Point
	}{
		{TopLeading, Pt(10, 20)},
		{Top, Pt(60, 20)},
		{TopTrailing, Pt(110, 20)},
		{Leading, Pt(10, 45)},
		{Center, Pt(60, 45)},
		{Trailing, Pt(110, 45)},
		{BottomLeading, Pt(10, 70)},
		{Bottom, Pt(60, 70)},
		{BottomTrailing, Pt(110, 70)},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			if got := tt.align.Point(r); got != tt.want {
				t.Errorf("Point() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlignment_Origin(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	child := NewSize(20, 20)

	tests := []struct {
		align Alignment
		want  Point
	}{
		{TopLeading, Pt(0, 0)},
		{Top, Pt(40, 0)},
		{TopTrailing, Pt(80, 0)},
		{Leading, Pt(0, 40)},
		{Center, Pt(40, 40)},
		{Trailing, Pt(80, 40)},
		{BottomLeading, Pt(0, 80)},
		{Bottom, Pt(40, 80)},
		{BottomTrailing, Pt(80, 80)},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			if got := tt.align.Origin(r, child); got != tt.want {
				t.Errorf("Origin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in     string
		want   Alignment
		wantOK bool
	}{
		{"center", Center, true},
		{"TopLeading", TopLeading, true},
		{"top_leading", TopLeading, true},
		{"top-left", TopLeading, true},
		{"BottomTrailing", BottomTrailing, true},
		{"bottom right", BottomTrailing, true},
		{"leading", Leading, true},
		{"right", Trailing, true},
		{"bottom", Bottom, true},
		{"sideways", Center, false},
		{"", Center, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAlignment(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseAlignment(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAlignment_StringRoundTrip(t *testing.T) {
	for a := Center; a <= BottomTrailing; a++ {
		got, ok := ParseAlignment(a.String())
		if !ok || got != a {
			t.Errorf("ParseAlignment(%q) = (%v, %v), want %v", a.String(), got, ok, a)
		}
	}
}
