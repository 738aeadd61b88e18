// Package props is the property store layout nodes are described with: a
// string-keyed map of loosely typed values, read through typed lookups that
// fall back to a default when a key is absent or unparsable.
package props

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agiangrant/ctdlayout/geometry"
)

// Kind identifies what a Value holds.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindColor
	KindInsets
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	case KindInsets:
		return "insets"
	}
	return "unknown"
}

// Value is a single property value. Exactly one field is meaningful,
// selected by kind.
type Value struct {
	kind   Kind
	str    string
	num    float32
	flag   bool
	color  uint32
	insets geometry.EdgeInsets
}

// String creates a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number creates a numeric value.
func Number(n float32) Value { return Value{kind: KindNumber, num: n} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Color creates a color value in 0xRRGGBBAA form.
func Color(rgba uint32) Value { return Value{kind: KindColor, color: rgba} }

// Insets creates an edge-insets value.
func Insets(e geometry.EdgeInsets) Value { return Value{kind: KindInsets, insets: e} }

// Kind returns what the value holds.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the value as text. Numbers and booleans are formatted;
// colors render as #rrggbbaa.
func (v Value) AsString() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindNumber:
		return strconv.FormatFloat(float64(v.num), 'f', -1, 32), true
	case KindBool:
		return strconv.FormatBool(v.flag), true
	case KindColor:
		return fmt.Sprintf("#%08x", v.color), true
	}
	return "", false
}

// AsNumber returns the value as a number. Strings are parsed, with an
// optional "px" suffix.
func (v Value) AsNumber() (float32, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		return parseNumber(v.str)
	}
	return 0, false
}

// AsBool returns the value as a boolean. Numbers are true when non-zero;
// strings go through strconv.ParseBool.
func (v Value) AsBool() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.flag, true
	case KindNumber:
		return v.num != 0, true
	case KindString:
		b, err := strconv.ParseBool(strings.TrimSpace(v.str))
		if err != nil {
			return false, false
		}
		return b, true
	}
	return false, false
}

// AsInsets returns the value as edge insets. A number applies to all four
// sides; a string is parsed as a CSS-style list ("a", "v,h", "t,h,b" or
// "t,r,b,l").
func (v Value) AsInsets() (geometry.EdgeInsets, bool) {
	switch v.kind {
	case KindInsets:
		return v.insets, true
	case KindNumber:
		return geometry.UniformInsets(v.num), true
	case KindString:
		return ParseInsets(v.str)
	}
	return geometry.EdgeInsets{}, false
}

// AsColor returns the value as 0xRRGGBBAA. Strings are parsed as hex colors.
func (v Value) AsColor() (uint32, bool) {
	switch v.kind {
	case KindColor:
		return v.color, true
	case KindString:
		return ParseColor(v.str)
	}
	return 0, false
}

func (v Value) String() string {
	if v.kind == KindInsets {
		e := v.insets
		return fmt.Sprintf("[%g %g %g %g]", e.Top, e.Right, e.Bottom, e.Left)
	}
	s, _ := v.AsString()
	return s
}

func parseNumber(s string) (float32, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// ParseInsets parses "a", "v,h", "t,h,b" or "t,r,b,l". Separators may be
// commas or whitespace. Any unparsable component fails the whole parse.
func ParseInsets(s string) (geometry.EdgeInsets, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	vals := make([]float32, len(fields))
	for i, f := range fields {
		n, ok := parseNumber(f)
		if !ok {
			return geometry.EdgeInsets{}, false
		}
		vals[i] = n
	}

	switch len(vals) {
	case 1:
		return geometry.UniformInsets(vals[0]), true
	case 2:
		return geometry.SymmetricInsets(vals[0], vals[1]), true
	case 3:
		return geometry.Insets(vals[0], vals[1], vals[2], vals[1]), true
	case 4:
		return geometry.Insets(vals[0], vals[1], vals[2], vals[3]), true
	}
	return geometry.EdgeInsets{}, false
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa" into 0xRRGGBBAA.
// Colors without alpha are fully opaque.
func ParseColor(s string) (uint32, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return 0, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return 0, false
	}
	c, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(c), true
}

// FromAny converts a decoded JSON or TOML value into a Value.
// Four-element numeric arrays become insets.
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case float64:
		return Number(float32(v)), nil
	case float32:
		return Number(v), nil
	case int:
		return Number(float32(v)), nil
	case int64:
		return Number(float32(v)), nil
	case []any:
		if len(v) != 4 {
			return Value{}, fmt.Errorf("insets need 4 numbers, got %d", len(v))
		}
		var n [4]float32
		for i, item := range v {
			num, err := FromAny(item)
			if err != nil || num.kind != KindNumber {
				return Value{}, fmt.Errorf("insets element %d is not a number", i)
			}
			n[i] = num.num
		}
		return Insets(geometry.Insets(n[0], n[1], n[2], n[3])), nil
	}
	return Value{}, fmt.Errorf("unsupported property value %T", raw)
}

// MarshalJSON encodes strings, numbers and booleans natively, colors as
// "#rrggbbaa" and insets as [top, right, bottom, left].
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(float64(v.num)) || math.IsInf(float64(v.num), 0) {
			return json.Marshal(nil)
		}
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.flag)
	case KindInsets:
		e := v.insets
		return json.Marshal([4]float32{e.Top, e.Right, e.Bottom, e.Left})
	}
	s, _ := v.AsString()
	return json.Marshal(s)
}

// UnmarshalJSON accepts anything FromAny does.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
