package props

import (
	"sort"

	"github.com/agiangrant/ctdlayout/geometry"
)

// Source is anything properties can be looked up in.
type Source interface {
	Lookup(key string) (Value, bool)
}

// Properties is a plain string-keyed property store.
type Properties map[string]Value

// Lookup returns the value stored under key.
func (p Properties) Lookup(key string) (Value, bool) {
	v, ok := p[key]
	return v, ok
}

// Set stores v under key, allocating the map if needed.
func (p *Properties) Set(key string, v Value) {
	if *p == nil {
		*p = make(Properties)
	}
	(*p)[key] = v
}

// Merge copies every entry of other into p, overwriting existing keys.
func (p *Properties) Merge(other Properties) {
	for k, v := range other {
		p.Set(k, v)
	}
}

// Clone returns a shallow copy.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the keys in sorted order.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Float looks up a number. Absent or unparsable keys report false.
func Float(src Source, key string) (float32, bool) {
	v, ok := src.Lookup(key)
	if !ok {
		return 0, false
	}
	return v.AsNumber()
}

// FloatOr looks up a number, falling back to def.
func FloatOr(src Source, key string, def float32) float32 {
	if n, ok := Float(src, key); ok {
		return n
	}
	return def
}

// OptionalFloat looks up a number and returns nil when it is absent or
// unparsable, for values whose "unset" state differs from any number.
func OptionalFloat(src Source, key string) *float32 {
	if n, ok := Float(src, key); ok {
		return &n
	}
	return nil
}

// StringOr looks up a string, falling back to def.
func StringOr(src Source, key string, def string) string {
	if v, ok := src.Lookup(key); ok {
		if s, ok := v.AsString(); ok {
			return s
		}
	}
	return def
}

// BoolOr looks up a boolean, falling back to def.
func BoolOr(src Source, key string, def bool) bool {
	if v, ok := src.Lookup(key); ok {
		if b, ok := v.AsBool(); ok {
			return b
		}
	}
	return def
}

// InsetsOr looks up edge insets, falling back to def.
func InsetsOr(src Source, key string, def geometry.EdgeInsets) geometry.EdgeInsets {
	if v, ok := src.Lookup(key); ok {
		if e, ok := v.AsInsets(); ok {
			return e
		}
	}
	return def
}

// ColorOr looks up a color, falling back to def.
func ColorOr(src Source, key string, def uint32) uint32 {
	if v, ok := src.Lookup(key); ok {
		if c, ok := v.AsColor(); ok {
			return c
		}
	}
	return def
}
