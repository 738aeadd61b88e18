// Package treefile loads node trees from TOML or JSON description files and
// encodes layout results.
//
// A tree file has a root table and an optional container size:
//
//	[container]
//	width = 390
//	height = 844
//
//	[root]
//	kind = "VStack"
//	classes = "p-4 gap-2"
//
//	[[root.children]]
//	kind = "Text"
//	props = { content = "Hello", font_style = "title" }
//
// Property values may be strings, numbers, booleans, four-number arrays
// (edge insets, top/right/bottom/left) and "#rrggbb" or "#rrggbbaa" strings
// under keys ending in "color".
package treefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/agiangrant/ctdlayout"
	"github.com/agiangrant/ctdlayout/geometry"
	"github.com/agiangrant/ctdlayout/props"
)

var (
	// ErrNoRoot is returned for files without a root node.
	ErrNoRoot = errors.New("tree file has no root node")
	// ErrUnknownFormat is returned for extensions other than .toml and .json.
	ErrUnknownFormat = errors.New("unknown tree file format")
)

// Format is a tree file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatJSON
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "%s", path)
}

// Document is a decoded tree file.
type Document struct {
	Root *ctdlayout.Node
	// Container is the layout size the file asks for; zero when unset.
	Container geometry.Size
}

type containerDesc struct {
	Width  float32 `toml:"width" json:"width"`
	Height float32 `toml:"height" json:"height"`
}

type nodeDesc struct {
	Kind     string         `toml:"kind" json:"kind"`
	Classes  string         `toml:"classes,omitempty" json:"classes,omitempty"`
	Props    map[string]any `toml:"props,omitempty" json:"props,omitempty"`
	Children []nodeDesc     `toml:"children,omitempty" json:"children,omitempty"`
}

type fileDesc struct {
	Container *containerDesc `toml:"container,omitempty" json:"container,omitempty"`
	Root      *nodeDesc      `toml:"root" json:"root"`
}

// Load reads and decodes a tree file.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return doc, nil
}

// Decode parses tree file contents.
func Decode(data []byte, format Format) (*Document, error) {
	var file fileDesc

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(err, "invalid TOML")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&file); err != nil {
			return nil, errors.Wrap(err, "invalid JSON")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %d", format)
	}

	if file.Root == nil {
		return nil, ErrNoRoot
	}

	root, err := buildNode(*file.Root, "root")
	if err != nil {
		return nil, err
	}

	doc := &Document{Root: root}
	if file.Container != nil {
		doc.Container = geometry.NewSize(file.Container.Width, file.Container.Height)
	}
	return doc, nil
}

func buildNode(d nodeDesc, path string) (*ctdlayout.Node, error) {
	if d.Kind == "" {
		return nil, errors.Errorf("%s: missing kind", path)
	}

	n := ctdlayout.NewNode(ctdlayout.Kind(d.Kind))
	if d.Classes != "" {
		n.WithClasses(d.Classes)
	}

	// Sorted so errors are reported deterministically.
	keys := make([]string, 0, len(d.Props))
	for k := range d.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		v, err := decodeValue(key, d.Props[key])
		if err != nil {
			return nil, errors.Wrapf(err, "%s.props.%s", path, key)
		}
		n.Set(key, v)
	}

	for i, child := range d.Children {
		c, err := buildNode(child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		n.AddChild(c)
	}

	return n, nil
}

func decodeValue(key string, raw any) (props.Value, error) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return props.Value{}, errors.Wrapf(err, "invalid number %q", v.String())
		}
		return props.Number(float32(f)), nil
	case string:
		if strings.HasSuffix(key, "color") {
			if c, ok := props.ParseColor(v); ok {
				return props.Color(c), nil
			}
		}
	case []any:
		nums := make([]any, len(v))
		for i, item := range v {
			if n, ok := item.(json.Number); ok {
				f, err := n.Float64()
				if err != nil {
					return props.Value{}, errors.Wrapf(err, "invalid number %q", n.String())
				}
				item = f
			}
			nums[i] = item
		}
		raw = nums
	}

	v, err := props.FromAny(raw)
	return v, errors.WithStack(err)
}

// Encode writes a tree in the given format. Layout outputs are left out;
// the caller's inputs are written.
func Encode(doc *Document, format Format) ([]byte, error) {
	if doc == nil || doc.Root == nil {
		return nil, ErrNoRoot
	}

	file := fileDesc{Root: describe(doc.Root)}
	if !doc.Container.IsZero() {
		file.Container = &containerDesc{Width: doc.Container.Width, Height: doc.Container.Height}
	}

	switch format {
	case FormatTOML:
		data, err := toml.Marshal(file)
		return data, errors.Wrap(err, "failed to encode TOML")
	case FormatJSON:
		data, err := json.MarshalIndent(file, "", "  ")
		return data, errors.Wrap(err, "failed to encode JSON")
	}
	return nil, errors.Wrapf(ErrUnknownFormat, "format %d", format)
}

// Save encodes doc in the format its extension names and writes it.
func Save(path string, doc *Document) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(doc, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

func describe(n *ctdlayout.Node) *nodeDesc {
	d := &nodeDesc{Kind: string(n.Kind), Classes: n.Classes}

	own := n.OwnInputs()
	for _, key := range own.Keys() {
		if d.Props == nil {
			d.Props = make(map[string]any, len(own))
		}
		d.Props[key] = encodeValue(own[key])
	}

	for _, child := range n.Children {
		if child != nil {
			d.Children = append(d.Children, *describe(child))
		}
	}
	return d
}

func encodeValue(v props.Value) any {
	switch v.Kind() {
	case props.KindNumber:
		n, _ := v.AsNumber()
		return float64(n)
	case props.KindBool:
		b, _ := v.AsBool()
		return b
	case props.KindInsets:
		e, _ := v.AsInsets()
		return []float64{float64(e.Top), float64(e.Right), float64(e.Bottom), float64(e.Left)}
	}
	return v.String()
}
