// Package ctdlayout holds the node tree the layout engine consumes: typed
// UI nodes carrying free-form style properties and ordered children.
package ctdlayout

import (
	"encoding/json"
	"sync/atomic"

	"github.com/agiangrant/ctdlayout/geometry"
	"github.com/agiangrant/ctdlayout/props"
)

// NodeID uniquely identifies a node within the process.
type NodeID uint64

var nextNodeID atomic.Uint64

func newNodeID() NodeID {
	return NodeID(nextNodeID.Add(1))
}

// Kind represents the type of node
type Kind string

const (
	// Container nodes
	KindVStack     Kind = "VStack"
	KindHStack     Kind = "HStack"
	KindZStack     Kind = "ZStack"
	KindScrollView Kind = "ScrollView"

	// Leaf nodes
	KindText    Kind = "Text"
	KindButton  Kind = "Button"
	KindImage   Kind = "Image"
	KindSpacer  Kind = "Spacer"
	KindDivider Kind = "Divider"
)

// IsContainer reports whether nodes of this kind lay out children.
// Unknown kinds are treated as overlay containers.
func (k Kind) IsContainer() bool {
	switch k {
	case KindText, KindButton, KindImage, KindSpacer, KindDivider:
		return false
	}
	return true
}

// Output keys written by layout.
const (
	KeyX            = "x"
	KeyY            = "y"
	KeyWidth        = "width"
	KeyHeight       = "height"
	KeyClipToBounds = "clip_to_bounds"
)

// shadowed is a caller value displaced by a layout output.
type shadowed struct {
	value props.Value
	ok    bool
}

// Node is a UI node in the tree. Nodes are not safe for concurrent mutation.
type Node struct {
	id       NodeID
	Kind     Kind
	Classes  string
	Children []*Node

	props      props.Properties
	classProps props.Properties
	shadow     map[string]shadowed
}

// NewNode creates a new node of the given kind
func NewNode(kind Kind) *Node {
	return &Node{
		id:   newNodeID(),
		Kind: kind,
	}
}

// ID returns the node's process-unique identifier.
func (n *Node) ID() NodeID {
	return n.id
}

// Set stores a property. Setting a key layout has written replaces the
// layout output and becomes the new input.
func (n *Node) Set(key string, v props.Value) *Node {
	delete(n.shadow, key)
	n.props.Set(key, v)
	return n
}

// SetNumber is Set with a number value.
func (n *Node) SetNumber(key string, v float32) *Node {
	return n.Set(key, props.Number(v))
}

// SetString is Set with a string value.
func (n *Node) SetString(key, v string) *Node {
	return n.Set(key, props.String(v))
}

// SetBool is Set with a boolean value.
func (n *Node) SetBool(key string, v bool) *Node {
	return n.Set(key, props.Bool(v))
}

// Delete removes a property and any shadowed input under the same key.
func (n *Node) Delete(key string) *Node {
	delete(n.shadow, key)
	delete(n.props, key)
	return n
}

// Lookup returns the current value of a property, including layout outputs.
// Explicit properties win over values derived from classes.
func (n *Node) Lookup(key string) (props.Value, bool) {
	if v, ok := n.props[key]; ok {
		return v, true
	}
	return n.classProps.Lookup(key)
}

// Properties returns a copy of the current properties, class-derived ones
// included.
func (n *Node) Properties() props.Properties {
	out := n.classProps.Clone()
	out.Merge(n.props)
	return out
}

// Inputs returns the properties as the caller last set them. Keys layout
// overwrote report the caller's value, or absence if the caller never set
// them.
func (n *Node) Inputs() props.Source {
	return inputView{n}
}

type inputView struct {
	n *Node
}

func (v inputView) Lookup(key string) (props.Value, bool) {
	if s, ok := v.n.shadow[key]; ok {
		if s.ok {
			return s.value, true
		}
		return v.n.classProps.Lookup(key)
	}
	return v.n.Lookup(key)
}

// OwnInputs returns the properties the caller set directly, without
// class-derived values or layout outputs.
func (n *Node) OwnInputs() props.Properties {
	out := make(props.Properties, len(n.props))
	for k, v := range n.props {
		if s, ok := n.shadow[k]; ok {
			if !s.ok {
				continue
			}
			v = s.value
		}
		out[k] = v
	}
	return out
}

// SetOutput writes a layout result. The first write to a key remembers the
// caller's value so later passes keep reading it through Inputs.
func (n *Node) SetOutput(key string, v props.Value) {
	if _, done := n.shadow[key]; !done {
		prev, ok := n.props[key]
		if n.shadow == nil {
			n.shadow = make(map[string]shadowed)
		}
		n.shadow[key] = shadowed{value: prev, ok: ok}
	}
	n.props.Set(key, v)
}

// ApplyFrame writes x, y, width and height outputs.
func (n *Node) ApplyFrame(r geometry.Rect) {
	n.SetOutput(KeyX, props.Number(r.X))
	n.SetOutput(KeyY, props.Number(r.Y))
	n.SetOutput(KeyWidth, props.Number(r.Width))
	n.SetOutput(KeyHeight, props.Number(r.Height))
}

// Frame reads back the frame written by layout. Missing keys are zero.
func (n *Node) Frame() geometry.Rect {
	return geometry.NewRect(
		props.FloatOr(n, KeyX, 0),
		props.FloatOr(n, KeyY, 0),
		props.FloatOr(n, KeyWidth, 0),
		props.FloatOr(n, KeyHeight, 0),
	)
}

// WithChildren sets the children of this node
func (n *Node) WithChildren(children ...*Node) *Node {
	n.Children = children
	return n
}

// AddChild appends a single child node
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

type nodeJSON struct {
	ID       NodeID           `json:"id"`
	Kind     Kind             `json:"kind"`
	Classes  string           `json:"classes,omitempty"`
	Props    props.Properties `json:"props,omitempty"`
	Children []*Node          `json:"children,omitempty"`
}

// MarshalJSON encodes the node with its current properties.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{
		ID:       n.id,
		Kind:     n.Kind,
		Classes:  n.Classes,
		Props:    n.props,
		Children: n.Children,
	})
}

// UnmarshalJSON decodes a node. Decoded nodes get fresh IDs.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw nodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = Node{
		id:       newNodeID(),
		Kind:     raw.Kind,
		Children: raw.Children,
	}
	if raw.Classes != "" {
		n.WithClasses(raw.Classes)
	}
	for k, v := range raw.Props {
		n.Set(k, v)
	}
	return nil
}

// ToJSON serializes the node tree to JSON
func (n *Node) ToJSON() (string, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
