package ctdlayout

// Builder helpers for the built-in node kinds.
// These provide a fluent API for constructing layout trees.

func container(kind Kind, classes string, children []*Node) *Node {
	n := NewNode(kind)
	if classes != "" {
		n.WithClasses(classes)
	}
	for _, child := range children {
		n.AddChild(child)
	}
	return n
}

// VStack creates a vertical stack container.
// Children are laid out top-to-bottom.
func VStack(classes string, children ...*Node) *Node {
	return container(KindVStack, classes, children)
}

// HStack creates a horizontal stack container.
// Children are laid out left-to-right.
func HStack(classes string, children ...*Node) *Node {
	return container(KindHStack, classes, children)
}

// ZStack creates a depth stack container.
// Children are layered on top of each other and aligned inside it.
func ZStack(classes string, children ...*Node) *Node {
	return container(KindZStack, classes, children)
}

// ScrollView creates a scrollable container. Only the first child scrolls.
func ScrollView(classes string, content *Node) *Node {
	if content == nil {
		return container(KindScrollView, classes, nil)
	}
	return container(KindScrollView, classes, []*Node{content})
}

// Container creates a node of an arbitrary kind, laid out as an overlay.
func Container(kind Kind, classes string, children ...*Node) *Node {
	return container(kind, classes, children)
}

// Text creates a text node.
func Text(content string, classes string) *Node {
	return container(KindText, classes, nil).SetString("content", content)
}

// Button creates a button node.
func Button(label string, classes string) *Node {
	return container(KindButton, classes, nil).SetString("label", label)
}

// Image creates an image node. Size it with width, height and aspect_ratio.
func Image(classes string) *Node {
	return container(KindImage, classes, nil)
}

// Spacer creates a flexible spacer.
func Spacer() *Node {
	return NewNode(KindSpacer)
}

// FixedSpacer creates a spacer of a fixed length along its stack's axis.
func FixedSpacer(size float32) *Node {
	return NewNode(KindSpacer).SetNumber("size", size)
}

// Divider creates a hairline separator.
func Divider(classes string) *Node {
	return container(KindDivider, classes, nil)
}
