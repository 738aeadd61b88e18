package ctdlayout

// Walk traverses the tree depth-first in pre-order, calling fn for each node.
// Returning false from fn stops the walk.
func (n *Node) Walk(fn func(n *Node) bool) {
	if n != nil {
		walkNode(n, fn)
	}
}

func walkNode(n *Node, fn func(n *Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		if !walkNode(child, fn) {
			return false
		}
	}
	return true
}

// Find searches for a node matching the predicate.
func (n *Node) Find(pred func(n *Node) bool) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			found = c
			return false // Stop walking
		}
		return true
	})
	return found
}

// FindByID finds the node with the given ID.
func (n *Node) FindByID(id NodeID) *Node {
	return n.Find(func(c *Node) bool {
		return c.id == id
	})
}

// Count returns the number of nodes in the tree.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}
