// Package scene provides the render tree pinboard positions its content in.
//
// A [Node] is a plain ownership structure: one optional parent, ordered
// children, and a local [geom.Transform]. There is no live scene-graph API
// behind it; position lookups are explicit O(depth) walks over the parent
// links. The single-threaded cooperative model of the workspace means nodes
// need no locking; all mutation happens between frames on one goroutine.
package scene

import "github.com/matzehuels/pinboard/pkg/geom"

// Node is a renderable handle in the tree.
type Node struct {
	id       string
	parent   *Node
	children []*Node
	xform    geom.Transform
}

// NewNode creates a detached node with the given id.
// IDs identify nodes in exports and debugging output; uniqueness is the
// caller's concern.
func NewNode(id string) *Node {
	return &Node{id: id}
}

// ID returns the node's identifier.
func (n *Node) ID() string { return n.id }

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in attachment order.
func (n *Node) Children() []*Node { return n.children }

// Transform returns the node's local transform.
func (n *Node) Transform() geom.Transform { return n.xform }

// SetTransform overwrites the node's local transform wholesale.
// There is no accumulation: the previous transform is discarded.
func (n *Node) SetTransform(t geom.Transform) { n.xform = t }

// Translation returns the translation component of the local transform.
func (n *Node) Translation() geom.Point { return n.xform.Translation }

// AppendChild attaches child under n, detaching it from any previous parent
// first. Appending preserves the child's local transform; its workspace-space
// position therefore changes unless the caller re-expresses it in the new
// parent's frame.
func (n *Node) AppendChild(child *Node) {
	if child == nil || child == n {
		return
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from n.
// Returns false if child is not a direct child of n.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Detach removes n from its parent, if any. Detaching a root is a no-op.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// AccumulateTranslation walks from n up its ancestor chain summing local
// translations, stopping before the first ancestor for which stop returns
// true. It returns the accumulated translation and the node the walk stopped
// at (nil when the chain was exhausted without hitting a stop node).
//
// The sum includes n's own local translation but never the stop node's.
func AccumulateTranslation(n *Node, stop func(*Node) bool) (geom.Point, *Node) {
	var sum geom.Point
	for cur := n; cur != nil; cur = cur.parent {
		if stop != nil && stop(cur) {
			return sum, cur
		}
		sum = sum.Add(cur.Translation())
	}
	return sum, nil
}
