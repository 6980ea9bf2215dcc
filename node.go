package widget

// Node is one computed box in a layout tree. A container element produces
// a root node sized to its own extent with one child node per element,
// positioned relative to the container's origin.
//
// Nodes are produced fresh on every layout pass and owned by the caller;
// elements never retain them.
type Node struct {
	Bounds   Rect
	Children []Node
}

// NewNode creates a leaf node with the given size at the origin.
func NewNode(size Vec2) Node {
	return Node{Bounds: Rect{W: size.X, H: size.Y}}
}

// NewNodeWithChildren creates a node with the given size and child nodes.
func NewNodeWithChildren(size Vec2, children []Node) Node {
	return Node{Bounds: Rect{W: size.X, H: size.Y}, Children: children}
}

// MoveTo repositions the node's top-left corner.
func (n *Node) MoveTo(pos Vec2) {
	n.Bounds.X = pos.X
	n.Bounds.Y = pos.Y
}

// Size returns the node's width and height.
func (n Node) Size() Vec2 {
	return n.Bounds.Size()
}
