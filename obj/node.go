package obj

import "github.com/go-gl/mathgl/mgl64"

// Node is a minimal scene-graph transform. The follow target is parented
// under the scene root so the camera and avatar sample a world position
// after parent transforms are applied, not raw physics coordinates.
type Node struct {
	Position mgl64.Vec3

	parent   *Node
	children []*Node
}

func NewNode() *Node {
	return &Node{}
}

// AddChild parents child under n. A node already parented elsewhere is
// reparented.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// WorldPosition resolves the node's position through its parent chain.
func (n *Node) WorldPosition() mgl64.Vec3 {
	if n.parent == nil {
		return n.Position
	}
	return n.parent.WorldPosition().Add(n.Position)
}
