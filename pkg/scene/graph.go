package scene

import (
	"errors"

	"github.com/Faultbox/landscape/pkg/math"
)

// Graph errors.
var (
	ErrInvalidNode = errors.New("invalid scene node")
	ErrCycle       = errors.New("parent would create a cycle")
)

// Node identifies a node in a Graph.
type Node int

// Nil represents an invalid Node. A node whose parent is Nil is a root.
const Nil Node = 0

type node struct {
	transform Transform
	parent    Node
}

// Graph is a table of nodes linked by parent handles.
// Links only point upwards; a node never knows its children.
type Graph struct {
	nodes []node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	// Slot 0 backs Nil so handles can index directly.
	return &Graph{nodes: make([]node, 1, 8)}
}

// Add inserts a node with the given transform below parent.
// Pass Nil to create a root.
func (g *Graph) Add(t Transform, parent Node) (Node, error) {
	if parent != Nil && !g.valid(parent) {
		return Nil, ErrInvalidNode
	}
	g.nodes = append(g.nodes, node{transform: t, parent: parent})
	return Node(len(g.nodes) - 1), nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes) - 1
}

// Transform returns the mutable transform of n, or nil for an invalid handle.
func (g *Graph) Transform(n Node) *Transform {
	if !g.valid(n) {
		return nil
	}
	return &g.nodes[n].transform
}

// Parent returns the parent of n.
func (g *Graph) Parent(n Node) Node {
	if !g.valid(n) {
		return Nil
	}
	return g.nodes[n].parent
}

// SetParent re-links n below parent.
func (g *Graph) SetParent(n, parent Node) error {
	if !g.valid(n) || (parent != Nil && !g.valid(parent)) {
		return ErrInvalidNode
	}
	for p := parent; p != Nil; p = g.nodes[p].parent {
		if p == n {
			return ErrCycle
		}
	}
	g.nodes[n].parent = parent
	return nil
}

// LocalMatrix returns the local model matrix of n.
func (g *Graph) LocalMatrix(n Node) math.Mat4 {
	if !g.valid(n) {
		return math.Identity()
	}
	return g.nodes[n].transform.LocalMatrix()
}

// GlobalMatrix returns the matrix mapping n's local space into world space:
// the parent's global matrix times n's local matrix, or just the local
// matrix for a root.
func (g *Graph) GlobalMatrix(n Node) math.Mat4 {
	if !g.valid(n) {
		return math.Identity()
	}
	m := g.nodes[n].transform.LocalMatrix()
	if p := g.nodes[n].parent; p != Nil {
		return g.GlobalMatrix(p).Mul4(m)
	}
	return m
}

// GlobalTranslation returns the world position of n's origin. The node's
// translation is mapped as a point through its parent's global matrix; n's
// own rotation and scale do not move its origin.
func (g *Graph) GlobalTranslation(n Node) math.Vec3 {
	if !g.valid(n) {
		return math.Vec3{}
	}
	nd := g.nodes[n]
	if nd.parent == Nil {
		return nd.transform.Translation
	}
	return math.TransformPoint(g.GlobalMatrix(nd.parent), nd.transform.Translation)
}

// GlobalRotation returns n's Euler angles plus those of its immediate parent.
// Ancestors above the parent are not included, so the result is only exact
// for chains of at most two levels.
func (g *Graph) GlobalRotation(n Node) math.Vec3 {
	if !g.valid(n) {
		return math.Vec3{}
	}
	nd := g.nodes[n]
	if nd.parent == Nil {
		return nd.transform.Rotation
	}
	return nd.transform.Rotation.Add(g.nodes[nd.parent].transform.Rotation)
}

func (g *Graph) valid(n Node) bool {
	return n > Nil && int(n) < len(g.nodes)
}
