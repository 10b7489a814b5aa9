package doctree

import "fmt"

// NodeType classifies a document tree node.
type NodeType string

const (
	TypeRoot      NodeType = "root"
	TypeHeading   NodeType = "heading"
	TypeParagraph NodeType = "paragraph"
)

// Node is one element of a parsed document tree. Children are owned by
// their parent; the parent pointer is a non-owning back-reference kept
// in sync by AddChild.
type Node struct {
	Type    NodeType
	Content string
	Level   int    // heading level 1-6, 0 for root and paragraphs
	ID      string // assigned by AssignIDs before persisting

	Children []*Node
	parent   *Node
}

// NewRoot returns an empty document root.
func NewRoot() *Node {
	return &Node{Type: TypeRoot}
}

// NewHeading returns a heading node at the given level.
func NewHeading(content string, level int) *Node {
	return &Node{Type: TypeHeading, Content: content, Level: level}
}

// NewParagraph returns a paragraph node.
func NewParagraph(content string) *Node {
	return &Node{Type: TypeParagraph, Content: content}
}

// AddChild appends child to n and sets its parent back-reference.
func (n *Node) AddChild(child *Node) {
	child.parent = n
	n.Children = append(n.Children, child)
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// frame tracks a node and the index of its next unvisited child.
type frame struct {
	node *Node
	next int
}

// AssignIDs labels every node in pre-order: the root is always node_0
// and each subsequent node gets node_N in visitation order. Assignment
// is deterministic for a fixed tree. The explicit work stack bounds
// memory linearly and keeps arbitrarily deep documents from blowing
// the call stack.
func (n *Node) AssignIDs() {
	n.ID = "node_0"
	count := 1

	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.next >= len(f.node.Children) {
			continue
		}
		child := f.node.Children[f.next]
		stack = append(stack, frame{node: f.node, next: f.next + 1})

		child.ID = fmt.Sprintf("node_%d", count)
		count++

		if len(child.Children) > 0 {
			stack = append(stack, frame{node: child})
		}
	}
}

// Walk visits n and every descendant in pre-order: parents before
// children, siblings in document order. Stack-based for the same
// depth reasons as AssignIDs.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)

	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.next >= len(f.node.Children) {
			continue
		}
		child := f.node.Children[f.next]
		stack = append(stack, frame{node: f.node, next: f.next + 1})

		fn(child)

		if len(child.Children) > 0 {
			stack = append(stack, frame{node: child})
		}
	}
}
