package doctree

import (
	"fmt"
	"testing"
)

func TestAddChild_SetsParent(t *testing.T) {
	root := NewRoot()
	h := NewHeading("Title", 1)
	p := NewParagraph("text")

	root.AddChild(h)
	h.AddChild(p)

	if root.Parent() != nil {
		t.Errorf("root should have no parent")
	}
	if h.Parent() != root {
		t.Errorf("heading parent should be root")
	}
	if p.Parent() != h {
		t.Errorf("paragraph parent should be the heading")
	}
}

func TestAssignIDs_PreOrder(t *testing.T) {
	// root -> [h1 -> [p1, h2 -> [p2]], p3]
	root := NewRoot()
	h1 := NewHeading("Header 1", 1)
	h2 := NewHeading("Header 2", 2)
	p1 := NewParagraph("one")
	p2 := NewParagraph("two")
	p3 := NewParagraph("three")
	root.AddChild(h1)
	h1.AddChild(p1)
	h1.AddChild(h2)
	h2.AddChild(p2)
	root.AddChild(p3)

	root.AssignIDs()

	want := map[*Node]string{
		root: "node_0",
		h1:   "node_1",
		p1:   "node_2",
		h2:   "node_3",
		p2:   "node_4",
		p3:   "node_5",
	}
	for n, id := range want {
		if n.ID != id {
			t.Errorf("node %q: expected id %q, got %q", n.Content, id, n.ID)
		}
	}
}

func TestAssignIDs_Deterministic(t *testing.T) {
	root := NewRoot()
	h := NewHeading("A", 1)
	root.AddChild(h)
	h.AddChild(NewParagraph("x"))
	h.AddChild(NewParagraph("y"))

	root.AssignIDs()
	first := collectIDs(root)

	root.AssignIDs()
	second := collectIDs(root)

	if len(first) != len(second) {
		t.Fatalf("id count changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("id[%d] changed: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestWalk_VisitsInIDOrder(t *testing.T) {
	root := NewRoot()
	h1 := NewHeading("A", 1)
	h2 := NewHeading("B", 2)
	root.AddChild(h1)
	h1.AddChild(NewParagraph("p1"))
	h1.AddChild(h2)
	h2.AddChild(NewParagraph("p2"))
	root.AssignIDs()

	var visited []string
	root.Walk(func(n *Node) {
		visited = append(visited, n.ID)
	})

	for i, id := range visited {
		want := fmt.Sprintf("node_%d", i)
		if id != want {
			t.Errorf("visit %d: expected %q, got %q", i, want, id)
		}
	}
	if len(visited) != 5 {
		t.Errorf("expected 5 visits, got %d", len(visited))
	}
}

func TestAssignIDs_DeepNesting(t *testing.T) {
	// A pathologically deep chain must not blow the stack.
	const depth = 100000
	root := NewRoot()
	current := root
	for i := 0; i < depth; i++ {
		child := NewParagraph("x")
		current.AddChild(child)
		current = child
	}

	root.AssignIDs()

	if current.ID != fmt.Sprintf("node_%d", depth) {
		t.Errorf("deepest node: expected node_%d, got %q", depth, current.ID)
	}

	count := 0
	root.Walk(func(*Node) { count++ })
	if count != depth+1 {
		t.Errorf("expected %d visits, got %d", depth+1, count)
	}
}

func collectIDs(root *Node) []string {
	var ids []string
	root.Walk(func(n *Node) {
		ids = append(ids, n.ID)
	})
	return ids
}
