package traverse

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dgallion1/mdgraph/internal/graph"
)

// fakeSource serves a canned graph from memory.
type fakeSource struct {
	root     *graph.PersistedNode
	rootErr  error
	children map[string][]graph.PersistedNode
}

func (f *fakeSource) Root(ctx context.Context) (*graph.PersistedNode, error) {
	if f.rootErr != nil {
		return nil, f.rootErr
	}
	return f.root, nil
}

func (f *fakeSource) Children(ctx context.Context, id string) ([]graph.PersistedNode, error) {
	return f.children[id], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRender_HeadingsAndParagraphs(t *testing.T) {
	src := &fakeSource{
		root: &graph.PersistedNode{ID: "node_0", Type: "root"},
		children: map[string][]graph.PersistedNode{
			"node_0": {
				{ID: "node_1", Type: "heading", Content: "Header 1", Level: 1},
			},
			"node_1": {
				{ID: "node_2", Type: "paragraph", Content: "Paragraph 1"},
				{ID: "node_3", Type: "heading", Content: "Header 2", Level: 2},
			},
		},
	}

	out, err := NewRenderer(src, discardLogger()).Render(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "# Header 1\n\nParagraph 1\n\n## Header 2\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRender_MissingRoot(t *testing.T) {
	src := &fakeSource{rootErr: graph.ErrRootNotFound}

	out, err := NewRenderer(src, discardLogger()).Render(context.Background())
	if !errors.Is(err, graph.ErrRootNotFound) {
		t.Fatalf("expected ErrRootNotFound, got %v", err)
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRender_EmptyGraph(t *testing.T) {
	src := &fakeSource{root: &graph.PersistedNode{ID: "node_0", Type: "root"}}

	out, err := NewRenderer(src, discardLogger()).Render(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty output for childless root, got %q", out)
	}
}

func TestRender_SubtreeBeforeNextSibling(t *testing.T) {
	// root -> [h1 A -> [p under A], h1 B]: A's subtree renders before B.
	src := &fakeSource{
		root: &graph.PersistedNode{ID: "node_0", Type: "root"},
		children: map[string][]graph.PersistedNode{
			"node_0": {
				{ID: "node_1", Type: "heading", Content: "A", Level: 1},
				{ID: "node_3", Type: "heading", Content: "B", Level: 1},
			},
			"node_1": {
				{ID: "node_2", Type: "paragraph", Content: "under A"},
			},
		},
	}

	out, err := NewRenderer(src, discardLogger()).Render(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "# A\n\nunder A\n\n# B\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRender_UnknownTypeRendersNothing(t *testing.T) {
	src := &fakeSource{
		root: &graph.PersistedNode{ID: "node_0", Type: "root"},
		children: map[string][]graph.PersistedNode{
			"node_0": {
				{ID: "node_1", Type: "comment", Content: "invisible"},
				{ID: "node_2", Type: "paragraph", Content: "visible"},
			},
			"node_1": {
				{ID: "node_3", Type: "paragraph", Content: "nested under unknown"},
			},
		},
	}

	out, err := NewRenderer(src, discardLogger()).Render(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The unknown node emits nothing but its children still render.
	want := "nested under unknown\n\nvisible\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestRender_HeadingWithoutLevelDefaultsToOne(t *testing.T) {
	src := &fakeSource{
		root: &graph.PersistedNode{ID: "node_0", Type: "root"},
		children: map[string][]graph.PersistedNode{
			"node_0": {
				{ID: "node_1", Type: "heading", Content: "No Level"},
			},
		},
	}

	out, err := NewRenderer(src, discardLogger()).Render(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "# No Level\n" {
		t.Errorf("expected single-# heading, got %q", out)
	}
}
