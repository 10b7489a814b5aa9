// Package traverse reconstructs Markdown from a stored document graph.
package traverse

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgallion1/mdgraph/internal/graph"
)

// Source provides read access to a stored document graph. *graph.Store
// satisfies it; tests use an in-memory fake.
type Source interface {
	Root(ctx context.Context) (*graph.PersistedNode, error)
	Children(ctx context.Context, id string) ([]graph.PersistedNode, error)
}

// Renderer walks a document graph depth-first and renders Markdown.
type Renderer struct {
	src Source
	log *slog.Logger
}

func NewRenderer(src Source, log *slog.Logger) *Renderer {
	return &Renderer{src: src, log: log}
}

// Render walks the graph from the root in pre-order and returns the
// reconstructed Markdown. Headings render as level '#' characters, a
// space, and their content; paragraphs as their content; both followed
// by a blank separator line. Other node types render nothing.
func (r *Renderer) Render(ctx context.Context) (string, error) {
	r.log.Info("traversing graph")

	root, err := r.src.Root(ctx)
	if err != nil {
		return "", err
	}

	var lines []string

	// Explicit work stack; children are pushed in reverse so the
	// leftmost subtree is fully rendered before the next sibling.
	stack := []graph.PersistedNode{*root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n.Type {
		case "heading":
			level := n.Level
			if level < 1 {
				level = 1
			}
			lines = append(lines, strings.Repeat("#", level)+" "+n.Content, "")
		case "paragraph":
			lines = append(lines, n.Content, "")
		}

		children, err := r.src.Children(ctx, n.ID)
		if err != nil {
			return "", fmt.Errorf("fetch children of %s: %w", n.ID, err)
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return strings.Join(lines, "\n"), nil
}
