package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/mdgraph/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark.
type MarkdownParser struct{}

// Parse builds a heading/paragraph tree from Markdown source.
//
// Headings nest via a stack of open headings: a heading of level L
// becomes a child of the nearest preceding heading of strictly lower
// level, or of the root. Paragraphs attach to the most recently opened
// heading. Every other block kind (lists, code blocks, images, tables)
// is skipped and its text is not captured. Structural errors are never
// raised; malformed input degrades to whatever goldmark recovers.
func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	// Root has an effective level of 0 and is never popped.
	root := doctree.NewRoot()
	headingStack := []*doctree.Node{root}
	current := root

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			content := strings.TrimSpace(extractText(node, src))

			for len(headingStack) > 1 && headingStack[len(headingStack)-1].Level >= node.Level {
				headingStack = headingStack[:len(headingStack)-1]
			}

			heading := doctree.NewHeading(content, node.Level)
			headingStack[len(headingStack)-1].AddChild(heading)
			headingStack = append(headingStack, heading)
			current = heading
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph:
			content := strings.TrimSpace(extractText(node, src))
			if content != "" {
				current.AddChild(doctree.NewParagraph(content))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return root, nil
}

// extractText gets the text content of a goldmark AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			// Recurse for nested inlines.
			buf.WriteString(extractText(c, src))
		}
	}
	return buf.String()
}
