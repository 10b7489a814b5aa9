package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/mdgraph/internal/doctree"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := doctree.NewRoot()
	headingStack := []*doctree.Node{root}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				content := textContent(n)

				for len(headingStack) > 1 && headingStack[len(headingStack)-1].Level >= level {
					headingStack = headingStack[:len(headingStack)-1]
				}
				heading := doctree.NewHeading(content, level)
				headingStack[len(headingStack)-1].AddChild(heading)
				headingStack = append(headingStack, heading)
				return // Text already extracted; don't recurse into the heading.
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote":
				if content := textContent(n); content != "" {
					headingStack[len(headingStack)-1].AddChild(doctree.NewParagraph(content))
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	// Prefer <body> when present.
	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return root, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
