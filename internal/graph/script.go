package graph

import (
	"fmt"
	"strings"

	"github.com/dgallion1/mdgraph/internal/doctree"
)

// CypherScript renders the statement sequence CreateGraph would execute
// as a standalone script, without touching a store. Embedded content is
// escaped for single quotes and backslashes.
func CypherScript(root *doctree.Node) string {
	root.AssignIDs()

	var b strings.Builder
	b.WriteString("// Clear existing graph\n")
	b.WriteString("MATCH (n) DETACH DELETE n;\n")
	b.WriteString("\n// Create nodes\n")

	root.Walk(func(n *doctree.Node) {
		fmt.Fprintf(&b, "CREATE (%s:Node {id: '%s', type: '%s', content: '%s'",
			n.ID, n.ID, n.Type, escapeCypher(n.Content))
		if n.Type == doctree.TypeHeading {
			fmt.Fprintf(&b, ", level: %d", n.Level)
		}
		b.WriteString("});\n")
	})

	b.WriteString("\n// Create relationships\n")
	root.Walk(func(n *doctree.Node) {
		if n.Parent() == nil {
			return
		}
		fmt.Fprintf(&b, "MATCH (parent:Node {id: '%s'})\nMATCH (child:Node {id: '%s'})\nCREATE (parent)-[:CONTAINS]->(child);\n",
			n.Parent().ID, n.ID)
	})

	return b.String()
}

func escapeCypher(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", `\'`)
}
