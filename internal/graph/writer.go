package graph

import (
	"context"
	"fmt"

	"github.com/dgallion1/mdgraph/internal/doctree"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// CreateGraph replaces the stored graph with the given document tree.
// Ids are assigned to the tree in pre-order before writing. The wipe
// and every create run in a single write transaction, so a statement
// failure mid-sequence rolls back instead of leaving a partial graph.
func (s *Store) CreateGraph(ctx context.Context, root *doctree.Node) error {
	s.log.Info("creating graph from document tree")
	root.AssignIDs()

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		s.log.Debug("wiping existing graph")
		if _, err := tx.Run(ctx, "MATCH (n) DETACH DELETE n", nil); err != nil {
			return nil, fmt.Errorf("wipe graph: %w", err)
		}

		var runErr error
		root.Walk(func(n *doctree.Node) {
			if runErr != nil {
				return
			}
			query := "CREATE (n:Node {id: $id, type: $type, content: $content})"
			params := map[string]any{
				"id":      n.ID,
				"type":    string(n.Type),
				"content": n.Content,
			}
			if n.Type == doctree.TypeHeading {
				query = "CREATE (n:Node {id: $id, type: $type, content: $content, level: $level})"
				params["level"] = n.Level
			}
			s.log.Debug("create node", "id", n.ID, "type", n.Type)
			if _, err := tx.Run(ctx, query, params); err != nil {
				runErr = fmt.Errorf("create node %s: %w", n.ID, err)
			}
		})
		if runErr != nil {
			return nil, runErr
		}

		root.Walk(func(n *doctree.Node) {
			if runErr != nil || n.Parent() == nil {
				return
			}
			s.log.Debug("create edge", "parent", n.Parent().ID, "child", n.ID)
			_, err := tx.Run(ctx,
				"MATCH (parent:Node {id: $parent_id}) MATCH (child:Node {id: $child_id}) CREATE (parent)-[:CONTAINS]->(child)",
				map[string]any{"parent_id": n.Parent().ID, "child_id": n.ID})
			if err != nil {
				runErr = fmt.Errorf("create edge %s->%s: %w", n.Parent().ID, n.ID, err)
			}
		})
		return nil, runErr
	})
	if err != nil {
		return err
	}

	s.log.Info("graph creation completed")
	return nil
}
