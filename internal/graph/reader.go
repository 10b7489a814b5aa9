package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ErrRootNotFound is reported when the store holds no root node.
var ErrRootNotFound = errors.New("root node not found")

// PersistedNode is one stored graph record.
type PersistedNode struct {
	ID      string
	Type    string
	Content string
	Level   int // 0 when absent
}

// Root returns the unique node of type "root", or ErrRootNotFound.
func (s *Store) Root(ctx context.Context) (*PersistedNode, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx,
		"MATCH (n:Node {type: 'root'}) RETURN n.id AS id, n.type AS type, n.content AS content, n.level AS level",
		nil)
	if err != nil {
		return nil, fmt.Errorf("query root node: %w", err)
	}

	if result.Next(ctx) {
		return nodeFromRecord(result.Record()), nil
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("query root node: %w", err)
	}
	return nil, ErrRootNotFound
}

// Children returns the CONTAINS children of a node in insertion order.
// Ids are assigned in pre-order, so the numeric suffix of sibling ids
// increases in document order.
func (s *Store) Children(ctx context.Context, id string) ([]PersistedNode, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `MATCH (parent:Node {id: $id})-[:CONTAINS]->(child:Node)
RETURN child.id AS id, child.type AS type, child.content AS content, child.level AS level
ORDER BY toInteger(split(child.id, '_')[1])`

	result, err := session.Run(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("query children of %s: %w", id, err)
	}

	var children []PersistedNode
	for result.Next(ctx) {
		children = append(children, *nodeFromRecord(result.Record()))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("query children of %s: %w", id, err)
	}
	return children, nil
}

func nodeFromRecord(record *neo4j.Record) *PersistedNode {
	return &PersistedNode{
		ID:      recordString(record, "id"),
		Type:    recordString(record, "type"),
		Content: recordString(record, "content"),
		Level:   recordInt(record, "level"),
	}
}

func recordString(record *neo4j.Record, key string) string {
	if v, ok := record.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func recordInt(record *neo4j.Record, key string) int {
	if v, ok := record.Get(key); ok {
		if n, ok := v.(int64); ok {
			return int(n)
		}
	}
	return 0
}
