// Package graph persists document trees to Neo4j and reads them back.
//
// The stored shape is one (:Node {id, type, content[, level]}) per tree
// node and one [:CONTAINS] relationship per parent/child pair. Ids are
// "node_N" in pre-order, root always "node_0". The store holds exactly
// one document at a time: every write wipes the previous graph first.
package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Config holds Neo4j connection settings.
type Config struct {
	URI      string
	Username string
	Password string
}

// Store is a connected Neo4j-backed document graph.
type Store struct {
	driver neo4j.DriverWithContext
	log    *slog.Logger
}

// Open connects to Neo4j and verifies connectivity. The returned Store
// must be closed by the caller.
func Open(ctx context.Context, cfg Config, log *slog.Logger) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("connect to %s: %w", cfg.URI, err)
	}

	log.Info("connected to neo4j", "uri", cfg.URI)
	return &Store{driver: driver, log: log}, nil
}

// Close releases the underlying driver.
func (s *Store) Close(ctx context.Context) error {
	s.log.Info("disconnecting from neo4j")
	return s.driver.Close(ctx)
}
