package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dgallion1/mdgraph/internal/doctree"
	"github.com/dgallion1/mdgraph/internal/graph"
	"github.com/dgallion1/mdgraph/internal/parser"
)

var createGraphCmd = &cobra.Command{
	Use:   "create-graph",
	Short: "Create a Neo4j graph from a document file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		if err := runCreateGraph(cmd.Context(), file); err != nil {
			log.Error("error creating graph", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	createGraphCmd.Flags().StringP("file", "f", "", "document file to parse")
	_ = createGraphCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(createGraphCmd)
}

func runCreateGraph(ctx context.Context, file string) error {
	root, err := parseFile(file)
	if err != nil {
		return err
	}

	store, err := graph.Open(ctx, graph.Config(cfg.Neo4j), log)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	return store.CreateGraph(ctx, root)
}

// parseFile picks a parser by extension and builds the document tree.
func parseFile(file string) (*doctree.Node, error) {
	p, err := parser.ForFile(file)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := p.Parse(f, filepath.Base(file))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	return root, nil
}
