package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/mdgraph/internal/graph"
	"github.com/dgallion1/mdgraph/internal/traverse"
)

var traverseGraphCmd = &cobra.Command{
	Use:   "traverse-graph",
	Short: "Traverse the stored graph and print it as Markdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		md, err := runTraverseGraph(cmd.Context())
		if err != nil {
			log.Error("error traversing graph", "error", err)
			return err
		}
		// Print to stdout for capture.
		fmt.Println(md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traverseGraphCmd)
}

func runTraverseGraph(ctx context.Context) (string, error) {
	store, err := graph.Open(ctx, graph.Config(cfg.Neo4j), log)
	if err != nil {
		return "", err
	}
	defer store.Close(ctx)

	return traverse.NewRenderer(store, log).Render(ctx)
}
