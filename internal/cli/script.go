package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/mdgraph/internal/graph"
)

var printScriptCmd = &cobra.Command{
	Use:   "print-script",
	Short: "Print the Cypher script for a document without executing it",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		root, err := parseFile(file)
		if err != nil {
			log.Error("error generating script", "error", err)
			return err
		}
		fmt.Print(graph.CypherScript(root))
		return nil
	},
}

func init() {
	printScriptCmd.Flags().StringP("file", "f", "", "document file to parse")
	_ = printScriptCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(printScriptCmd)
}
