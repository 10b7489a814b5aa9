// Package cli wires the mdgraph commands together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dgallion1/mdgraph/internal/config"
)

// LevelTrace sits below slog's DEBUG, matching the most verbose -vvv
// setting.
const LevelTrace = slog.Level(-8)

var (
	v         = viper.New()
	verbosity int
	log       *slog.Logger
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mdgraph",
	Short: "Parse documents into Neo4j graphs and traverse them",
	Long: `mdgraph converts a document (Markdown first; plain text, HTML,
DOCX, PDF and CSV also work) into a hierarchical graph of heading and
paragraph nodes linked by CONTAINS edges, persists it to Neo4j, and can
traverse the persisted graph back into Markdown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; ignore a missing file.
		_ = godotenv.Load()

		config.Bind(v)
		cfg = config.Load(v)
		log = newLogger(verbosity, os.Stderr)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", "increase logging verbosity (repeatable)")
	pf.StringP("uri", "u", "", "Neo4j URI")
	pf.String("username", "", "Neo4j username")
	pf.String("password", "", "Neo4j password")

	_ = v.BindPFlag("neo4j.uri", pf.Lookup("uri"))
	_ = v.BindPFlag("neo4j.username", pf.Lookup("username"))
	_ = v.BindPFlag("neo4j.password", pf.Lookup("password"))
}

// Execute runs the root command. Any failure has already been logged by
// the failing command; flag-parse errors happen before the logger
// exists and get a plain stderr line instead.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if log == nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// newLogger builds the logger instance shared by one command
// invocation. Levels: 0=ERROR, 1=INFO, 2=DEBUG, 3+=TRACE.
func newLogger(verbosity int, w io.Writer) *slog.Logger {
	var level slog.Level
	switch {
	case verbosity <= 0:
		level = slog.LevelError
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity == 2:
		level = slog.LevelDebug
	default:
		level = LevelTrace
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lv, ok := a.Value.Any().(slog.Level); ok && lv == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	})
	return slog.New(handler)
}
