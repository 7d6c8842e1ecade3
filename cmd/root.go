package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/sse-session/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	sourcePath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sse-session",
	Short: "Consolidate captured SSE streams into conversation records",
	Long: `A CLI tool to rebuild complete conversation records from raw captured
Server-Sent-Event streams of a chat/completion API.

Captured streams arrive as interleaved delta events (text, thinking and
partial tool-call arguments, each tagged with a content-block index).
sse-session consolidates each capture into an ordered list of complete
entries, merges every group of captures into one browsable dataset and
derives a deduplicated catalog of the tools advertised along the way.

Quick Start:
  sse-session list                       # List capture groups
  sse-session consolidate                # One JSON file per capture
  sse-session merge --tools              # merged.json + tools.json
  sse-session show phase1 req1.txt       # View one consolidated capture

A source is either a directory tree (one subdirectory per group, *.txt
captures inside) or a SQLite archive built with 'sse-session archive'.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&sourcePath, "source", "", "Capture source (directory tree or .db archive, default: current directory)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
