package cmd

import (
	"context"
	"fmt"

	"github.com/iksnae/sse-session/internal"
	"github.com/spf13/cobra"
)

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:   "archive <output.db>",
	Short: "Pack a capture tree into a SQLite archive",
	Long: `Copy every group and capture from the source into a single SQLite
database file. The archive preserves group and capture order and can be
passed to any other command via --source.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := args[0]

		source, err := internal.OpenSource(sourcePath)
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer source.Close()

		var groupCount, captureCount int
		ctx := context.Background()
		err = internal.ShowProgress(ctx, "Archiving captures", func() error {
			groupCount, captureCount, err = internal.WriteArchive(source, outPath)
			return err
		})
		if err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf("Archived %d group(s), %d capture(s) to %s", groupCount, captureCount, outPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}
