package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iksnae/sse-session/internal"
	"github.com/spf13/cobra"
)

var (
	toolsOut string
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Extract the deduplicated tool catalog",
	Long: `Scan every capture of every group for tool definitions and print the
deduplicated catalog as a JSON array. Definitions are keyed by name;
the first complete definition seen for a name wins. Definitions missing
a name, description, or input schema are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := internal.OpenSource(sourcePath)
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer source.Close()

		merger := internal.NewMerger(source)
		_, catalog, err := merger.Merge()
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal tool catalog: %w", err)
		}

		if toolsOut != "" {
			if err := os.WriteFile(toolsOut, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", toolsOut, err)
			}
			internal.PrintSuccess(fmt.Sprintf("Wrote %d tool(s) to %s", catalog.Len(), toolsOut))
			return nil
		}

		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.Flags().StringVarP(&toolsOut, "out", "o", "", "Write the catalog to a file instead of stdout")
}
