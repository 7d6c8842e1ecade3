package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/sse-session/internal"
	"github.com/spf13/cobra"
)

var (
	mergeOut      string
	mergeTools    bool
	mergeNoIndex  bool
	mergeFileName string
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge all groups into one dataset",
	Long: `Consolidate every capture of every group and merge the results into a
single JSON object mapping each group's label to its ordered capture
records. Group discovery order is preserved; merging an unchanged source
twice produces byte-identical output.

With --tools, a deduplicated catalog of the tool definitions recovered
from the captures is written alongside as tools.json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := internal.OpenSource(sourcePath)
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer source.Close()

		var dataset *internal.MergedDataset
		var catalog *internal.ToolCatalog
		var groups []string

		ctx := context.Background()
		err = internal.ShowProgress(ctx, "Merging capture groups", func() error {
			groups, err = source.ListGroups()
			if err != nil {
				return err
			}
			merger := internal.NewMerger(source)
			dataset, catalog, err = merger.Merge()
			return err
		})
		if err != nil {
			return err
		}

		if err := os.MkdirAll(mergeOut, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		mergedPath := filepath.Join(mergeOut, mergeFileName)
		data, err := json.MarshalIndent(dataset, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal dataset: %w", err)
		}
		if err := os.WriteFile(mergedPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", mergedPath, err)
		}
		internal.LogInfo("Wrote %d group(s) to %s", dataset.Len(), mergedPath)

		if mergeTools {
			toolsPath := filepath.Join(mergeOut, "tools.json")
			data, err := json.MarshalIndent(catalog, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal tool catalog: %w", err)
			}
			if err := os.WriteFile(toolsPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", toolsPath, err)
			}
			internal.LogInfo("Wrote %d tool(s) to %s", catalog.Len(), toolsPath)
		}

		if !mergeNoIndex {
			im := internal.NewIndexManager(filepath.Join(mergeOut, "index.yaml"))
			index := internal.BuildIndex(effectiveSourcePath(), groups, dataset)
			if err := im.Save(index); err != nil {
				internal.LogWarn("Failed to write dataset index: %v", err)
			}
		}

		internal.PrintSuccess(fmt.Sprintf("Merge complete: %d group(s) written to %s", dataset.Len(), mergedPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "./merged", "Output directory")
	mergeCmd.Flags().StringVar(&mergeFileName, "name", "merged.json", "Merged dataset file name")
	mergeCmd.Flags().BoolVar(&mergeTools, "tools", false, "Also write the deduplicated tool catalog (tools.json)")
	mergeCmd.Flags().BoolVar(&mergeNoIndex, "no-index", false, "Skip writing the dataset index (index.yaml)")
}
