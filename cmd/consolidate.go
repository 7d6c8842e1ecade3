package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iksnae/sse-session/internal"
	"github.com/iksnae/sse-session/internal/export"
	"github.com/spf13/cobra"
)

var (
	consolidateFormat string
	consolidateOut    string
	consolidateGroup  string
)

// consolidateCmd represents the consolidate command
var consolidateCmd = &cobra.Command{
	Use:   "consolidate",
	Short: "Consolidate each capture into an entry-list file",
	Long: `Consolidate every capture of the source into one output file per
capture, in the capture's natural sequence order.

The canonical format is json: an ordered array of complete entries
({"type":"text","content":...}, {"type":"thinking","content":...},
{"type":"tool_use","delta":{...}}). jsonl, yaml and md renditions of the
same entries are available for browsing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := internal.OpenSource(sourcePath)
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer source.Close()

		exporter, err := export.NewExporter(consolidateFormat)
		if err != nil {
			return err
		}

		groups, err := source.ListGroups()
		if err != nil {
			return err
		}
		if consolidateGroup != "" {
			groups = filterGroups(groups, consolidateGroup)
			if len(groups) == 0 {
				return fmt.Errorf("group not found: %s (use 'sse-session list' to see available groups)", consolidateGroup)
			}
		}

		assembler := internal.NewAssembler(source)
		written := 0

		ctx := context.Background()
		err = internal.ShowProgress(ctx, fmt.Sprintf("Consolidating %d group(s) to %s", len(groups), consolidateOut), func() error {
			for _, group := range groups {
				names, err := source.ListCaptures(group)
				if err != nil {
					internal.LogWarn("Failed to list captures for %s: %v", group, err)
					continue
				}

				outDir := filepath.Join(consolidateOut, group)
				if err := os.MkdirAll(outDir, 0755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}

				for _, name := range names {
					record, _, err := assembler.AssembleCapture(group, name)
					if err != nil {
						internal.LogError("Failed to consolidate %s/%s: %v", group, name, err)
						continue
					}

					capture := &internal.Capture{Group: group, Name: name, Entries: record}
					outName := strings.TrimSuffix(name, filepath.Ext(name)) + "." + exporter.Extension()
					outPath := filepath.Join(outDir, outName)

					file, err := os.Create(outPath)
					if err != nil {
						internal.LogError("Failed to create file %s: %v", outPath, err)
						continue
					}
					if err := exporter.Export(capture, file); err != nil {
						_ = file.Close()
						internal.LogError("Failed to export %s/%s: %v", group, name, err)
						continue
					}
					if err := file.Close(); err != nil {
						internal.LogWarn("Failed to close file %s: %v", outPath, err)
					}
					written++
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf("Consolidation complete: %d capture(s) written to %s", written, consolidateOut))
		return nil
	},
}

// filterGroups keeps only the named group.
func filterGroups(groups []string, name string) []string {
	for _, group := range groups {
		if group == name {
			return []string{group}
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(consolidateCmd)
	consolidateCmd.Flags().StringVarP(&consolidateFormat, "format", "f", "json", "Output format (json, jsonl, yaml, md)")
	consolidateCmd.Flags().StringVarP(&consolidateOut, "out", "o", "./consolidated", "Output directory")
	consolidateCmd.Flags().StringVar(&consolidateGroup, "group", "", "Consolidate a single group")
}
