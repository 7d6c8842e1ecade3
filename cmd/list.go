package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/sse-session/internal"
	"github.com/spf13/cobra"
)

var (
	listIndexPath string
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	groupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List capture groups",
	Long: `List every group in the capture source with its label and capture count.

When a dataset index written by a previous merge is still valid for the
source, it is used instead of rescanning the captures.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadGroupEntries()
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No capture groups found.")
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Capture Groups (%d)", len(entries))))
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "GROUP\tLABEL\tCAPTURES\tENTRIES")
		for _, entry := range entries {
			label := entry.Label
			if label == entry.Name {
				label = "-"
			}
			entryCount := "-"
			if entry.EntryCount >= 0 {
				entryCount = fmt.Sprintf("%d", entry.EntryCount)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				groupStyle.Render(entry.Name),
				labelStyle.Render(label),
				countStyle.Render(fmt.Sprintf("%d", entry.CaptureCount)),
				entryCount,
			)
		}
		return w.Flush()
	},
}

// loadGroupEntries prefers a still-valid dataset index and falls back to
// scanning the source. Entry counts are only known from an index; a scan
// reports them as -1.
func loadGroupEntries() ([]internal.GroupIndexEntry, error) {
	if listIndexPath != "" {
		im := internal.NewIndexManager(listIndexPath)
		if im.IsValid(effectiveSourcePath()) {
			index, err := im.Load()
			if err == nil {
				internal.LogDebug("using dataset index %s", listIndexPath)
				return index.Groups, nil
			}
			internal.LogWarn("Failed to load index %s: %v, scanning source", listIndexPath, err)
		}
	}

	source, err := internal.OpenSource(sourcePath)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	groups, err := source.ListGroups()
	if err != nil {
		return nil, err
	}

	entries := make([]internal.GroupIndexEntry, 0, len(groups))
	for _, group := range groups {
		label, err := source.GroupLabel(group)
		if err != nil {
			internal.LogWarn("Failed to read label for %s: %v", group, err)
			label = group
		}
		captures, err := source.ListCaptures(group)
		if err != nil {
			internal.LogWarn("Failed to list captures for %s: %v", group, err)
		}
		entries = append(entries, internal.GroupIndexEntry{
			Name:         group,
			Label:        label,
			CaptureCount: len(captures),
			EntryCount:   -1,
		})
	}
	return entries, nil
}

// effectiveSourcePath resolves the source flag like OpenSource does.
func effectiveSourcePath() string {
	if sourcePath != "" {
		return sourcePath
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listIndexPath, "index", "./merged/index.yaml", "Dataset index file to prefer over scanning")
}
