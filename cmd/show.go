package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/sse-session/internal"
	"github.com/spf13/cobra"
)

var (
	showRaw bool
)

var (
	// Styles for show command
	captureHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	captureMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				MarginBottom(1)

	textEntryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1)

	thinkingEntryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	toolEntryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true).
			Padding(0, 1)

	entryContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <group> <capture>",
	Short: "Show the consolidated record of one capture",
	Long: `Consolidate a single capture and display its ordered block entries.

Text and thinking entries are shown as accumulated content; tool_use
entries show the final raw delta of their block.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		group, capture := args[0], args[1]

		source, err := internal.OpenSource(sourcePath)
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer source.Close()

		assembler := internal.NewAssembler(source)
		record, tools, err := assembler.AssembleCapture(group, capture)
		if err != nil {
			return fmt.Errorf("failed to consolidate capture: %w", err)
		}

		label, err := source.GroupLabel(group)
		if err != nil {
			label = group
		}

		fmt.Println(captureHeaderStyle.Render(fmt.Sprintf("%s / %s", label, capture)))
		fmt.Println(captureMetaStyle.Render(fmt.Sprintf("%d entries, %d tool definition(s)", len(record), len(tools))))

		for i, entry := range record {
			switch entry.Type {
			case internal.EntryText:
				fmt.Println(textEntryStyle.Render(fmt.Sprintf("[%d] text", i)))
				fmt.Println(entryContentStyle.Render(entry.Content))
			case internal.EntryThinking:
				fmt.Println(thinkingEntryStyle.Render(fmt.Sprintf("[%d] thinking", i)))
				fmt.Println(entryContentStyle.Render(entry.Content))
			case internal.EntryToolUse:
				fmt.Println(toolEntryStyle.Render(fmt.Sprintf("[%d] tool_use", i)))
				if showRaw {
					fmt.Println(entryContentStyle.Render(string(entry.Delta)))
				} else {
					fmt.Println(entryContentStyle.Render(summarizeDelta(entry.Delta)))
				}
			}
		}

		return nil
	},
}

// summarizeDelta renders a tool_use delta on a single trimmed line.
func summarizeDelta(delta []byte) string {
	s := strings.Join(strings.Fields(string(delta)), " ")
	if len(s) > 120 {
		s = s[:117] + "..."
	}
	return s
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print tool_use deltas without truncation")
}
