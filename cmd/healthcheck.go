package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/sse-session/internal"
	"github.com/spf13/cobra"
)

var (
	checkOkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	checkWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	checkFailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	checkInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	checkSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("62")).
				Bold(true).
				Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check if sse-session can open and read the capture source",
	Long: `Check the health of sse-session by verifying:
  • Source path resolution
  • Source accessibility (directory tree or SQLite archive)
  • Group discovery
  • Capture readability

This command is useful for debugging source issues, especially in CI/CD environments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(checkSectionStyle.Render("🔍 SSE Session Health Check"))
		fmt.Println()

		// Step 1: Resolve the source path
		fmt.Println(checkInfoStyle.Render("Step 1: Resolving source path..."))
		path := effectiveSourcePath()
		fmt.Println(checkOkStyle.Render("✅ Source path:"), path)
		fmt.Println()

		// Step 2: Open the source
		fmt.Println(checkInfoStyle.Render("Step 2: Opening capture source..."))
		source, err := internal.OpenSource(sourcePath)
		if err != nil {
			fmt.Println(checkFailStyle.Render("❌ Failed to open source:"), err)
			os.Exit(1)
		}
		defer source.Close()
		fmt.Println(checkOkStyle.Render("✅ Source opened"))
		fmt.Println()

		// Step 3: Discover groups
		fmt.Println(checkInfoStyle.Render("Step 3: Discovering groups..."))
		groups, err := source.ListGroups()
		if err != nil {
			fmt.Println(checkFailStyle.Render("❌ Failed to list groups:"), err)
			os.Exit(1)
		}
		if len(groups) == 0 {
			fmt.Println(checkWarnStyle.Render("⚠️  No groups found"))
		} else {
			fmt.Println(checkOkStyle.Render(fmt.Sprintf("✅ Found %d group(s)", len(groups))))
		}
		fmt.Println()

		// Step 4: Probe capture readability
		fmt.Println(checkInfoStyle.Render("Step 4: Probing capture readability..."))
		captureCount := 0
		unreadable := 0
		for _, group := range groups {
			captures, err := source.ListCaptures(group)
			if err != nil {
				fmt.Println(checkWarnStyle.Render(fmt.Sprintf("⚠️  Failed to list captures in %s: %v", group, err)))
				continue
			}
			captureCount += len(captures)
			for _, capture := range captures {
				if _, err := source.ReadCapture(group, capture); err != nil {
					unreadable++
					internal.LogDebug("Unreadable capture %s/%s: %v", group, capture, err)
				}
			}
		}
		if unreadable > 0 {
			fmt.Println(checkWarnStyle.Render(fmt.Sprintf("⚠️  %d of %d capture(s) unreadable", unreadable, captureCount)))
		} else {
			fmt.Println(checkOkStyle.Render(fmt.Sprintf("✅ All %d capture(s) readable", captureCount)))
		}
		fmt.Println()

		fmt.Println(checkSectionStyle.Render("Summary"))
		fmt.Printf("  Groups:   %d\n", len(groups))
		fmt.Printf("  Captures: %d\n", captureCount)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
