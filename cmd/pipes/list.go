package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the campaign levels",
	Long:  `Shows every level of the campaign, including levels loaded with --levels.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	logger := newLogger()

	campaign, err := loadGame(logger)
	if err != nil {
		fatal(logger, "cannot load levels", err)
	}

	if len(campaign) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Campaign levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, lvl := range campaign {
		maxIDLen = max(maxIDLen, len(lvl.ID))
		maxNameLen = max(maxNameLen, len(lvl.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Source")
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "------")

	for _, lvl := range campaign {
		size := fmt.Sprintf("%dx%d", lvl.Columns, lvl.Height())
		origin := "builtin"
		if !strings.HasPrefix(lvl.FilePath, "builtin/") {
			origin = lvl.FilePath
		}
		fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, lvl.ID, maxNameLen, lvl.Name, size, origin)
	}

	fmt.Println()
	fmt.Println("Run 'pipes play <id>' to start from a level.")
}
