package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show campaign scores or a level's records",
	Long: `Without arguments, display the top 10 campaign scores and the best
result of every cleared level. With a level ID, display that level's top 10
results, fewest turns first.

Examples:
  pipes scores
  pipes scores 03`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	logger := newLogger()

	campaign, err := loadGame(logger)
	if err != nil {
		fatal(logger, "cannot load levels", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal(logger, "cannot open results database", err)
	}
	defer store.Close()

	if len(args) == 1 {
		lvl, err := levels.Find(campaign, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'pipes list' to see available levels.")
			store.Close()
			os.Exit(1)
		}
		if err := printLevelResults(store, lvl); err != nil {
			store.Close()
			fatal(logger, "cannot retrieve results", err)
		}
		return
	}

	if err := printCampaignScores(store, campaign); err != nil {
		store.Close()
		fatal(logger, "cannot retrieve scores", err)
	}
}

func printCampaignScores(store *storage.Store, campaign []levels.Level) error {
	scores, err := store.TopScores(pipes.ID, 10)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Pipe Maze")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No campaign finished yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	best, err := store.BestLevelResults()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Level records")
	fmt.Println()
	fmt.Printf("  %-6s  %-14s  %-6s  %s\n", "Level", "Name", "Turns", "Par")
	fmt.Printf("  %-6s  %-14s  %-6s  %s\n", "-----", "----", "-----", "---")
	for _, lvl := range campaign {
		entry, ok := best[lvl.ID]
		if !ok {
			fmt.Printf("  %-6s  %-14s  %-6s  %s\n", lvl.ID, lvl.Name, "-", "-")
			continue
		}
		fmt.Printf("  %-6s  %-14s  %-6d  %d\n", lvl.ID, lvl.Name, entry.Rotations, entry.Par)
	}
	return nil
}

func printLevelResults(store *storage.Store, lvl levels.Level) error {
	results, err := store.LevelResults(lvl.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Records - %s %s\n", lvl.ID, lvl.Name)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("Level not cleared yet.")
		fmt.Println()
		fmt.Printf("Play 'pipes play %s' to set the first record!\n", lvl.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-4s  %-8s  %-6s  %s\n", "Rank", "Turns", "Par", "Ticks", "Score", "Date")
	fmt.Printf("  %-4s  %-6s  %-4s  %-8s  %-6s  %s\n", "----", "-----", "---", "-----", "-----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-6d  %-4d  %-8d  %-6d  %s\n",
			i+1, r.Rotations, r.Par, r.Ticks, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
