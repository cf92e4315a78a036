package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign",
	Long: `Start playing the campaign, from the first level or the given one.

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Space/Enter      - Turn the tile clockwise
  X/Backspace      - Turn the tile counter-clockwise
  R                - Rescramble the level (new campaign after the last level)
  P                - Pause
  B/Esc            - Back (while paused or finished)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Cheaper turns and faster animation
  normal - Default scoring
  hard   - Turns cost double and no par bonus
  fixed  - Every level is scrambled the same way each run

Examples:
  pipes play
  pipes play 04
  pipes play --difficulty fixed
  pipes play --levels ./my-levels --config ./pipes.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	logger := newLogger()

	campaign, err := loadGame(logger)
	if err != nil {
		fatal(logger, "cannot load game", err)
	}

	startLevel := ""
	if len(args) == 1 {
		if _, err := levels.Find(campaign, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'pipes list' to see available levels.")
			os.Exit(1)
		}
		startLevel = args[0]
	}

	game, err := registry.Create(pipes.ID)
	if err != nil {
		fatal(logger, "cannot create game", err)
	}
	if sel, ok := game.(registry.LevelSelector); ok {
		sel.SetStartLevel(startLevel)
	}

	store := openStore(logger)

	_, runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal(logger, "error running game", runErr)
	}
}
