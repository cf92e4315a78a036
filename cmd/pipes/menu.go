package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels interactively",
	Long: `Start in interactive mode with a level picker.

Use arrow keys or j/k to navigate, Enter to start from a level and Tab
for the scoreboard. Backing out of a game returns to the picker.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play from the selected level
  Tab          - Scoreboard
  Q            - Quit

Examples:
  pipes menu
  pipes menu --fps 30
  pipes menu --db ./pipes.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger := newLogger()

	campaign, err := loadGame(logger)
	if err != nil {
		fatal(logger, "cannot load game", err)
	}

	store := openStore(logger)
	cfg := runtimeConfig()

	for {
		pick, err := tui.RunLevelPicker(campaign, store, cfg)
		if err != nil {
			logger.Error("level picker failed", "error", err)
			break
		}

		// Update config with any size changes
		cfg = pick.Config

		if pick.Quit {
			break
		}

		if pick.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, campaign, cfg)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			break // User quit from scoreboard
		}

		game, err := registry.Create(pipes.ID)
		if err != nil {
			logger.Error("cannot create game", "error", err)
			break
		}
		if sel, ok := game.(registry.LevelSelector); ok {
			sel.SetStartLevel(pick.LevelID)
		}

		// Fresh scramble for each game unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, runErr := tui.Run(game, store, cfg)
		if runErr != nil {
			logger.Error("error running game", "error", runErr)
			break
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
