// pipes is a rotating-pipe maze puzzle played in the terminal.
//
// Usage:
//
//	pipes list                 - List the levels of the campaign
//	pipes play [level]         - Play the campaign, optionally from a level
//	pipes menu                 - Pick levels interactively
//	pipes serve                - Start SSH server for remote play
//	pipes scores [level]       - Show campaign scores or a level's records
//	pipes check <path>...      - Validate level files
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible scrambles
//	--db <path>           - Set database path (default: ~/.arcade/pipes.db)
//	--levels <dir>        - Load extra levels from a directory
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - Apply a difficulty preset
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLevelsDir  string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipes",
	Short: "Pipe Maze - Connect every pipe to the source",
	Long: `Pipe Maze is a terminal puzzle. Every tile holds a piece of pipe;
turn the tiles until water from the source reaches all of them.

Available commands:
  list     - Show the campaign levels
  play     - Play the campaign directly
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View scores and level records
  check    - Validate level files

Examples:
  pipes list
  pipes play 03
  pipes menu --difficulty hard
  pipes serve --ssh :2222
  pipes check ./levels`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger returns the CLI logger. Debug output is enabled by --verbose.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "pipes",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadGame resolves the game config and campaign from the global flags and
// installs them for games created through the registry.
func loadGame(logger *log.Logger) ([]levels.Level, error) {
	gameCfg, err := config.LoadPipes(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return nil, fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPipesPreset(&gameCfg, preset)
		logger.Debug("applied difficulty preset", "preset", preset)
	}

	campaign, err := levels.Campaign(flagLevelsDir, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded campaign", "levels", len(campaign), "dir", flagLevelsDir)

	pipes.Configure(gameCfg, campaign)
	return campaign, nil
}

// runtimeConfig builds the platform config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the results database. Interactive commands keep running
// without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func fatal(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
