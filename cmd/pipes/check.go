package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Validate level files",
	Long: `Parse and validate level files. Directories are searched recursively.

A level is valid when its rows form a rectangle of known pipe glyphs, its
source lies on the board and the layout as written connects every tile.

Examples:
  pipes check ./levels
  pipes check my-level.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	logger := newLogger()

	var files []string
	for _, arg := range args {
		found, err := levelFiles(arg)
		if err != nil {
			fatal(logger, "cannot read path", err)
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		fmt.Println("No level files found.")
		return
	}

	loader := levels.NewLoader("", logger)
	failed := 0
	for _, p := range files {
		lvl, err := loader.LoadFile(p)
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s\n      %v\n", p, err)
			continue
		}
		fmt.Printf("ok    %s  (%s %s, %dx%d)\n", p, lvl.ID, lvl.Name, lvl.Columns, lvl.Height())
	}

	fmt.Println()
	fmt.Printf("%d checked, %d failed\n", len(files), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// levelFiles expands a path into the level files it names.
func levelFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && slices.Contains(levels.FormatExtensions(), strings.ToLower(filepath.Ext(p))) {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}
