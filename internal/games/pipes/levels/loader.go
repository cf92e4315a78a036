package levels

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger // Receives warnings for skipped files, may be nil
}

// NewLoader creates a new level loader.
func NewLoader(root string, logger *log.Logger) *Loader {
	return &Loader{Root: root, Logger: logger}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped and logged.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(p)) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping level file", "path", p, "err", err)
			}
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, Error.New("walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Level{}, Error.Wrap(err)
	}
	return parseAndValidate(data, p)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return Find(levels, id)
}

// Builtin returns the embedded campaign sorted by ID.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, Error.Wrap(err)
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		p := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(p)
		if err != nil {
			return nil, Error.Wrap(err)
		}
		level, err := parseAndValidate(data, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	sortByID(levels)
	return levels, nil
}

// Campaign returns the builtin levels merged with those found in dir.
// A level in dir replaces a builtin level with the same ID. An empty dir
// yields the builtin campaign.
func Campaign(dir string, logger *log.Logger) ([]Level, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return levels, nil
	}

	extra, err := NewLoader(dir, logger).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(levels))
	for i, lvl := range levels {
		byID[lvl.ID] = i
	}
	for _, lvl := range extra {
		if i, ok := byID[lvl.ID]; ok {
			levels[i] = lvl
			continue
		}
		levels = append(levels, lvl)
	}

	sortByID(levels)
	return levels, nil
}

// Find returns the level with the given ID.
func Find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, Error.New("level not found: %s", id)
}

func parseAndValidate(data []byte, p string) (Level, error) {
	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, Error.New("parsing file %s: %w", p, err)
	}
	if err := Validate(level); err != nil {
		return Level{}, Error.New("%s: %w", p, err)
	}
	level.FilePath = p
	return level, nil
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
