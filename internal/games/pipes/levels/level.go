// Package levels loads pipe maze puzzles from YAML files.
// A level file stores the solved layout; play starts from a scrambled copy.
package levels

import (
	"hash/fnv"
	"math/rand"

	"github.com/zeebo/errs"

	"github.com/vovakirdan/tui-pipes/internal/maze"
)

// Error is the error class for level loading failures.
var Error = errs.Class("levels")

// scrambleAttempts bounds the re-rolls when a scramble lands on a solved board.
const scrambleAttempts = 16

// Level is a validated puzzle definition.
type Level struct {
	ID       string
	Name     string
	Columns  int
	Source   int
	Par      int   // Target rotation count, 0 when the level does not set one
	Seed     int64 // Scramble seed for fixed layouts, 0 derives one from ID
	Rows     []string
	FilePath string
}

// Height returns the number of rows.
func (l Level) Height() int {
	return len(l.Rows)
}

// Maze builds the solved maze with connectivity evaluated.
func (l Level) Maze() (maze.Maze, error) {
	cells := make([]maze.Cell, 0, l.Columns*len(l.Rows))
	for _, row := range l.Rows {
		for _, r := range row {
			conn, ok := maze.ParseGlyph(r)
			if !ok {
				return maze.Maze{}, Error.New("level %s: unknown glyph %q", l.ID, r)
			}
			cells = append(cells, maze.MustEncode(conn, 0))
		}
	}

	m, err := maze.New(l.Columns, l.Source, cells)
	if err != nil {
		return maze.Maze{}, Error.Wrap(err)
	}
	return maze.CheckConnected(m), nil
}

// Scramble returns the level with every cell turned a random number of
// quarter turns. A result that is already solved is re-rolled; a level made
// only of symmetric tiles may still come back solved.
func (l Level) Scramble(rng *rand.Rand) (maze.Maze, error) {
	solved, err := l.Maze()
	if err != nil {
		return maze.Maze{}, err
	}

	var m maze.Maze
	for attempt := 0; attempt < scrambleAttempts; attempt++ {
		m = solved.Clone()
		for i, c := range m.Cells {
			m.Cells[i] = maze.MustEncode(maze.Rotate(c.Connections(), rng.Intn(4)), 0)
		}
		m = maze.CheckConnected(m)
		if !m.Finished() {
			break
		}
	}
	return m, nil
}

// FixedSeed returns the seed used when layouts must repeat across runs.
func (l Level) FixedSeed() int64 {
	if l.Seed != 0 {
		return l.Seed
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(l.ID))
	return int64(h.Sum64())
}

// MinTurns returns the fewest quarter turns that bring current back to the
// solved layout, counting a counter-clockwise turn as one.
func MinTurns(current, solved maze.Maze) int {
	total := 0
	for i := range current.Cells {
		if i >= len(solved.Cells) {
			break
		}
		want := solved.Cells[i].Connections()
		have := current.Cells[i].Connections()
		for k := 0; k < 4; k++ {
			if maze.Rotate(have, k) == want {
				total += min(k, 4-k)
				break
			}
		}
	}
	return total
}
