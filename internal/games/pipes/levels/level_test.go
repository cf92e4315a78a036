package levels

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/maze"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: "t1"
name: "Test"
source: 1
par: 3
rows:
  - "╶┬╴"
  - " ╵ "
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if lvl.ID != "t1" || lvl.Name != "Test" {
		t.Errorf("got id=%q name=%q", lvl.ID, lvl.Name)
	}
	if lvl.Columns != 3 {
		t.Errorf("Columns = %d, expected 3 (inferred)", lvl.Columns)
	}
	if lvl.Height() != 2 {
		t.Errorf("Height() = %d, expected 2", lvl.Height())
	}
	if lvl.Source != 1 || lvl.Par != 3 {
		t.Errorf("source=%d par=%d, expected 1 and 3", lvl.Source, lvl.Par)
	}
}

func TestParseYAMLNameDefaultsToID(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: x\nrows: [\"╶╴\"]\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.Name != "x" {
		t.Errorf("Name = %q, expected id fallback", lvl.Name)
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	_, err := ParseYAML([]byte("rows: [\"╶╴\""))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "levels") {
		t.Errorf("error %v should belong to the levels class", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		lvl  Level
		code string
	}{
		{"valid", Level{ID: "a", Columns: 2, Rows: []string{"╶╴"}}, ""},
		{"dots are empty cells", Level{ID: "a", Columns: 1, Rows: []string{"."}}, ""},
		{"missing id", Level{Columns: 2, Rows: []string{"╶╴"}}, "MISSING_ID"},
		{"no rows", Level{ID: "a", Columns: 2}, "EMPTY"},
		{"ragged", Level{ID: "a", Columns: 2, Rows: []string{"╶╴", "┼"}}, "RAGGED_ROWS"},
		{"bad glyph", Level{ID: "a", Columns: 2, Rows: []string{"╶x"}}, "BAD_GLYPH"},
		{"bad source", Level{ID: "a", Columns: 2, Source: 2, Rows: []string{"╶╴"}}, "BAD_SOURCE"},
		{"not solved", Level{ID: "a", Columns: 2, Rows: []string{"╶╵"}}, "NOT_SOLVED"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.lvl)
			if tc.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Code != tc.code {
				t.Errorf("Code = %q, expected %q", ve.Code, tc.code)
			}
		})
	}
}

func TestLevelMaze(t *testing.T) {
	lvl := Level{ID: "a", Columns: 3, Source: 0, Rows: []string{"┌┬┐", "└┴┘"}}

	m, err := lvl.Maze()
	if err != nil {
		t.Fatalf("Maze() failed: %v", err)
	}
	if m.Columns != 3 || m.Len() != 6 {
		t.Errorf("maze is %d cells over %d columns", m.Len(), m.Columns)
	}
	if !m.Finished() {
		t.Errorf("solved layout should be finished:\n%s", m)
	}
	if m.String() != "┌┬┐\n└┴┘" {
		t.Errorf("String() = %q", m.String())
	}
}

func TestScramble(t *testing.T) {
	lvl := Level{ID: "a", Columns: 3, Rows: []string{"┌┬┐", "└┴┘"}}
	solved, err := lvl.Maze()
	if err != nil {
		t.Fatal(err)
	}

	m, err := lvl.Scramble(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Scramble failed: %v", err)
	}
	if m.Finished() {
		t.Error("scrambled board should not start solved")
	}
	for i := range m.Cells {
		if m.Cells[i].Is(maze.Rotating) {
			t.Errorf("cell %d should not start rotating", i)
		}
		// Only orientation changes
		if m.Cells[i].Connections().Count() != solved.Cells[i].Connections().Count() {
			t.Errorf("cell %d changed its tile", i)
		}
	}
}

func TestScrambleDeterministic(t *testing.T) {
	lvl := Level{ID: "a", Columns: 3, Rows: []string{"┌┬┐", "└┴┘"}}

	a, _ := lvl.Scramble(rand.New(rand.NewSource(7)))
	b, _ := lvl.Scramble(rand.New(rand.NewSource(7)))
	if a.String() != b.String() {
		t.Errorf("same seed gave different boards:\n%s\n\n%s", a, b)
	}
}

func TestScrambleSymmetricLevel(t *testing.T) {
	// Every rotation of a cross is a cross; the board cannot be unsolved.
	lvl := Level{ID: "a", Columns: 1, Rows: []string{"┼"}}
	m, err := lvl.Scramble(rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Scramble failed: %v", err)
	}
	if !m.Finished() {
		t.Error("single cross should stay solved")
	}
}

func TestMinTurns(t *testing.T) {
	lvl := Level{ID: "a", Columns: 3, Rows: []string{"┌┬┐", "└┴┘"}}
	solved, _ := lvl.Maze()

	if got := MinTurns(solved, solved); got != 0 {
		t.Errorf("MinTurns(solved) = %d, expected 0", got)
	}

	m := maze.EndRotationBy(0, 1, solved)
	m = maze.EndRotationBy(1, 2, m)
	m = maze.EndRotationBy(2, 3, m)
	// One turn back, two either way, one forward
	if got := MinTurns(m, solved); got != 4 {
		t.Errorf("MinTurns() = %d, expected 4", got)
	}
}

func TestFixedSeed(t *testing.T) {
	a := Level{ID: "03"}
	if a.FixedSeed() != (Level{ID: "03"}).FixedSeed() {
		t.Error("seed should be stable for an ID")
	}
	if a.FixedSeed() == (Level{ID: "04"}).FixedSeed() {
		t.Error("different IDs should get different seeds")
	}
	if (Level{ID: "03", Seed: 99}).FixedSeed() != 99 {
		t.Error("explicit seed should win")
	}
}
