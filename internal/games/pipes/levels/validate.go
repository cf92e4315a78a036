package levels

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-pipes/internal/maze"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that a level describes a playable puzzle:
//   - it has an ID and at least one non-empty row
//   - every row is Columns glyphs wide and every glyph is known
//   - the source lies inside the grid
//   - the stored layout is solved, every cell reachable from the source
func Validate(l Level) error {
	if l.ID == "" {
		return ValidationError{Code: "MISSING_ID", Message: "level has no id"}
	}
	if len(l.Rows) == 0 || l.Columns <= 0 {
		return ValidationError{Code: "EMPTY", Message: fmt.Sprintf("level %s has no cells", l.ID)}
	}

	for y, row := range l.Rows {
		if n := utf8.RuneCountInString(row); n != l.Columns {
			return ValidationError{
				Code:    "RAGGED_ROWS",
				Message: fmt.Sprintf("row %d has %d cells, expected %d", y, n, l.Columns),
			}
		}
		x := 0
		for _, r := range row {
			if _, ok := maze.ParseGlyph(r); !ok {
				return ValidationError{
					Code:    "BAD_GLYPH",
					Message: fmt.Sprintf("unknown glyph %q at (%d, %d)", r, x, y),
				}
			}
			x++
		}
	}

	if total := l.Columns * len(l.Rows); l.Source < 0 || l.Source >= total {
		return ValidationError{
			Code:    "BAD_SOURCE",
			Message: fmt.Sprintf("source %d outside [0,%d)", l.Source, total),
		}
	}

	m, err := l.Maze()
	if err != nil {
		return err
	}
	if !m.Finished() {
		return ValidationError{
			Code:    "NOT_SOLVED",
			Message: fmt.Sprintf("only %d of %d cells connect to the source", m.VisitedCount(), m.Len()),
		}
	}

	return nil
}
