package maze

import "fmt"

// Maze is an immutable-by-convention snapshot of the puzzle grid.
// Cells are addressed by index = row*Columns + col.
type Maze struct {
	Columns int
	Source  int // flood-fill origin, 0 unless a level says otherwise
	Cells   []Cell
}

// New validates the grid shape and returns a maze that owns a copy of cells.
func New(columns, source int, cells []Cell) (Maze, error) {
	if columns <= 0 {
		return Maze{}, fmt.Errorf("maze: columns must be positive, got %d", columns)
	}
	if len(cells) == 0 {
		return Maze{}, fmt.Errorf("maze: no cells")
	}
	if len(cells)%columns != 0 {
		return Maze{}, fmt.Errorf("maze: %d cells is not a multiple of %d columns", len(cells), columns)
	}
	if source < 0 || source >= len(cells) {
		return Maze{}, fmt.Errorf("maze: source %d outside [0,%d)", source, len(cells))
	}
	for i, c := range cells {
		if !c.Valid() {
			return Maze{}, fmt.Errorf("maze: cell %d has undefined bits %#x", i, uint8(c))
		}
	}

	own := make([]Cell, len(cells))
	copy(own, cells)
	return Maze{Columns: columns, Source: source, Cells: own}, nil
}

// Len returns the number of cells.
func (m Maze) Len() int {
	return len(m.Cells)
}

// Rows returns the grid height.
func (m Maze) Rows() int {
	if m.Columns <= 0 {
		return 0
	}
	return len(m.Cells) / m.Columns
}

// Index returns the flat index of (col, row).
func (m Maze) Index(col, row int) int {
	return row*m.Columns + col
}

// Position returns the column and row of a flat index.
func (m Maze) Position(index int) (col, row int) {
	return index % m.Columns, index / m.Columns
}

// Neighbor returns the index of the cell one step from index in direction d.
// ok is false when that step leaves the grid.
func (m Maze) Neighbor(index int, d Direction) (int, bool) {
	col, row := m.Position(index)
	dx, dy := d.Delta()
	col += dx
	row += dy
	if col < 0 || col >= m.Columns || row < 0 || row >= m.Rows() {
		return 0, false
	}
	return m.Index(col, row), true
}

// Clone returns a deep copy.
func (m Maze) Clone() Maze {
	cells := make([]Cell, len(m.Cells))
	copy(cells, m.Cells)
	return Maze{Columns: m.Columns, Source: m.Source, Cells: cells}
}

// VisitedCount returns how many cells carry the Visited flag.
func (m Maze) VisitedCount() int {
	n := 0
	for _, c := range m.Cells {
		if c.Is(Visited) {
			n++
		}
	}
	return n
}

// Finished reports whether every cell is reachable from the source.
func (m Maze) Finished() bool {
	return len(m.Cells) > 0 && m.VisitedCount() == len(m.Cells)
}

// String draws the grid with one glyph per cell, rows separated by newlines.
func (m Maze) String() string {
	rows := m.Rows()
	out := make([]rune, 0, len(m.Cells)+rows)
	for i, c := range m.Cells {
		if i > 0 && i%m.Columns == 0 {
			out = append(out, '\n')
		}
		out = append(out, c.Connections().Glyph())
	}
	return string(out)
}

// mustCheck panics when the maze breaks the shape invariants or a cell
// carries undefined bits.
func (m Maze) mustCheck() {
	if m.Columns <= 0 || len(m.Cells) == 0 || len(m.Cells)%m.Columns != 0 {
		panic(fmt.Sprintf("maze: malformed grid: %d cells, %d columns", len(m.Cells), m.Columns))
	}
	if m.Source < 0 || m.Source >= len(m.Cells) {
		panic(fmt.Sprintf("maze: source %d outside [0,%d)", m.Source, len(m.Cells)))
	}
	for i, c := range m.Cells {
		if !c.Valid() {
			panic(fmt.Sprintf("maze: cell %d has undefined bits %#x", i, uint8(c)))
		}
	}
}

// mustIndex panics when index is outside the grid.
func (m Maze) mustIndex(index int) {
	if index < 0 || index >= len(m.Cells) {
		panic(fmt.Sprintf("maze: index %d outside [0,%d)", index, len(m.Cells)))
	}
}
