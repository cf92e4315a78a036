package maze

import "testing"

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		source  int
		cells   []Cell
		wantErr bool
	}{
		{"valid 2x2", 2, 0, make([]Cell, 4), false},
		{"valid single cell", 1, 0, make([]Cell, 1), false},
		{"zero columns", 0, 0, make([]Cell, 4), true},
		{"negative columns", -2, 0, make([]Cell, 4), true},
		{"no cells", 3, 0, nil, true},
		{"not rectangular", 3, 0, make([]Cell, 4), true},
		{"source past end", 2, 4, make([]Cell, 4), true},
		{"negative source", 2, -1, make([]Cell, 4), true},
		{"undefined bits", 2, 0, []Cell{0, 0, 0, 0x40}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.columns, tc.source, tc.cells)
			if (err != nil) != tc.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewCopiesCells(t *testing.T) {
	cells := []Cell{1, 2, 4, 8}
	m, err := New(2, 0, cells)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	cells[0] = 15
	if m.Cells[0] != 1 {
		t.Error("maze should own its cell slice")
	}
}

func TestNeighbor(t *testing.T) {
	m, _ := New(3, 0, make([]Cell, 6)) // 3 columns, 2 rows

	tests := []struct {
		name   string
		index  int
		dir    Direction
		wantIx int
		wantOK bool
	}{
		{"right of origin", 0, Right, 1, true},
		{"below origin", 0, Down, 3, true},
		{"above origin", 0, Up, 0, false},
		{"left of origin", 0, Left, 0, false},
		{"right edge does not wrap", 2, Right, 0, false},
		{"left edge does not wrap", 3, Left, 0, false},
		{"bottom edge", 4, Down, 0, false},
		{"up from bottom row", 5, Up, 2, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ix, ok := m.Neighbor(tc.index, tc.dir)
			if ok != tc.wantOK || (ok && ix != tc.wantIx) {
				t.Errorf("Neighbor(%d, %v) = %d, %v, expected %d, %v", tc.index, tc.dir, ix, ok, tc.wantIx, tc.wantOK)
			}
		})
	}
}

func TestPositionIndex(t *testing.T) {
	m, _ := New(4, 0, make([]Cell, 12))

	if m.Rows() != 3 {
		t.Errorf("Rows() = %d, expected 3", m.Rows())
	}
	for i := 0; i < m.Len(); i++ {
		col, row := m.Position(i)
		if m.Index(col, row) != i {
			t.Errorf("Index(Position(%d)) = %d", i, m.Index(col, row))
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	m, _ := New(2, 0, []Cell{1, 2, 4, 8})
	c := m.Clone()
	c.Cells[0] = 0

	if m.Cells[0] != 1 {
		t.Error("Clone() should not share cells")
	}
}

func TestString(t *testing.T) {
	m, _ := New(2, 0, []Cell{
		MustEncode(Connections(Right), Visited),
		MustEncode(Connections(Down|Left), 0),
		MustEncode(0, 0),
		MustEncode(Connections(Up), Rotating),
	})

	expected := "╶┐\n ╵"
	if m.String() != expected {
		t.Errorf("String() = %q, expected %q", m.String(), expected)
	}
}
