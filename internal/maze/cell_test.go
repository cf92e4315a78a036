package maze

import "testing"

func TestEncodeDecodeIndependent(t *testing.T) {
	statuses := []Status{0, Rotating, Visited, Rotating | Visited}

	for conn := Connections(0); conn <= 0x0F; conn++ {
		for _, st := range statuses {
			cell, err := Encode(conn, st)
			if err != nil {
				t.Fatalf("Encode(%#x, %#x) failed: %v", conn, st, err)
			}
			if cell.Connections() != conn {
				t.Errorf("Connections() = %#x, expected %#x", cell.Connections(), conn)
			}
			if cell.Status() != st {
				t.Errorf("Status() = %#x, expected %#x", cell.Status(), st)
			}
		}
	}
}

func TestEncodeRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		conn   Connections
		status Status
	}{
		{"connection bit in status range", Connections(0x10), 0},
		{"connection bit above status", Connections(0x80), 0},
		{"status bit in connection range", Connections(Up), Status(0x01)},
		{"status bit above range", 0, Status(0x40)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Encode(tc.conn, tc.status); err == nil {
				t.Errorf("Encode(%#x, %#x) should fail", tc.conn, tc.status)
			}
		})
	}
}

func TestMustEncodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustEncode should panic on out-of-range status")
		}
	}()
	MustEncode(0, Status(0x80))
}

func TestWithStatusKeepsConnections(t *testing.T) {
	cell := MustEncode(Connections(Up|Left), Visited)

	changed := cell.WithStatus(Rotating)
	if changed.Connections() != Connections(Up|Left) {
		t.Errorf("WithStatus() changed connections to %#x", changed.Connections())
	}
	if !changed.Is(Rotating) || changed.Is(Visited) {
		t.Errorf("WithStatus() status = %#x, expected only Rotating", changed.Status())
	}

	turned := cell.WithConnections(Connections(Down))
	if !turned.Is(Visited) {
		t.Error("WithConnections() dropped Visited")
	}
	if turned.Connections() != Connections(Down) {
		t.Errorf("WithConnections() = %#x, expected Down", turned.Connections())
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: Opposite twice should return the same direction", d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v: opposite delta (%d,%d) does not cancel (%d,%d)", d, ox, oy, dx, dy)
		}
	}
}

func TestConnectionsCount(t *testing.T) {
	if got := Connections(0).Count(); got != 0 {
		t.Errorf("Count() of empty set = %d, expected 0", got)
	}
	if got := Connections(Up | Right | Left).Count(); got != 3 {
		t.Errorf("Count() = %d, expected 3", got)
	}
}

func TestGlyphRoundTrip(t *testing.T) {
	seen := make(map[rune]bool)
	for conn := Connections(0); conn <= 0x0F; conn++ {
		g := conn.Glyph()
		if seen[g] {
			t.Errorf("glyph %q used twice", g)
		}
		seen[g] = true

		parsed, ok := ParseGlyph(g)
		if !ok || parsed != conn {
			t.Errorf("ParseGlyph(%q) = %#x, %v, expected %#x", g, parsed, ok, conn)
		}
	}

	if conn, ok := ParseGlyph('.'); !ok || conn != 0 {
		t.Errorf("ParseGlyph('.') = %#x, %v, expected empty set", conn, ok)
	}
	if _, ok := ParseGlyph('x'); ok {
		t.Error("ParseGlyph('x') should fail")
	}
}
