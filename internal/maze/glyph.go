package maze

// glyphs holds the box-drawing rune of every connection set, indexed by the
// set's bit value (Up=1, Right=2, Down=4, Left=8).
var glyphs = []rune(" ╵╶└╷│┌├╴┘─┴┐┤┬┼")

// Glyph returns the box-drawing rune for the connection set.
func (c Connections) Glyph() rune {
	return glyphs[c&Connections(ConnectionMask)]
}

// ParseGlyph returns the connection set drawn by r.
// '.' is accepted as an alternative spelling of the empty cell.
func ParseGlyph(r rune) (Connections, bool) {
	if r == '.' {
		return 0, true
	}
	for conn, g := range glyphs {
		if g == r {
			return Connections(conn), true
		}
	}
	return 0, false
}
