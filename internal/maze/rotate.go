package maze

// Rotate turns a connection pattern clockwise by steps quarter turns.
// The four direction bits are rotated circularly; any bits above them are
// dropped, so callers strip status before rotating and re-apply it after.
// Negative steps rotate counter-clockwise.
func Rotate(conn Connections, steps int) Connections {
	n := uint(((steps % 4) + 4) % 4)
	bits := uint8(conn) & uint8(ConnectionMask)
	if n == 0 {
		return Connections(bits)
	}
	return Connections((bits<<n | bits>>(4-n)) & uint8(ConnectionMask))
}
