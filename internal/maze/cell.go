// Package maze is the state engine of the pipe puzzle: the bit-encoded cell
// representation, the rotation transform and the connectivity pass that
// recomputes which cells are reachable from the source.
//
// Everything here is pure. Engine calls take a Maze snapshot and return a new
// one; nothing is retained between calls.
package maze

import "fmt"

// Direction is a single compass opening, stored as one bit.
// The four directions are declared clockwise so that a left circular shift
// is a clockwise quarter turn.
type Direction uint8

const (
	Up Direction = 1 << iota
	Right
	Down
	Left
)

// Connections is the set of directions a cell has an open pipe toward.
type Connections uint8

// Status holds the transient per-cell flags.
type Status uint8

const (
	Rotating Status = 1 << (iota + 4) // rotation animation in flight
	Visited                           // reachable from the source
)

// Cell is one grid position: connection bits in the low nibble, status bits
// above them.
type Cell uint8

// Bit ranges of a cell.
const (
	ConnectionMask Cell = 0x0F
	StatusMask     Cell = Cell(Rotating | Visited)
)

// Directions returns the four directions in clockwise order starting at Up.
func Directions() [4]Direction {
	return [4]Direction{Up, Right, Down, Left}
}

// Opposite returns the direction facing back toward d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Delta returns the column and row offsets of a step in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Has reports whether the set contains an opening toward d.
func (c Connections) Has(d Direction) bool {
	return c&Connections(d) != 0
}

// With returns the set with d added.
func (c Connections) With(d Direction) Connections {
	return c | Connections(d)
}

// Count returns the number of open directions.
func (c Connections) Count() int {
	n := 0
	for _, d := range Directions() {
		if c.Has(d) {
			n++
		}
	}
	return n
}

// Has reports whether all flags in f are set.
func (s Status) Has(f Status) bool {
	return s&f == f
}

// Connections decodes the connection set of the cell.
func (c Cell) Connections() Connections {
	return Connections(c & ConnectionMask)
}

// Status decodes the status flags of the cell.
func (c Cell) Status() Status {
	return Status(c & StatusMask)
}

// Is reports whether the cell carries status flag f.
func (c Cell) Is(f Status) bool {
	return c.Status().Has(f)
}

// WithStatus returns the cell with the status range replaced by s.
func (c Cell) WithStatus(s Status) Cell {
	return c&ConnectionMask | Cell(s)&StatusMask
}

// WithConnections returns the cell with the connection range replaced by conn.
func (c Cell) WithConnections(conn Connections) Cell {
	return c&StatusMask | Cell(conn)&ConnectionMask
}

// Valid reports whether the cell only uses the defined bit ranges.
func (c Cell) Valid() bool {
	return c&^(ConnectionMask|StatusMask) == 0
}

// Encode combines a connection set and status flags into a cell.
// It fails when either argument carries bits outside its own range.
func Encode(conn Connections, status Status) (Cell, error) {
	if Cell(conn)&^ConnectionMask != 0 {
		return 0, fmt.Errorf("maze: connection bits %#x outside range %#x", uint8(conn), uint8(ConnectionMask))
	}
	if Cell(status)&^StatusMask != 0 {
		return 0, fmt.Errorf("maze: status bits %#x outside range %#x", uint8(status), uint8(StatusMask))
	}
	return Cell(conn) | Cell(status), nil
}

// MustEncode is Encode for inputs the caller guarantees are in range.
// It panics otherwise.
func MustEncode(conn Connections, status Status) Cell {
	c, err := Encode(conn, status)
	if err != nil {
		panic(err)
	}
	return c
}
