package pipes

import "github.com/vovakirdan/tui-pipes/internal/maze"

// Board is the play-side view of a maze: the current snapshot plus whether
// the player has already solved it. Every method returns a new Board.
type Board struct {
	Maze     maze.Maze
	Finished bool
}

// NewBoard evaluates m and wraps it in an unfinished board.
func NewBoard(m maze.Maze) Board {
	return Board{}.Replace(m)
}

// StartRotation marks index as rotating. A finished board ignores it.
func (b Board) StartRotation(index int) Board {
	if b.Finished {
		return b
	}
	return Board{Maze: maze.BeginRotation(index, b.Maze), Finished: b.Finished}
}

// FinishRotation applies steps quarter turns to index and records whether
// the board is now solved.
func (b Board) FinishRotation(index, steps int) Board {
	m := maze.EndRotationBy(index, steps, b.Maze)
	return Board{Maze: m, Finished: m.VisitedCount() == m.Len()}
}

// Replace discards the current state for m. Connectivity is re-evaluated
// but the board starts unfinished even if m happens to be solved.
func (b Board) Replace(m maze.Maze) Board {
	return Board{Maze: maze.CheckConnected(m)}
}

// Rotating reports whether index has a rotation in flight.
func (b Board) Rotating(index int) bool {
	return b.Maze.Cells[index].Is(maze.Rotating)
}

// Visited reports whether index is connected to the source.
func (b Board) Visited(index int) bool {
	return b.Maze.Cells[index].Is(maze.Visited)
}

// Connected returns the number of cells reachable from the source.
func (b Board) Connected() int {
	return b.Maze.VisitedCount()
}
