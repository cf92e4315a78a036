package maze

import "github.com/zyedidia/generic/queue"

// CheckConnected recomputes the Visited flag of every cell.
// It floods outward from the source; a step from a visited cell toward d is
// taken only when the cell opens toward d and the neighbor opens back toward
// d.Opposite(). All other bits are preserved. The input is not modified.
func CheckConnected(m Maze) Maze {
	m.mustCheck()

	out := m.Clone()
	for i, c := range out.Cells {
		out.Cells[i] = c &^ Cell(Visited)
	}

	out.Cells[out.Source] |= Cell(Visited)
	frontier := queue.New[int]()
	frontier.Enqueue(out.Source)

	for !frontier.Empty() {
		index := frontier.Dequeue()
		conn := out.Cells[index].Connections()

		for _, d := range Directions() {
			if !conn.Has(d) {
				continue
			}
			next, ok := out.Neighbor(index, d)
			if !ok {
				continue
			}
			neighbor := out.Cells[next]
			if neighbor.Is(Visited) || !neighbor.Connections().Has(d.Opposite()) {
				continue
			}
			out.Cells[next] = neighbor | Cell(Visited)
			frontier.Enqueue(next)
		}
	}

	return out
}

// BeginRotation marks cells[index] as rotating and re-evaluates connectivity.
// The connection bits are left alone: a tile mid-animation still conducts
// through its pre-rotation openings. Beginning a rotation on a cell that is
// already rotating changes nothing.
func BeginRotation(index int, m Maze) Maze {
	m.mustCheck()
	m.mustIndex(index)

	next := m.Clone()
	next.Cells[index] |= Cell(Rotating)
	return CheckConnected(next)
}

// EndRotation turns cells[index] one quarter clockwise, clears its rotating
// flag and re-evaluates connectivity.
func EndRotation(index int, m Maze) Maze {
	return EndRotationBy(index, 1, m)
}

// EndRotationBy is EndRotation with an arbitrary number of quarter turns.
// Negative steps turn counter-clockwise.
func EndRotationBy(index, steps int, m Maze) Maze {
	m.mustCheck()
	m.mustIndex(index)

	next := m.Clone()
	cell := next.Cells[index]
	status := cell.Status() &^ Rotating
	next.Cells[index] = MustEncode(Rotate(cell.Connections(), steps), status)
	return CheckConnected(next)
}
