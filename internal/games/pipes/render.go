package pipes

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/maze"
)

const (
	cellSize  = 3 // Each cell is drawn as a 3x3 block
	hudHeight = 3
	hudWidth  = 40 // Minimum width of the HUD lines
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.drawOverlay(dst, g.screenW/2, g.screenH/2, core.ColorRed, "Cannot load levels", g.loadErr.Error())
		return
	}

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	m := g.board.Maze
	boardW := m.Columns*cellSize + 2
	boardH := m.Rows()*cellSize + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardW)

	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)
	g.renderCells(dst, boardX+1, boardY+1)

	if controls := g.Controls(); utf8.RuneCountInString(controls) <= g.screenW {
		dst.DrawTextCenteredColor(boardY+boardH, controls, core.ColorGray)
	}

	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score, level and flow counters.
func (g *Game) renderHUD(dst *core.Screen, boardW int) {
	w := max(boardW, hudWidth)
	left := (g.screenW - w) / 2
	right := left + w

	dst.DrawTextCenteredColor(0, "PIPE MAZE", core.ColorBrightWhite)

	lvl := g.currentLevel()
	dst.DrawText(left, 1, fmt.Sprintf("Score: %d", g.score))
	g.drawRight(dst, right, 1,
		fmt.Sprintf("Level %d/%d  %s", g.levelIndex+1, len(g.levels), lvl.Name), core.ColorDefault)

	dst.DrawText(left, 2, fmt.Sprintf("Turns: %d  Par: %d", g.rotations, g.par))

	flowColor := core.ColorCyan
	if g.board.Finished {
		flowColor = core.ColorBrightGreen
	}
	g.drawRight(dst, right, 2,
		fmt.Sprintf("Flow: %d/%d", g.board.Connected(), g.board.Maze.Len()), flowColor)
}

// drawRight draws text so that it ends just before x.
func (g *Game) drawRight(dst *core.Screen, x, y int, text string, c core.Color) {
	dst.DrawTextColor(x-utf8.RuneCountInString(text), y, text, c)
}

// renderCells draws every cell as a centre glyph with arms toward its openings.
func (g *Game) renderCells(dst *core.Screen, originX, originY int) {
	m := g.board.Maze

	for i, cell := range m.Cells {
		col, row := m.Position(i)
		x0 := originX + col*cellSize
		y0 := originY + row*cellSize
		cx, cy := x0+1, y0+1

		color := g.cellColor(i, cell)
		conn := cell.Connections()

		center := conn.Glyph()
		if conn == 0 {
			center = '·'
		}
		dst.SetWithColor(cx, cy, center, color)

		if conn.Has(maze.Up) {
			dst.SetWithColor(cx, y0, '│', color)
		}
		if conn.Has(maze.Down) {
			dst.SetWithColor(cx, y0+2, '│', color)
		}
		if conn.Has(maze.Left) {
			dst.SetWithColor(x0, cy, '─', color)
		}
		if conn.Has(maze.Right) {
			dst.SetWithColor(x0+2, cy, '─', color)
		}

		if i == g.cursor && !g.levelCleared && !g.won {
			dst.SetWithColor(x0, y0, '╭', core.ColorBrightYellow)
			dst.SetWithColor(x0+2, y0, '╮', core.ColorBrightYellow)
			dst.SetWithColor(x0, y0+2, '╰', core.ColorBrightYellow)
			dst.SetWithColor(x0+2, y0+2, '╯', core.ColorBrightYellow)
		}
	}
}

// cellColor picks the colour of a cell from its state.
func (g *Game) cellColor(index int, cell maze.Cell) core.Color {
	switch {
	case cell.Is(maze.Rotating):
		return core.ColorYellow
	case index == g.board.Maze.Source:
		return core.ColorBrightGreen
	case cell.Is(maze.Visited) && g.board.Finished:
		return core.ColorBrightCyan
	case cell.Is(maze.Visited):
		return core.ColorCyan
	default:
		return core.ColorGray
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightWhite, "PAUSED", "Press P to resume")
		return
	}

	if g.won {
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightGreen,
			"CAMPAIGN COMPLETE!", fmt.Sprintf("Final score: %d", g.score), "Press R to restart")
		return
	}

	if g.levelCleared {
		points := fmt.Sprintf("+%d points in %d turns", g.lastLevelScore, g.rotations)
		if g.levelIndex >= len(g.levels)-1 {
			g.drawOverlay(dst, centerX, centerY, core.ColorBrightGreen, "LEVEL CLEARED!", points, "Final level complete!")
		} else {
			next := fmt.Sprintf("Next: %s", g.levels[g.levelIndex+1].Name)
			g.drawOverlay(dst, centerX, centerY, core.ColorBrightGreen, "LEVEL CLEARED!", points, next)
		}
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, c)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColor(x, boxY+1+i, line, c)
	}
}
