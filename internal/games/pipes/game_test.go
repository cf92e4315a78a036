package pipes

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/maze"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

func testCampaign() []levels.Level {
	return []levels.Level{
		{ID: "a", Name: "Alpha", Columns: 2, Rows: []string{"╶╴"}},
		{ID: "b", Name: "Beta", Columns: 2, Rows: []string{"┌┐", "└┘"}},
	}
}

func testConfig() config.PipesConfig {
	cfg := config.DefaultPipesConfig()
	cfg.Animation.RotationTicks = 2
	cfg.Gameplay.LevelClearTicks = 3
	return cfg
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(testConfig(), testCampaign())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	if g.loadErr != nil {
		t.Fatalf("Reset failed: %v", g.loadErr)
	}
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func idle(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		press(g)
	}
}

// moveTo walks the cursor to index one step per tick.
func moveTo(g *Game, index int) {
	m := g.board.Maze
	col, row := m.Position(index)
	for {
		c, r := m.Position(g.cursor)
		switch {
		case c < col:
			press(g, core.ActionRight)
		case c > col:
			press(g, core.ActionLeft)
		case r < row:
			press(g, core.ActionDown)
		case r > row:
			press(g, core.ActionUp)
		default:
			return
		}
	}
}

// solve turns every cell of the current level into its solved orientation.
func solve(t *testing.T, g *Game) {
	t.Helper()
	solved, err := g.currentLevel().Maze()
	if err != nil {
		t.Fatal(err)
	}

	for i := range solved.Cells {
		want := solved.Cells[i].Connections()
		for turn := 0; turn < 4; turn++ {
			if g.levelCleared {
				return
			}
			if g.board.Maze.Cells[i].Connections() == want {
				break
			}
			moveTo(g, i)
			press(g, core.ActionRotate)
			idle(g, g.cfg.Animation.RotationTicks)
		}
	}

	if !g.levelCleared {
		t.Fatalf("level %s not cleared after solving:\n%s", g.currentLevel().ID, g.board.Maze)
	}
}

func TestResetStartsScrambled(t *testing.T) {
	g := newTestGame(t, 1)
	snap := g.Snapshot()

	if snap.State != StatePlaying {
		t.Errorf("State = %s, expected playing", snap.State)
	}
	if snap.Level != 1 || snap.LevelID != "a" {
		t.Errorf("level = %d (%s), expected 1 (a)", snap.Level, snap.LevelID)
	}
	if snap.Connected >= snap.Cells {
		t.Errorf("board should start unsolved, %d/%d connected", snap.Connected, snap.Cells)
	}
	if snap.Cursor != 0 {
		t.Errorf("cursor = %d, expected source 0", snap.Cursor)
	}
	if snap.Par < 1 {
		t.Errorf("Par = %d, expected at least one turn", snap.Par)
	}
}

func TestBuiltinCampaign(t *testing.T) {
	g := New(testConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3})

	if g.loadErr != nil {
		t.Fatalf("builtin campaign failed to load: %v", g.loadErr)
	}
	if len(g.Levels()) < 5 {
		t.Errorf("expected builtin levels, got %d", len(g.Levels()))
	}
}

func TestCursorClamped(t *testing.T) {
	g := newTestGame(t, 1)

	press(g, core.ActionLeft)
	press(g, core.ActionUp)
	if g.Cursor() != 0 {
		t.Errorf("cursor = %d, expected to stay at 0", g.Cursor())
	}

	press(g, core.ActionRight)
	press(g, core.ActionRight)
	press(g, core.ActionDown)
	if g.Cursor() != 1 {
		t.Errorf("cursor = %d, expected 1 (clamped to 1x2 grid)", g.Cursor())
	}
}

func TestRotationAnimates(t *testing.T) {
	g := newTestGame(t, 1)
	before := g.board.Maze.Cells[0].Connections()

	press(g, core.ActionRotate)
	if !g.board.Rotating(0) {
		t.Fatal("cell 0 should be rotating")
	}
	if g.Snapshot().InFlight != 1 {
		t.Errorf("InFlight = %d, expected 1", g.Snapshot().InFlight)
	}
	if g.board.Maze.Cells[0].Connections() != before {
		t.Error("connections should not change until the animation ends")
	}

	idle(g, g.cfg.Animation.RotationTicks)
	if g.board.Rotating(0) {
		t.Error("cell 0 should have stopped rotating")
	}
	if got := g.board.Maze.Cells[0].Connections(); got != maze.Rotate(before, 1) {
		t.Errorf("connections = %q, expected %q", got.Glyph(), maze.Rotate(before, 1).Glyph())
	}
	if g.Snapshot().Rotations != 1 {
		t.Errorf("Rotations = %d, expected 1", g.Snapshot().Rotations)
	}
}

func TestRotateWhileRotatingIgnored(t *testing.T) {
	g := newTestGame(t, 1)
	before := g.board.Maze.Cells[0].Connections()

	press(g, core.ActionRotate)
	press(g, core.ActionRotate)
	idle(g, g.cfg.Animation.RotationTicks)

	if g.Snapshot().Rotations != 1 {
		t.Errorf("Rotations = %d, expected second press to be dropped", g.Snapshot().Rotations)
	}
	if got := g.board.Maze.Cells[0].Connections(); got != maze.Rotate(before, 1) {
		t.Errorf("cell turned %q, expected a single quarter turn", got.Glyph())
	}
}

func TestRotateBack(t *testing.T) {
	g := newTestGame(t, 1)
	before := g.board.Maze.Cells[0].Connections()

	press(g, core.ActionRotateBack)
	idle(g, g.cfg.Animation.RotationTicks)

	if g.levelCleared {
		return // the turn happened to solve the level
	}
	if got := g.board.Maze.Cells[0].Connections(); got != maze.Rotate(before, -1) {
		t.Errorf("connections = %q, expected %q", got.Glyph(), maze.Rotate(before, -1).Glyph())
	}
}

func TestInstantRotation(t *testing.T) {
	cfg := testConfig()
	cfg.Animation.RotationTicks = 0
	g := New(cfg, testCampaign())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	before := g.board.Maze.Cells[0].Connections()

	press(g, core.ActionRotate)
	if g.board.Rotating(0) {
		t.Error("zero-tick rotation should land immediately")
	}
	if !g.levelCleared && g.board.Maze.Cells[0].Connections() != maze.Rotate(before, 1) {
		t.Error("cell should have turned")
	}
}

func TestSolveLevelAdvances(t *testing.T) {
	g := newTestGame(t, 1)

	var results []core.LevelResult
	g.SetResultSink(func(r core.LevelResult) {
		results = append(results, r)
	})

	solve(t, g)
	snap := g.Snapshot()
	if snap.State != StateLevelCleared {
		t.Fatalf("State = %s, expected level_cleared", snap.State)
	}
	if !g.State().Paused {
		t.Error("cleared level should report paused")
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 level result, got %d", len(results))
	}
	r := results[0]
	if r.GameID != ID || r.LevelID != "a" {
		t.Errorf("result = %+v", r)
	}
	if r.Rotations != snap.Rotations || r.Score != snap.Score {
		t.Errorf("result %+v does not match snapshot %+v", r, snap)
	}
	if r.Ticks == 0 {
		t.Error("result should record elapsed ticks")
	}

	// Input during the clear pause is ignored
	press(g, core.ActionRotate)
	if g.Snapshot().Rotations != snap.Rotations {
		t.Error("rotation during clear pause should be ignored")
	}

	idle(g, g.cfg.Gameplay.LevelClearTicks)
	snap = g.Snapshot()
	if snap.Level != 2 || snap.LevelID != "b" {
		t.Fatalf("level = %d (%s), expected 2 (b)", snap.Level, snap.LevelID)
	}
	if snap.State != StatePlaying || snap.Rotations != 0 {
		t.Errorf("new level should start fresh, got %+v", snap)
	}
}

func TestCampaignWin(t *testing.T) {
	g := newTestGame(t, 2)

	solve(t, g)
	idle(g, g.cfg.Gameplay.LevelClearTicks)
	solve(t, g)
	idle(g, g.cfg.Gameplay.LevelClearTicks)

	if g.Snapshot().State != StateWin {
		t.Fatalf("State = %s, expected win", g.Snapshot().State)
	}
	if !g.State().GameOver {
		t.Error("winning the campaign should end the game")
	}
	if g.State().Score <= 0 {
		t.Error("score should accumulate")
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 1)

	press(g, core.ActionPause)
	if g.Snapshot().State != StatePaused {
		t.Fatalf("State = %s, expected paused", g.Snapshot().State)
	}

	press(g, core.ActionRotate)
	press(g, core.ActionRight)
	if g.Snapshot().Rotations != 0 || g.Cursor() != 0 {
		t.Error("input should be ignored while paused")
	}

	press(g, core.ActionPause)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("State = %s, expected playing", g.Snapshot().State)
	}
}

func TestDeterministicScramble(t *testing.T) {
	a := newTestGame(t, 42)
	b := newTestGame(t, 42)

	if a.Snapshot().Layout != b.Snapshot().Layout {
		t.Errorf("same seed gave different boards:\n%s\n\n%s", a.Snapshot().Layout, b.Snapshot().Layout)
	}
}

func TestFixedLayouts(t *testing.T) {
	cfg := testConfig()
	config.ApplyPipesPreset(&cfg, config.DifficultyFixed)

	lvls := []levels.Level{{ID: "c", Columns: 3, Rows: []string{"┌┬┐", "└┴┘"}}}
	a := New(cfg, lvls)
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	b := New(cfg, lvls)
	b.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 999})

	if a.Snapshot().Layout != b.Snapshot().Layout {
		t.Error("fixed layouts should not depend on the run seed")
	}
}

func TestRestartRescrambles(t *testing.T) {
	g := newTestGame(t, 1)

	press(g, core.ActionRotate)
	press(g, core.ActionRestart)

	snap := g.Snapshot()
	if snap.Rotations != 0 || snap.InFlight != 0 {
		t.Errorf("restart should reset the level, got %+v", snap)
	}
	if snap.Level != 1 {
		t.Errorf("restart should stay on level 1, got %d", snap.Level)
	}
}

func TestStartLevel(t *testing.T) {
	g := New(testConfig(), testCampaign())
	g.SetStartLevel("b")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if g.Snapshot().LevelID != "b" {
		t.Errorf("LevelID = %s, expected b", g.Snapshot().LevelID)
	}

	g.SetStartLevel("missing")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	if g.Snapshot().LevelID != "a" {
		t.Errorf("unknown start level should fall back to the first, got %s", g.Snapshot().LevelID)
	}
}

func TestEmptyCampaign(t *testing.T) {
	g := New(testConfig(), []levels.Level{})
	g.Reset(core.DefaultConfig())

	if !g.State().GameOver {
		t.Error("empty campaign should end immediately")
	}
	if g.Snapshot().State != StateError {
		t.Errorf("State = %s, expected error", g.Snapshot().State)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Cannot load levels") {
		t.Error("render should explain the load failure")
	}
}

func TestTooSmallAndResize(t *testing.T) {
	g := New(testConfig(), testCampaign())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 5, Seed: 1})

	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("State = %s, expected paused_small_window", g.Snapshot().State)
	}
	press(g, core.ActionRotate)
	if g.Snapshot().Rotations != 0 {
		t.Error("input should be ignored while the window is too small")
	}

	layout := g.Snapshot().Layout
	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("State = %s, expected playing after resize", g.Snapshot().State)
	}
	if g.Snapshot().Layout != layout {
		t.Error("resize should keep the board")
	}
}

func TestLevelScore(t *testing.T) {
	tests := []struct {
		name      string
		rotations int
		par       int
		expected  int
	}{
		{"at par", 4, 4, 1000 - 40 + 250},
		{"under par", 2, 4, 1000 - 20 + 250},
		{"over par", 10, 4, 1000 - 100},
		{"floor", 500, 4, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(config.DefaultPipesConfig(), nil)
			g.rotations = tc.rotations
			g.par = tc.par
			if got := g.levelScore(); got != tc.expected {
				t.Errorf("levelScore() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"PIPE MAZE", "Level 1/2  Alpha", "Turns: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}

	// Board is centered below the HUD; the source centre sits at (x+2, y+2)
	boardW := 2*cellSize + 2
	boardX := (80 - boardW) / 2
	c := screen.GetCell(boardX+2, hudHeight+2)
	if c.Color != core.ColorBrightGreen {
		t.Errorf("source cell colour = %v, expected bright green", c.Color)
	}
	if want := g.board.Maze.Cells[0].Connections().Glyph(); c.Rune != want {
		t.Errorf("source glyph = %q, expected %q", c.Rune, want)
	}
	if screen.GetCell(boardX+1, hudHeight+1).Rune != '╭' {
		t.Error("cursor corner should be drawn on the source cell")
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatal("pipes should be registered")
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Pipe Maze" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.LevelReporter); !ok {
		t.Error("pipes should report level results")
	}
	if _, ok := g.(registry.Resizer); !ok {
		t.Error("pipes should handle resizes")
	}
}
