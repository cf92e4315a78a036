// Package pipes implements the rotating-pipe puzzle: turn tiles until every
// cell is connected to the source.
package pipes

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "pipes"

// rotation is a quarter turn waiting for its animation to end.
type rotation struct {
	index int
	steps int
	ticks int // Ticks left before the turn is applied
}

// Game implements the pipe maze puzzle.
type Game struct {
	cfg        config.PipesConfig
	levels     []levels.Level
	startLevel string
	sink       func(core.LevelResult)

	rng  *rand.Rand
	tick uint64

	score          int
	board          Board
	levelIndex     int
	levelStartTick uint64
	rotations      int
	par            int
	cursor         int
	inFlight       []rotation
	lastLevelScore int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	won             bool
	levelCleared    bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
	loadErr         error
}

// Package-level defaults used by the registry factory.
var (
	settingsMu     sync.RWMutex
	settingsConfig = config.DefaultPipesConfig()
	settingsLevels []levels.Level
)

// Configure sets the configuration and campaign used by games created
// through the registry. A nil campaign means the builtin levels.
func Configure(cfg config.PipesConfig, lvls []levels.Level) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settingsConfig = cfg
	settingsLevels = lvls
}

func configured() (config.PipesConfig, []levels.Level) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settingsConfig, settingsLevels
}

// New creates a game over the given campaign.
// A nil campaign loads the builtin levels on first Reset.
func New(cfg config.PipesConfig, lvls []levels.Level) *Game {
	return &Game{cfg: cfg, levels: lvls}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(configured())
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pipe Maze"
}

// SetStartLevel makes Reset begin at the level with the given ID.
// An empty or unknown ID starts from the first level.
func (g *Game) SetStartLevel(id string) {
	g.startLevel = id
}

// SetResultSink registers a callback invoked once per cleared level.
func (g *Game) SetResultSink(sink func(core.LevelResult)) {
	g.sink = sink
}

// Levels returns the campaign being played.
func (g *Game) Levels() []levels.Level {
	return g.levels
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.won = false
	g.levelCleared = false
	g.paused = false
	g.levelClearTicks = 0
	g.lastLevelScore = 0
	g.loadErr = nil

	if g.levels == nil {
		lvls, err := levels.Builtin()
		if err != nil {
			g.loadErr = err
			return
		}
		g.levels = lvls
	}
	if len(g.levels) == 0 {
		g.loadErr = levels.Error.New("no levels to play")
		return
	}

	g.levelIndex = 0
	for i, lvl := range g.levels {
		if lvl.ID == g.startLevel {
			g.levelIndex = i
			break
		}
	}

	g.loadLevel()
}

// Resize updates the screen dimensions without restarting the level.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// loadLevel scrambles the current level onto the board.
func (g *Game) loadLevel() {
	lvl := g.levels[g.levelIndex]

	rng := g.rng
	if g.cfg.Gameplay.FixedLayouts {
		rng = rand.New(rand.NewSource(lvl.FixedSeed()))
	}

	solved, err := lvl.Maze()
	if err != nil {
		g.loadErr = err
		return
	}
	start, err := lvl.Scramble(rng)
	if err != nil {
		g.loadErr = err
		return
	}

	g.board = g.board.Replace(start)
	g.cursor = start.Source
	g.inFlight = g.inFlight[:0]
	g.rotations = 0
	g.levelStartTick = g.tick
	g.par = lvl.Par
	if g.par <= 0 {
		g.par = levels.MinTurns(start, solved)
	}

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the current level.
func (g *Game) checkScreenSize() {
	m := g.board.Maze
	minW := max(m.Columns*cellSize+2, hudWidth)
	minH := m.Rows()*cellSize + 2 + hudHeight + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.loadErr != nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.won {
		g.paused = !g.paused
	}

	if g.paused || g.won {
		return core.StepResult{State: g.State()}
	}

	// Handle level cleared pause
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.cfg.Gameplay.LevelClearTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Restart rescrambles the current level
	if in.Has(core.ActionRestart) {
		g.loadLevel()
		return core.StepResult{State: g.State()}
	}

	g.advanceRotations()
	if g.board.Finished {
		g.clearLevel()
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	switch {
	case in.Has(core.ActionRotate):
		g.startRotation(g.cursor, 1)
	case in.Has(core.ActionRotateBack):
		g.startRotation(g.cursor, -1)
	}

	// Zero-length animations land immediately
	if g.board.Finished {
		g.clearLevel()
	}

	return core.StepResult{State: g.State()}
}

// moveCursor handles one cursor step, clamped to the grid.
func (g *Game) moveCursor(in core.InputFrame) {
	m := g.board.Maze
	col, row := m.Position(g.cursor)

	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	default:
		return
	}

	col = core.Clamp(col, 0, m.Columns-1)
	row = core.Clamp(row, 0, m.Rows()-1)
	g.cursor = m.Index(col, row)
}

// startRotation begins a turn of index. A cell already turning is left alone.
func (g *Game) startRotation(index, steps int) {
	if g.board.Rotating(index) {
		return
	}

	g.board = g.board.StartRotation(index)
	g.rotations++

	if g.cfg.Animation.RotationTicks <= 0 {
		g.board = g.board.FinishRotation(index, steps)
		return
	}
	g.inFlight = append(g.inFlight, rotation{
		index: index,
		steps: steps,
		ticks: g.cfg.Animation.RotationTicks,
	})
}

// advanceRotations counts down in-flight turns and applies finished ones
// in the order they were started.
func (g *Game) advanceRotations() {
	pending := g.inFlight[:0]
	for _, r := range g.inFlight {
		r.ticks--
		if r.ticks > 0 {
			pending = append(pending, r)
			continue
		}
		g.board = g.board.FinishRotation(r.index, r.steps)
	}
	g.inFlight = pending
}

// clearLevel scores the solved board and reports the result.
func (g *Game) clearLevel() {
	g.levelCleared = true
	g.levelClearTicks = 0
	g.inFlight = g.inFlight[:0]

	g.lastLevelScore = g.levelScore()
	g.score += g.lastLevelScore

	if g.sink != nil {
		g.sink(core.LevelResult{
			GameID:    ID,
			LevelID:   g.levels[g.levelIndex].ID,
			Rotations: g.rotations,
			Ticks:     g.tick - g.levelStartTick,
			Score:     g.lastLevelScore,
			Par:       g.par,
		})
	}
}

// levelScore returns the points for the level just cleared.
func (g *Game) levelScore() int {
	s := g.cfg.Scoring
	score := s.LevelBonus - s.RotationPenalty*g.rotations
	if g.rotations <= g.par {
		score += s.ParBonus
	}
	return max(score, s.MinLevelScore)
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= len(g.levels)-1 {
		// Completed all levels
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won || g.loadErr != nil,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// Board returns the current board.
func (g *Game) Board() Board {
	return g.board
}

// Cursor returns the index of the selected cell.
func (g *Game) Cursor() int {
	return g.cursor
}

// currentLevel returns the level being played.
func (g *Game) currentLevel() levels.Level {
	return g.levels[g.levelIndex]
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | Space: Turn | X: Turn back | R: Rescramble | P: Pause | Q: Quit"
}
