package pipes

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
	StateError        GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Level     int // Current level (1-indexed for display)
	LevelID   string
	Score     int
	Rotations int
	Par       int
	Cursor    int
	InFlight  int    // Rotations still animating
	Connected int    // Cells reachable from the source
	Cells     int    // Total cells
	Layout    string // Current orientations, one glyph per cell
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.loadErr != nil:
		return Snapshot{Tick: g.tick, State: StateError}
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.paused:
		state = StatePaused
	case g.levelCleared:
		state = StateLevelCleared
	}

	return Snapshot{
		Tick:      g.tick,
		Level:     g.levelIndex + 1,
		LevelID:   g.currentLevel().ID,
		Score:     g.score,
		Rotations: g.rotations,
		Par:       g.par,
		Cursor:    g.cursor,
		InFlight:  len(g.inFlight),
		Connected: g.board.Connected(),
		Cells:     g.board.Maze.Len(),
		Layout:    g.board.Maze.String(),
		State:     state,
	}
}
