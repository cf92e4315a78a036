// Package config provides YAML-based game configuration loading and
// difficulty presets for the pipe puzzle.
package config

// PipesConfig contains all configuration for the pipe maze game.
type PipesConfig struct {
	Animation PipesAnimation `yaml:"animation"`
	Gameplay  PipesGameplay  `yaml:"gameplay"`
	Scoring   PipesScoring   `yaml:"scoring"`
}

// PipesAnimation defines tick-based animation timing.
type PipesAnimation struct {
	RotationTicks int `yaml:"rotation_ticks"` // Ticks a quarter turn stays in flight
}

// PipesGameplay defines level flow parameters.
type PipesGameplay struct {
	LevelClearTicks int  `yaml:"level_clear_ticks"` // Pause on a solved board before the next level
	FixedLayouts    bool `yaml:"fixed_layouts"`     // Scramble from the level's own seed instead of the run seed
}

// PipesScoring defines how a cleared level is scored.
type PipesScoring struct {
	LevelBonus      int `yaml:"level_bonus"`      // Base points for clearing a level
	RotationPenalty int `yaml:"rotation_penalty"` // Points lost per quarter turn
	ParBonus        int `yaml:"par_bonus"`        // Extra points when finishing at or under par
	MinLevelScore   int `yaml:"min_level_score"`  // Floor for a cleared level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values return false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset scrambles every level the same way each run.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
