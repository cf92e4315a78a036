package config

import (
	_ "embed"
)

//go:embed defaults/pipes.yaml
var defaultPipesYAML []byte

// DefaultPipesConfig returns the default pipe maze configuration.
func DefaultPipesConfig() PipesConfig {
	return PipesConfig{
		Animation: PipesAnimation{
			RotationTicks: 8,
		},
		Gameplay: PipesGameplay{
			LevelClearTicks: 90,
			FixedLayouts:    false,
		},
		Scoring: PipesScoring{
			LevelBonus:      1000,
			RotationPenalty: 10,
			ParBonus:        250,
			MinLevelScore:   100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pipes":
		return defaultPipesYAML
	default:
		return nil
	}
}
