package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in 2048 configuration.
// It mirrors defaults/t2048.yaml.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Width:  4,
			Height: 4,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
		Target: 2048,
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				Spawn4Increase: 0.15,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultT2048YAML
}
