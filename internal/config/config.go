// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Board size limits accepted by Validate.
const (
	MinBoardSize = 2
	MaxBoardSize = 12
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board      BoardConfig      `yaml:"board"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Target     uint32           `yaml:"target"` // Winning tile in classic mode, 0 = none
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines how new tiles are chosen.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	Spawn4Increase float64 `yaml:"spawn4_increase"` // Added to four_probability at max difficulty
}

// Validate checks the configuration for values the game cannot run with.
func (c T2048Config) Validate() error {
	if c.Board.Width < MinBoardSize || c.Board.Width > MaxBoardSize {
		return fmt.Errorf("%w: board width %d not in [%d, %d]", ErrInvalidConfig, c.Board.Width, MinBoardSize, MaxBoardSize)
	}
	if c.Board.Height < MinBoardSize || c.Board.Height > MaxBoardSize {
		return fmt.Errorf("%w: board height %d not in [%d, %d]", ErrInvalidConfig, c.Board.Height, MinBoardSize, MaxBoardSize)
	}
	if c.Target != 0 && (c.Target < 4 || c.Target&(c.Target-1) != 0) {
		return fmt.Errorf("%w: target %d must be 0 or a power of two >= 4", ErrInvalidConfig, c.Target)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("%w: four_probability %.2f not in [0, 1]", ErrInvalidConfig, c.Spawn.FourProbability)
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "moves":
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
