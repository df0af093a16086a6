package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultT2048Config())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  width: 5\n  height: 3\ntarget: 512\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Width != 5 || cfg.Board.Height != 3 {
		t.Errorf("board = %dx%d, want 5x3", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Target != 512 {
		t.Errorf("target = %d, want 512", cfg.Target)
	}
	// Unset fields keep their defaults
	if cfg.Spawn.FourProbability != 0.10 {
		t.Errorf("four_probability = %v, want default 0.10", cfg.Spawn.FourProbability)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing custom path should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "board:\n  width: 1\n  height: 4\n")

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Setenv("PWD", work)
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 4 {
		t.Errorf("default width = %d, want 4", cfg.Board.Width)
	}

	// Local configs directory
	writeFile(t, filepath.Join(work, LocalConfigPath), "board:\n  width: 6\n  height: 6\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 6 {
		t.Errorf("local width = %d, want 6", cfg.Board.Width)
	}

	// User config wins over local
	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "board:\n  width: 3\n  height: 3\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 3 {
		t.Errorf("user width = %d, want 3", cfg.Board.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*T2048Config)
		valid  bool
	}{
		{"defaults", func(*T2048Config) {}, true},
		{"no target", func(c *T2048Config) { c.Target = 0 }, true},
		{"target not power of two", func(c *T2048Config) { c.Target = 1000 }, false},
		{"target too small", func(c *T2048Config) { c.Target = 2 }, false},
		{"width too big", func(c *T2048Config) { c.Board.Width = MaxBoardSize + 1 }, false},
		{"height too small", func(c *T2048Config) { c.Board.Height = 1 }, false},
		{"negative probability", func(c *T2048Config) { c.Spawn.FourProbability = -0.1 }, false},
		{"probability above one", func(c *T2048Config) { c.Spawn.FourProbability = 1.5 }, false},
		{"bad progression", func(c *T2048Config) { c.Difficulty.Progression.Type = "time" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultT2048Config()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled {
		t.Error("hard preset should enable progression")
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("InitialLevel = %v, want 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Spawn.FourProbability != 0.20 {
		t.Errorf("FourProbability = %v, want 0.20", cfg.Spawn.FourProbability)
	}

	cfg = DefaultT2048Config()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultT2048Config()
	ApplyPreset(&cfg, "")
	if cfg != DefaultT2048Config() {
		t.Error("empty preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("normal"); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(normal) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(nightmare) error = %v, want ErrInvalidConfig", err)
	}
}
