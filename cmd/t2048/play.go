package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: classic).

Modes:
  classic   - Reach the target tile (2048 by default)
  campaign  - Ten levels with rising targets on one board
  endless   - No target, play until the board locks up

Controls:
  Arrows/WASD/HJKL - Slide tiles
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Spawn-4 chance starts low, rises with score
  normal - Starts at 30% of the progression
  hard   - Starts at 70% of the progression
  fixed  - No progression, base spawn-4 chance only

Examples:
  t2048 play
  t2048 play endless --width 6 --height 6
  t2048 play campaign --level 4
  t2048 play classic --target 512 --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-10, 0 = pick from a menu)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := resolveMode(arg)
	if err != nil {
		return err
	}

	if err := validateLevel(gameID, flagLevel); err != nil {
		return err
	}

	cfg := runtimeConfig()

	if gameID == t2048.IDCampaign {
		level := flagLevel
		if level == 0 {
			selection, err := tui.RunCampaignMenu(cfg)
			if err != nil {
				return err
			}
			// User pressed back or quit
			if selection == nil {
				return nil
			}
			level = selection.Level
		}
		t2048.SetStartLevel(level)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating mode: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "mode", gameID, "seed", cfg.Seed)
	if err := tui.Run(game, scoreSaver(store), logger, cfg); err != nil {
		return fmt.Errorf("running mode: %w", err)
	}
	return nil
}

// validateLevel checks the --level flag against the selected mode.
func validateLevel(gameID string, level int) error {
	if level == 0 {
		return nil
	}
	if gameID != t2048.IDCampaign {
		return fmt.Errorf("--level only applies to the campaign mode")
	}
	if level < 0 || level > t2048.LevelCount() {
		return fmt.Errorf("--level must be between 1 and %d, got %d", t2048.LevelCount(), level)
	}
	return nil
}

// runtimeConfig builds the runtime settings from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
