package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive mode picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(highScores(store), cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(scoreReader(store), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		if gameID == t2048.IDCampaign {
			selection, err := tui.RunCampaignMenu(cfg)
			if err != nil {
				return err
			}
			if selection == nil {
				continue
			}
			t2048.SetStartLevel(selection.Level)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("creating mode: %w", err)
		}

		// Fresh seed for each run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting", "mode", gameID, "seed", cfg.Seed)
		if err := tui.Run(game, scoreSaver(store), logger, cfg); err != nil {
			logger.Error("run failed", "mode", gameID, "error", err)
		}
	}
}
