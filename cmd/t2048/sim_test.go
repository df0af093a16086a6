package main

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestSimulateReproducible(t *testing.T) {
	cfg := config.DefaultT2048Config()
	opts := simOptions{Games: 5, MaxMoves: 500, Mode: t2048.ModeClassic, Seed: 7}

	a := simulate(cfg, opts)
	b := simulate(cfg, opts)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave different results:\n%+v\n%+v", a, b)
	}
}

func TestSimulateTotals(t *testing.T) {
	cfg := config.DefaultT2048Config()

	for _, mode := range []t2048.Mode{t2048.ModeClassic, t2048.ModeCampaign, t2048.ModeEndless} {
		t.Run(string(mode), func(t *testing.T) {
			s := simulate(cfg, simOptions{Games: 10, MaxMoves: 300, Mode: mode, Seed: 1})

			if s.Games != 10 {
				t.Errorf("Games = %d, want 10", s.Games)
			}
			if s.Wins+s.Losses+s.Unfinished != s.Games {
				t.Errorf("outcomes %d+%d+%d do not add up to %d", s.Wins, s.Losses, s.Unfinished, s.Games)
			}
			n := 0
			for _, c := range s.MaxTiles {
				n += c
			}
			if n != s.Games {
				t.Errorf("max tile histogram counts %d games, want %d", n, s.Games)
			}
			if s.TotalMoves > s.Games*300 {
				t.Errorf("TotalMoves = %d exceeds the move budget", s.TotalMoves)
			}
			if s.BestLevel > t2048.LevelCount() {
				t.Errorf("BestLevel = %d", s.BestLevel)
			}
		})
	}
}

func TestSimulateEndlessNeverWins(t *testing.T) {
	cfg := config.DefaultT2048Config()
	cfg.Board.Width, cfg.Board.Height = 2, 2

	s := simulate(cfg, simOptions{Games: 20, MaxMoves: 10000, Mode: t2048.ModeEndless, Seed: 3})
	if s.Wins != 0 {
		t.Errorf("Wins = %d, want 0 without a target", s.Wins)
	}
	// A 2x2 board always locks up well within the budget.
	if s.Losses != s.Games {
		t.Errorf("Losses = %d, want %d", s.Losses, s.Games)
	}
}

func TestSimulateSmallTargetWins(t *testing.T) {
	cfg := config.DefaultT2048Config()
	cfg.Target = 4
	cfg.Spawn.FourProbability = 1

	s := simulate(cfg, simOptions{Games: 5, MaxMoves: 1000, Mode: t2048.ModeClassic, Seed: 11})
	if s.Wins != s.Games {
		t.Errorf("Wins = %d, want %d when every spawn is the target", s.Wins, s.Games)
	}
	if s.BestTile != 4 {
		t.Errorf("BestTile = %d, want 4", s.BestTile)
	}
}

func TestSimulateCampaignAlwaysEnds(t *testing.T) {
	saved := t2048.Levels
	t.Cleanup(func() { t2048.Levels = saved })
	t2048.Levels = []t2048.Level{
		{ID: 1, Name: "Four", Target: 4, Spawn4: 0.10},
		{ID: 2, Name: "Eight", Target: 8, Spawn4: 0.10},
		{ID: 3, Name: "Sixteen", Target: 16, Spawn4: 0.10},
		{ID: 4, Name: "Thirty-two", Target: 32, Spawn4: 0.10},
		{ID: 5, Name: "Sixty-four", Target: 64, Spawn4: 0.10},
	}

	cfg := config.DefaultT2048Config()
	cfg.Board.Width, cfg.Board.Height = 2, 2

	s := simulate(cfg, simOptions{Games: 300, MaxMoves: 10000, Mode: t2048.ModeCampaign, Seed: 5})
	// A 2x2 board always locks up, including right after a level is cleared.
	if s.Unfinished != 0 {
		t.Errorf("Unfinished = %d, want 0 (wins %d, losses %d)", s.Unfinished, s.Wins, s.Losses)
	}
	if s.BestLevel < 1 || s.BestLevel > len(t2048.Levels) {
		t.Errorf("BestLevel = %d, want between 1 and %d", s.BestLevel, len(t2048.Levels))
	}
}

func TestSimStatsAverages(t *testing.T) {
	var empty simStats
	if empty.AvgScore() != 0 || empty.AvgMoves() != 0 {
		t.Error("averages of no games should be 0")
	}

	s := simStats{Games: 4, TotalScore: 100, TotalMoves: 40}
	if s.AvgScore() != 25 {
		t.Errorf("AvgScore = %v, want 25", s.AvgScore())
	}
	if s.AvgMoves() != 10 {
		t.Errorf("AvgMoves = %v, want 10", s.AvgMoves())
	}
	if percent(1, 4) != 25 {
		t.Errorf("percent(1, 4) = %v, want 25", percent(1, 4))
	}
}
