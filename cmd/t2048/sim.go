package main

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagSimGames int
	flagSimMoves int
	flagSimMode  string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play random games headlessly and print statistics",
	Long: `Run many games with uniformly random moves and report how far they got.
Useful for checking a board size, target or difficulty preset.

Examples:
  t2048 sim
  t2048 sim --games 1000 --mode endless
  t2048 sim --width 3 --height 3 --target 256 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 100, "Number of games to play")
	simCmd.Flags().IntVar(&flagSimMoves, "moves", 10000, "Move attempts per game before giving up")
	simCmd.Flags().StringVar(&flagSimMode, "mode", "classic", "Mode to simulate: classic, campaign, endless")
}

// simOptions configures a headless simulation.
type simOptions struct {
	Games    int
	MaxMoves int
	Mode     t2048.Mode
	Seed     int64
}

// simStats aggregates the outcome of a simulation.
type simStats struct {
	Games      int
	Wins       int
	Losses     int
	Unfinished int
	BestScore  int
	TotalScore int64
	TotalMoves int
	BestTile   uint32
	BestLevel  int            // Highest campaign level cleared
	MaxTiles   map[uint32]int // Final max tile -> games
}

// AvgScore returns the mean final score.
func (s simStats) AvgScore() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Games)
}

// AvgMoves returns the mean number of moves that changed the board.
func (s simStats) AvgMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.Games)
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimGames <= 0 {
		return fmt.Errorf("--games must be positive, got %d", flagSimGames)
	}
	if flagSimMoves <= 0 {
		return fmt.Errorf("--moves must be positive, got %d", flagSimMoves)
	}

	mode := t2048.Mode(flagSimMode)
	switch mode {
	case t2048.ModeClassic, t2048.ModeCampaign, t2048.ModeEndless:
	default:
		return fmt.Errorf("unknown --mode %q (want classic, campaign or endless)", flagSimMode)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := t2048.Settings()
	opts := simOptions{Games: flagSimGames, MaxMoves: flagSimMoves, Mode: mode, Seed: seed}

	start := time.Now()
	stats := simulate(cfg, opts)
	logger.Info("simulation finished", "games", stats.Games, "elapsed", time.Since(start))

	printSimStats(cfg, opts, stats)
	return nil
}

// simulate plays opts.Games random games with cfg. Game i uses seed
// opts.Seed+i, so a run is reproducible for a fixed seed.
func simulate(cfg config.T2048Config, opts simOptions) simStats {
	t2048.Configure(cfg)
	stats := simStats{MaxTiles: make(map[uint32]int)}

	for i := 0; i < opts.Games; i++ {
		seed := opts.Seed + int64(i)
		g := simulateGame(opts, seed)

		score := g.Board().Score()
		tile := g.Board().MaxTile()
		stats.Games++
		stats.TotalScore += int64(score)
		stats.TotalMoves += g.Moves()
		stats.MaxTiles[tile]++
		stats.BestScore = max(stats.BestScore, score)
		stats.BestTile = max(stats.BestTile, tile)

		cleared := g.Level()
		switch g.Status() {
		case t2048.StatusWon:
			stats.Wins++
			if opts.Mode == t2048.ModeCampaign {
				cleared = t2048.LevelCount()
			}
		case t2048.StatusOver:
			stats.Losses++
		default:
			stats.Unfinished++
		}
		if opts.Mode == t2048.ModeCampaign {
			stats.BestLevel = max(stats.BestLevel, cleared)
		}
	}

	return stats
}

// simulateGame plays one game of opts.Mode with uniformly random moves
// until it ends or opts.MaxMoves attempts are used up.
func simulateGame(opts simOptions, seed int64) *t2048.Game {
	var g *t2048.Game
	switch opts.Mode {
	case t2048.ModeCampaign:
		g = t2048.NewCampaign()
	case t2048.ModeEndless:
		g = t2048.NewEndless()
	default:
		g = t2048.New()
	}

	rc := core.DefaultConfig()
	rc.Seed = seed
	g.Reset(rc)

	// Directions come from their own stream so they don't mirror the spawns.
	rng := rand.New(rand.NewSource(seed ^ 0x2048))
	dirs := t2048.Directions
	for attempt := 0; attempt < opts.MaxMoves && g.Status() == t2048.StatusPlaying; attempt++ {
		g.Move(dirs[rng.Intn(len(dirs))])
	}
	return g
}

func printSimStats(cfg config.T2048Config, opts simOptions, s simStats) {
	fmt.Printf("Simulation - %s, %dx%d board, seed %d\n", opts.Mode, cfg.Board.Width, cfg.Board.Height, opts.Seed)
	fmt.Println()
	fmt.Printf("  Games:       %d\n", s.Games)
	fmt.Printf("  Won:         %d (%.1f%%)\n", s.Wins, percent(s.Wins, s.Games))
	fmt.Printf("  Lost:        %d\n", s.Losses)
	fmt.Printf("  Unfinished:  %d\n", s.Unfinished)
	fmt.Printf("  Best score:  %d\n", s.BestScore)
	fmt.Printf("  Avg score:   %.0f\n", s.AvgScore())
	fmt.Printf("  Avg moves:   %.0f\n", s.AvgMoves())
	fmt.Printf("  Best tile:   %d\n", s.BestTile)
	if opts.Mode == t2048.ModeCampaign {
		fmt.Printf("  Best level:  %d/%d\n", s.BestLevel, t2048.LevelCount())
	}

	tiles := make([]uint32, 0, len(s.MaxTiles))
	for tile := range s.MaxTiles {
		tiles = append(tiles, tile)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] > tiles[j] })

	fmt.Println()
	fmt.Println("  Max tile distribution:")
	for _, tile := range tiles {
		n := s.MaxTiles[tile]
		fmt.Printf("    %6d  %5d  %5.1f%%\n", tile, n, percent(n, s.Games))
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
