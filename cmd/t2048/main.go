// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 list              - List available modes
//	t2048 play [mode]       - Play a mode (classic, campaign, endless)
//	t2048 menu              - Start menu to pick modes interactively
//	t2048 scores [mode]     - Show high scores
//	t2048 sim               - Run headless random games and print statistics
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.t2048/scores.db)
//	--config <path>       - Use a custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--width/--height      - Override the board size
//	--target <value>      - Override the classic target tile (0 = none)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagTarget     uint32
	flagLogLevel   string
	flagLogFile    string
)

// Set up in PersistentPreRunE.
var (
	logger    *log.Logger
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board up, down, left or right. Equal tiles that collide merge into
their sum, and a new 2 or 4 appears after every move that changes the board.

Available commands:
  list     - Show all modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores
  sim      - Headless random-move simulation

Examples:
  t2048 play
  t2048 play campaign --level 3
  t2048 play endless --width 5 --height 5
  t2048 scores classic
  t2048 sim --games 500`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagWidth, "width", 0, "Board width (0 = from config)")
	pf.IntVar(&flagHeight, "height", 0, "Board height (0 = from config)")
	pf.Uint32Var(&flagTarget, "target", 0, "Classic target tile, 0 = no target (default from config)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default warn, info with --log-file)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup builds the logger and the game settings shared by all commands.
func setup(cmd *cobra.Command, _ []string) error {
	l, closer, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := loadSettings(cmd.Flags().Changed("target"))
	if err != nil {
		return err
	}
	t2048.Configure(cfg)
	logger.Debug("settings loaded",
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"target", cfg.Target,
		"four_probability", cfg.Spawn.FourProbability,
		"difficulty", cfg.Difficulty.Enabled,
	)
	return nil
}

// newLogger creates the CLI logger. Without a file, logs go to stderr at
// warn level so they don't tear the alternate screen.
func newLogger(level, file string) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	if level == "" {
		level = "warn"
		if file != "" {
			level = "info"
		}
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           lvl,
	})
	return l, closer, nil
}

// loadSettings resolves the config file, the difficulty preset and the
// board flags into one validated configuration.
func loadSettings(targetSet bool) (config.T2048Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.T2048Config{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.T2048Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagWidth != 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight != 0 {
		cfg.Board.Height = flagHeight
	}
	if targetSet {
		cfg.Target = flagTarget
	}

	if err := cfg.Validate(); err != nil {
		return config.T2048Config{}, err
	}
	return cfg, nil
}

// openStore opens the score database. Failure is logged and play continues
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// scoreSaver returns store as a tui.ScoreSaver, keeping a nil store a nil interface.
func scoreSaver(store *storage.Store) tui.ScoreSaver {
	if store == nil {
		return nil
	}
	return store
}

// highScores returns store as a tui.HighScoreReader, keeping a nil store a nil interface.
func highScores(store *storage.Store) tui.HighScoreReader {
	if store == nil {
		return nil
	}
	return store
}

// scoreReader returns store as a tui.ScoreReader, keeping a nil store a nil interface.
func scoreReader(store *storage.Store) tui.ScoreReader {
	if store == nil {
		return nil
	}
	return store
}
