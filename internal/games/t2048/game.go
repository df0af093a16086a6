package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registered game IDs.
const (
	IDClassic  = "2048"
	IDCampaign = "2048_campaign"
	IDEndless  = "2048_endless"
)

// levelClearDelay is how long the "level cleared" banner stays up (2s at 60fps).
const levelClearDelay = 120

// Game adapts a Board to the tick-driven registry.Game interface.
type Game struct {
	mode Mode
	tick uint64

	settings   config.T2048Config
	board      *Board
	difficulty *config.DifficultyManager
	moves      int

	levelIndex int // Current campaign level (0-indexed)

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	won             bool
	levelCleared    bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// Package-level settings shared by all new games.
var (
	settings           = config.DefaultT2048Config()
	selectedStartLevel int
)

// Configure sets the configuration used by games on their next Reset.
func Configure(cfg config.T2048Config) {
	settings = cfg
}

// Settings returns the configuration new games will use.
func Settings() config.T2048Config {
	return settings
}

// SetStartLevel sets the starting campaign level (1-10). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a classic game that ends when the configured target is reached.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewCampaign creates a campaign game with escalating targets.
func NewCampaign() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a game without a target.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDCampaign, func() registry.Game {
		return NewCampaign()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeCampaign:
		return IDCampaign
	case ModeEndless:
		return IDEndless
	default:
		return IDClassic
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeCampaign:
		return "2048 (Campaign)"
	case ModeEndless:
		return "2048 (Endless)"
	default:
		return "2048"
	}
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Board returns the underlying board. Nil before the first Reset.
func (g *Game) Board() *Board {
	return g.board
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.won = false
	g.levelCleared = false
	g.paused = false
	g.levelClearTicks = 0

	g.settings = settings
	g.difficulty = config.NewDifficultyManager(g.settings.Difficulty)

	// Apply selected start level (campaign only)
	g.levelIndex = 0
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	}

	target, base := g.levelParams()
	g.board = NewBoard(
		g.settings.Board.Width,
		g.settings.Board.Height,
		rand.New(rand.NewSource(cfg.Seed)),
		WithTarget(target),
		WithSpawn4Prob(g.spawn4(base, 0)),
	)

	g.checkScreenSize()
}

// levelParams returns the target and base spawn-4 probability for the
// current mode and level.
func (g *Game) levelParams() (target uint32, spawn4 float64) {
	switch g.mode {
	case ModeEndless:
		return 0, g.settings.Spawn.FourProbability
	case ModeCampaign:
		level := GetLevel(g.levelIndex)
		if level == nil {
			level = GetLevel(LevelCount() - 1)
		}
		return level.Target, level.Spawn4
	default:
		return g.settings.Target, g.settings.Spawn.FourProbability
	}
}

// spawn4 returns the spawn-4 probability for the given base and score.
// Campaign levels set their own odds; other modes follow the difficulty
// progression when it is enabled, from the very first tile.
func (g *Game) spawn4(base float64, score int) float64 {
	if g.mode == ModeCampaign || !g.difficulty.IsEnabled() {
		return base
	}
	return g.difficulty.Spawn4(base, score, g.moves)
}

// Resize updates the screen dimensions without restarting the run.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.board != nil {
		g.checkScreenSize()
	}
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	boardW, boardH := boardPixelSize(g.board.Width(), g.board.Height())
	g.tooSmall = g.screenW < boardW+2 || g.screenH < boardH+hudHeight+2
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	var dir Direction
	switch {
	case in.Has(core.ActionUp):
		dir = DirUp
	case in.Has(core.ActionDown):
		dir = DirDown
	case in.Has(core.ActionLeft):
		dir = DirLeft
	case in.Has(core.ActionRight):
		dir = DirRight
	default:
		return core.StepResult{State: g.State()}
	}

	moved := g.processMove(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// processMove applies a move and updates the run state.
// Returns whether the board changed.
func (g *Game) processMove(dir Direction) bool {
	res := g.board.Move(dir)
	if !res.Changed {
		return false
	}
	g.moves++

	if g.mode != ModeCampaign && g.difficulty.IsEnabled() {
		g.board.SetSpawn4Prob(g.spawn4(g.settings.Spawn.FourProbability, g.board.Score()))
	}

	switch res.Status {
	case StatusWon:
		if g.mode == ModeCampaign {
			g.levelCleared = true
			g.levelClearTicks = 0
		} else {
			g.won = true
		}
	case StatusOver:
		g.gameOver = true
	}
	return true
}

// Move applies dir outside the tick loop, for headless play. A cleared
// campaign level advances at once instead of waiting for the banner.
// Returns whether the board changed.
func (g *Game) Move(dir Direction) bool {
	if g.gameOver || g.won {
		return false
	}
	moved := g.processMove(dir)
	if g.levelCleared {
		g.advanceLevel()
	}
	return moved
}

// Level returns the current campaign level (0-indexed).
func (g *Game) Level() int {
	return g.levelIndex
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// advanceLevel moves to the next campaign level, keeping board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	target, spawn4 := g.levelParams()
	g.board.SetTarget(target)
	g.board.SetSpawn4Prob(spawn4)

	// The board may already be stuck: the final spawn of the previous level
	// can fill it.
	if !g.board.CanMove() {
		g.gameOver = true
	}
}

// Status returns the board status as seen by the player.
func (g *Game) Status() Status {
	switch {
	case g.won:
		return StatusWon
	case g.gameOver:
		return StatusOver
	default:
		return StatusPlaying
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
	if g.board != nil {
		st.Score = g.board.Score()
		st.MaxTile = g.board.MaxTile()
		st.BoardW = g.board.Width()
		st.BoardH = g.board.Height()
	}
	return st
}
