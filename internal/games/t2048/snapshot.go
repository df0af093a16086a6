package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "classic", "campaign" or "endless"
	Level   int    // Campaign level (1-indexed), 0 outside campaign
	Target  uint32 // Current target tile value, 0 = none
	Score   int
	Moves   int
	Width   int
	Height  int
	Cells   []uint32 // Row-major cell values
	MaxTile uint32
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Level:   level,
		Target:  g.board.Target(),
		Score:   g.board.Score(),
		Moves:   g.moves,
		Width:   g.board.Width(),
		Height:  g.board.Height(),
		Cells:   g.board.Cells(),
		MaxTile: g.board.MaxTile(),
		State:   state,
	}
}
