package t2048

import "fmt"

// Default board parameters.
const (
	DefaultSize       = 4
	DefaultTarget     = 2048
	DefaultSpawn4Prob = 0.10
)

// Status is the observable state of a board after a move.
type Status int

const (
	StatusPlaying Status = iota
	StatusOver
	StatusWon
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusOver:
		return "over"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Banner returns the message shown to the player for a terminal status.
func (s Status) Banner() string {
	switch s {
	case StatusOver:
		return "Game Over!"
	case StatusWon:
		return "Victory!"
	default:
		return ""
	}
}

// RandSource supplies randomness for spawning. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// BoardOption customizes a Board at construction.
type BoardOption func(*Board)

// WithTarget sets the tile value that wins the game. 0 disables victory.
func WithTarget(target uint32) BoardOption {
	return func(b *Board) {
		b.target = target
	}
}

// WithSpawn4Prob sets the probability that a spawned tile is a 4.
func WithSpawn4Prob(p float64) BoardOption {
	return func(b *Board) {
		b.spawn4Prob = p
	}
}

// MoveResult describes what a single move did.
type MoveResult struct {
	Changed bool // At least one tile relocated or merged
	Gained  int  // Sum of merge results produced by this move
	Spawned int  // Row-major index of the spawned tile, -1 if none
	Status  Status
}

// Board is a width×height grid of tiles stored in row-major order.
type Board struct {
	tiles      []Tile
	width      int
	height     int
	score      int
	target     uint32
	spawn4Prob float64
	rng        RandSource
}

// NewBoard creates an empty width×height board and spawns one tile.
// Panics if either dimension is not positive or src is nil.
func NewBoard(width, height int, src RandSource, opts ...BoardOption) *Board {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("t2048: invalid board size %dx%d", width, height))
	}
	if src == nil {
		panic("t2048: nil random source")
	}

	b := &Board{
		tiles:      make([]Tile, width*height),
		width:      width,
		height:     height,
		target:     DefaultTarget,
		spawn4Prob: DefaultSpawn4Prob,
		rng:        src,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.spawn()
	return b
}

// Reset clears the grid and score and spawns one tile.
// Dimensions, target and spawn probability are kept.
func (b *Board) Reset() {
	for i := range b.tiles {
		b.tiles[i] = Tile{}
	}
	b.score = 0
	b.spawn()
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Score returns the sum of all merge results since construction or reset.
func (b *Board) Score() int {
	return b.score
}

// Target returns the winning tile value (0 = no target).
func (b *Board) Target() uint32 {
	return b.target
}

// SetTarget changes the winning tile value.
func (b *Board) SetTarget(target uint32) {
	b.target = target
}

// Spawn4Prob returns the probability of spawning a 4.
func (b *Board) Spawn4Prob() float64 {
	return b.spawn4Prob
}

// SetSpawn4Prob changes the probability of spawning a 4.
func (b *Board) SetSpawn4Prob(p float64) {
	b.spawn4Prob = p
}

// Tile returns the tile at (row, col).
func (b *Board) Tile(row, col int) Tile {
	return b.tiles[row*b.width+col]
}

// Cells returns a row-major copy of all cell values.
func (b *Board) Cells() []uint32 {
	cells := make([]uint32, len(b.tiles))
	for i, t := range b.tiles {
		cells[i] = t.Value()
	}
	return cells
}

// Move shifts all tiles toward dir, merging equal neighbours, and spawns a
// tile if anything changed.
func (b *Board) Move(dir Direction) MoveResult {
	res := MoveResult{Spawned: -1}

	res.Changed, res.Gained = b.shift(dir)
	if res.Changed {
		b.score += res.Gained
		res.Spawned = b.spawn()
	}

	res.Status = b.Status()
	return res
}

// Up moves all tiles toward the top row.
func (b *Board) Up() Status {
	return b.Move(DirUp).Status
}

// Down moves all tiles toward the bottom row.
func (b *Board) Down() Status {
	return b.Move(DirDown).Status
}

// Left moves all tiles toward the first column.
func (b *Board) Left() Status {
	return b.Move(DirLeft).Status
}

// Right moves all tiles toward the last column.
func (b *Board) Right() Status {
	return b.Move(DirRight).Status
}

// spawn places a 2 or 4 in a uniformly chosen empty cell.
// Returns the index used, or -1 when the grid is full.
func (b *Board) spawn() int {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return -1
	}

	idx := empty[b.rng.Intn(len(empty))]

	value := uint32(2)
	if b.rng.Float64() < b.spawn4Prob {
		value = 4
	}

	b.tiles[idx] = NewTile(value)
	return idx
}

// EmptyCells returns the row-major indices of all empty cells.
func (b *Board) EmptyCells() []int {
	var cells []int
	for i, t := range b.tiles {
		if t.IsEmpty() {
			cells = append(cells, i)
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (b *Board) HasEmptyCell() bool {
	for _, t := range b.tiles {
		if t.IsEmpty() {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any two adjacent tiles are equal.
func (b *Board) HasPossibleMerge() bool {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			t := b.Tile(y, x)
			if t.IsEmpty() {
				continue
			}
			if x < b.width-1 && b.Tile(y, x+1) == t {
				return true
			}
			if y < b.height-1 && b.Tile(y+1, x) == t {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if some direction would change the grid.
func (b *Board) CanMove() bool {
	return b.HasEmptyCell() || b.HasPossibleMerge()
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() uint32 {
	var maxVal uint32
	for _, t := range b.tiles {
		if t.Value() > maxVal {
			maxVal = t.Value()
		}
	}
	return maxVal
}

// Status derives the game status from the grid. Victory wins over a
// simultaneously stuck grid.
func (b *Board) Status() Status {
	if b.target > 0 && b.MaxTile() >= b.target {
		return StatusWon
	}
	if !b.CanMove() {
		return StatusOver
	}
	return StatusPlaying
}

// String renders the grid as rows of space-separated values.
func (b *Board) String() string {
	var s []byte
	for y := 0; y < b.height; y++ {
		if y > 0 {
			s = append(s, '\n')
		}
		for x := 0; x < b.width; x++ {
			if x > 0 {
				s = append(s, ' ')
			}
			s = append(s, b.Tile(y, x).String()...)
		}
	}
	return string(s)
}
