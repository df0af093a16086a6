package t2048

import "fmt"

// Tile holds the value of a single board cell. The zero Tile is empty.
type Tile struct {
	value uint32
}

// NewTile wraps a raw value. 0 produces an empty tile.
func NewTile(value uint32) Tile {
	return Tile{value: value}
}

// Value returns the raw tile value (0 = empty).
func (t Tile) Value() uint32 {
	return t.value
}

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t.value == 0
}

// MergeWith combines two equal tiles into one holding their sum.
// Merging two empty tiles yields an empty tile.
// Panics if both tiles are non-empty and differ: Board never does that.
// Panics if the sum does not fit in uint32. Reaching a 2^32 tile takes
// billions of moves, so play never gets there.
func (t Tile) MergeWith(other Tile) Tile {
	if t.value != other.value {
		panic(fmt.Sprintf("t2048: cannot merge tiles %d and %d", t.value, other.value))
	}
	sum := t.value + other.value
	if sum < t.value {
		panic(fmt.Sprintf("t2048: tile %d overflows when merged", t.value))
	}
	return Tile{value: sum}
}

// String returns the decimal value, or "." for an empty tile.
func (t Tile) String() string {
	if t.IsEmpty() {
		return "."
	}
	return fmt.Sprintf("%d", t.value)
}
