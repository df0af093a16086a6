package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four move directions.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// lineCount returns how many independent lines a move in dir processes.
func (b *Board) lineCount(dir Direction) int {
	if dir == DirUp || dir == DirDown {
		return b.width
	}
	return b.height
}

// lineLen returns the number of cells in each line for dir.
func (b *Board) lineLen(dir Direction) int {
	if dir == DirUp || dir == DirDown {
		return b.height
	}
	return b.width
}

// cellIndex maps (line, pos) to a row-major index. pos 0 is the edge
// tiles are pulled toward.
func (b *Board) cellIndex(dir Direction, line, pos int) int {
	switch dir {
	case DirUp:
		return pos*b.width + line
	case DirDown:
		return (b.height-1-pos)*b.width + line
	case DirLeft:
		return line*b.width + pos
	default: // DirRight
		return line*b.width + (b.width - 1 - pos)
	}
}

// nextOccupied returns the position of the nearest non-empty cell after pos,
// or -1 if the rest of the line is empty.
func (b *Board) nextOccupied(dir Direction, line, pos int) int {
	for p := pos + 1; p < b.lineLen(dir); p++ {
		if !b.tiles[b.cellIndex(dir, line, p)].IsEmpty() {
			return p
		}
	}
	return -1
}

// compactLine pulls one line toward its target edge, merging equal
// neighbours. Returns whether anything moved and the score gained.
//
// The cursor only moves forward, and it advances right after a merge,
// so every cell takes part in at most one merge per move.
func (b *Board) compactLine(dir Direction, line int) (changed bool, gained int) {
	n := b.lineLen(dir)
	pos := 0

	for pos < n-1 {
		next := b.nextOccupied(dir, line, pos)
		if next < 0 {
			break
		}

		cur := b.cellIndex(dir, line, pos)
		src := b.cellIndex(dir, line, next)

		if b.tiles[cur].IsEmpty() {
			// Gravity: pull the tile in and look at this cell again.
			b.tiles[cur] = b.tiles[src]
			b.tiles[src] = Tile{}
			changed = true
			continue
		}

		if b.tiles[cur] == b.tiles[src] {
			b.tiles[cur] = b.tiles[cur].MergeWith(b.tiles[src])
			b.tiles[src] = Tile{}
			gained += int(b.tiles[cur].Value())
			changed = true
		}

		pos++
	}

	return changed, gained
}

// shift compacts every line for dir without spawning.
func (b *Board) shift(dir Direction) (changed bool, gained int) {
	for line, n := 0, b.lineCount(dir); line < n; line++ {
		c, g := b.compactLine(dir, line)
		changed = changed || c
		gained += g
	}
	return changed, gained
}
