package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 8 // Width of each cell (including left border), fits 6 digits
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3 // Title, score line, mode line
)

// boardPixelSize returns the on-screen size of a board including borders.
func boardPixelSize(cols, rows int) (w, h int) {
	return cols*cellWidth + 1, rows*cellHeight + 1
}

// tileColors walks from cool to hot as tiles double.
var tileColors = map[uint32]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorYellow,
	16:   core.ColorOrange,
	32:   core.ColorRed,
	64:   core.ColorBrightRed,
	128:  core.ColorBrightYellow,
	256:  core.ColorBrightYellow,
	512:  core.ColorMagenta,
	1024: core.ColorBrightMagenta,
	2048: core.ColorBrightGreen,
}

// TileColor returns the display color for a tile value.
func TileColor(value uint32) core.Color {
	if c, ok := tileColors[value]; ok {
		return c
	}
	return core.ColorBrightCyan
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardPixelSize(g.board.Width(), g.board.Height())
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.board.Score()))

	var infoStr string
	switch g.mode {
	case ModeCampaign:
		infoStr = fmt.Sprintf("Lvl %d/%d  Goal %d", g.levelIndex+1, LevelCount(), g.board.Target())
	case ModeClassic:
		infoStr = fmt.Sprintf("Goal %d", g.board.Target())
	default:
		infoStr = fmt.Sprintf("Max %d", g.board.MaxTile())
	}
	infoX := core.Max(boardX+boardW-len(infoStr), boardX)
	dst.DrawText(infoX, 1, infoStr)

	modeStr := map[Mode]string{
		ModeClassic:  "Classic",
		ModeCampaign: "Campaign",
		ModeEndless:  "Endless",
	}[g.mode]
	modeStr = fmt.Sprintf("%s %dx%d", modeStr, g.board.Width(), g.board.Height())
	dst.DrawTextColored(boardX+(boardW-len(modeStr))/2, 2, modeStr, core.ColorGray)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	cols, rows := g.board.Width(), g.board.Height()

	for y := 0; y < rows+1; y++ {
		for x := 0; x < cols+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < cols {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < rows {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			t := g.board.Tile(y, x)
			if t.IsEmpty() {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.FormatUint(uint64(t.Value()), 10)
			padLeft := core.Max((cellWidth-1-len(valStr)+1)/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(t.Value()))
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX, centerY := core.NewRect(boardX, boardY, boardW, boardH).Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")

	case g.levelCleared:
		targetStr := fmt.Sprintf("Target %d reached!", g.board.Target())
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!")
		} else {
			g.drawOverlay(dst, centerX, centerY, targetStr, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}

	case g.won && g.mode == ModeCampaign:
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", fmt.Sprintf("Score: %d", g.board.Score()), "Press R to restart")

	case g.won:
		g.drawOverlay(dst, centerX, centerY, StatusWon.Banner(), fmt.Sprintf("Score: %d", g.board.Score()), "Press R to restart")

	case g.gameOver:
		maxStr := fmt.Sprintf("Max tile: %d", g.board.MaxTile())
		g.drawOverlay(dst, centerX, centerY, StatusOver.Banner(), maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
