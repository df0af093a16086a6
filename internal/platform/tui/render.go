package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// ansiCodes maps core colors to terminal palette indices.
var ansiCodes = map[core.Color]string{
	core.ColorGray:          "245",
	core.ColorWhite:         "7",
	core.ColorBrightWhite:   "15",
	core.ColorYellow:        "3",
	core.ColorBrightYellow:  "11",
	core.ColorOrange:        "208",
	core.ColorRed:           "1",
	core.ColorBrightRed:     "9",
	core.ColorMagenta:       "5",
	core.ColorBrightMagenta: "13",
	core.ColorGreen:         "2",
	core.ColorBrightGreen:   "10",
	core.ColorCyan:          "6",
	core.ColorBrightCyan:    "14",
	core.ColorBlue:          "4",
	core.ColorBrightBlue:    "12",
}

// boldColors are drawn bold so large tiles stand out.
var boldColors = map[core.Color]bool{
	core.ColorBrightRed:     true,
	core.ColorBrightMagenta: true,
	core.ColorBrightGreen:   true,
	core.ColorBrightCyan:    true,
	core.ColorBrightBlue:    true,
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(code)).
			Bold(boldColors[c])
	}
	return styles
}

// styleFor returns the style of c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a color are styled together.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, n := 0, s.Height(); y < n; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			text, color, next := colorRun(s, x, y)
			sb.WriteString(styleFor(color).Render(text))
			x = next
		}
	}
	return sb.String()
}

// colorRun collects the cells of row y starting at x that share the color
// of cell x. It returns the text, its color and the first x after the run.
func colorRun(s *core.Screen, x, y int) (string, core.Color, int) {
	color := s.GetCell(x, y).Color

	var run strings.Builder
	for ; x < s.Width(); x++ {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			break
		}
		run.WriteRune(cell.Rune)
	}
	return run.String(), color, x
}
