package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestColorRun(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "128", core.ColorRed)
	s.DrawText(5, 0, "cd")

	tests := []struct {
		x        int
		wantText string
		wantCol  core.Color
		wantNext int
	}{
		{0, "ab", core.ColorDefault, 2},
		{2, "128", core.ColorRed, 5},
		{5, "cd ", core.ColorDefault, 8},
	}

	for _, tt := range tests {
		text, color, next := colorRun(s, tt.x, 0)
		if text != tt.wantText || color != tt.wantCol || next != tt.wantNext {
			t.Errorf("colorRun(x=%d) = (%q, %v, %d), want (%q, %v, %d)",
				tt.x, text, color, next, tt.wantText, tt.wantCol, tt.wantNext)
		}
	}
}

func TestStyleForCoversPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrightBlue; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
	if styleFor(core.Color(200)).GetForeground() != colorStyles[core.ColorDefault].GetForeground() {
		t.Error("unknown colors should fall back to the default style")
	}
	if !styleFor(core.ColorBrightRed).GetBold() {
		t.Error("bright red should be bold")
	}
}

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawTextColored(0, 1, "2048", core.ColorBrightRed)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("RenderScreen has %d line breaks, want 2", got)
	}
	if !strings.Contains(out, "2048") {
		t.Error("RenderScreen output should contain the drawn text")
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{1, time.Second},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}
