package tui

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// stubGame ends its run after a fixed number of steps.
type stubGame struct {
	resets   int
	steps    int
	endAfter int
	score    int
	last     core.InputFrame
}

func (g *stubGame) ID() string {
	return "stub"
}

func (g *stubGame) Title() string {
	return "Stub"
}

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		MaxTile:  64,
		BoardW:   4,
		BoardH:   4,
		GameOver: g.endAfter > 0 && g.steps >= g.endAfter,
	}
}

// resizableGame also follows terminal resizes.
type resizableGame struct {
	stubGame
	width, height int
}

func (g *resizableGame) Resize(width, height int) {
	g.width, g.height = width, height
}

type fakeSaver struct {
	records []storage.ScoreRecord
	err     error
}

func (s *fakeSaver) SaveScore(rec storage.ScoreRecord) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.records = append(s.records, rec)
	return int64(len(s.records)), nil
}

func newTestModel(game *stubGame, saver ScoreSaver) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	m := NewModel(game, saver, log.New(io.Discard), cfg)
	m.Init()
	return m
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelSavesScoreOnce(t *testing.T) {
	game := &stubGame{endAfter: 2, score: 128}
	saver := &fakeSaver{}
	m := newTestModel(game, saver)

	m = tick(t, m)
	if len(saver.records) != 0 {
		t.Fatalf("saved %d records before game over", len(saver.records))
	}

	m = tick(t, m)
	m = tick(t, m)

	if len(saver.records) != 1 {
		t.Fatalf("saved %d records, want 1", len(saver.records))
	}
	rec := saver.records[0]
	if rec.GameID != "stub" || rec.Score != 128 || rec.MaxTile != 64 || rec.Width != 4 || rec.Height != 4 {
		t.Errorf("record = %+v", rec)
	}
	if rec.RunID == "" || rec.RunID != m.runID {
		t.Errorf("RunID = %q, want %q", rec.RunID, m.runID)
	}
}

func TestModelSkipsEmptyRun(t *testing.T) {
	game := &stubGame{endAfter: 1}
	saver := &fakeSaver{}
	m := newTestModel(game, saver)

	m = tick(t, m)
	if len(saver.records) != 0 {
		t.Errorf("saved %d records for a zero score", len(saver.records))
	}
	if !m.scoreSaved {
		t.Error("scoreSaved should be set even when nothing is stored")
	}
}

func TestModelSaveErrorIsNotFatal(t *testing.T) {
	game := &stubGame{endAfter: 1, score: 8}
	m := newTestModel(game, &fakeSaver{err: errors.New("disk full")})

	m = tick(t, m)
	if !m.scoreSaved {
		t.Error("a failed save should not be retried every tick")
	}
}

func TestModelRestart(t *testing.T) {
	game := &stubGame{endAfter: 1, score: 8}
	saver := &fakeSaver{}
	m := newTestModel(game, saver)

	m, _ = pressKey(t, m, runeKey('r'))
	if m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart should be ignored while playing")
	}

	m = tick(t, m)
	firstRun := m.runID

	m, _ = pressKey(t, m, runeKey('r'))
	m = tick(t, m)

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.runID == firstRun {
		t.Error("restart should start a new run ID")
	}
	if m.scoreSaved {
		t.Error("scoreSaved should reset on restart")
	}

	// The next run saves its own record.
	m = tick(t, m)
	if len(saver.records) != 2 || saver.records[1].RunID != m.runID {
		t.Errorf("records = %+v, want a second record for the new run", saver.records)
	}
}

func TestModelKeysReachGame(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, nil)

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)
	if !game.last.Has(core.ActionLeft) {
		t.Error("left arrow should reach the game as ActionLeft")
	}

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m)
	if !game.last.Has(core.ActionPause) {
		t.Error("esc should pause")
	}

	// Input is cleared between ticks.
	tick(t, m)
	if game.last.Has(core.ActionPause) {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{}, nil)

	m, cmd := pressKey(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2 for a mode without Resize", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}

	rg := &resizableGame{}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
	rm := NewModel(rg, nil, log.New(io.Discard), cfg)
	rm.Init()
	rm.Update(tea.WindowSizeMsg{Width: 90, Height: 25})

	if rg.resets != 1 {
		t.Errorf("resets = %d, want 1 for a resizable mode", rg.resets)
	}
	if rg.width != 90 || rg.height != 25 {
		t.Errorf("Resize got %dx%d, want 90x25", rg.width, rg.height)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&stubGame{}, nil)
	if !strings.Contains(m.View(), "stub") {
		t.Error("View should contain the rendered game")
	}
}
