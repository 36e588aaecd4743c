package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/veggie-run/internal/core"
	"github.com/vovakirdan/veggie-run/internal/storage"
)

// scriptedGame ends the run after dieAt ticks and restarts on Jump.
type scriptedGame struct {
	state  core.GameState
	dieAt  int
	inputs []core.InputFrame
	resets int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}
func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}
func (g *scriptedGame) State() core.GameState { return g.state }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	g.inputs = append(g.inputs, frame)

	if g.state.GameOver {
		if in.Has(core.ActionJump) {
			g.state = core.GameState{}
		}
		return core.StepResult{State: g.state}
	}
	g.state.Ticks++
	g.state.Score = g.state.Ticks / 2
	if g.state.Ticks == 3 {
		g.state.BossActive = true
	}
	if g.state.Ticks >= g.dieAt {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func newTestModel(t *testing.T, g *scriptedGame, store *storage.Store, logger *log.Logger) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}
	m := NewModel(g, store, logger, cfg)
	g.Reset(cfg)
	m.gameState = g.State()
	return m
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelRecordsGameOverOnce(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{dieAt: 4}
	m := newTestModel(t, g, store, nil)

	for range 10 {
		m = tick(m)
	}

	runs, err := store.Runs("scripted")
	if err != nil {
		t.Fatalf("Runs() error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Ticks != 4 || r.Score != 2 || r.Seed != 7 || r.EndReason != EndGameOver {
		t.Errorf("unexpected record %+v", r)
	}
}

func TestModelRecordsEachRun(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{dieAt: 2}
	m := newTestModel(t, g, store, nil)

	m = tick(m)
	m = tick(m) // game over, recorded
	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(m) // restarted
	m = tick(m)
	m = tick(m) // game over again

	runs, err := store.Runs("scripted")
	if err != nil {
		t.Fatalf("Runs() error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("recorded %d runs, expected 2", len(runs))
	}
}

func TestModelQuitRecordsUnfinishedRun(t *testing.T) {
	tests := []struct {
		name   string
		ticks  int
		expect int
	}{
		{"mid run", 2, 1},
		{"never started", 0, 0},
		{"after game over", 6, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openStore(t)
			g := &scriptedGame{dieAt: 5}
			m := newTestModel(t, g, store, nil)
			for range tc.ticks {
				m = tick(m)
			}

			m, cmd := press(m, runeKey("q"))
			if cmd == nil {
				t.Fatal("quit should return a command")
			}
			if !m.quitting {
				t.Error("model should be quitting")
			}
			if m.View() != "" {
				t.Error("View should be empty after quit")
			}

			runs, err := store.Runs("scripted")
			if err != nil {
				t.Fatalf("Runs() error: %v", err)
			}
			if len(runs) != tc.expect {
				t.Fatalf("recorded %d runs, expected %d", len(runs), tc.expect)
			}
			if tc.name == "mid run" && runs[0].EndReason != EndQuit {
				t.Errorf("end reason = %q, expected %q", runs[0].EndReason, EndQuit)
			}
		})
	}
}

func TestModelForwardsInputOnce(t *testing.T) {
	g := &scriptedGame{dieAt: 100}
	m := newTestModel(t, g, nil, nil)

	m, _ = press(m, runeKey("p"))
	m = tick(m)
	m = tick(m)

	if len(g.inputs) != 2 {
		t.Fatalf("got %d steps, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionPause) {
		t.Error("first step should see Pause")
	}
	if g.inputs[1].Has(core.ActionPause) {
		t.Error("input must be cleared after a tick")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &scriptedGame{dieAt: 100}
	m := newTestModel(t, g, nil, nil)
	m = tick(m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)

	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 20-helpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("View should contain the rendered game")
	}
}

func TestModelLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g := &scriptedGame{dieAt: 4}
	m := newTestModel(t, g, nil, logger)

	for range 5 {
		m = tick(m)
	}

	out := buf.String()
	for _, want := range []string{"boss spawned", "game over"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestModelLogsNewBest(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	store := openStore(t)
	if _, err := store.RecordRun(storage.RunRecord{GameID: "scripted", Score: 1, Ticks: 2}); err != nil {
		t.Fatalf("RecordRun() error: %v", err)
	}

	g := &scriptedGame{dieAt: 6} // Score 3 at game over
	m := newTestModel(t, g, store, logger)
	for range 6 {
		m = tick(m)
	}

	if !strings.Contains(buf.String(), "new best") {
		t.Errorf("log missing new best:\n%s", buf.String())
	}
}

func TestModelNoNewBestBelowRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	store := openStore(t)
	if _, err := store.RecordRun(storage.RunRecord{GameID: "scripted", Score: 50, Ticks: 2}); err != nil {
		t.Fatalf("RecordRun() error: %v", err)
	}

	g := &scriptedGame{dieAt: 6}
	m := newTestModel(t, g, store, logger)
	for range 6 {
		m = tick(m)
	}

	if strings.Contains(buf.String(), "new best") {
		t.Errorf("score 3 is not a new best over 50:\n%s", buf.String())
	}
}

type countingSink struct {
	sounds []core.Sound
	music  []core.MusicCue
}

func (c *countingSink) PlaySound(s core.Sound)  { c.sounds = append(c.sounds, s) }
func (c *countingSink) Music(cue core.MusicCue) { c.music = append(c.music, cue) }

func TestLoggingSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	next := &countingSink{}

	sink := NewLoggingSink(next, logger)
	sink.PlaySound(core.SoundLove)
	sink.Music(core.MusicStop)

	if len(next.sounds) != 1 || next.sounds[0] != core.SoundLove {
		t.Errorf("sounds = %v", next.sounds)
	}
	if len(next.music) != 1 || next.music[0] != core.MusicStop {
		t.Errorf("music = %v", next.music)
	}
	out := buf.String()
	if !strings.Contains(out, "love") || !strings.Contains(out, "stop") {
		t.Errorf("log missing cues:\n%s", out)
	}
}

func TestLoggingSinkNil(t *testing.T) {
	next := &countingSink{}
	if got := NewLoggingSink(next, nil); got != core.AudioSink(next) {
		t.Error("nil logger should return next unchanged")
	}
	// Nil next must be safe
	NewLoggingSink(nil, log.New(&bytes.Buffer{})).PlaySound(core.SoundJump)
}
