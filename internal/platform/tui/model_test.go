package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// scriptedGame records the actions it is stepped with and reports
// whatever state the test sets.
type scriptedGame struct {
	steps  []core.Action
	resets int
	state  core.GameState
}

func (g *scriptedGame) ID() string               { return "frogger" }
func (g *scriptedGame) Title() string            { return "Frogger" }
func (g *scriptedGame) State() core.GameState    { return g.state }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++; g.state = core.GameState{} }

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "board", core.ColorGreen, core.ColorDefault)
}

func (g *scriptedGame) Step(a core.Action) core.StepResult {
	g.steps = append(g.steps, a)
	return core.StepResult{State: g.state}
}

func testModel(t *testing.T, game *scriptedGame, store *storage.Store, name string) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(game, store, nil, cfg, name)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelOneActionPerTick(t *testing.T) {
	game := &scriptedGame{}
	m := testModel(t, game, nil, "")

	m = update(t, m, runeKey("w"))
	m = update(t, m, runeKey("d"))
	m = update(t, m, runeKey("z")) // unbound, dropped

	for range 3 {
		m = update(t, m, TickMsg{})
	}

	want := []core.Action{core.ActionUp, core.ActionRight, core.ActionNone}
	if len(game.steps) != len(want) {
		t.Fatalf("steps = %v, want %v", game.steps, want)
	}
	for i := range want {
		if game.steps[i] != want[i] {
			t.Errorf("step %d = %v, want %v", i, game.steps[i], want[i])
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel(t, &scriptedGame{}, nil, "")

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).quitting {
		t.Error("model should be quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	game := &scriptedGame{}
	m := testModel(t, game, nil, "")

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if game.resets != 1 {
		t.Errorf("resets = %d, want 1 (resize must not restart)", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	game := &scriptedGame{}
	m := testModel(t, game, nil, "")

	m = update(t, m, runeKey("r"))
	if game.resets != 1 {
		t.Fatalf("restart during play reset the game")
	}

	game.state = core.GameState{GameOver: true, Message: "GAME OVER! YOU LOST!"}
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey("r"))
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.gameState.GameOver {
		t.Error("state should be fresh after restart")
	}
}

func TestModelWinWithPresetNameSaves(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{}
	m := testModel(t, game, store, "ann")

	game.state = core.GameState{GameOver: true, Won: true, Score: 950, Moves: 19, Seconds: 3}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{}) // no second save

	if m.naming {
		t.Error("preset name should skip the prompt")
	}
	scores, err := store.TopScores("frogger", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if s := scores[0]; s.PlayerName != "ann" || s.Score != 950 || s.Moves != 19 || s.Seconds != 3 {
		t.Errorf("saved %+v", s)
	}
}

func TestModelWinPromptsForName(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{}
	m := testModel(t, game, store, "")

	game.state = core.GameState{GameOver: true, Won: true, Score: 800}
	m = update(t, m, TickMsg{})
	if !m.naming {
		t.Fatal("win should open the name prompt")
	}
	if !strings.Contains(m.View(), "800") {
		t.Error("prompt should show the score")
	}

	// Keys go to the prompt, not the game
	m = update(t, m, runeKey("b"))
	m = update(t, m, runeKey("o"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.naming {
		t.Error("enter should close the prompt")
	}
	scores, _ := store.TopScores("frogger", 10)
	if len(scores) != 1 || scores[0].PlayerName != "bo" {
		t.Errorf("scores = %+v", scores)
	}
}

func TestModelWinPromptSkip(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{}
	m := testModel(t, game, store, "")

	game.state = core.GameState{GameOver: true, Won: true, Score: 800}
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.naming {
		t.Error("esc should close the prompt")
	}
	scores, _ := store.TopScores("frogger", 10)
	if len(scores) != 0 {
		t.Errorf("skip saved %d scores", len(scores))
	}
}

func TestModelLossDoesNotSave(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{}
	m := testModel(t, game, store, "ann")

	game.state = core.GameState{GameOver: true, Message: "GAME OVER! YOU LOST!"}
	m = update(t, m, TickMsg{})

	if m.naming {
		t.Error("loss should not prompt")
	}
	scores, _ := store.TopScores("frogger", 10)
	if len(scores) != 0 {
		t.Errorf("loss saved %d scores", len(scores))
	}
}

func TestRenderScreenPlainAndStyled(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorDefault, core.ColorDefault)
	s.DrawText(2, 0, "cd", core.ColorRed, core.ColorRoad)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") {
		t.Errorf("uncolored run should be written as is: %q", lines[0])
	}
	if !strings.Contains(lines[0], "cd") {
		t.Errorf("styled run missing: %q", lines[0])
	}
	if lines[1] != "      " {
		t.Errorf("blank row = %q", lines[1])
	}
}

func TestModelWinPromptShowsPlayerBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveResult(storage.Result{GameID: "frogger", PlayerName: "ann", Score: 650}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	game := &scriptedGame{}
	m := testModel(t, game, store, "")

	game.state = core.GameState{GameOver: true, Won: true, Score: 800}
	m = update(t, m, TickMsg{})
	if strings.Contains(m.View(), "Your best") {
		t.Error("no best should show before a known name is typed")
	}

	for _, r := range "ann" {
		m = update(t, m, runeKey(string(r)))
	}
	view := m.View()
	if !strings.Contains(view, "Your best: 650") {
		t.Errorf("prompt should show the player's best:\n%s", view)
	}
	if !strings.Contains(view, "new record") {
		t.Errorf("800 beats 650 and should be marked:\n%s", view)
	}
}

func TestModelWinPromptStartsCursorBlink(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{}
	m := testModel(t, game, store, "")

	game.state = core.GameState{GameOver: true, Won: true, Score: 800}
	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("win tick returned no command")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("win tick should batch the tick with the cursor blink, got %T", cmd())
	}

	blink := false
	for _, c := range batch {
		if c == nil {
			continue
		}
		if _, isTick := c().(TickMsg); !isTick {
			blink = true
		}
	}
	if !blink {
		t.Error("cursor blink command missing")
	}
}
