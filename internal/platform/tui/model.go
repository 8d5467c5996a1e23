package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// inputQueueLimit bounds the number of key presses waiting for a step.
const inputQueueLimit = 8

// Model is the Bubble Tea model for running a frogger session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	queue      *core.InputQueue
	gameState  core.GameState
	nameEntry  NameEntry
	playerName string // preset via --name; skips the prompt when set
	naming     bool
	quitting   bool
	scoreSaved bool // Whether the win has been handled for the current game
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all log output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, playerName string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		queue:      core.NewInputQueue(inputQueueLimit),
		playerName: playerName,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "mode", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.naming {
		var cmd tea.Cmd
		m.nameEntry, cmd = m.nameEntry.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.naming {
		return m.handleNameKey(msg)
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch action {
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}
		return m, nil
	}

	m.queue.Push(action)
	return m, nil
}

// handleNameKey routes keys to the name prompt shown after a win.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.naming = false
		m.saveResult(m.nameEntry.Value())
		return m, nil
	case "esc":
		m.naming = false
		m.logger.Info("score not saved", "mode", m.game.ID())
		return m, nil
	}

	var cmd tea.Cmd
	m.nameEntry, cmd = m.nameEntry.Update(msg)
	m.lookupBest()
	return m, cmd
}

// lookupBest shows the typed name's previous best in the prompt.
func (m *Model) lookupBest() {
	if m.store == nil {
		return
	}
	best, ok, err := m.store.PlayerBest(m.game.ID(), m.nameEntry.Value())
	if err != nil {
		m.logger.Debug("cannot look up player best", "err", err)
		return
	}
	m.nameEntry.SetBest(best, ok)
}

// handleResize processes window resize events.
// The session keeps running; only the drawing surface changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step with at most one queued action.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	result := m.game.Step(m.queue.Pop())
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over",
			"mode", m.game.ID(),
			"outcome", m.gameState.Message,
			"score", m.gameState.Score,
			"moves", m.gameState.Moves,
			"seconds", m.gameState.Seconds,
		)
		m.queue.Clear()
	}

	if m.gameState.Won && !m.scoreSaved {
		m.scoreSaved = true
		if m.store != nil {
			if m.playerName != "" {
				m.saveResult(m.playerName)
			} else {
				m.naming = true
				m.nameEntry = NewNameEntry(m.gameState.Score, "")
				m.lookupBest()
				return m, tea.Batch(tickCmd(m.config.TickRate), textinput.Blink)
			}
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new game with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.queue.Clear()
	m.logger.Info("game restarted", "mode", m.game.ID(), "seed", m.config.Seed)
}

// saveResult appends the current win to the leaderboard.
func (m *Model) saveResult(name string) {
	if m.store == nil {
		return
	}
	res := storage.Result{
		GameID:     m.game.ID(),
		PlayerName: name,
		Score:      m.gameState.Score,
		Moves:      m.gameState.Moves,
		Seconds:    m.gameState.Seconds,
	}
	if _, err := m.store.SaveResult(res); err != nil {
		m.logger.Error("cannot save score", "err", err)
		return
	}
	m.logger.Info("score saved", "mode", res.GameID, "player", storage.NormalizeName(name), "score", res.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".frogger", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.naming {
		return m.nameEntry.View(m.screen.Width(), m.screen.Height())
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one game session.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, playerName string) error {
	model := NewModel(game, store, logger, cfg, playerName)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
