package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/veggie-run/internal/core"
	"github.com/vovakirdan/veggie-run/internal/registry"
	"github.com/vovakirdan/veggie-run/internal/storage"
)

// Run end reasons stored in the ledger.
const (
	EndGameOver = "game_over"
	EndQuit     = "quit"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a Veggie Run session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	recorded   bool // Whether the current run is already in the ledger
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      store,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
// The game must already be Reset (Run does this) so gameState is valid
// before the first tick.
func (m Model) Init() tea.Cmd {
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

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		if !m.gameState.GameOver {
			m.record(EndQuit)
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The world has a fixed size, so only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransitions(prev, m.gameState)

	// A fresh run started from the game-over screen
	if prev.GameOver && !m.gameState.GameOver {
		m.recorded = false
	}

	// Save run on game over (once)
	if m.gameState.GameOver && !m.recorded {
		m.record(EndGameOver)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logTransitions reports the state changes worth a log line.
func (m Model) logTransitions(prev, cur core.GameState) {
	switch {
	case prev.GameOver && !cur.GameOver:
		m.logger.Info("run restarted")
	case !prev.GameOver && cur.GameOver:
		m.logger.Info("game over", "score", cur.Score, "bosses", cur.BossesDefeated, "ticks", cur.Ticks)
	}
	if !prev.BossActive && cur.BossActive {
		m.logger.Debug("boss spawned", "score", cur.Score)
	}
	if cur.BossesDefeated > prev.BossesDefeated {
		m.logger.Debug("boss defeated", "total", cur.BossesDefeated)
	}
	if prev.Paused != cur.Paused {
		m.logger.Debug("hold", "paused", cur.Paused)
	}
}

// record writes the current run to the ledger. Runs that never started are skipped.
func (m *Model) record(reason string) {
	if m.recorded || m.gameState.Ticks == 0 {
		return
	}
	m.recorded = true
	if m.store == nil {
		return
	}

	best, err := m.store.BestScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read best score", "error", err)
	}

	_, err = m.store.RecordRun(storage.RunRecord{
		GameID:         m.game.ID(),
		Score:          m.gameState.Score,
		BossesDefeated: m.gameState.BossesDefeated,
		Ticks:          m.gameState.Ticks,
		Seed:           m.config.Seed,
		EndReason:      reason,
	})
	if err != nil {
		// Best-effort save, the run continues regardless
		m.logger.Warn("could not record run", "error", err)
		return
	}
	if m.gameState.Score > best {
		m.logger.Info("new best", "score", m.gameState.Score, "previous", best)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// playfieldHeight leaves room for the help footer.
func playfieldHeight(h int) int {
	return core.Max(1, h-helpHeight)
}

// Run resets the game and starts the Bubble Tea program.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)
	game.Reset(model.config)
	model.gameState = game.State()
	model.logger.Info("run started", "game", game.ID(), "seed", model.config.Seed, "fps", model.config.TickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
