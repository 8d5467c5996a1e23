package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

const scoreboardLimit = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var boardModeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 1)

var boardBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// scoreboardKeys lists the scoreboard bindings and feeds the help bar.
type scoreboardKeys struct {
	scroll key.Binding
	next   key.Binding
	prev   key.Binding
	back   key.Binding
	quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.scroll, k.next, k.prev, k.back, k.quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev mode")),
		back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the stored crossings of one mode at a time.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	mode   int
	store  *storage.Store
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	table  table.Model
	help   help.Model
	keys   scoreboardKeys
	width  int
	height int
	done   bool
	back   bool
}

// NewScoreboardModel opens the scoreboard on the first registered mode.
// A nil store shows every mode as empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	cols := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Name", Width: 12},
		{Title: "Score", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}
	// Spare width widens the name column to at most 24 cells.
	used := 6
	for _, c := range cols {
		used += c.Width + 2
	}
	if spare := m.width - used; spare > 0 {
		cols[1].Width += min(spare, 12)
	}

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	return table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
		table.WithStyles(s),
	)
}

// load fetches the scores and stats of the current mode.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if scores, err := m.store.TopScores(id, scoreboardLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.PlayerName,
			fmt.Sprint(s.Score),
			fmt.Sprint(s.Moves),
			fmt.Sprintf("%ds", s.Seconds),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// shift moves the mode selection by delta, wrapping at both ends.
func (m *ScoreboardModel) shift(delta int) {
	if n := len(m.modes); n > 0 {
		m.mode = (m.mode + delta + n) % n
		m.load()
	}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.back):
			m.done, m.back = true, true
			return m, tea.Quit
		case key.Matches(msg, m.keys.next):
			m.shift(1)
			return m, nil
		case key.Matches(msg, m.keys.prev):
			m.shift(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.modeStrip(), m.width))
	b.WriteString("\n\n")

	body := boardDimStyle.Italic(true).Padding(1, 2).
		Render("No crossings recorded yet.\nGet the frog across to set a high score!")
	if len(m.scores) > 0 {
		body = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardBoxStyle.Render(body)))
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(centerText(boardDimStyle.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// modeStrip lists the modes with the selected one highlighted.
func (m ScoreboardModel) modeStrip() string {
	parts := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			parts[i] = boardModeStyle.Render(g.Title)
		} else {
			parts[i] = boardDimStyle.Render(" " + g.Title + " ")
		}
	}
	strip := strings.Join(parts, " ")
	if lipgloss.Width(strip) > m.width && len(m.modes) > 0 {
		strip = "< " + m.modes[m.mode].Title + " >"
	}
	return strip
}

// statsLine summarizes the selected mode, or returns "" without wins.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Wins == 0 {
		return ""
	}
	return fmt.Sprintf("Wins: %d  Players: %d  Best: %d  Avg: %.0f  Fastest: %ds",
		m.stats.Wins, m.stats.Players, m.stats.HighScore, m.stats.AvgScore, m.stats.BestTime)
}

// RunScoreboard shows the scoreboard until the player leaves it.
// goBack reports whether the player asked for the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.back, nil
}
