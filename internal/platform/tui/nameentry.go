package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NameEntry asks a winner for the name stored with the score.
type NameEntry struct {
	input   textinput.Model
	score   int
	best    int
	hasBest bool // best is known for the typed name
}

// NewNameEntry creates a focused name prompt for the given score.
func NewNameEntry(score int, initial string) NameEntry {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = 24
	ti.Width = 24
	ti.Prompt = "> "
	ti.SetValue(initial)
	ti.Focus()

	return NameEntry{input: ti, score: score}
}

// Update forwards a message to the text input.
func (n NameEntry) Update(msg tea.Msg) (NameEntry, tea.Cmd) {
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

// SetBest records the typed name's previous best score.
func (n *NameEntry) SetBest(best int, ok bool) {
	n.best, n.hasBest = best, ok
}

// Value returns the typed name.
func (n NameEntry) Value() string {
	return n.input.Value()
}

// View renders the prompt centered in a width x height area.
func (n NameEntry) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))
	hintStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)

	best := ""
	if n.hasBest {
		best = fmt.Sprintf("Your best: %d", n.best)
		if n.score > n.best {
			best += "  (new record!)"
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("YOU WON!"),
		fmt.Sprintf("Score: %d", n.score),
		hintStyle.Render(best),
		"",
		"Enter your name for the leaderboard:",
		n.input.View(),
		"",
		hintStyle.Render("enter: save  esc: skip"),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, boxStyle.Render(body))
}
