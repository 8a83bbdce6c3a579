package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hochfrequenz/erp-console/internal/menu"
)

// Model is a light-bar selector over a menu's entries. The operator moves
// the bar with the arrow keys or types an entry code, and Enter confirms.
type Model struct {
	// Data
	title   string
	entries []menu.Entry

	// UI state
	width  int
	height int
	cursor int
	typed  string

	// Outcome
	chosen    string
	cancelled bool
}

// NewModel creates a selector for the given entries
func NewModel(title string, entries []menu.Entry) Model {
	return Model{
		title:   title,
		entries: entries,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Result returns the selected entry code as typed input. ok is false when
// the operator left the selector without choosing.
func (m Model) Result() (raw string, ok bool) {
	if m.cancelled || m.chosen == "" {
		return "", false
	}
	return m.chosen, true
}

// Cursor returns the index of the highlighted entry
func (m Model) Cursor() int {
	return m.cursor
}
