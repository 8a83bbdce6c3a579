package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
			return m.updateRunes(msg.Runes)
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		case "k", "up":
			m.typed = ""
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.entries) - 1
			}
		case "j", "down":
			m.typed = ""
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}
		case "home":
			m.typed = ""
			m.cursor = 0
		case "end":
			m.typed = ""
			m.cursor = len(m.entries) - 1
		case "backspace":
			if m.typed != "" {
				m.typed = m.typed[:len(m.typed)-1]
				m.jumpToTyped()
			}
		case "enter":
			if len(m.entries) == 0 {
				return m, nil
			}
			if m.typed != "" {
				// typed codes win so that unknown codes reach the dispatcher
				m.chosen = m.typed
			} else {
				m.chosen = strconv.Itoa(m.entries[m.cursor].Code)
			}
			return m, tea.Quit
		default:
			if isDigits(msg.String()) && len(m.typed) < 3 {
				m.typed += msg.String()
				m.jumpToTyped()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// updateRunes applies keys that arrived together, such as fast typing or a
// paste, one at a time
func (m Model) updateRunes(runes []rune) (tea.Model, tea.Cmd) {
	var next tea.Model = m
	for _, r := range runes {
		var cmd tea.Cmd
		next, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		if cmd != nil {
			return next, cmd
		}
	}
	return next, nil
}

// jumpToTyped moves the bar to the entry whose code was typed, if any
func (m *Model) jumpToTyped() {
	code, err := strconv.Atoi(m.typed)
	if err != nil {
		return
	}
	for i, e := range m.entries {
		if e.Code == code {
			m.cursor = i
			return
		}
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
