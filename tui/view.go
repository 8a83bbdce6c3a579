package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hochfrequenz/erp-console/internal/menu"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	restrictedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	dimmedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("255"))
)

// View renders the selector
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	var rows []string
	for i, e := range m.entries {
		if e.Kind == menu.KindExit {
			rows = append(rows, dimmedStyle.Render(strings.Repeat("─", 40)))
		}
		rows = append(rows, m.renderEntry(i, e))
	}
	b.WriteString(sectionStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderEntry(i int, e menu.Entry) string {
	label := fmt.Sprintf("[%2d]  %s", e.Code, e.Label)
	if e.Kind == menu.KindRestricted {
		label += " *"
	}
	line := fmt.Sprintf("%-40s", label)

	switch {
	case i == m.cursor:
		return selectedStyle.Render(line)
	case e.Kind == menu.KindRestricted:
		return restrictedStyle.Render(line)
	}
	return line
}

func (m Model) renderStatusBar() string {
	status := " ↑/↓ mover │ Enter elegir │ Esc salir │ * requiere supervisor "
	if m.typed != "" {
		status += fmt.Sprintf("│ Código: %s ", m.typed)
	}
	if m.width > 0 {
		return statusBarStyle.Width(m.width).Render(status)
	}
	return statusBarStyle.Render(status)
}
