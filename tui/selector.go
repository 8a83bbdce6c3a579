package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hochfrequenz/erp-console/internal/menu"
)

// Selector reads menu selections through the light-bar program. It
// satisfies menu.Reader.
type Selector struct {
	opts []tea.ProgramOption
}

// NewSelector creates a Selector; options are passed to every program run
func NewSelector(opts ...tea.ProgramOption) *Selector {
	return &Selector{opts: opts}
}

// ReadSelection runs the selector until the operator chooses or leaves.
// Leaving is reported as io.EOF so the menu closes.
func (s *Selector) ReadSelection(ctx context.Context, m *menu.Menu) (string, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, s.opts...)
	p := tea.NewProgram(NewModel(m.Title(), m.Entries()), opts...)

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running selector: %w", err)
	}

	raw, ok := final.(Model).Result()
	if !ok {
		return "", io.EOF
	}
	return raw, nil
}
