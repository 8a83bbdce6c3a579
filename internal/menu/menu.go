// Package menu implements the numbered console menu: it lists entries,
// resolves a selection and dispatches it, enforcing authorization levels on
// restricted entries.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/hochfrequenz/erp-console/internal/console"
	"github.com/hochfrequenz/erp-console/internal/domain"
)

// ErrInvalidSelection is returned by Select for input that matches no entry
var ErrInvalidSelection = errors.New("invalid selection")

// Auditor records denied access attempts
type Auditor interface {
	Emit(ctx context.Context, user, detail string) (domain.AuditRecord, error)
}

// Reader obtains the operator's raw selection for a menu. Returning io.EOF
// ends the menu as if the exit entry had been chosen.
type Reader interface {
	ReadSelection(ctx context.Context, m *Menu) (string, error)
}

// Config holds what a Menu needs
type Config struct {
	Title   string
	Entries []Entry
	Session *domain.Session
	Console *console.Console
	Auditor Auditor
	Reader  Reader // defaults to LineReader
}

// Menu is a validated, ordered table of entries bound to a session
type Menu struct {
	title   string
	entries []Entry
	byCode  map[int]int

	session *domain.Session
	con     *console.Console
	auditor Auditor
	reader  Reader
}

// New validates the entry table and builds a Menu. Codes must be unique and
// exactly one entry must be the exit entry.
func New(cfg Config) (*Menu, error) {
	if cfg.Session == nil {
		return nil, errors.New("menu requires a session")
	}
	if cfg.Console == nil {
		return nil, errors.New("menu requires a console")
	}
	if cfg.Auditor == nil {
		return nil, errors.New("menu requires an auditor")
	}

	byCode := make(map[int]int, len(cfg.Entries))
	exits := 0
	for i, e := range cfg.Entries {
		if _, dup := byCode[e.Code]; dup {
			return nil, fmt.Errorf("duplicate menu code %d", e.Code)
		}
		byCode[e.Code] = i

		switch e.Kind {
		case KindExit:
			exits++
		case KindImplemented, KindRestricted:
			if e.Action == nil {
				return nil, fmt.Errorf("menu entry %d (%s) has no action", e.Code, e.Label)
			}
		default:
			return nil, fmt.Errorf("menu entry %d has unknown kind %d", e.Code, e.Kind)
		}
	}
	if exits != 1 {
		return nil, fmt.Errorf("menu needs exactly one exit entry, found %d", exits)
	}

	reader := cfg.Reader
	if reader == nil {
		reader = LineReader{}
	}

	return &Menu{
		title:   cfg.Title,
		entries: append([]Entry(nil), cfg.Entries...),
		byCode:  byCode,
		session: cfg.Session,
		con:     cfg.Console,
		auditor: cfg.Auditor,
		reader:  reader,
	}, nil
}

// Title returns the menu heading
func (m *Menu) Title() string {
	return m.title
}

// Entries returns a copy of the entry table in display order
func (m *Menu) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Render lists every entry in table order. The exit entry is set apart by
// a separator line.
func (m *Menu) Render() string {
	lines := make([]string, 0, len(m.entries)+1)
	for _, e := range m.entries {
		if e.Kind == KindExit {
			lines = append(lines, m.con.Separator())
		}
		lines = append(lines, fmt.Sprintf("[%2d]  %s", e.Code, e.Label))
	}
	return m.con.Block(m.title, lines...)
}

// Select resolves raw operator input to an entry
func (m *Menu) Select(raw string) (Entry, error) {
	code, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Entry{}, ErrInvalidSelection
	}
	i, ok := m.byCode[code]
	if !ok {
		return Entry{}, ErrInvalidSelection
	}
	return m.entries[i], nil
}

// Dispatch carries out a selected entry. It returns false when the entry is
// the exit entry and the menu loop should stop.
func (m *Menu) Dispatch(ctx context.Context, e Entry) bool {
	switch e.Kind {
	case KindExit:
		return false
	case KindRestricted:
		if !m.session.Allows(e.RequiredLevel) {
			m.deny(ctx, e)
			return true
		}
	}

	if err := e.Action(ctx); err != nil {
		log.Printf("menu entry %d (%s) failed: %v", e.Code, e.Label, err)
	}
	return true
}

func (m *Menu) deny(ctx context.Context, e Entry) {
	m.con.Notice("Usuario no autorizado")
	if _, err := m.auditor.Emit(ctx, m.session.User(), "Intento utilizar módulo: "+e.AuditDetail); err != nil {
		log.Printf("audit of entry %d failed: %v", e.Code, err)
	}
	m.con.Pause()
}

// Run shows the menu and dispatches selections until the exit entry is
// chosen or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := m.reader.ReadSelection(ctx, m)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("reading selection: %w", err)
		}

		e, err := m.Select(raw)
		if err != nil {
			m.con.Println("  Opción inválida.")
			continue
		}
		if !m.Dispatch(ctx, e) {
			break
		}
	}

	m.con.Println("\n  Cerrando sistema...\n")
	return nil
}

// LineReader renders the menu and reads one input line
type LineReader struct{}

// ReadSelection implements Reader
func (LineReader) ReadSelection(_ context.Context, m *Menu) (string, error) {
	m.con.Println("")
	m.con.Println(m.Render())
	return m.con.ReadLine("  Seleccione opción: ")
}
