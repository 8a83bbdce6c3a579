// Package console wraps the operator's terminal: line-oriented input and
// fixed-width bordered output blocks.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is the inner width of bordered blocks
const DefaultWidth = 60

var (
	blockStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 1).
			MarginLeft(2)

	formStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			MarginLeft(2)

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// Console reads operator input line by line and writes rendered output
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	width int
}

// New creates a Console. A width <= 0 selects DefaultWidth.
func New(in io.Reader, out io.Writer, width int) *Console {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		width: width,
	}
}

// Width returns the inner width of bordered blocks
func (c *Console) Width() int {
	return c.width
}

// Printf writes formatted text to the console
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line to the console
func (c *Console) Println(s string) {
	fmt.Fprintln(c.out, s)
}

// ReadLine shows the prompt and returns the next input line with
// surrounding whitespace removed. io.EOF is returned only when the input is
// exhausted and nothing was read.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Pause waits for the operator to press Enter. End of input also releases it.
func (c *Console) Pause() {
	_, _ = c.ReadLine("  Presione Enter para continuar...")
}

// Block renders a double-bordered block with a title, a divider and body lines
func (c *Console) Block(title string, lines ...string) string {
	return c.render(blockStyle, "═", title, lines)
}

// Form renders a single-bordered block used by input forms and sub-menus
func (c *Console) Form(title string, lines ...string) string {
	return c.render(formStyle, "─", title, lines)
}

// Separator returns a divider line the width of a block body
func (c *Console) Separator() string {
	return strings.Repeat("─", c.width)
}

// Warning styles a validation message
func (c *Console) Warning(msg string) string {
	return warningStyle.Render("⚠  " + msg)
}

// Notice prints a short framed message, such as an authorization failure
func (c *Console) Notice(msg string) {
	c.Println("")
	c.Println(blockStyle.Render(titleStyle.Render(msg)))
}

func (c *Console) render(style lipgloss.Style, rule, title string, lines []string) string {
	body := make([]string, 0, len(lines)+2)
	if title != "" {
		body = append(body, titleStyle.Render(title), strings.Repeat(rule, c.width))
	}
	body = append(body, lines...)
	return style.Width(c.width + 2).Render(strings.Join(body, "\n"))
}

// Writer exposes the output stream for tabular reports
func (c *Console) Writer() io.Writer {
	return c.out
}
