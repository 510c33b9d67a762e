// Package field implements an interactive expression field. Typing an
// expression and pressing alt+= (or enter) replaces it with its value.
package field

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/numeric"
)

// InvalidExpression is the status shown when evaluation fails.
const InvalidExpression = "Invalid expression"

// DefaultHistory is the number of evaluated lines kept by default.
const DefaultHistory = 10

// Entry is a line from the history of evaluations.
type Entry struct {
	Expr   string
	Result string
}

// Model is the bubbletea model of the field.
type Model struct {
	input textinput.Model
	cfg   numeric.Config

	onChange func(string)
	detail   bool
	keep     int

	status   string
	failed   bool
	history  []Entry
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// OnChange sets a function called with the new content each time an
// evaluation writes its result back into the field.
func OnChange(f func(string)) Option {
	return func(m *Model) { m.onChange = f }
}

// Detail makes failed evaluations show the underlying error after the
// generic message.
func Detail(detail bool) Option {
	return func(m *Model) { m.detail = detail }
}

// History sets the number of evaluated lines to keep. Zero disables history.
func History(n int) Option {
	return func(m *Model) { m.keep = max(n, 0) }
}

// Placeholder sets the text shown while the field is empty.
func Placeholder(s string) Option {
	return func(m *Model) { m.input.Placeholder = s }
}

// New creates a focused field evaluating with cfg.
func New(cfg numeric.Config, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "1 + 2 * 3"
	ti.Prompt = "> "
	ti.Focus()
	m := Model{input: ti, cfg: cfg, keep: DefaultHistory}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "alt+=", "enter":
			m.Evaluate()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Evaluate evaluates the content of the field. On success the result replaces
// the content and the change callback runs. On failure the content is left
// alone and the status shows the error. It reports whether evaluation
// succeeded.
func (m *Model) Evaluate() bool {
	src := m.input.Value()
	r, err := numeric.Evaluate(src, m.cfg)
	if err != nil {
		m.failed = true
		m.status = InvalidExpression
		if m.detail {
			m.status += ": " + err.Error()
		}
		return false
	}
	m.failed = false
	m.status = r
	m.input.SetValue(r)
	m.input.CursorEnd()
	if src = strings.TrimSpace(src); src != "" && m.keep > 0 {
		m.history = append(m.history, Entry{Expr: src, Result: r})
		if len(m.history) > m.keep {
			m.history = m.history[len(m.history)-m.keep:]
		}
	}
	if m.onChange != nil {
		m.onChange(r)
	}
	return true
}

// Value returns the content of the field.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the content of the field.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
}

// Status returns the result or error message from the last evaluation.
func (m Model) Status() string {
	return m.status
}

// Failed returns whether the last evaluation failed.
func (m Model) Failed() bool {
	return m.failed
}

// History returns the evaluated lines, oldest first.
func (m Model) History() []Entry {
	return append([]Entry(nil), m.history...)
}

// Config returns the configuration used for evaluation.
func (m Model) Config() numeric.Config {
	return m.cfg
}

// View renders the field.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("numeric"))
	b.WriteString("\n\n")
	for _, e := range m.history {
		b.WriteString(historyStyle.Render(e.Expr + " = " + e.Result))
		b.WriteByte('\n')
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", buttonStyle.Render("=")))
	b.WriteByte('\n')
	switch {
	case m.failed:
		b.WriteString(errorStyle.Render(m.status))
	case m.status != "":
		b.WriteString(resultStyle.Render(m.status))
	}
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("alt+= or enter: calculate • esc: quit"))
	b.WriteByte('\n')
	return b.String()
}
