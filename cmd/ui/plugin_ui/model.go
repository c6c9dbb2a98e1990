// Package plugin_ui is the interactive multi-select menu over the plugin
// catalog. The bubbletea program owns the terminal raw mode and restores it
// on every exit path, including errors and interrupts.
package plugin_ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/slsforge/slsforge/pkg/plugins"
)

type Result struct {
	Selected    []string
	Cancelled   bool
	Interrupted bool
}

type Model struct {
	selection *plugins.Selection
	keys      keyMap
	help      help.Model
	warn      bool
	done      bool

	result Result
}

// Run opens the menu over catalog and blocks until the user confirms or
// cancels. Returns plugins.ErrNoTerminal when stdin or stdout is not a
// terminal; callers fall back to plugins.PickFallback.
func Run(ctx context.Context, catalog []string) (*Result, error) {
	if !TerminalAvailable() {
		return nil, plugins.ErrNoTerminal
	}

	model := NewModel(catalog)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}

	return &m.result, nil
}

// TerminalAvailable reports whether stdin and stdout are both terminals.
// Callers use it to choose between form-driven and line-driven prompting
// before the menu opens.
func TerminalAvailable() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return false
		}
	}
	return true
}

func NewModel(catalog []string) *Model {
	return &Model{
		selection: plugins.NewSelection(catalog),
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" {
		m.done = true
		m.result.Cancelled = true
		m.result.Interrupted = true
		return m, tea.Quit
	}

	switch m.keys.Decode(key) {
	case plugins.EventConfirm:
		if !m.selection.Any() {
			m.warn = true
			return m, nil
		}
		m.result.Selected = m.selection.Selected()
		m.done = true
		return m, tea.Quit

	case plugins.EventCancel:
		m.done = true
		m.result.Cancelled = true
		return m, tea.Quit

	case plugins.EventUp:
		m.warn = false
		m.selection.MoveUp()

	case plugins.EventDown:
		m.warn = false
		m.selection.MoveDown()

	case plugins.EventToggle:
		m.warn = false
		m.selection.Toggle()
	}

	return m, nil
}

func (m *Model) View() string {
	if m.done {
		return ""
	}

	styles := menuStyles()
	var b strings.Builder

	b.WriteString(styles.title.Render("Select serverless plugins"))
	b.WriteString("\n")
	b.WriteString(styles.counter.Render(fmt.Sprintf("%d/%d selected", m.selection.Count(), m.selection.Len())))
	b.WriteString("\n\n")

	for i := 0; i < m.selection.Len(); i++ {
		marker := "[ ]"
		if m.selection.Checked(i) {
			marker = styles.checked.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", marker, m.selection.Entry(i))
		if i == m.selection.Cursor() {
			line = styles.cursorLine.Render(line)
		} else {
			line = styles.line.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.warn {
		b.WriteString(styles.warning.Render("select at least one plugin before confirming"))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
