package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/slsforge/slsforge/pkg/events"
)

// eventPrinter renders scaffolding events as one line each, coloured when
// stdout is a terminal.
type eventPrinter struct {
	out io.Writer
	mu  sync.Mutex

	levelStyles map[events.Level]lipgloss.Style
	pathStyle   lipgloss.Style
}

func newEventPrinter(out io.Writer) *eventPrinter {
	p := &eventPrinter{out: out}

	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if !color {
		return p
	}

	p.levelStyles = map[events.Level]lipgloss.Style{
		events.Info:  lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
		events.Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")),
		events.Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
	}
	p.pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))

	return p
}

func (p *eventPrinter) Handle(ev events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	marker := markerFor(ev)
	path := ev.Path
	if p.levelStyles != nil {
		if style, ok := p.levelStyles[ev.Level]; ok {
			marker = style.Render(marker)
		}
		if path != "" {
			path = p.pathStyle.Render(path)
		}
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(marker)
	b.WriteString(" ")
	if path != "" {
		b.WriteString(path)
		b.WriteString(" ")
	}
	b.WriteString(ev.Message)
	if ev.Err != nil {
		b.WriteString(": ")
		b.WriteString(ev.Err.Error())
	}

	fmt.Fprintln(p.out, b.String())
}

func markerFor(ev events.Event) string {
	switch ev.Level {
	case events.Warn:
		return "!"
	case events.Error:
		return "x"
	default:
		if strings.HasPrefix(ev.Message, "skipped") {
			return "-"
		}
		return "+"
	}
}
