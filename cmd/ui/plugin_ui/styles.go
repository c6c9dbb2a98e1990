package plugin_ui

import "github.com/charmbracelet/lipgloss"

type uiStyles struct {
	title      lipgloss.Style
	counter    lipgloss.Style
	cursorLine lipgloss.Style
	line       lipgloss.Style
	checked    lipgloss.Style
	warning    lipgloss.Style
}

func menuStyles() uiStyles {
	colors := catppuccinMocha()
	return uiStyles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.accent).
			MarginLeft(2),
		counter: lipgloss.NewStyle().
			Foreground(colors.muted).
			MarginLeft(2),
		cursorLine: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.text).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colors.accent).
			PaddingLeft(1),
		line: lipgloss.NewStyle().
			Foreground(colors.subtext).
			PaddingLeft(2),
		checked: lipgloss.NewStyle().
			Foreground(colors.green),
		warning: lipgloss.NewStyle().
			Foreground(colors.yellow).
			MarginLeft(2),
	}
}

type uiColors struct {
	text    lipgloss.Color
	subtext lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	green   lipgloss.Color
	yellow  lipgloss.Color
}

func catppuccinMocha() uiColors {
	return uiColors{
		text:    lipgloss.Color("#cdd6f4"),
		subtext: lipgloss.Color("#bac2de"),
		muted:   lipgloss.Color("#a6adc8"),
		accent:  lipgloss.Color("#cba6f7"),
		green:   lipgloss.Color("#a6e3a1"),
		yellow:  lipgloss.Color("#f9e2af"),
	}
}
