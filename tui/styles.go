package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#FF0055") // tree edges, errors
	colorBorder  = lipgloss.Color("#874BFD")
	colorTextSub = lipgloss.Color("#64748B")
	colorValue   = lipgloss.Color("#00FF99")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Bold(true).
			Padding(0, 1)

	canvasStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	hudLabelStyle = lipgloss.NewStyle().
			Foreground(colorTextSub).
			Bold(true)

	hudValueStyle = lipgloss.NewStyle().
			Foreground(colorValue).
			Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(colorTextSub)
	errorStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(colorTextSub).Italic(true)
)
