package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, matching the rest of our terminal tooling.
var (
	colorActive = lipgloss.Color("#a6e3a1")
	colorIdle   = lipgloss.Color("#45475a")
	colorMuted  = lipgloss.Color("#6c7086")
	colorError  = lipgloss.Color("#f38ba8")

	titleStyle  = lipgloss.NewStyle().Bold(true)
	hexStyle    = lipgloss.NewStyle().Bold(true).PaddingBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(colorMuted).Width(5)
	helpStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	panelStyle  = lipgloss.NewStyle().Padding(1, 2)
	infoStyle   = lipgloss.NewStyle().PaddingLeft(3)
	swatchFrame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorIdle)
)
