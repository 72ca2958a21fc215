package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorAccent    = lipgloss.Color("#FF6B6B")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
)

// Styles
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// Calendar cells
	dayHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHighlight)

	dayNumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	weekendNumStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	workedStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	extraStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHighlight)
)
