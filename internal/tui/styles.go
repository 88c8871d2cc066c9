package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette (Dracula-inspired)
var (
	colorPurple = lipgloss.Color("#BD93F9")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorPink   = lipgloss.Color("#FF79C6")
	colorFg     = lipgloss.Color("#F8F8F2")
	colorBg     = lipgloss.Color("#282a36")

	colorGray   = lipgloss.Color("#6272A4")
	colorYellow = lipgloss.Color("#F1FA8C")
)

// Shared Styles
var (
	// Page title with a rule underneath, like the form header on the web page
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorGray)

	// Filter form column
	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	focusedFormBoxStyle = formBoxStyle.
				BorderForeground(colorPurple)

	// Content card ("How to Customize" / generated idea)
	contentBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	focusedContentBoxStyle = contentBoxStyle.
				BorderForeground(colorPurple)

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorFg).
				Bold(true)

	disclosureSignStyle = lipgloss.NewStyle().Foreground(colorGray)

	optionStyle = lipgloss.NewStyle().Foreground(colorFg)

	checkedOptionStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	// Disabled options are muted, like "cursor-not-allowed opacity-50"
	disabledOptionStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				Faint(true)

	cursorStyle = lipgloss.NewStyle().Foreground(colorPink).Bold(true)

	primaryButtonStyle = lipgloss.NewStyle().
				Foreground(colorBg).
				Background(colorPurple).
				Bold(true).
				Padding(0, 2)

	secondaryButtonStyle = lipgloss.NewStyle().
				Foreground(colorFg).
				Background(colorGray).
				Padding(0, 2)

	focusedButtonStyle = lipgloss.NewStyle().
				Underline(true)

	// Off-canvas filter panel
	drawerPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), false, false, false, true).
				BorderForeground(colorPurple).
				Padding(0, 1)

	drawerTitleStyle = lipgloss.NewStyle().
				Foreground(colorFg).
				Bold(true)

	backdropStyle = lipgloss.NewStyle().Faint(true)

	// Helpers
	subtleStyle = lipgloss.NewStyle().Foreground(colorGray)

	jumpStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	hintKeyStyle = lipgloss.NewStyle().Foreground(colorCyan)
)
