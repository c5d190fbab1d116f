package tui

import "github.com/charmbracelet/lipgloss"

var (
	paneBorder     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	detailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	actionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	disabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
