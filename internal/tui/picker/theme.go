package picker

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	markerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)
