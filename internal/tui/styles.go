package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("6")  // focused borders, titles
	colorRed   = lipgloss.Color("1")  // errors
	colorWhite = lipgloss.Color("15") // header text
	colorGray  = lipgloss.Color("8")  // muted text
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleTitle  = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleMuted  = lipgloss.NewStyle().Foreground(colorGray)
	styleError  = lipgloss.NewStyle().Foreground(colorRed)
)

var stylePanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorCyan)

var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))
