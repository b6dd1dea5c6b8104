package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

func okMark() string   { return okStyle.Render("✓") }
func warnMark() string { return warnStyle.Render("⚠") }
func failMark() string { return failStyle.Render("✗") }
