package render

import "github.com/charmbracelet/lipgloss"

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	stateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)
