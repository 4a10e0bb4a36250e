package cmd

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Shared styles for console output.
var (
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// timePrecision rounds the elapsed time shown in verbose mode.
const timePrecision = time.Millisecond
