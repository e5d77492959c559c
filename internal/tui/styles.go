package tui

import (
	"github.com/JPM1118/sheetcut/internal/pipeline"
	"github.com/charmbracelet/lipgloss"
)

// Pseudo-statuses for jobs without a result yet.
const (
	statusRunning = "RUNNING"
	statusPending = "PENDING"
)

var (
	// Colors
	colorSuccess = lipgloss.Color("2")  // green
	colorSkipped = lipgloss.Color("3")  // yellow
	colorFailed  = lipgloss.Color("1")  // red
	colorRunning = lipgloss.Color("6")  // cyan
	colorHeader  = lipgloss.Color("12") // bright blue
	colorMuted   = lipgloss.Color("8")  // dim

	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeader)

	subheaderStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	columnHeaderStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Underline(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	notificationBarStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(colorFailed).
			Bold(true)
)

// StatusStyle returns the appropriate style for a job status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case pipeline.StatusSuccess:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case pipeline.StatusSkipped:
		return lipgloss.NewStyle().Foreground(colorSkipped)
	case pipeline.StatusFailed:
		return lipgloss.NewStyle().Foreground(colorFailed).Bold(true)
	case statusRunning:
		return lipgloss.NewStyle().Foreground(colorRunning)
	default:
		return lipgloss.NewStyle().Foreground(colorMuted)
	}
}

// StatusLabel returns the display text for a status, including indicators.
func StatusLabel(status string) string {
	switch status {
	case pipeline.StatusSuccess:
		return "OK"
	case pipeline.StatusFailed:
		return "FAILED !"
	case pipeline.StatusSkipped:
		return "SKIPPED ?"
	case statusRunning:
		return "RUNNING…"
	default:
		return status
	}
}
