package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successColor = lipgloss.Color("#10B981")
	warningColor = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
	accentColor  = lipgloss.Color("#7C3AED")
)

// palette renders diagnostics for one writer. Colours are dropped when the
// writer is not a terminal.
type palette struct {
	title   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		title:   r.NewStyle().Bold(true).Foreground(accentColor),
		success: r.NewStyle().Foreground(successColor).Bold(true),
		warning: r.NewStyle().Foreground(warningColor),
		failure: r.NewStyle().Foreground(errorColor),
		muted:   r.NewStyle().Foreground(mutedColor).Italic(true),
	}
}
