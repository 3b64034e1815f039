package play

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorWord    = lipgloss.Color("#F4D03F")
	colorSuccess = lipgloss.Color("#2ECC71")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#7F8C8D")
)

// styles groups the lipgloss styles used by the loop. With colour off every
// field is an empty style and renders text unchanged.
type styles struct {
	Title   lipgloss.Style
	Word    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

func newStyles(out io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		plain := r.NewStyle()
		return styles{Title: plain, Word: plain, Success: plain, Error: plain, Muted: plain}
	}
	return styles{
		Title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		Word:    r.NewStyle().Bold(true).Foreground(colorWord),
		Success: r.NewStyle().Foreground(colorSuccess),
		Error:   r.NewStyle().Foreground(colorError),
		Muted:   r.NewStyle().Foreground(colorMuted),
	}
}
