package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI palette indexes matching the classic organizer colours.
const (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorCyan   = lipgloss.Color("6")
)

// theme holds the cosmetic styles. Only fixed labels go through it; quote
// fields are written raw so tabs and padding survive untouched.
type theme struct {
	heading lipgloss.Style
	item    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// newTheme binds styles to a renderer for w. Writers that are not terminals
// get no escape codes; color=false forces that everywhere.
func newTheme(w io.Writer, color bool) theme {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return theme{
		heading: r.NewStyle().Foreground(colorCyan),
		item:    r.NewStyle().Foreground(colorYellow),
		success: r.NewStyle().Foreground(colorGreen),
		failure: r.NewStyle().Foreground(colorRed),
	}
}
