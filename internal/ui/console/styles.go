package console

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorDim    = lipgloss.Color("#6b7280")
)

const (
	checkMark = "[OK]"
	crossMark = "[!!]"
	spinner   = "[..]"
	infoMark  = "[->]"
)

// styles holds the renderer-bound styles of a Printer.
type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	hint    lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorBlue),
		section: r.NewStyle().Bold(true).Foreground(colorBlue).MarginTop(1),
		info:    r.NewStyle().Foreground(colorBlue),
		success: r.NewStyle().Foreground(colorGreen),
		failure: r.NewStyle().Foreground(colorRed),
		warning: r.NewStyle().Foreground(colorYellow),
		hint:    r.NewStyle().Foreground(colorCyan),
		dim:     r.NewStyle().Foreground(colorDim),
	}
}
