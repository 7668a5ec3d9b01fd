// Package theme holds the arcade's colors and shared lipgloss styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: bright arcade colors on a dark cabinet.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
	ArcadePink   = lipgloss.Color("#EC4899")
)

// bandColors runs youngest to oldest.
var bandColors = []color.Color{ArcadePink, ArcadeCyan, Success, ArcadeYellow}

// BandColor returns the accent for the i-th age band, cycling if there are
// more bands than colors.
func BandColor(i int) color.Color {
	if i < 0 {
		i = 0
	}
	return bandColors[i%len(bandColors)]
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)
)

// Answer states
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Grid cells for the board games.
var (
	CellOn = lipgloss.NewStyle().
		Background(ArcadeCyan).
		Foreground(BgDark)

	CellOff = lipgloss.NewStyle().
		Background(BgCard).
		Foreground(TextDim)

	CellCursor = lipgloss.NewStyle().
			Background(ArcadeYellow).
			Foreground(BgDark).
			Bold(true)

	CellLocked = lipgloss.NewStyle().
			Foreground(TextDim)
)

// Race timer and buttons.
var (
	ProgressUrgent = lipgloss.NewStyle().
			Background(Error)

	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)
)
