package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// Inner content width bounds. The cabinet border and padding take six
// columns.
const (
	minContentWidth = 20
	maxContentWidth = 60
	cabinetChrome   = 6
)

// ContentWidth returns the shared inner width for cards inside a cabinet
// frameWidth columns wide.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-cabinetChrome, minContentWidth), maxContentWidth)
}

var (
	cabinetStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Primary).
			Align(lipgloss.Center, lipgloss.Center)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Align(lipgloss.Center).
			Padding(1, 2)

	buttonStyle = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// CabinetFrame draws the double-bordered arcade cabinet filling width by
// height, with content centered inside.
func CabinetFrame(content string, width, height int) string {
	return cabinetStyle.Width(width - 2).Height(height - 2).Render(content)
}

// ArcadeCard boxes content in a rounded card cw columns wide.
func ArcadeCard(content string, cw int) string {
	return cardStyle.Width(cw - 2).Render(content)
}

// ArcadeButton draws a bordered menu button. The selected button lights
// up yellow.
func ArcadeButton(label string, selected bool, width int) string {
	if !selected {
		return buttonStyle.Width(width).
			Foreground(theme.Text).
			BorderForeground(theme.Border).
			Render(label)
	}
	return buttonStyle.Width(width).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		BorderForeground(theme.ArcadeYellow).
		Render("▸ " + label)
}
