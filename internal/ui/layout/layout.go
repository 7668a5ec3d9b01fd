// Package layout draws the frame shared by every screen: a header bar with
// the arcade name, the screen title and a status, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// Smallest terminal the arcade draws in.
const (
	MinWidth  = 80
	MinHeight = 24
)

const brand = "★ Kid Arcade"

var barStyle = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// Status formats the header status for a running game.
func Status(score, best int) string {
	return fmt.Sprintf("★ %d   best %d", score, best)
}

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func (h KeyHint) render() string {
	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) + " " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to grow the window.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nMake the window at least %d x %d\nso the games fit.\n\nNow: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the brand on the left, title in the middle and status
// on the right.
func RenderHeader(title, status string, width int) string {
	left := "  " + lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(brand)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	inner := max(width-4, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	return barStyle.Width(width).Render(
		left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right)
}

// RenderFooter draws the key hints. Hints that do not fit in width are
// dropped from the end.
func RenderFooter(hints []KeyHint, width int) string {
	const sep = "   "
	room := max(width-6, 0)

	var b strings.Builder
	b.WriteString("  ")
	used := 0
	for i, h := range hints {
		part := h.render()
		w := lipgloss.Width(part)
		if i > 0 {
			w += len(sep)
		}
		if used+w > room {
			break
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(part)
		used += w
	}
	return barStyle.Width(width).Render(b.String())
}

// RenderFrame stacks header, content and footer, padding content to fill
// the height left between them.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	)
}
