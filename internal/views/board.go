package views

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// cursor is a position on a square board.
type cursor struct {
	row, col int
	size     int
}

// move applies an arrow or vim key and reports whether it was one.
func (c *cursor) move(key string) bool {
	switch key {
	case "up", "k":
		c.row = max(c.row-1, 0)
	case "down", "j":
		c.row = min(c.row+1, c.size-1)
	case "left", "h":
		c.col = max(c.col-1, 0)
	case "right", "l":
		c.col = min(c.col+1, c.size-1)
	default:
		return false
	}
	return true
}

func (c cursor) at(row, col int) bool { return c.row == row && c.col == col }

// step returns the neighbor of cell in the direction of key.
func step(cell game.Cell, key string) (game.Cell, bool) {
	switch key {
	case "up", "k":
		cell.Row--
	case "down", "j":
		cell.Row++
	case "left", "h":
		cell.Col--
	case "right", "l":
		cell.Col++
	default:
		return cell, false
	}
	return cell, true
}

// renderBoard draws a size x size board, asking cell for each square's text
// and style.
func renderBoard(size int, cell func(row, col int) (string, lipgloss.Style)) string {
	rows := make([]string, size)
	for r := range size {
		var b strings.Builder
		for c := range size {
			text, style := cell(r, c)
			b.WriteString(style.Width(5).Align(lipgloss.Center).Render(text))
			if c < size-1 {
				b.WriteString(" ")
			}
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func heading(width int, s string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(s)
}

func note(width int, s string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(s)
}

// verdict is shown under a board after Reveal.
func verdict(width int, correct bool, answer string) string {
	if correct {
		return centered(width, theme.Correct.Render("✓ You got it!"))
	}
	return centered(width, theme.Incorrect.Render("✗ Not quite. ")+theme.Body.Render("Answer: "+answer))
}
