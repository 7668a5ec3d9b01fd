package cmd

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/kidarcade/internal/ui/theme"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.ArcadeYellow)
	dimStyle     = lipgloss.NewStyle().Foreground(theme.TextDim)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// newTable returns a rounded table with the arcade header colors.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Bold(true).Foreground(theme.Primary)
			}
			return cellStyle
		})
}
