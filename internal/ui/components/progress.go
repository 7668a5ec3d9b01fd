package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// TimerBar shows the seconds left in a race as a draining bar. It turns
// red once Remaining drops to UrgentAt.
type TimerBar struct {
	Remaining int
	Total     int
	UrgentAt  int
	Width     int
}

// Urgent reports whether the bar is in its warning color.
func (t TimerBar) Urgent() bool {
	return t.Remaining <= t.UrgentAt
}

// Fraction returns the share of time left, clamped to [0, 1].
func (t TimerBar) Fraction() float64 {
	if t.Total <= 0 {
		return 0
	}
	return min(max(float64(t.Remaining)/float64(t.Total), 0), 1)
}

// View renders "⏱ 12s" followed by the bar.
func (t TimerBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("  ⏱ %2ds  ", t.Remaining))
	barWidth := max(t.Width-lipgloss.Width(label), 4)
	filled := int(float64(barWidth) * t.Fraction())

	fill := theme.ProgressFilled
	if t.Urgent() {
		fill = theme.ProgressUrgent
	}
	return label +
		fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
}
