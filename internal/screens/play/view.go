package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/dispatch"
	"github.com/abhisek/kidarcade/internal/session"
	"github.com/abhisek/kidarcade/internal/ui/components"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// urgentSeconds is when the race bar turns red.
const urgentSeconds = 5

func (s *PlayScreen) View(width, height int) string {
	if s.ctrl.Phase() == session.PhaseGameOver {
		return s.renderGameOver(width, height)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.view == nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Nothing to show."))
		return b.String()
	}

	b.WriteString(s.view.Render(width))

	if out := s.disp.Last(); out != nil && s.disp.State() == dispatch.Result {
		b.WriteString("\n\n")
		b.WriteString(s.renderFeedback(width, out))
	}
	return b.String()
}

// renderInfoLine shows the mode, streak and race clock.
func (s *PlayScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.game.Name))

	streak := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 %d", s.ctrl.Streak()))
	right := fmt.Sprintf("%s   %s", streak,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d/%d", s.ctrl.Correct(), s.ctrl.Rounds())))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	if s.ctrl.Mode() != session.ModeRace {
		return line
	}

	remaining := s.ctrl.TimeRemaining()
	bar := components.TimerBar{
		Remaining: remaining,
		Total:     s.ctrl.RaceSeconds(),
		UrgentAt:  urgentSeconds,
		Width:     max(width-4, 10),
	}
	return line + "\n" + bar.View()
}

func (s *PlayScreen) renderFeedback(width int, out *dispatch.Outcome) string {
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	if out.Correct {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
			fmt.Sprintf("Correct! +%d", out.Round.Points)))
	} else {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Not quite, keep going!"))
	}

	if out.Round.Celebrate {
		b.WriteString("\n\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true),
			fmt.Sprintf("🎉 %d in a row! 🎉", out.Round.Streak)))
	} else if out.Correct {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("%d more for a party!", session.NextStreakThreshold(out.Round.Streak)-out.Round.Streak)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.KeyButton{Label: "Next", Key: "Enter"}.View()))
	return b.String()
}

func (s *PlayScreen) renderGameOver(width, height int) string {
	var lines []string
	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("⏰ Time's up!"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("Score %d", s.ctrl.Score())),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d correct out of %d", s.ctrl.Correct(), s.ctrl.Rounds())),
	)
	if s.ctrl.NewBest() && s.ctrl.Best() == s.ctrl.Score() {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("🏆 New best score!"))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("Best %d", s.ctrl.Best())))
	}
	lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Enter to race again · Esc to leave"))

	card := components.ArcadeCard(strings.Join(lines, "\n"), components.ContentWidth(width))
	return components.CabinetFrame(card, width, height)
}
