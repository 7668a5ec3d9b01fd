package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/router"
	"github.com/abhisek/kidarcade/internal/screen"
	"github.com/abhisek/kidarcade/internal/session"
	"github.com/abhisek/kidarcade/internal/ui/layout"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// SummaryScreen shows how a play session went.
type SummaryScreen struct {
	name    string
	summary session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the game called name.
func New(name string, summary session.Summary) *SummaryScreen {
	return &SummaryScreen{name: name, summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Great Playing!"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "h", Description: "Home"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter", "esc", "space":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "h":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

// Stars rates a session from zero to three stars by accuracy.
func Stars(sum session.Summary) int {
	switch {
	case sum.Rounds == 0:
		return 0
	case sum.Accuracy >= 0.9:
		return 3
	case sum.Accuracy >= 0.6:
		return 2
	case sum.Correct > 0:
		return 1
	}
	return 0
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), s.name))
	b.WriteString("\n\n")

	stars := Stars(sum)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow),
		strings.Repeat("★ ", stars)+strings.Repeat("☆ ", 3-stars)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("%s mode   ·   %d:%02d", sum.Mode, mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Played: %d        Correct: %d        Accuracy: %.0f%%",
		sum.Rounds, sum.Correct, sum.Accuracy*100)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 40)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
		fmt.Sprintf("Score %d     Best %d", sum.Score, sum.Best)))
	if sum.NewBest {
		b.WriteString("\n\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), "🏆 New best score!"))
	}

	return b.String()
}
