// Package leaderboard shows the top best scores, overall or per age band.
package leaderboard

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/router"
	"github.com/abhisek/kidarcade/internal/scores"
	"github.com/abhisek/kidarcade/internal/screen"
	"github.com/abhisek/kidarcade/internal/ui/layout"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// tab is one filter; an empty band means every game.
type tab struct {
	label string
	band  registry.AgeRange
}

func tabs() []tab {
	out := []tab{{label: "All"}}
	for _, b := range registry.AgeRanges() {
		out = append(out, tab{label: "Ages " + string(b), band: b})
	}
	return out
}

type boardsLoadedMsg struct {
	Boards [][]scores.Entry
	Err    error
}

// LeaderboardScreen ranks games by best score.
type LeaderboardScreen struct {
	scores   *scores.Store
	tabs     []tab
	boards   [][]scores.Entry
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

func New(sc *scores.Store) *LeaderboardScreen {
	return &LeaderboardScreen{scores: sc, tabs: tabs()}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	sc, ts := s.scores, s.tabs
	return func() tea.Msg {
		return load(context.Background(), sc, ts)
	}
}

// load builds one board per tab.
func load(ctx context.Context, sc *scores.Store, ts []tab) tea.Msg {
	boards := make([][]scores.Entry, len(ts))
	if sc == nil {
		return boardsLoadedMsg{Boards: boards}
	}
	for i, t := range ts {
		games := registry.All()
		if t.band != "" {
			games = registry.ByAge(t.band)
		}
		entries, err := scores.Leaderboard(ctx, sc, registry.ScoreGames(games), scores.LeaderboardSize)
		if err != nil {
			return boardsLoadedMsg{Err: err}
		}
		boards[i] = entries
	}
	return boardsLoadedMsg{Boards: boards}
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Ages"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case boardsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.boards = msg.Boards
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "right", "l":
			s.selected = (s.selected + 1) % len(s.tabs)
		case "shift+tab", "left", "h":
			s.selected = (s.selected - 1 + len(s.tabs)) % len(s.tabs)
		}
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading scores...")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.ArcadeYellow).Bold(true).
		Render("\n🏆 TOP SCORES 🏆\n"))
	b.WriteString("\n")

	var labels []string
	for i, t := range s.tabs {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		labels = append(labels, style.Render(t.label))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(labels, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	var entries []scores.Entry
	if s.selected < len(s.boards) {
		entries = s.boards[s.selected]
	}
	if len(entries) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No scores yet. Go play a game!"))
		return b.String()
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s %-26s %6d", medal(e.Rank), e.Name, e.Score)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(rankColor(e.Rank)).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return fmt.Sprintf("%2d", rank)
}

func rankColor(rank int) color.Color {
	switch rank {
	case 1:
		return theme.ArcadeYellow
	case 2:
		return theme.Text
	case 3:
		return theme.Accent
	default:
		return theme.TextDim
	}
}
