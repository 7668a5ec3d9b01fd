// Package history shows finished play sessions from the event log.
package history

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/router"
	"github.com/abhisek/kidarcade/internal/screen"
	"github.com/abhisek/kidarcade/internal/store"
	"github.com/abhisek/kidarcade/internal/ui/layout"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// maxSessions caps how many finished sessions are listed.
const maxSessions = 50

// filters cycle with the m key. The empty string shows every mode.
var filters = []string{"", "untimed", "race"}

var (
	noteStyle = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	rowStyle  = lipgloss.NewStyle().Foreground(theme.Text)
	curStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	hitStyle  = lipgloss.NewStyle().Foreground(theme.Success)
	missStyle = lipgloss.NewStyle().Foreground(theme.Error)
)

type loadedMsg struct {
	sessions []store.SessionRecord
	rounds   map[string][]store.RoundRecord
	err      error
}

// HistoryScreen lists finished play sessions, newest first.
type HistoryScreen struct {
	repo     store.EventRepo
	all      []store.SessionRecord
	rounds   map[string][]store.RoundRecord
	filter   int
	cursor   int
	open     int // index into visible(), -1 when collapsed
	loaded   bool
	loadErr  error
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen reading from repo.
func New(repo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo, open: -1}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		return load(context.Background(), repo)
	}
}

func load(ctx context.Context, repo store.EventRepo) loadedMsg {
	events, err := repo.QuerySessions(ctx, store.QueryOpts{})
	if err != nil {
		return loadedMsg{err: err}
	}

	var ended []store.SessionRecord
	for _, e := range slices.Backward(events) {
		if e.Action != "end" {
			continue
		}
		ended = append(ended, e)
		if len(ended) == maxSessions {
			break
		}
	}

	// Missing rounds only hide the detail rows.
	bySession := make(map[string][]store.RoundRecord)
	if rounds, err := repo.QueryRounds(ctx, store.QueryOpts{}); err == nil {
		for _, r := range rounds {
			bySession[r.SessionID] = append(bySession[r.SessionID], r)
		}
	}
	return loadedMsg{sessions: ended, rounds: bySession}
}

func (s *HistoryScreen) Title() string {
	if f := filters[s.filter]; f != "" {
		return "History · " + f
	}
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Rounds"},
		{Key: "m", Description: "Mode"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

// visible returns the sessions matching the current mode filter.
func (s *HistoryScreen) visible() []store.SessionRecord {
	mode := filters[s.filter]
	if mode == "" {
		return s.all
	}
	var out []store.SessionRecord
	for _, sess := range s.all {
		if sess.Mode == mode {
			out = append(out, sess)
		}
	}
	return out
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		s.loadErr = msg.err
		s.all, s.rounds = msg.sessions, msg.rounds

	case tea.KeyPressMsg:
		n := len(s.visible())
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			s.cursor = max(s.cursor-1, 0)
		case "down", "j":
			s.cursor = max(min(s.cursor+1, n-1), 0)
		case "enter":
			if s.open == s.cursor {
				s.open = -1
			} else if n > 0 {
				s.open = s.cursor
			}
		case "m":
			s.filter = (s.filter + 1) % len(filters)
			s.cursor, s.open = 0, -1
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := func(line string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, line) + "\n"
	}

	switch {
	case s.loadErr != nil:
		return "\n\n" + center(missStyle.Render("Error: "+s.loadErr.Error()))
	case !s.loaded:
		return "\n\n" + center(noteStyle.Render("Loading history..."))
	}

	rows := s.visible()
	if len(rows) == 0 {
		msg := "No games played yet. Pick one and have fun!"
		if filters[s.filter] != "" {
			msg = "No " + filters[s.filter] + " games yet. Press m to see the rest."
		}
		return "\n\n" + center(noteStyle.Render(msg))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(noteStyle.Render(totals(rows))))
	b.WriteString("\n")
	for i, sess := range rows {
		style, prefix := rowStyle, "  "
		if i == s.cursor {
			style, prefix = curStyle, "▸ "
		}
		b.WriteString(center(style.Render(prefix + sessionLine(sess))))
		if i == s.open {
			for _, line := range s.roundLines(sess.SessionID) {
				b.WriteString(center(line))
			}
		}
	}
	return b.String()
}

func sessionLine(sess store.SessionRecord) string {
	pct := 0
	if sess.Rounds > 0 {
		pct = sess.Correct * 100 / sess.Rounds
	}
	trophy := ""
	if sess.NewBest {
		trophy = "  🏆"
	}
	return fmt.Sprintf("%s  %-22s %-7s ★ %-5d %d rounds  %d%%%s",
		sess.Timestamp.Format("Jan 02 15:04"), gameName(sess.GameID), sess.Mode,
		sess.Score, sess.Rounds, pct, trophy)
}

func (s *HistoryScreen) roundLines(sessionID string) []string {
	rounds := s.rounds[sessionID]
	if len(rounds) == 0 {
		return []string{noteStyle.Render("    No rounds recorded")}
	}
	out := make([]string, len(rounds))
	for n, r := range rounds {
		mark, style := "✗", missStyle
		if r.Correct {
			mark, style = "✓", hitStyle
		}
		out[n] = style.Render(fmt.Sprintf("    %2d. %s  +%-3d streak %d", n+1, mark, r.Points, r.Streak))
	}
	return out
}

func totals(rows []store.SessionRecord) string {
	var points, rounds int
	for _, r := range rows {
		points += r.Score
		rounds += r.Rounds
	}
	return fmt.Sprintf("%d sessions · %d rounds · %d points", len(rows), rounds, points)
}

func gameName(id string) string {
	if g, ok := registry.Get(id); ok {
		return g.Name
	}
	return id
}
