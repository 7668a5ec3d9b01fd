// Package gamelist shows the catalog grouped by age band with each game's
// best score.
package gamelist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/router"
	"github.com/abhisek/kidarcade/internal/screen"
	"github.com/abhisek/kidarcade/internal/screens/play"
	"github.com/abhisek/kidarcade/internal/ui/layout"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

type rowKind int

const (
	rowBandHeader rowKind = iota
	rowGame
)

type row struct {
	kind rowKind
	band registry.AgeRange
	game registry.MiniGame
}

// GameListScreen lists every game, one section per age band.
type GameListScreen struct {
	deps         play.Deps
	rows         []row
	cursor       int
	scrollOffset int
	best         map[string]int
}

var _ screen.Screen = (*GameListScreen)(nil)
var _ screen.Resumer = (*GameListScreen)(nil)

// New creates the list with the cursor on the first game of band. An
// unknown band starts at the top.
func New(band registry.AgeRange, deps play.Deps) *GameListScreen {
	var rows []row
	for _, b := range registry.AgeRanges() {
		rows = append(rows, row{kind: rowBandHeader, band: b})
		for _, g := range registry.ByAge(b) {
			rows = append(rows, row{kind: rowGame, band: b, game: g})
		}
	}

	s := &GameListScreen{deps: deps, rows: rows}
	s.cursor = -1
	for i, r := range rows {
		if r.kind != rowGame {
			continue
		}
		if s.cursor < 0 {
			s.cursor = i
		}
		if r.band == band {
			s.cursor = i
			break
		}
	}
	s.Resume()
	return s
}

// Resume reloads best scores, which change after every game.
func (s *GameListScreen) Resume() {
	s.best = map[string]int{}
	if s.deps.Scores == nil {
		return
	}
	best, err := s.deps.Scores.All(context.Background(), registry.IDs())
	if err != nil {
		log.Warn().Err(err).Msg("load best scores")
		return
	}
	s.best = best
}

func (s *GameListScreen) Init() tea.Cmd {
	return nil
}

func (s *GameListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextBand()
		case "shift+tab":
			s.prevBand()
		case "enter":
			return s, s.selectGame()
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *GameListScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		switch r.kind {
		case rowBandHeader:
			lines = append(lines, s.renderBandHeader(r.band, width))
		case rowGame:
			lines = append(lines, s.renderGameRow(r.game, i == s.cursor, width))
		}
		visible++
	}
	return strings.Join(lines, "\n")
}

func (s *GameListScreen) Title() string {
	return "Games"
}

func (s *GameListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Ages"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

// Selected returns the game under the cursor.
func (s *GameListScreen) Selected() (registry.MiniGame, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].kind != rowGame {
		return registry.MiniGame{}, false
	}
	return s.rows[s.cursor].game, true
}

// moveCursor moves the cursor by delta, skipping band headers.
func (s *GameListScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowGame {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextBand jumps to the first game of the following band.
func (s *GameListScreen) nextBand() {
	current := s.rows[s.cursor].band
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowGame && s.rows[i].band != current {
			s.cursor = i
			return
		}
	}
}

// prevBand jumps to the first game of the preceding band.
func (s *GameListScreen) prevBand() {
	current := s.rows[s.cursor].band
	bands := registry.AgeRanges()
	for i, b := range bands {
		if b != current || i == 0 {
			continue
		}
		for j, r := range s.rows {
			if r.kind == rowGame && r.band == bands[i-1] {
				s.cursor = j
				return
			}
		}
	}
}

func (s *GameListScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowBandHeader {
		headerRow--
	}
	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *GameListScreen) selectGame() tea.Cmd {
	g, ok := s.Selected()
	if !ok {
		return nil
	}
	next := play.Open(g, s.deps)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *GameListScreen) renderBandHeader(band registry.AgeRange, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.BandColor(band.Index())).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render("AGES " + string(band))
}

func (s *GameListScreen) renderGameRow(g registry.MiniGame, selected bool, width int) string {
	marker := "  "
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		marker = "▸ "
		nameStyle = nameStyle.Foreground(theme.ArcadeYellow).Bold(true)
	}

	best := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  —")
	if n, ok := s.best[g.ID]; ok {
		best = lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %d", n))
	}

	name := nameStyle.Width(24).Render(marker + g.Name)
	desc := ""
	if width >= 90 {
		desc = lipgloss.NewStyle().Foreground(theme.TextDim).Width(width - 44).Render(g.Description)
	}
	return "    " + lipgloss.JoinHorizontal(lipgloss.Top, name, " ", lipgloss.NewStyle().Width(8).Render(best), " ", desc)
}
