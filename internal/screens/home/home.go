package home

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/router"
	"github.com/abhisek/kidarcade/internal/screen"
	"github.com/abhisek/kidarcade/internal/screens/gamelist"
	"github.com/abhisek/kidarcade/internal/screens/history"
	"github.com/abhisek/kidarcade/internal/screens/leaderboard"
	"github.com/abhisek/kidarcade/internal/screens/placeholder"
	"github.com/abhisek/kidarcade/internal/screens/play"
	"github.com/abhisek/kidarcade/internal/store"
	"github.com/abhisek/kidarcade/internal/ui/components"
)

// tallMenuHeight is the terminal height below which menu buttons lose
// their borders.
const tallMenuHeight = 46

type stats struct {
	played   int // games with a best score
	total    int
	top      int
	sessions int
}

// HomeScreen is the arcade's main menu.
type HomeScreen struct {
	deps          play.Deps
	now           func() time.Time
	menu          components.Menu
	stats         stats
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen. Every menu entry works with nil Scores or
// Events; history needs Events and shows a placeholder without it.
func New(deps play.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps, now: time.Now}

	var items []components.MenuItem
	for i, band := range registry.AgeRanges() {
		items = append(items, components.MenuItem{
			Label:  "AGES " + string(band),
			Hotkey: strconv.Itoa(i + 1),
			Action: func() tea.Cmd { return push(gamelist.New(band, deps)) },
		})
	}
	items = append(items,
		components.MenuItem{Label: "LEADERBOARD", Hotkey: "l", Action: func() tea.Cmd {
			return push(leaderboard.New(deps.Scores))
		}},
		components.MenuItem{Label: "HISTORY", Hotkey: "h", Action: func() tea.Cmd {
			if deps.Events == nil {
				return push(placeholder.New("History"))
			}
			return push(history.New(deps.Events))
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items...)
	h.Resume()
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

// Resume reloads the stats bar and mascot.
func (h *HomeScreen) Resume() {
	ctx := context.Background()
	h.stats = stats{total: len(registry.All())}
	h.mascotVariant = MascotIdle

	if h.deps.Scores != nil {
		best, err := h.deps.Scores.All(ctx, registry.IDs())
		if err != nil {
			log.Warn().Err(err).Msg("load best scores")
		}
		h.stats.played = len(best)
		for _, n := range best {
			h.stats.top = max(h.stats.top, n)
		}
	}

	if h.deps.Events != nil {
		if gs, err := h.deps.Events.Stats(ctx); err == nil {
			for _, g := range gs {
				h.stats.sessions += g.Sessions
			}
		} else {
			log.Warn().Err(err).Msg("load play stats")
		}
		if h.bestToday(ctx) {
			h.mascotVariant = MascotCelebrating
		}
	}

	if h.stats.played == 0 && h.stats.sessions == 0 {
		h.mascotVariant = MascotSleepy
	}
}

func (h *HomeScreen) bestToday(ctx context.Context) bool {
	now := h.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sessions, err := h.deps.Events.QuerySessions(ctx, store.QueryOpts{From: midnight})
	if err != nil {
		return false
	}
	for _, s := range sessions {
		if s.NewBest {
			return true
		}
	}
	return false
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and frame gaps.
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, centered(cw, RenderMascot(h.mascotVariant)))
	}
	sections = append(sections,
		renderScoreboard(h.stats, cw, compact),
		renderMenu(h.menu.Labels(), h.menu.Selected, cw, termHeight >= tallMenuHeight),
	)

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
