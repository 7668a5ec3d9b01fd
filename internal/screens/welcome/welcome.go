// Package welcome is the attract-mode splash shown when the arcade starts.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/router"
	"github.com/abhisek/kidarcade/internal/screen"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	sparkleAt    = 500 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	revealDur    = 2 * time.Second

	blinkTicks   = 5  // the coin prompt toggles every half second
	marqueeTicks = 15 // a new game name every 1.5s
)

const mascotArt = `╭─────────╮
│ ◕     ◕ │
│    ◡    │
╰────┬────╯
╭────┴────╮
│ ▲  ●  ■ │
╰─────────╯`

var sparkleFrames = []string{"★", "✦", "✧"}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// WelcomeScreen reveals the mascot and banner, then cycles game names until
// a key is pressed.
type WelcomeScreen struct {
	next    func() screen.Screen
	games   []string
	elapsed time.Duration
	ticks   int
	started bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the splash. next builds the screen that replaces it.
func New(next func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{next: next}
	for _, g := range registry.All() {
		w.games = append(w.games, g.Name)
	}
	return w
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.started {
			return w, nil
		}
		w.ticks++
		w.elapsed = min(w.elapsed+tickInterval, revealDur)
		return w, tick()
	case tea.KeyPressMsg:
		return w, w.start()
	}
	return w, nil
}

// start swaps in the next screen. Only the first call does anything.
func (w *WelcomeScreen) start() tea.Cmd {
	if w.started {
		return nil
	}
	w.started = true
	next := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// nowShowing is the game name in the marquee.
func (w *WelcomeScreen) nowShowing() string {
	if len(w.games) == 0 {
		return ""
	}
	return w.games[(w.ticks/marqueeTicks)%len(w.games)]
}

func (w *WelcomeScreen) coinLit() bool {
	return (w.ticks/blinkTicks)%2 == 0
}

func (w *WelcomeScreen) renderMascot() string {
	art := lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt)
	if w.elapsed < sparkleAt {
		return art
	}

	spark := sparkleFrames[w.ticks%len(sparkleFrames)]
	a := lipgloss.NewStyle().Foreground(theme.Accent).Render(spark)
	b := lipgloss.NewStyle().Foreground(theme.Secondary).Render(spark)
	lines := strings.Split(art, "\n")
	for i := range lines {
		switch i {
		case 0, 6:
			lines[i] = a + "  " + lines[i] + "  " + b
		case 3:
			lines[i] = b + "  " + lines[i] + "  " + a
		default:
			lines[i] = "   " + lines[i] + "   "
		}
	}
	return strings.Join(lines, "\n")
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderMascot()}

	if w.elapsed >= bannerAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Let's play and learn!"),
			"",
			lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render("NOW PLAYING ▸ "+w.nowShowing()),
			"",
		)
		coin := "INSERT COIN · press any key"
		if !w.coinLit() {
			coin = strings.Repeat(" ", lipgloss.Width(coin))
		}
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(coin))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
