// Package placeholder is the "coming soon" screen shown in place of a game
// or feature that cannot run.
package placeholder

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/router"
	"github.com/abhisek/kidarcade/internal/screen"
	"github.com/abhisek/kidarcade/internal/ui/layout"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

const maxSuggestions = 3

// PlaceholderScreen tells the player something is not ready yet and, for
// games, points at a few that are.
type PlaceholderScreen struct {
	title   string
	message string
	suggest []string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)
var _ screen.KeyHintProvider = (*PlaceholderScreen)(nil)

// New creates a placeholder for a feature called title.
func New(title string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, message: "This part of the arcade is still being built."}
}

// ComingSoon creates the placeholder for a game id that cannot be played.
func ComingSoon(gameID string) *PlaceholderScreen {
	p := &PlaceholderScreen{title: gameID, message: "This game is still being built."}
	if g, ok := registry.Get(gameID); ok {
		p.title = g.Name
	}
	p.suggest = suggestions(gameID)
	return p
}

// suggestions prefers playable games sharing the id's first word, then
// fills up from the catalog start.
func suggestions(gameID string) []string {
	word, _, _ := strings.Cut(gameID, "-")
	var near, rest []string
	for _, g := range registry.All() {
		if g.ID == gameID {
			continue
		}
		if word != "" && strings.Contains(g.ID, word) {
			near = append(near, g.Name)
		} else {
			rest = append(rest, g.Name)
		}
	}
	out := append(near, rest...)
	return out[:min(len(out), maxSuggestions)]
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc", "enter", "q":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("🚧 ╌╌ Coming Soon ╌╌ 🚧"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render(p.message),
	}
	if len(p.suggest) > 0 {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.TextDim).Render("Try one of these:"))
		for _, name := range p.suggest {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render("★ "+name))
		}
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}
