// Package app is the root Bubble Tea model of the arcade.
package app

import (
	"fmt"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/kidarcade/internal/router"
	"github.com/abhisek/kidarcade/internal/scores"
	"github.com/abhisek/kidarcade/internal/screen"
	"github.com/abhisek/kidarcade/internal/screens/home"
	"github.com/abhisek/kidarcade/internal/screens/play"
	"github.com/abhisek/kidarcade/internal/screens/welcome"
	"github.com/abhisek/kidarcade/internal/store"
	"github.com/abhisek/kidarcade/internal/ui/layout"
)

// Options configures the program.
type Options struct {
	Scores      *scores.Store
	Events      store.EventRepo
	Rand        *rand.Rand
	RaceSeconds int

	// GameID, when set, skips the menus and opens that game directly.
	GameID string
}

func (o Options) deps() play.Deps {
	return play.Deps{
		Scores:      o.Scores,
		Events:      o.Events,
		Rand:        o.Rand,
		RaceSeconds: o.RaceSeconds,
	}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel starts on the welcome splash, or on the game named by
// opts.GameID stacked above the home screen.
func newAppModel(opts Options) AppModel {
	deps := opts.deps()
	if opts.GameID != "" {
		r := router.New(home.New(deps))
		r.Push(play.OpenID(opts.GameID, deps))
		return AppModel{router: r}
	}
	splash := welcome.New(func() screen.Screen { return home.New(deps) })
	return AppModel{router: router.New(splash)}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, m.quit()
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// quit lets running games save their best scores before exiting.
func (m AppModel) quit() tea.Cmd {
	m.router.LeaveAll()
	return tea.Quit
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited")
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
