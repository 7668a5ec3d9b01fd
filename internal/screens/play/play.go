// Package play is the screen that runs one mini-game: it draws instances
// through the dispatcher, renders them with their view and keeps score with
// the session controller.
package play

import (
	"context"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/kidarcade/internal/dispatch"
	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/router"
	"github.com/abhisek/kidarcade/internal/scores"
	"github.com/abhisek/kidarcade/internal/screen"
	"github.com/abhisek/kidarcade/internal/screens/placeholder"
	"github.com/abhisek/kidarcade/internal/screens/summary"
	"github.com/abhisek/kidarcade/internal/session"
	"github.com/abhisek/kidarcade/internal/store"
	"github.com/abhisek/kidarcade/internal/ui/layout"
	"github.com/abhisek/kidarcade/internal/views"
)

// Deps are the services a play screen needs. Scores and Events may be nil.
type Deps struct {
	Scores      *scores.Store
	Events      store.EventRepo
	Rand        *rand.Rand
	RaceSeconds int
}

func (d Deps) rng() *rand.Rand {
	if d.Rand != nil {
		return d.Rand
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// PlayScreen runs one game until the player leaves.
type PlayScreen struct {
	game registry.MiniGame
	ctrl *session.Controller
	disp *dispatch.Dispatcher
	view views.View
	left bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)
var _ screen.Leaver = (*PlayScreen)(nil)

// OpenID returns the play screen for a catalog id, or the coming-soon
// placeholder when the id is unknown.
func OpenID(id string, deps Deps) screen.Screen {
	g, ok := registry.Get(id)
	if !ok {
		log.Warn().Str("game", id).Msg("unknown game")
		return placeholder.ComingSoon(id)
	}
	return Open(g, deps)
}

// Open returns the play screen for g, or the coming-soon placeholder when
// g's instances cannot be graded or shown.
func Open(g registry.MiniGame, deps Deps) screen.Screen {
	s := &PlayScreen{game: g}
	s.disp = dispatch.New(g.Generator, deps.rng(), dispatch.WithRecorder(s))
	if s.disp.State() == dispatch.Unavailable || !views.Has(s.disp.Current().Type) {
		log.Warn().Str("game", g.ID).Msg("game unavailable")
		return placeholder.ComingSoon(g.ID)
	}

	opts := []session.Option{session.WithRaceSeconds(deps.RaceSeconds)}
	if deps.Events != nil {
		opts = append(opts, session.WithEvents(deps.Events))
	}
	var best session.BestScores
	if deps.Scores != nil {
		best = deps.Scores
	}
	s.ctrl = session.New(context.Background(), g.ID, best, opts...)
	s.refreshView()
	return s
}

// RecordAnswer forwards graded answers from the dispatcher to the session.
func (s *PlayScreen) RecordAnswer(inst game.Instance, correct bool) session.Round {
	return s.ctrl.RecordAnswer(inst, correct)
}

func (s *PlayScreen) refreshView() {
	v, ok := views.For(s.disp.Current())
	if !ok {
		s.view = nil
		return
	}
	s.view = v
}

func (s *PlayScreen) Init() tea.Cmd {
	return nil
}

func (s *PlayScreen) Title() string {
	return s.game.Name
}

func (s *PlayScreen) Status() string {
	return layout.Status(s.ctrl.Score(), s.ctrl.Best())
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	race := layout.KeyHint{Key: "Ctrl+R", Description: "Race"}
	if s.ctrl.Mode() == session.ModeRace {
		race.Description = "Stop race"
	}
	switch {
	case s.ctrl.Phase() == session.PhaseGameOver:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play again"},
			race,
			{Key: "Esc", Description: "Leave"},
		}
	case s.disp.State() == dispatch.Result:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			race,
			{Key: "Esc", Description: "Leave"},
		}
	case s.view != nil:
		return append(s.view.Hints(), race)
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Leave"}}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick(msg)

	case raceExpiredMsg:
		s.ctrl.Expire(context.Background(), msg.gen)
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and similar messages go to the view.
	if s.answering() {
		_, cmd := s.view.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PlayScreen) answering() bool {
	return s.view != nil && s.ctrl.CanPlay() && s.disp.State() == dispatch.Presenting
}

func (s *PlayScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	res := s.ctrl.Tick(msg.gen)
	switch {
	case res.Expired:
		gen := msg.gen
		return s, func() tea.Msg { return raceExpiredMsg{gen: gen} }
	case res.Active:
		return s, tickCmd(msg.gen)
	}
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "ctrl+r":
		return s, s.toggleRace()
	}

	if s.ctrl.Phase() == session.PhaseGameOver {
		switch key {
		case "enter", "space", "r":
			return s, s.restart()
		}
		return s, nil
	}

	if s.disp.State() == dispatch.Result {
		switch key {
		case "enter", "space", "n", "right":
			s.next()
		}
		return s, nil
	}

	if !s.answering() {
		return s, nil
	}
	answer, cmd := s.view.Update(msg)
	if answer == nil {
		return s, cmd
	}
	if _, err := s.disp.Submit(answer); err != nil {
		log.Error().Err(err).Str("game", s.game.ID).Msg("grade answer")
		return s, cmd
	}
	s.view.Reveal()
	return s, cmd
}

// next draws a new instance after a graded answer.
func (s *PlayScreen) next() {
	if _, err := s.disp.Continue(); err != nil {
		log.Error().Err(err).Str("game", s.game.ID).Msg("next instance")
		return
	}
	s.refreshView()
}

func (s *PlayScreen) toggleRace() tea.Cmd {
	if s.ctrl.Mode() == session.ModeRace {
		s.ctrl.StopRace(context.Background())
		return nil
	}
	gen := s.ctrl.StartRace(context.Background())
	s.freshInstance()
	return tickCmd(gen)
}

func (s *PlayScreen) restart() tea.Cmd {
	gen := s.ctrl.Restart(context.Background())
	s.freshInstance()
	if gen == 0 {
		return nil
	}
	return tickCmd(gen)
}

// freshInstance moves past a graded instance, or clears partial input on
// the one being shown.
func (s *PlayScreen) freshInstance() {
	if s.disp.State() == dispatch.Result {
		s.next()
		return
	}
	s.refreshView()
}

// Leave ends the session when the screen is popped. It saves the best
// score and shows the summary if anything was played.
func (s *PlayScreen) Leave() tea.Cmd {
	if s.left {
		return nil
	}
	s.left = true
	sum := s.ctrl.Leave(context.Background())
	s.disp.Exit()
	if sum.Rounds == 0 {
		return nil
	}
	name := s.game.Name
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(name, sum)}
	}
}
