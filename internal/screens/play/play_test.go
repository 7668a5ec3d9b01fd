package play

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kidarcade/internal/dispatch"
	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/registry"
	"github.com/abhisek/kidarcade/internal/router"
	"github.com/abhisek/kidarcade/internal/scores"
	"github.com/abhisek/kidarcade/internal/screens/placeholder"
	"github.com/abhisek/kidarcade/internal/screens/summary"
	"github.com/abhisek/kidarcade/internal/session"
	"github.com/abhisek/kidarcade/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

var ctrlR = tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}

// sumGame always asks 2 + 3 with the right answer second.
func sumGame(*rand.Rand) game.Instance {
	return game.New(game.QuickFacts, game.QuickFactsQuestion{Expression: "2 + 3"},
		game.Number(5), game.Number(4), game.Number(5), game.Number(6), game.Number(7))
}

func testGame() registry.MiniGame {
	return registry.MiniGame{ID: "quick-facts", Name: "Quick Facts", AgeRange: registry.Age5to6, Generator: sumGame}
}

func testDeps() (Deps, *scores.Store) {
	sc := scores.NewStore(store.NewMemoryKV())
	return Deps{
		Scores:      sc,
		Rand:        rand.New(rand.NewPCG(1, 2)),
		RaceSeconds: 30,
	}, sc
}

func openTest(t *testing.T, deps Deps) *PlayScreen {
	t.Helper()
	s, ok := Open(testGame(), deps).(*PlayScreen)
	require.True(t, ok, "expected a play screen")
	return s
}

func answer(s *PlayScreen, correct bool) {
	if correct {
		s.Update(keyPress('2'))
	} else {
		s.Update(keyPress('1'))
	}
}

func TestOpenID_UnknownGame(t *testing.T) {
	deps, _ := testDeps()
	scr := OpenID("rocket-launch", deps)
	_, ok := scr.(*placeholder.PlaceholderScreen)
	assert.True(t, ok)
}

func TestOpen_UnknownInstanceType(t *testing.T) {
	deps, _ := testDeps()
	g := registry.MiniGame{ID: "mystery", Name: "Mystery", Generator: func(*rand.Rand) game.Instance {
		return game.Instance{ID: "x", Type: "mystery", Question: game.OddEvenQuestion{Number: 1}, Answer: game.Text("odd")}
	}}
	_, ok := Open(g, deps).(*placeholder.PlaceholderScreen)
	assert.True(t, ok)
}

func TestOpenID_CatalogGame(t *testing.T) {
	deps, _ := testDeps()
	s, ok := OpenID("mini-sudoku", deps).(*PlayScreen)
	require.True(t, ok)
	assert.Equal(t, "Mini Sudoku 4×4", s.Title())
	assert.NotEmpty(t, s.View(100, 30))
}

func TestCorrectAnswerScores(t *testing.T) {
	deps, _ := testDeps()
	s := openTest(t, deps)

	answer(s, true)
	assert.Equal(t, dispatch.Result, s.disp.State())
	assert.Equal(t, 10, s.ctrl.Score())
	assert.Contains(t, s.Status(), "★ 10")
	assert.Contains(t, s.View(100, 30), "Correct! +10")

	first := s.disp.Current().ID
	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, dispatch.Presenting, s.disp.State())
	assert.NotEqual(t, first, s.disp.Current().ID, "next instance is new")

	answer(s, true)
	assert.Equal(t, 22, s.ctrl.Score(), "second answer carries a streak bonus")
}

func TestWrongAnswerResetsStreak(t *testing.T) {
	deps, _ := testDeps()
	s := openTest(t, deps)

	answer(s, true)
	s.Update(specialKey(tea.KeyEnter))
	answer(s, false)

	assert.Equal(t, 0, s.ctrl.Streak())
	assert.Equal(t, 10, s.ctrl.Score())
	assert.Contains(t, s.View(100, 30), "Not quite")
}

func TestCelebrationOnFifthInARow(t *testing.T) {
	deps, _ := testDeps()
	s := openTest(t, deps)

	for range 5 {
		answer(s, true)
		if s.disp.Last().Round.Streak < 5 {
			s.Update(specialKey(tea.KeyEnter))
		}
	}
	assert.True(t, s.disp.Last().Round.Celebrate)
	assert.Contains(t, s.View(100, 30), "5 in a row")
}

func TestRace_TickAndStaleTick(t *testing.T) {
	deps, _ := testDeps()
	s := openTest(t, deps)

	_, cmd := s.Update(ctrlR)
	require.NotNil(t, cmd, "starting a race schedules a tick")
	assert.Equal(t, session.ModeRace, s.ctrl.Mode())
	gen := s.ctrl.TimerGen()

	_, cmd = s.Update(tickMsg{gen: gen})
	assert.NotNil(t, cmd)
	assert.Equal(t, 29, s.ctrl.TimeRemaining())

	_, cmd = s.Update(tickMsg{gen: gen - 1})
	assert.Nil(t, cmd, "stale tick is ignored")
	assert.Equal(t, 29, s.ctrl.TimeRemaining())

	answer(s, true)
	assert.Equal(t, 10+29/3, s.ctrl.Score())

	_, cmd = s.Update(ctrlR)
	assert.Nil(t, cmd)
	assert.Equal(t, session.ModeUntimed, s.ctrl.Mode())
	assert.Equal(t, 0, s.ctrl.Score(), "race points stay with the race")
	_, cmd = s.Update(tickMsg{gen: gen})
	assert.Nil(t, cmd, "stopping the race cancels its ticks")
}

func TestRace_ExpirySavesBest(t *testing.T) {
	deps, sc := testDeps()
	deps.RaceSeconds = 1
	s := openTest(t, deps)

	s.Update(ctrlR)
	answer(s, true)
	gen := s.ctrl.TimerGen()

	_, cmd := s.Update(tickMsg{gen: gen})
	require.NotNil(t, cmd)
	msg := cmd()
	expired, ok := msg.(raceExpiredMsg)
	require.True(t, ok, "expected raceExpiredMsg, got %T", msg)

	s.Update(expired)
	assert.Equal(t, session.PhaseGameOver, s.ctrl.Phase())
	assert.Contains(t, s.View(100, 30), "Time's up")

	best, found, err := sc.Best(context.Background(), "quick-facts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 10, best)

	// Answers are refused until restart.
	s.Update(keyPress('2'))
	assert.Equal(t, 10, s.ctrl.Score())

	_, cmd = s.Update(specialKey(tea.KeyEnter))
	assert.NotNil(t, cmd, "restart schedules a new tick")
	assert.Equal(t, session.PhasePlaying, s.ctrl.Phase())
	assert.Equal(t, 0, s.ctrl.Score())
	assert.Equal(t, dispatch.Presenting, s.disp.State())
}

func TestEscPopsAndLeaveShowsSummary(t *testing.T) {
	deps, sc := testDeps()
	s := openTest(t, deps)
	answer(s, true)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)

	leave := s.Leave()
	require.NotNil(t, leave)
	push, ok := leave().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = push.Screen.(*summary.SummaryScreen)
	assert.True(t, ok)

	assert.Nil(t, s.Leave(), "leave is idempotent")
	assert.Equal(t, dispatch.Exited, s.disp.State())

	best, _, err := sc.Best(context.Background(), "quick-facts")
	require.NoError(t, err)
	assert.Equal(t, 10, best)
}

func TestLeaveWithoutRoundsSkipsSummary(t *testing.T) {
	deps, _ := testDeps()
	s := openTest(t, deps)
	assert.Nil(t, s.Leave())
}

func TestLeaveThroughRouterPop(t *testing.T) {
	deps, _ := testDeps()
	home := placeholder.New("home")
	r := router.New(home)
	s := openTest(t, deps)
	r.Push(s)
	answer(s, true)

	cmd := r.Pop()
	require.NotNil(t, cmd)
	assert.Equal(t, session.PhaseLeft, s.ctrl.Phase())
}

func TestKeyHintsFollowState(t *testing.T) {
	deps, _ := testDeps()
	s := openTest(t, deps)

	hintText := func() string {
		var parts []string
		for _, h := range s.KeyHints() {
			parts = append(parts, h.Description)
		}
		return strings.Join(parts, ",")
	}

	assert.Contains(t, hintText(), "Race")
	answer(s, true)
	assert.Contains(t, hintText(), "Next")
	s.Update(ctrlR)
	assert.Contains(t, hintText(), "Stop race")
}

func TestEventsRecorded(t *testing.T) {
	st, err := store.Open("file:play_events?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	deps, _ := testDeps()
	deps.Events = st.EventRepo()
	s := openTest(t, deps)
	answer(s, true)
	s.Update(specialKey(tea.KeyEnter))
	answer(s, false)
	s.Leave()

	rounds, err := st.EventRepo().QueryRounds(context.Background(), store.QueryOpts{GameID: "quick-facts"})
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.True(t, rounds[0].Correct)
	assert.False(t, rounds[1].Correct)

	sessions, err := st.EventRepo().QuerySessions(context.Background(), store.QueryOpts{GameID: "quick-facts"})
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "end", sessions[1].Action)
	assert.Equal(t, 10, sessions[1].Score)
}
