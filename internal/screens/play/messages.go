package play

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// tickMsg is one second of race countdown for timer generation gen.
type tickMsg struct {
	gen int
}

// raceExpiredMsg ends the race started under timer generation gen. It is
// delivered as its own message so game-over handling never runs in the
// middle of an answer.
type raceExpiredMsg struct {
	gen int
}

// tickCmd returns a 1-second tick for timer generation gen.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
