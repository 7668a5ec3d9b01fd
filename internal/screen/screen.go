// Package screen defines what the router stacks: one full-window view of
// the arcade plus the optional hooks a screen can opt into.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kidarcade/internal/ui/layout"
)

// Screen is one page of the arcade. View renders only the body; the app
// draws the header and footer around it.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider puts a short score line in the header.
type StatusProvider interface {
	Status() string
}

// Leaver is told when the screen is popped or the app quits, so it can stop
// its race timer and save a best score.
type Leaver interface {
	Leave() tea.Cmd
}

// Resumer is told when the screen is back on top of the stack.
type Resumer interface {
	Resume()
}
