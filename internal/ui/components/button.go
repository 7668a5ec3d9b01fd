package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// KeyButton is a call to action labelled with the key that triggers it.
// The owning screen handles the key itself.
type KeyButton struct {
	Label string
	Key   string
}

// View renders the key cap followed by the label.
func (b KeyButton) View() string {
	keyCap := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.ArcadeCyan).
		Bold(true).
		Padding(0, 1).
		Render(b.Key)
	return keyCap + theme.ButtonActive.Render(b.Label+" ▶")
}
