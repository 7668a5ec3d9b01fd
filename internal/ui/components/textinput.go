package components

import (
	"strings"
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// WordInput is a single-word text box for spelling games. It accepts
// letters only and reports the word in lower case.
type WordInput struct {
	model  textinput.Model
	marked bool
	ok     bool
}

// NewWordInput creates a focused input holding at most limit letters.
// A limit of zero means no limit.
func NewWordInput(placeholder string, limit int) WordInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.CharLimit = limit
	m.Focus()
	return WordInput{model: m}
}

// Update forwards editing keys and drops anything that is not a letter.
func (w WordInput) Update(msg tea.Msg) (WordInput, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.Text != "" {
		for _, r := range key.Text {
			if !unicode.IsLetter(r) {
				return w, nil
			}
		}
	}
	var cmd tea.Cmd
	w.model, cmd = w.model.Update(msg)
	return w, cmd
}

// Word returns the typed word, trimmed and lower-cased.
func (w WordInput) Word() string {
	return strings.ToLower(strings.TrimSpace(w.model.Value()))
}

// Mark pins a ✓ or ✗ after the input once the answer is graded.
func (w *WordInput) Mark(ok bool) {
	w.marked = true
	w.ok = ok
}

// View renders the input and, once marked, its result.
func (w WordInput) View() string {
	out := w.model.View()
	if !w.marked {
		return out
	}
	if w.ok {
		return out + " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return out + " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
}
