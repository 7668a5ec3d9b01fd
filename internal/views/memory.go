package views

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/ui/layout"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

const memoryColumns = 4

// memoryView flips cards two at a time. A number card matches the dots card
// of the same value. Matching every pair submits Truth(true).
type memoryView struct {
	cards    []game.Card
	matched  []bool
	open     []int
	sel      int
	flips    int
	sent     bool
	revealed bool
}

func newMemory(inst game.Instance) View {
	q, _ := inst.Question.(game.MemoryPairsQuestion)
	return &memoryView{cards: q.Cards, matched: make([]bool, len(q.Cards))}
}

func (v *memoryView) Update(msg tea.Msg) (game.Answer, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || v.sent || len(v.cards) == 0 {
		return nil, nil
	}
	n := len(v.cards)
	switch k.String() {
	case "left", "h":
		v.sel = (v.sel + n - 1) % n
	case "right", "l", "tab":
		v.sel = (v.sel + 1) % n
	case "up", "k":
		if v.sel >= memoryColumns {
			v.sel -= memoryColumns
		}
	case "down", "j":
		if v.sel+memoryColumns < n {
			v.sel += memoryColumns
		}
	case "enter", "space":
		return v.flip(v.sel), nil
	}
	return nil, nil
}

// flip turns card i face up. The next flip after an unmatched pair turns
// that pair back down.
func (v *memoryView) flip(i int) game.Answer {
	if v.matched[i] {
		return nil
	}
	if len(v.open) == 2 {
		v.open = v.open[:0]
	}
	for _, o := range v.open {
		if o == i {
			return nil
		}
	}
	v.open = append(v.open, i)
	v.flips++
	if len(v.open) < 2 {
		return nil
	}

	a, b := v.cards[v.open[0]], v.cards[v.open[1]]
	if a.Value == b.Value && a.Face != b.Face {
		v.matched[v.open[0]], v.matched[v.open[1]] = true, true
		v.open = v.open[:0]
	}
	for _, m := range v.matched {
		if !m {
			return nil
		}
	}
	v.sent = true
	return game.Truth(true)
}

func (v *memoryView) isOpen(i int) bool {
	if v.matched[i] || v.revealed {
		return true
	}
	for _, o := range v.open {
		if o == i {
			return true
		}
	}
	return false
}

func cardFace(c game.Card) string {
	if c.Face == game.FaceDots {
		return strings.TrimSpace(strings.Repeat("• ", c.Value))
	}
	return fmt.Sprint(c.Value)
}

func (v *memoryView) Render(width int) string {
	base := lipgloss.NewStyle().
		Width(9).
		Height(1).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder())

	var rows []string
	for start := 0; start < len(v.cards); start += memoryColumns {
		var row []string
		for i := start; i < min(start+memoryColumns, len(v.cards)); i++ {
			style := base.BorderForeground(theme.Border).Foreground(theme.Text)
			text := "?"
			if v.isOpen(i) {
				text = cardFace(v.cards[i])
			}
			switch {
			case i == v.sel && !v.revealed:
				style = style.BorderForeground(theme.ArcadeYellow).Bold(true)
			case v.matched[i]:
				style = style.BorderForeground(theme.Success).Foreground(theme.Success)
			}
			row = append(row, style.Render(text), " ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return heading(width, "Match each number with its dots!") + "\n\n" +
		centered(width, lipgloss.JoinVertical(lipgloss.Left, rows...)) + "\n\n" +
		note(width, fmt.Sprintf("%d flips", v.flips))
}

func (v *memoryView) Reveal() { v.revealed = true }

func (v *memoryView) Hints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Move"},
		{Key: "Space", Description: "Flip"},
		{Key: "Esc", Description: "Leave"},
	}
}
