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

// numberLineView moves a marker along 0..Max until the player places it.
type numberLineView struct {
	inst     game.Instance
	q        game.NumberLineQuestion
	pos      int
	sent     bool
	revealed bool
}

func newNumberLine(inst game.Instance) View {
	q, _ := inst.Question.(game.NumberLineQuestion)
	return &numberLineView{inst: inst, q: q}
}

func (v *numberLineView) Update(msg tea.Msg) (game.Answer, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || v.sent {
		return nil, nil
	}
	switch k.String() {
	case "left", "h":
		v.pos = max(v.pos-1, 0)
	case "right", "l":
		v.pos = min(v.pos+1, v.q.Max)
	case "home":
		v.pos = 0
	case "end":
		v.pos = v.q.Max
	case "enter", "space":
		v.sent = true
		return game.Number(v.pos), nil
	}
	return nil, nil
}

func (v *numberLineView) Render(width int) string {
	var ticks, marks strings.Builder
	for i := 0; i <= v.q.Max; i++ {
		label := fmt.Sprintf("%-3d", i)
		switch {
		case v.revealed && i == v.q.Target:
			ticks.WriteString(theme.Correct.Render(label))
		case i == v.pos:
			ticks.WriteString(theme.Selected.Render(label))
		default:
			ticks.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
		if i == v.pos {
			marks.WriteString(theme.Selected.Render("▲  "))
		} else {
			marks.WriteString("   ")
		}
	}
	line := strings.Repeat("┼──", v.q.Max) + "┼"

	out := heading(width, fmt.Sprintf("Find %d on the number line!", v.q.Target)) + "\n\n" +
		centered(width, ticks.String()) + "\n" +
		centered(width, line) + "\n" +
		centered(width, marks.String())
	if v.revealed {
		out += "\n\n" + verdict(width, v.pos == v.q.Target, fmt.Sprint(v.q.Target))
	}
	return out
}

func (v *numberLineView) Reveal() { v.revealed = true }

func (v *numberLineView) Hints() []layout.KeyHint {
	return append([]layout.KeyHint{{Key: "←→", Description: "Move"}}, submitHints...)
}
