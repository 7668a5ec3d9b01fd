package views

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/ui/layout"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// logicView assigns one color to each item by reading the clues. Up and down
// pick the item, left and right cycle its color.
type logicView struct {
	inst     game.Instance
	q        game.LogicGridQuestion
	choice   []int // color index per item, -1 when unset
	row      int
	sent     bool
	revealed bool
}

func newLogic(inst game.Instance) View {
	q, _ := inst.Question.(game.LogicGridQuestion)
	choice := make([]int, len(q.Items))
	for i := range choice {
		choice[i] = -1
	}
	return &logicView{inst: inst, q: q, choice: choice}
}

func (v *logicView) Update(msg tea.Msg) (game.Answer, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || v.sent || len(v.q.Items) == 0 {
		return nil, nil
	}
	n := len(v.q.Colors)
	switch k.String() {
	case "up", "k":
		v.row = max(v.row-1, 0)
	case "down", "j", "tab":
		v.row = min(v.row+1, len(v.q.Items)-1)
	case "right", "l", "space":
		v.choice[v.row] = (v.choice[v.row] + 1) % n
	case "left", "h":
		v.choice[v.row] = (v.choice[v.row] + n - 1 + boolInt(v.choice[v.row] < 0)) % n
	case "enter":
		for _, c := range v.choice {
			if c < 0 {
				return nil, nil
			}
		}
		v.sent = true
		return v.pairing(), nil
	}
	return nil, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (v *logicView) pairing() game.Pairing {
	p := make(game.Pairing, len(v.q.Items))
	for i, item := range v.q.Items {
		p[i] = game.Match{Item: item}
		if c := v.choice[i]; c >= 0 {
			p[i].Color = v.q.Colors[c]
		}
	}
	return p
}

func (v *logicView) Render(width int) string {
	var clues strings.Builder
	for i, c := range v.q.Clues {
		clues.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render("🔍 "))
		clues.WriteString(theme.Body.Render(c))
		if i < len(v.q.Clues)-1 {
			clues.WriteString("\n")
		}
	}

	want, _ := v.inst.Answer.(game.Pairing)
	rows := make([]string, len(v.q.Items))
	for i, item := range v.q.Items {
		color := "?"
		if c := v.choice[i]; c >= 0 {
			color = v.q.Colors[c]
		}
		style := theme.Unselected
		if i == v.row && !v.revealed {
			style = theme.Selected
		}
		line := style.Render(lipgloss.NewStyle().Width(10).Render(item)) + "  ◂ " + style.Render(lipgloss.NewStyle().Width(8).Align(lipgloss.Center).Render(color)) + " ▸"
		if v.revealed && i < len(want) {
			if want[i].Color == color {
				line += theme.Correct.Render("  ✓")
			} else {
				line += theme.Incorrect.Render("  ✗ " + want[i].Color)
			}
		}
		rows[i] = line
	}

	out := heading(width, "Who has which color?") + "\n\n" +
		centered(width, clues.String()) + "\n\n" +
		centered(width, strings.Join(rows, "\n"))
	if v.revealed {
		ok, _ := game.Grade(v.inst, v.pairing())
		out += "\n\n" + verdict(width, ok, v.inst.Answer.String())
	}
	return out
}

func (v *logicView) Reveal() { v.revealed = true }

func (v *logicView) Hints() []layout.KeyHint {
	return append([]layout.KeyHint{
		{Key: "↑↓", Description: "Item"},
		{Key: "←→", Description: "Color"},
	}, submitHints...)
}
