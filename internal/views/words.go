package views

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/ui/components"
	"github.com/abhisek/kidarcade/internal/ui/layout"
	"github.com/abhisek/kidarcade/internal/ui/theme"
)

// tiles is a bank of letter tiles. Each tile can be used once.
type tiles struct {
	letters []string
	used    []bool
	picked  []int
	sel     int
}

func newTiles(letters []string) tiles {
	return tiles{letters: letters, used: make([]bool, len(letters))}
}

// take uses the first free tile showing letter.
func (t *tiles) take(letter string) bool {
	for i, l := range t.letters {
		if !t.used[i] && strings.EqualFold(l, letter) {
			t.use(i)
			return true
		}
	}
	return false
}

func (t *tiles) use(i int) {
	if i < 0 || i >= len(t.letters) || t.used[i] {
		return
	}
	t.used[i] = true
	t.picked = append(t.picked, i)
}

func (t *tiles) undo() {
	if len(t.picked) == 0 {
		return
	}
	last := t.picked[len(t.picked)-1]
	t.used[last] = false
	t.picked = t.picked[:len(t.picked)-1]
}

func (t tiles) word() string {
	var b strings.Builder
	for _, i := range t.picked {
		b.WriteString(t.letters[i])
	}
	return b.String()
}

func (t tiles) view() string {
	var out []string
	for i, l := range t.letters {
		style := lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text).
			Bold(true)
		switch {
		case t.used[i]:
			style = style.Foreground(theme.TextDim).Bold(false)
			l = "·"
		case i == t.sel:
			style = style.BorderForeground(theme.ArcadeYellow).Foreground(theme.ArcadeYellow)
		}
		out = append(out, style.Render(strings.ToUpper(l)), " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func slots(word string, n int) string {
	cells := make([]string, n)
	for i := range n {
		cells[i] = "_"
		if i < len(word) {
			cells[i] = strings.ToUpper(word[i : i+1])
		}
	}
	return strings.Join(cells, " ")
}

// wordBuilderView spells a word from scrambled tiles.
type wordBuilderView struct {
	inst     game.Instance
	q        game.WordBuilderQuestion
	tiles    tiles
	sent     bool
	revealed bool
}

func newWordBuilder(inst game.Instance) View {
	q, _ := inst.Question.(game.WordBuilderQuestion)
	return &wordBuilderView{inst: inst, q: q, tiles: newTiles(q.Letters)}
}

func (v *wordBuilderView) Update(msg tea.Msg) (game.Answer, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || v.sent {
		return nil, nil
	}
	key := k.String()
	switch key {
	case "left":
		v.tiles.sel = max(v.tiles.sel-1, 0)
	case "right", "tab":
		v.tiles.sel = min(v.tiles.sel+1, len(v.tiles.letters)-1)
	case "space":
		v.tiles.use(v.tiles.sel)
	case "backspace":
		v.tiles.undo()
	case "enter":
		if len(v.tiles.picked) == 0 {
			return nil, nil
		}
		v.sent = true
		return game.Text(v.tiles.word()), nil
	default:
		if len(key) == 1 {
			v.tiles.take(key)
		}
	}
	return nil, nil
}

func (v *wordBuilderView) Render(width int) string {
	out := heading(width, "Build the word!") + "\n" +
		note(width, v.q.Hint) + "\n\n" +
		centered(width, theme.Title.Render(slots(v.tiles.word(), v.q.WordLength))) + "\n\n" +
		centered(width, v.tiles.view())
	if v.revealed {
		ok, _ := game.Grade(v.inst, game.Text(v.tiles.word()))
		out += "\n\n" + verdict(width, ok, v.inst.Answer.String())
	}
	return out
}

func (v *wordBuilderView) Reveal() { v.revealed = true }

func (v *wordBuilderView) Hints() []layout.KeyHint {
	return append([]layout.KeyHint{
		{Key: "a-z", Description: "Type"},
		{Key: "Bksp", Description: "Undo"},
	}, submitHints...)
}

// spellingView takes the typed word in a text input and shows the letter
// bank it may be built from.
type spellingView struct {
	inst     game.Instance
	q        game.SpellingBeeQuestion
	input    components.WordInput
	sent     bool
	revealed bool
}

func newSpelling(inst game.Instance) View {
	q, _ := inst.Question.(game.SpellingBeeQuestion)
	return &spellingView{
		inst:  inst,
		q:     q,
		input: components.NewWordInput("type the word", len(q.Letters)),
	}
}

func (v *spellingView) Update(msg tea.Msg) (game.Answer, tea.Cmd) {
	if v.sent {
		return nil, nil
	}
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "enter" {
		word := v.input.Word()
		if word == "" {
			return nil, nil
		}
		v.sent = true
		return game.Text(word), nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return nil, cmd
}

// bank marks the letters already typed.
func (v *spellingView) bank() string {
	t := newTiles(v.q.Letters)
	for _, r := range v.input.Word() {
		t.take(string(r))
	}
	t.sel = -1
	return t.view()
}

func (v *spellingView) Render(width int) string {
	out := heading(width, "🐝 Spell the word: \""+v.q.Audio+"\"") + "\n" +
		note(width, v.q.Hint) + "\n\n" +
		centered(width, v.bank()) + "\n\n" +
		centered(width, v.input.View())
	if v.revealed {
		ok, _ := game.Grade(v.inst, game.Text(v.input.Word()))
		out += "\n\n" + verdict(width, ok, v.inst.Answer.String())
	}
	return out
}

func (v *spellingView) Reveal() {
	v.revealed = true
	ok, _ := game.Grade(v.inst, game.Text(v.input.Word()))
	v.input.Mark(ok)
}

func (v *spellingView) Hints() []layout.KeyHint {
	return append([]layout.KeyHint{{Key: "a-z", Description: "Type"}}, submitHints...)
}
