package views

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/gamegen"
	"github.com/abhisek/kidarcade/internal/registry"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

var (
	up    = specialKey(tea.KeyUp)
	down  = specialKey(tea.KeyDown)
	left  = specialKey(tea.KeyLeft)
	right = specialKey(tea.KeyRight)
	enter = specialKey(tea.KeyEnter)
	space = specialKey(tea.KeySpace)
	bksp  = specialKey(tea.KeyBackspace)
)

// press feeds msgs to v and returns the first submitted answer.
func press(v View, msgs ...tea.Msg) game.Answer {
	var got game.Answer
	for _, m := range msgs {
		if a, _ := v.Update(m); a != nil && got == nil {
			got = a
		}
	}
	return got
}

func repeat(m tea.Msg, n int) []tea.Msg {
	out := make([]tea.Msg, n)
	for i := range out {
		out[i] = m
	}
	return out
}

func typed(s string) []tea.Msg {
	var out []tea.Msg
	for _, r := range s {
		out = append(out, keyPress(r))
	}
	return out
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed*31+7))
}

func TestEveryCatalogGameHasAView(t *testing.T) {
	r := newRand(1)
	for _, g := range registry.All() {
		inst := g.Generate(r)
		v, ok := For(inst)
		require.True(t, ok, "no view for %s", g.ID)
		assert.NotEmpty(t, v.Render(80), g.ID)
		assert.NotEmpty(t, v.Hints(), g.ID)
	}
}

func TestFor_UnknownType(t *testing.T) {
	_, ok := For(game.Instance{Type: "rocket-launch", Question: game.OddEvenQuestion{Number: 3}})
	assert.False(t, ok)
	assert.False(t, Has("rocket-launch"))
}

func TestChoice_DigitPicksOption(t *testing.T) {
	r := newRand(3)
	for _, gen := range []gamegen.Generator{
		gamegen.TapToCountGen, gamegen.MoneyCounterGen, gamegen.InequalitiesGen,
		gamegen.CoordinatesGen, gamegen.DecimalPlaceGen, gamegen.PrimeTimeGen,
	} {
		inst := gen(r)
		idx := slices.IndexFunc(inst.Options, func(a game.Answer) bool {
			ok, _ := game.Grade(inst, a)
			return ok
		})
		require.GreaterOrEqual(t, idx, 0, inst.Type)

		v, ok := For(inst)
		require.True(t, ok)
		got := press(v, keyPress(rune('1'+idx)))
		require.NotNil(t, got, inst.Type)
		ok, err := game.Grade(inst, got)
		require.NoError(t, err)
		assert.True(t, ok, inst.Type)

		assert.Nil(t, press(v, enter), "second submit ignored")
		v.Reveal()
		assert.NotEmpty(t, v.Render(80))
	}
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "True", optionLabel(game.Inequalities, game.Truth(true)))
	assert.Equal(t, "$0.35", optionLabel(game.MoneyCounter, game.Number(35)))
	assert.Equal(t, "35", optionLabel(game.QuickFacts, game.Number(35)))
	assert.Equal(t, "▲ triangle", optionLabel(game.ShapeMatch, game.Text("triangle")))
}

func assertCorrect(t *testing.T, inst game.Instance, got game.Answer) {
	t.Helper()
	require.NotNil(t, got, "no answer submitted for %s", inst.Type)
	ok, err := game.Grade(inst, got)
	require.NoError(t, err)
	assert.True(t, ok, "%s: got %v want %v", inst.Type, got, inst.Answer)
}

func TestNumberLine(t *testing.T) {
	inst := game.New(game.NumberLine, game.NumberLineQuestion{Target: 7, Max: 20}, game.Number(7))
	v := newNumberLine(inst)

	msgs := append(repeat(left, 3), repeat(right, 7)...)
	assertCorrect(t, inst, press(v, append(msgs, enter)...))

	v2 := newNumberLine(inst)
	got := press(v2, append(repeat(right, 30), enter)...)
	assert.Equal(t, game.Number(20), got, "marker stops at max")
}

func TestMemoryPairs(t *testing.T) {
	inst := gamegen.MemoryPairsGen(newRand(5))
	v := newMemory(inst).(*memoryView)
	n := len(v.cards)

	goTo := func(i int) []tea.Msg {
		return repeat(right, (i-v.sel+n)%n)
	}

	// A mismatched pair stays face down and does not submit.
	a := 0
	b := slices.IndexFunc(v.cards, func(c game.Card) bool { return c.Value != v.cards[a].Value })
	assert.Nil(t, press(v, append(goTo(a), space)...))
	assert.Nil(t, press(v, append(goTo(b), space)...))
	assert.False(t, v.matched[a])

	var got game.Answer
	for i, c := range v.cards {
		if v.matched[i] || c.Face != game.FaceNumber {
			continue
		}
		j := slices.IndexFunc(v.cards, func(d game.Card) bool { return d.Value == c.Value && d.Face == game.FaceDots })
		press(v, append(goTo(i), space)...)
		if ans := press(v, append(goTo(j), space)...); ans != nil {
			got = ans
		}
	}
	assertCorrect(t, inst, got)
	assert.Greater(t, v.flips, n)
}

func TestWordBuilder(t *testing.T) {
	inst := game.New(game.WordBuilder,
		game.WordBuilderQuestion{Letters: []string{"t", "a", "c"}, Hint: "meow", WordLength: 3},
		game.Text("cat"))
	v := newWordBuilder(inst).(*wordBuilderView)

	press(v, typed("ct")...)
	press(v, bksp)
	assert.Equal(t, "c", v.tiles.word())

	press(v, keyPress('z'))
	assert.Equal(t, "c", v.tiles.word(), "letters not in the bank are ignored")

	assertCorrect(t, inst, press(v, append(typed("at"), enter)...))
}

func TestWordBuilder_EmptyEnterIgnored(t *testing.T) {
	inst := gamegen.WordBuilderGen(newRand(2))
	v := newWordBuilder(inst)
	assert.Nil(t, press(v, enter))
}

func TestSpellingBee(t *testing.T) {
	inst := gamegen.SpellingBeeGen(newRand(9))
	v := newSpelling(inst)
	assertCorrect(t, inst, press(v, append(typed(inst.Answer.String()), enter)...))
	v.Reveal()
	assert.Contains(t, v.Render(80), "You got it")
}

func TestMazeRunner(t *testing.T) {
	inst := gamegen.MazeRunnerGen(newRand(4))
	path := inst.Answer.(game.Path)
	v := newMaze(inst).(*mazeView)

	var msgs []tea.Msg
	for i := 1; i < len(path); i++ {
		if path[i].Row > path[i-1].Row {
			msgs = append(msgs, down)
		} else {
			msgs = append(msgs, right)
		}
	}

	// Walls and retraced steps do not corrupt the walk.
	press(v, up, left)
	assert.Len(t, v.walk, 1)
	press(v, msgs[0])
	if msgs[0] == right {
		press(v, left)
	} else {
		press(v, up)
	}
	assert.Len(t, v.walk, 1)

	assertCorrect(t, inst, press(v, append(msgs, enter)...))
}

func gotoCell(row, col int) []tea.Msg {
	msgs := append(repeat(up, 5), repeat(left, 5)...)
	msgs = append(msgs, repeat(down, row)...)
	return append(msgs, repeat(right, col)...)
}

func TestMiniSudoku(t *testing.T) {
	inst := gamegen.MiniSudokuGen(newRand(6))
	q := inst.Question.(game.SudokuQuestion)
	v := newSudoku(inst).(*sudokuView)

	var given [2]int
	var blanks int
	for r, row := range q.Puzzle {
		for c, n := range row {
			if n != 0 {
				given = [2]int{r, c}
				continue
			}
			blanks++
			press(v, gotoCell(r, c)...)
			press(v, keyPress(rune('0'+q.Solution[r][c])))
		}
	}
	require.Equal(t, 6, blanks)

	before := v.grid[given[0]][given[1]]
	press(v, gotoCell(given[0], given[1])...)
	press(v, keyPress('4'), bksp)
	assert.Equal(t, before, v.grid[given[0]][given[1]], "given cells are locked")

	assertCorrect(t, inst, press(v, enter))
}

func TestSymmetryMirror(t *testing.T) {
	inst := gamegen.SymmetryMirrorGen(newRand(8))
	q := inst.Question.(game.SymmetryQuestion)
	want := inst.Answer.(game.Grid)
	v := newSymmetry(inst).(*symmetryView)

	for r := range q.Size {
		for c := q.Size / 2; c < q.Size; c++ {
			if want[r][c] != q.Grid[r][c] {
				press(v, gotoCell(r, 0)...)
				press(v, repeat(right, c-q.Size/2)...)
				press(v, space)
			}
		}
	}

	press(v, repeat(left, 5)...)
	assert.Equal(t, q.Size/2, v.cur.col, "cursor stays on the right half")

	assertCorrect(t, inst, press(v, enter))
}

func TestClockMaster(t *testing.T) {
	for _, c := range []game.Clock{{Hours: 3, Minutes: 45}, {Hours: 12, Minutes: 0}, {Hours: 11, Minutes: 15}} {
		inst := game.New(game.ClockMaster, game.ClockQuestion{Hours: c.Hours, Minutes: c.Minutes, TimeString: c.String()}, c)
		v := newClock(inst)
		msgs := append(repeat(up, c.Hours%12), repeat(right, c.Minutes/15)...)
		assertCorrect(t, inst, press(v, append(msgs, enter)...))
	}

	inst := gamegen.ClockMasterGen(newRand(1))
	v := newClock(inst)
	got := press(v, append(repeat(down, 1), repeat(left, 1)...)...)
	assert.Nil(t, got)
	assert.Equal(t, game.Clock{Hours: 11, Minutes: 45}, v.(*clockView).set, "hands wrap around")
}

func TestLogicGrid(t *testing.T) {
	inst := gamegen.LogicGridGen(newRand(12))
	q := inst.Question.(game.LogicGridQuestion)
	want := inst.Answer.(game.Pairing)
	v := newLogic(inst)

	assert.Nil(t, press(v, enter), "incomplete assignment is not submitted")

	var msgs []tea.Msg
	for i := range q.Items {
		idx := slices.Index(q.Colors, want[i].Color)
		require.GreaterOrEqual(t, idx, 0)
		msgs = append(msgs, repeat(right, idx+1)...)
		msgs = append(msgs, down)
	}
	assertCorrect(t, inst, press(v, append(msgs, enter)...))
}

func TestRevealShowsAnswer(t *testing.T) {
	inst := game.New(game.NumberLine, game.NumberLineQuestion{Target: 4, Max: 20}, game.Number(4))
	v := newNumberLine(inst)
	press(v, enter)
	v.Reveal()
	assert.Contains(t, v.Render(100), "Answer: "+strconv.Itoa(4))
}
