package gamegen

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/abhisek/kidarcade/internal/game"
)

// EquationFixGen hides the first operand of an addition or subtraction.
func EquationFixGen(r *rand.Rand) game.Instance {
	a := intRange(r, 3, 12)
	b := intRange(r, 2, 9)

	var eq string
	if r.IntN(2) == 0 {
		eq = fmt.Sprintf("__ + %d = %d", b, a+b)
	} else {
		eq = fmt.Sprintf("__ - %d = %d", b, a-b)
	}
	return game.New(game.EquationFix, game.EquationFixQuestion{Equation: eq},
		game.Number(a), numbers(numericOptions(r, a, 3, 4, positive))...)
}

var ruleSequences = []struct {
	seq    []int
	answer int
}{
	{[]int{2, 4, 6, 8}, 10},
	{[]int{5, 10, 15, 20}, 25},
	{[]int{1, 3, 5, 7}, 9},
	{[]int{10, 20, 30, 40}, 50},
	{[]int{3, 6, 9, 12}, 15},
	{[]int{1, 2, 4, 8}, 16},
}

// PatternRuleGen asks for the next term of a number sequence.
func PatternRuleGen(r *rand.Rand) game.Instance {
	s := pick(r, ruleSequences)
	return game.New(game.PatternRule, game.PatternRuleQuestion{Sequence: slices.Clone(s.seq)},
		game.Number(s.answer), numbers(numericOptions(r, s.answer, 5, 4, positive))...)
}

var quarterFractions = []struct {
	value  string
	shaded int
	total  int
}{
	{"1/2", 2, 4},
	{"1/4", 1, 4},
	{"3/4", 3, 4},
}

// VisualFractionsGen shades part of a four-piece shape. All three
// fractions are offered, in fixed order.
func VisualFractionsGen(r *rand.Rand) game.Instance {
	f := pick(r, quarterFractions)
	opts := make([]game.Answer, len(quarterFractions))
	for i, qf := range quarterFractions {
		opts[i] = game.Text(qf.value)
	}
	return game.New(game.VisualFractions, game.VisualFractionsQuestion{Shaded: f.shaded, Total: f.total},
		game.Text(f.value), opts...)
}

// ClockMasterGen shows a time on the quarter hour for the player to set.
func ClockMasterGen(r *rand.Rand) game.Instance {
	c := game.Clock{Hours: intRange(r, 1, 12), Minutes: r.IntN(4) * 15}
	q := game.ClockQuestion{Hours: c.Hours, Minutes: c.Minutes, TimeString: c.String()}
	return game.New(game.ClockMaster, q, c)
}

var coins = []game.Coin{
	{Name: "penny", Value: 1, Symbol: "1¢"},
	{Name: "nickel", Value: 5, Symbol: "5¢"},
	{Name: "dime", Value: 10, Symbol: "10¢"},
	{Name: "quarter", Value: 25, Symbol: "25¢"},
}

// MoneyCounterGen fills a purse with two to five coins and asks for the
// total in cents.
func MoneyCounterGen(r *rand.Rand) game.Instance {
	n := intRange(r, 2, 5)
	q := game.MoneyQuestion{Coins: make([]game.Coin, n)}
	for i := range n {
		q.Coins[i] = pick(r, coins)
	}
	total := q.Total()
	return game.New(game.MoneyCounter, q,
		game.Number(total), numbers(numericOptions(r, total, 10, 4, positive))...)
}

var spellingWords = []struct {
	word  string
	audio string
	hint  string
}{
	{"happy", "hap-py", "Feeling good and joyful"},
	{"table", "ta-ble", "Furniture you eat on"},
	{"apple", "ap-ple", "A red or green fruit"},
	{"water", "wa-ter", "Clear liquid you drink"},
	{"house", "hou-se", "A building where people live"},
	{"tiger", "ti-ger", "A big striped cat"},
	{"pizza", "piz-za", "Italian food with cheese"},
	{"smile", "smi-le", "Expression when you're happy"},
	{"clock", "clo-ck", "Tells you the time"},
	{"plant", "pla-nt", "Green thing that grows"},
}

const spellingExtras = 3

// SpellingBeeGen mixes a word's letters with three unrelated letters.
func SpellingBeeGen(r *rand.Rand) game.Instance {
	w := pick(r, spellingWords)
	letters := strings.Split(w.word, "")

	var extras []string
	for c := 'a'; c <= 'z'; c++ {
		if !strings.ContainsRune(w.word, c) {
			extras = append(extras, string(c))
		}
	}
	shuffle(r, extras)
	letters = append(letters, extras[:spellingExtras]...)
	shuffle(r, letters)

	q := game.SpellingBeeQuestion{Audio: w.audio, Hint: w.hint, Letters: letters, WordLength: len(w.word)}
	return game.New(game.SpellingBee, q, game.Text(w.word))
}

const symmetrySize = 4

// SymmetryMirrorGen fills the left half of a grid at random. The answer is
// the grid with its right half mirrored from the left.
func SymmetryMirrorGen(r *rand.Rand) game.Instance {
	grid, solution := mirrorGrid(r, symmetrySize)
	return game.New(game.SymmetryMirror, game.SymmetryQuestion{Grid: grid, Size: symmetrySize}, solution)
}

func mirrorGrid(r *rand.Rand, width int) (game.Grid, game.Grid) {
	grid := make(game.Grid, width)
	for y := range grid {
		grid[y] = make([]int, width)
		for x := range width / 2 {
			grid[y][x] = r.IntN(2)
		}
	}

	solution := grid.Clone()
	for y := range solution {
		for x := width / 2; x < width; x++ {
			solution[y][x] = solution[y][width-1-x]
		}
	}
	return grid, solution
}
