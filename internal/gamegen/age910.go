package gamegen

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/kidarcade/internal/game"
)

var mixedExpressions = []struct {
	expr   string
	answer int
}{
	{"24 ÷ 3 + 5", 13},
	{"15 - 7 × 2", 1},
	{"20 ÷ 4 + 8", 13},
	{"18 - 9 + 6", 15},
	{"12 × 2 - 10", 14},
	{"6 × 3 - 4", 14},
	{"36 ÷ 6 × 2", 12},
}

// MentalMathGen asks a multi-step expression that respects operator
// precedence.
func MentalMathGen(r *rand.Rand) game.Instance {
	e := pick(r, mixedExpressions)
	return game.New(game.MentalMath, game.MentalMathQuestion{Expression: e.expr},
		game.Number(e.answer), numbers(numericOptions(r, e.answer, 5, 4, nil))...)
}

var comparisons = []struct {
	op   string
	eval func(a, b int) bool
}{
	{"<", func(a, b int) bool { return a < b }},
	{">", func(a, b int) bool { return a > b }},
	{"=", func(a, b int) bool { return a == b }},
	{"≤", func(a, b int) bool { return a <= b }},
	{"≥", func(a, b int) bool { return a >= b }},
}

// InequalitiesGen asks whether a comparison of two numbers (5-24) holds.
func InequalitiesGen(r *rand.Rand) game.Instance {
	a, b := intRange(r, 5, 24), intRange(r, 5, 24)
	c := pick(r, comparisons)
	q := game.InequalityQuestion{Expression: fmt.Sprintf("%d %s %d", a, c.op, b)}
	return game.New(game.Inequalities, q, game.Truth(c.eval(a, b)), game.Truth(true), game.Truth(false))
}

var logicSets = []struct {
	items  []string
	colors []string
}{
	{[]string{"apple", "banana", "orange"}, []string{"red", "yellow", "green"}},
	{[]string{"car", "kite", "boat"}, []string{"blue", "red", "white"}},
	{[]string{"cat", "dog", "fish"}, []string{"black", "brown", "gold"}},
}

// LogicGridGen assigns each item a distinct color and writes three clues
// that determine the assignment: one direct, two by elimination.
func LogicGridGen(r *rand.Rand) game.Instance {
	set := pick(r, logicSets)
	items := slices.Clone(set.items)
	colors := slices.Clone(set.colors)

	perm := r.Perm(len(colors))
	solution := make(game.Pairing, len(items))
	for i, item := range items {
		solution[i] = game.Match{Item: item, Color: colors[perm[i]]}
	}

	clues := []string{
		fmt.Sprintf("The %s is %s", solution[0].Item, solution[0].Color),
		fmt.Sprintf("The %s is not %s", solution[1].Item, solution[2].Color),
		fmt.Sprintf("The %s is not %s", solution[2].Item, solution[1].Color),
	}
	return game.New(game.LogicGrid, game.LogicGridQuestion{Clues: clues, Items: items, Colors: colors}, solution)
}

const coordinateMax = 8

// CoordinatesGen asks for a point on an 8x8 grid. Options are the point and
// its neighbours to the right, above and left that stay on the grid.
func CoordinatesGen(r *rand.Rand) game.Instance {
	x, y := intRange(r, 1, coordinateMax), intRange(r, 1, coordinateMax)
	candidates := []game.Point{{X: x, Y: y}, {X: x + 1, Y: y}, {X: x, Y: y + 1}, {X: x - 1, Y: y}}

	var opts []game.Answer
	for _, p := range candidates {
		if p.X > 0 && p.Y > 0 && p.X <= coordinateMax && p.Y <= coordinateMax {
			opts = append(opts, p)
		}
	}
	shuffle(r, opts)
	return game.New(game.Coordinates, game.CoordinatesQuestion{TargetX: x, TargetY: y}, game.Point{X: x, Y: y}, opts...)
}

// DecimalPlaceGen asks where a one-place decimal sits on a 0-1 or 0-2
// number line. Options are other tenths on the same line.
func DecimalPlaceGen(r *rand.Rand) game.Instance {
	lineMax := intRange(r, 1, 2)
	tenths := intRange(r, 1, lineMax*10-1)
	opts := numericOptions(r, tenths, 5, 4, between(0, lineMax*10))

	answers := make([]game.Answer, len(opts))
	for i, v := range opts {
		answers[i] = game.Tenths(v)
	}
	q := game.DecimalPlaceQuestion{Decimal: game.Tenths(tenths), Min: 0, Max: lineMax}
	return game.New(game.DecimalPlace, q, game.Tenths(tenths), answers...)
}

type storyProblem struct {
	text  string
	solve func(a, b int) int
	a, b  [2]int
}

var storyProblems = []storyProblem{
	{"Maya has %d stickers and gets %d more. How many stickers does she have now?",
		func(a, b int) int { return a + b }, [2]int{12, 40}, [2]int{5, 30}},
	{"A baker made %d muffins and sold %d. How many muffins are left?",
		func(a, b int) int { return a - b }, [2]int{30, 60}, [2]int{5, 25}},
	{"There are %d boxes with %d crayons in each. How many crayons are there?",
		func(a, b int) int { return a * b }, [2]int{3, 9}, [2]int{4, 12}},
	{"Leo saves $%d each week for %d weeks. How much does he save?",
		func(a, b int) int { return a * b }, [2]int{2, 10}, [2]int{3, 8}},
}

// WordMathGen fills a short story problem with random quantities. Division
// problems are built from their product so the answer is whole.
func WordMathGen(r *rand.Rand) game.Instance {
	var problem string
	var answer int
	if r.IntN(len(storyProblems)+1) == 0 {
		friends := intRange(r, 2, 6)
		each := intRange(r, 2, 9)
		problem = fmt.Sprintf("%d cookies are shared equally among %d friends. How many cookies does each friend get?",
			friends*each, friends)
		answer = each
	} else {
		p := pick(r, storyProblems)
		a, b := intRange(r, p.a[0], p.a[1]), intRange(r, p.b[0], p.b[1])
		problem = fmt.Sprintf(p.text, a, b)
		answer = p.solve(a, b)
	}
	return game.New(game.WordMath, game.WordMathQuestion{Problem: problem},
		game.Number(answer), numbers(numericOptions(r, answer, 4, 4, positive))...)
}

var factorTargets = []int{12, 16, 18, 20, 24, 30, 36}

// FactorFinderGen asks for the one factor of a number among non-factors
// no larger than it.
func FactorFinderGen(r *rand.Rand) game.Instance {
	n := pick(r, factorTargets)

	var factors, others []int
	for d := 1; d <= n; d++ {
		if n%d == 0 {
			factors = append(factors, d)
		} else {
			others = append(others, d)
		}
	}

	answer := pick(r, factors)
	shuffle(r, others)
	opts := append([]int{answer}, others[:3]...)
	shuffle(r, opts)

	return game.New(game.FactorFinder, game.FactorFinderQuestion{Number: n, Factors: factors},
		game.Number(answer), numbers(opts)...)
}

var (
	primePool     = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	compositePool = []int{4, 6, 8, 9, 10, 12, 14, 15, 16, 18}
)

// PrimeTimeGen asks for the one prime (or composite) among four numbers.
// Unlike the other games the options are sorted ascending.
func PrimeTimeGen(r *rand.Rand) game.Instance {
	askFor, want, other := "prime", primePool, compositePool
	if r.IntN(2) == 0 {
		askFor, want, other = "composite", compositePool, primePool
	}

	answer := pick(r, want)
	rest := slices.Clone(other)
	shuffle(r, rest)
	opts := append([]int{answer}, rest[:3]...)
	slices.Sort(opts)

	q := game.PrimeTimeQuestion{AskFor: askFor, Primes: slices.Clone(primePool)}
	return game.New(game.PrimeTime, q, game.Number(answer), numbers(opts)...)
}
