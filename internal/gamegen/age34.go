package gamegen

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/kidarcade/internal/game"
)

// TapToCountGen asks how many objects are shown (1-10). Distractors sit one
// and two away from the count and never drop below 1.
func TapToCountGen(r *rand.Rand) game.Instance {
	target := intRange(r, 1, 10)

	opts := []int{target}
	add := func(v int) {
		if len(opts) < 3 && !slices.Contains(opts, v) {
			opts = append(opts, v)
		}
	}
	add(max(1, target+sign(r)))
	add(max(1, target+2*sign(r)))
	for _, v := range r.Perm(10) {
		add(v + 1)
	}
	shuffle(r, opts)

	return game.New(game.TapToCount, game.TapToCountQuestion{Count: target},
		game.Number(target), numbers(opts)...)
}

// sign returns +1 or -1 with equal probability.
func sign(r *rand.Rand) int {
	if r.IntN(2) == 0 {
		return -1
	}
	return 1
}

var basicShapes = []string{"circle", "triangle", "square"}

// ShapeMatchGen asks the player to match a shape to its outline. All three
// shapes are always offered, in fixed order.
func ShapeMatchGen(r *rand.Rand) game.Instance {
	shape := pick(r, basicShapes)
	return game.New(game.ShapeMatch, game.ShapeMatchQuestion{Shape: shape},
		game.Text(shape), texts(basicShapes)...)
}

// WhichIsMoreGen shows two piles of 2-9 items with different sizes. The
// options are the two pile sizes in display order.
func WhichIsMoreGen(r *rand.Rand) game.Instance {
	pile1 := intRange(r, 2, 9)
	pile2 := intRange(r, 2, 8)
	if pile2 >= pile1 {
		pile2++
	}
	return game.New(game.WhichIsMore, game.WhichIsMoreQuestion{Pile1: pile1, Pile2: pile2},
		game.Number(max(pile1, pile2)), game.Number(pile1), game.Number(pile2))
}

var nextPatterns = []struct {
	pattern []string
	answer  string
}{
	{[]string{"A", "B", "A", "B"}, "A"},
	{[]string{"red", "blue", "red", "blue"}, "red"},
	{[]string{"circle", "square", "circle"}, "square"},
	{[]string{"A", "B", "C", "A", "B"}, "C"},
	{[]string{"star", "star", "moon", "star", "star"}, "moon"},
}

var patternTokens = []string{"A", "B", "C", "red", "blue", "green", "circle", "square", "triangle", "star", "moon"}

// PatternNextGen asks what comes next in a repeating pattern.
func PatternNextGen(r *rand.Rand) game.Instance {
	p := pick(r, nextPatterns)
	return game.New(game.PatternNext, game.PatternNextQuestion{Pattern: slices.Clone(p.pattern)},
		game.Text(p.answer), texts(poolOptions(r, p.answer, patternTokens, 3))...)
}

type namedColor struct {
	name  string
	hex   string
	emoji string
}

var matchColors = []namedColor{
	{"red", "#EF4444", "🍎"},
	{"blue", "#3B82F6", "🫐"},
	{"yellow", "#EAB308", "🍌"},
	{"green", "#22C55E", "🐸"},
	{"orange", "#F97316", "🍊"},
	{"purple", "#A855F7", "🍇"},
}

// ColorMatchGen shows a colored swatch and asks for its name.
func ColorMatchGen(r *rand.Rand) game.Instance {
	c := pick(r, matchColors)
	names := make([]string, len(matchColors))
	for i, mc := range matchColors {
		names[i] = mc.name
	}
	q := game.ColorMatchQuestion{TargetColor: c.name, TargetHex: c.hex, Emoji: c.emoji}
	return game.New(game.ColorMatch, q, game.Text(c.name), texts(poolOptions(r, c.name, names, 3))...)
}

var animalSounds = []struct {
	animal string
	sound  string
}{
	{"dog", "Woof woof!"},
	{"cat", "Meow!"},
	{"cow", "Moo!"},
	{"duck", "Quack quack!"},
	{"sheep", "Baa!"},
	{"lion", "Roar!"},
	{"frog", "Ribbit!"},
}

// SoundMatchGen plays an animal sound and asks which animal makes it.
func SoundMatchGen(r *rand.Rand) game.Instance {
	a := pick(r, animalSounds)
	animals := make([]string, len(animalSounds))
	for i, s := range animalSounds {
		animals[i] = s.animal
	}
	q := game.SoundMatchQuestion{Sound: a.sound, Emoji: "🔊"}
	return game.New(game.SoundMatch, q, game.Text(a.animal), texts(poolOptions(r, a.animal, animals, 3))...)
}

var (
	sorterShapes = []string{"circle", "square", "triangle", "star", "heart"}
	sorterColors = []string{"red", "blue", "green", "yellow"}
)

// ShapeSorterGen shows a colored shape and asks which bin it goes in.
func ShapeSorterGen(r *rand.Rand) game.Instance {
	shape := pick(r, sorterShapes)
	q := game.ShapeSorterQuestion{TargetShape: shape, TargetColor: pick(r, sorterColors)}
	return game.New(game.ShapeSorter, q, game.Text(shape), texts(poolOptions(r, shape, sorterShapes, 4))...)
}

var sizePairs = []struct {
	big, bigEmoji     string
	small, smallEmoji string
}{
	{"elephant", "🐘", "mouse", "🐭"},
	{"whale", "🐋", "fish", "🐟"},
	{"tree", "🌳", "flower", "🌸"},
	{"house", "🏠", "dog", "🐕"},
	{"bus", "🚌", "bike", "🚲"},
	{"sun", "☀️", "ball", "⚽"},
}

// BigOrSmallGen shows two items in random order and asks for the bigger or
// the smaller one.
func BigOrSmallGen(r *rand.Rand) game.Instance {
	p := pick(r, sizePairs)
	q := game.BigOrSmallQuestion{
		Item1: p.big, Emoji1: p.bigEmoji,
		Item2: p.small, Emoji2: p.smallEmoji,
		AskFor: "big",
	}
	if r.IntN(2) == 0 {
		q.Item1, q.Item2 = q.Item2, q.Item1
		q.Emoji1, q.Emoji2 = q.Emoji2, q.Emoji1
	}
	answer := p.big
	if r.IntN(2) == 0 {
		q.AskFor = "small"
		answer = p.small
	}
	return game.New(game.BigOrSmall, q, game.Text(answer), game.Text(q.Item1), game.Text(q.Item2))
}
