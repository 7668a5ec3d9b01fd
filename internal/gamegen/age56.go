package gamegen

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/abhisek/kidarcade/internal/game"
)

const numberLineMax = 20

// NumberLineGen asks the player to place a number (1-20) on a number line.
func NumberLineGen(r *rand.Rand) game.Instance {
	target := intRange(r, 1, numberLineMax)
	return game.New(game.NumberLine, game.NumberLineQuestion{Target: target, Max: numberLineMax},
		game.Number(target))
}

// QuickFactsGen asks a single-digit addition or a non-negative subtraction.
func QuickFactsGen(r *rand.Rand) game.Instance {
	a, b := intRange(r, 1, 9), intRange(r, 1, 9)

	var answer int
	var expr string
	if r.IntN(2) == 0 {
		answer = a + b
		expr = fmt.Sprintf("%d + %d", a, b)
	} else {
		hi, lo := max(a, b), min(a, b)
		answer = hi - lo
		expr = fmt.Sprintf("%d - %d", hi, lo)
	}

	return game.New(game.QuickFacts, game.QuickFactsQuestion{Expression: expr},
		game.Number(answer), numbers(numericOptions(r, answer, 2, 3, positive))...)
}

const memoryPairCount = 4

// MemoryPairsGen deals face-down cards where each number card pairs with a
// dots card of the same value. The round is won once every pair is matched.
func MemoryPairsGen(r *rand.Rand) game.Instance {
	cards := make([]game.Card, 0, memoryPairCount*2)
	for v := 1; v <= memoryPairCount; v++ {
		cards = append(cards,
			game.Card{ID: fmt.Sprintf("num-%d", v), Face: game.FaceNumber, Value: v},
			game.Card{ID: fmt.Sprintf("dots-%d", v), Face: game.FaceDots, Value: v},
		)
	}
	shuffle(r, cards)
	return game.New(game.MemoryPairs, game.MemoryPairsQuestion{Cards: cards}, game.Truth(true))
}

// OddEvenGen asks whether a number from 1 to 20 is odd or even.
func OddEvenGen(r *rand.Rand) game.Instance {
	n := intRange(r, 1, 20)
	answer := "odd"
	if n%2 == 0 {
		answer = "even"
	}
	return game.New(game.OddEven, game.OddEvenQuestion{Number: n},
		game.Text(answer), game.Text("odd"), game.Text("even"))
}

var builderWords = []struct {
	word string
	hint string
}{
	{"cat", "A furry pet that says meow"},
	{"dog", "A furry pet that says woof"},
	{"sun", "Bright and yellow in the sky"},
	{"hat", "You wear it on your head"},
	{"bat", "Flies at night or used in baseball"},
	{"cup", "You drink from it"},
	{"pig", "Pink farm animal that says oink"},
	{"fox", "Orange animal with a bushy tail"},
	{"bug", "A small insect"},
	{"bed", "You sleep on it"},
}

// WordBuilderGen scrambles a three-letter word and shows a hint.
func WordBuilderGen(r *rand.Rand) game.Instance {
	w := pick(r, builderWords)
	letters := strings.Split(w.word, "")
	shuffle(r, letters)
	q := game.WordBuilderQuestion{Letters: letters, Hint: w.hint, WordLength: len(w.word)}
	return game.New(game.WordBuilder, q, game.Text(w.word))
}

var colorMixes = []struct {
	a, b, result string
}{
	{"red", "blue", "purple"},
	{"red", "yellow", "orange"},
	{"blue", "yellow", "green"},
	{"red", "white", "pink"},
	{"black", "white", "gray"},
}

var mixResults = []string{"purple", "orange", "green", "pink", "gray", "brown"}

// ColorMixGen asks what two paint colors make when mixed.
func ColorMixGen(r *rand.Rand) game.Instance {
	m := pick(r, colorMixes)
	return game.New(game.ColorMix, game.ColorMixQuestion{Color1: m.a, Color2: m.b},
		game.Text(m.result), texts(poolOptions(r, m.result, mixResults, 3))...)
}

type animalFacts struct {
	name    string
	sound   string
	baby    string
	habitat string
}

var farmAnimals = []animalFacts{
	{"dog", "woof", "puppy", "house"},
	{"cat", "meow", "kitten", "house"},
	{"cow", "moo", "calf", "farm"},
	{"duck", "quack", "duckling", "pond"},
	{"lion", "roar", "cub", "jungle"},
	{"bird", "chirp", "chick", "tree"},
	{"frog", "ribbit", "tadpole", "pond"},
	{"sheep", "baa", "lamb", "farm"},
}

var animalMatchTypes = []string{"sound", "baby", "habitat"}

// AnimalMatchGen asks for an animal's sound, baby name or habitat. Options
// are the first four distinct values of that fact, plus the answer when it
// is not among them.
func AnimalMatchGen(r *rand.Rand) game.Instance {
	a := pick(r, farmAnimals)
	matchType := pick(r, animalMatchTypes)

	fact := func(f animalFacts) string {
		switch matchType {
		case "sound":
			return f.sound
		case "baby":
			return f.baby
		default:
			return f.habitat
		}
	}

	answer := fact(a)
	var opts []string
	for _, f := range farmAnimals {
		v := fact(f)
		if len(opts) < 4 && !slices.Contains(opts, v) {
			opts = append(opts, v)
		}
	}
	if !slices.Contains(opts, answer) {
		opts = append(opts, answer)
	}
	shuffle(r, opts)

	return game.New(game.AnimalMatch, game.AnimalMatchQuestion{Animal: a.name, MatchType: matchType},
		game.Text(answer), texts(opts)...)
}

const mazeSize = 5

// MazeRunnerGen carves a monotone staircase from the top-left to the
// bottom-right corner, stepping right or down at random until a boundary
// forces the direction. The answer is the ordered walk.
func MazeRunnerGen(r *rand.Rand) game.Instance {
	maze, path := carveStaircase(r, mazeSize)
	return game.New(game.MazeRunner, game.MazeQuestion{Maze: maze, Size: mazeSize}, path)
}

func carveStaircase(r *rand.Rand, n int) (game.Grid, game.Path) {
	maze := make(game.Grid, n)
	for i := range maze {
		maze[i] = make([]int, n)
	}

	row, col := 0, 0
	maze[row][col] = 1
	path := game.Path{{Row: 0, Col: 0}}

	for row < n-1 || col < n-1 {
		canRight, canDown := col < n-1, row < n-1
		switch {
		case canRight && canDown:
			if r.IntN(2) == 0 {
				col++
			} else {
				row++
			}
		case canRight:
			col++
		default:
			row++
		}
		maze[row][col] = 1
		path = append(path, game.Cell{Row: row, Col: col})
	}
	return maze, path
}
