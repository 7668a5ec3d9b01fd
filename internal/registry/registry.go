// Package registry is the static catalog of mini-games.
package registry

import (
	"math/rand/v2"

	"github.com/abhisek/kidarcade/internal/game"
	"github.com/abhisek/kidarcade/internal/gamegen"
	"github.com/abhisek/kidarcade/internal/scores"
)

// AgeRange is one of the four fixed age bands.
type AgeRange string

const (
	Age3to4  AgeRange = "3-4"
	Age5to6  AgeRange = "5-6"
	Age7to8  AgeRange = "7-8"
	Age9to10 AgeRange = "9-10"
)

// AgeRanges returns the bands in ascending order.
func AgeRanges() []AgeRange {
	return []AgeRange{Age3to4, Age5to6, Age7to8, Age9to10}
}

// Valid reports whether a is a known band.
func (a AgeRange) Valid() bool {
	switch a {
	case Age3to4, Age5to6, Age7to8, Age9to10:
		return true
	}
	return false
}

// Index is the band's position in AgeRanges, or -1.
func (a AgeRange) Index() int {
	for i, b := range AgeRanges() {
		if a == b {
			return i
		}
	}
	return -1
}

// MiniGame is a catalog entry.
type MiniGame struct {
	// ID is the stable slug used for routing and score keys.
	ID          string
	Name        string
	AgeRange    AgeRange
	Description string
	Generator   gamegen.Generator
}

// Generate draws one instance from the game's generator.
func (m MiniGame) Generate(r *rand.Rand) game.Instance {
	return m.Generator(r)
}

// catalog holds the games with precomputed indices.
type catalog struct {
	games []MiniGame
	byID  map[string]int
	byAge map[AgeRange][]MiniGame
}

// c is the package-level catalog, built once in init.
var c *catalog

func init() {
	c = buildCatalog(games)
}

func buildCatalog(games []MiniGame) *catalog {
	cat := &catalog{
		games: games,
		byID:  make(map[string]int, len(games)),
		byAge: make(map[AgeRange][]MiniGame),
	}
	for i, g := range games {
		cat.byID[g.ID] = i
		cat.byAge[g.AgeRange] = append(cat.byAge[g.AgeRange], g)
	}
	return cat
}

// All returns every game in catalog order.
func All() []MiniGame {
	out := make([]MiniGame, len(c.games))
	copy(out, c.games)
	return out
}

// ByAge returns the games for a band in catalog order.
func ByAge(a AgeRange) []MiniGame {
	games := c.byAge[a]
	out := make([]MiniGame, len(games))
	copy(out, games)
	return out
}

// Get looks up a game by id.
func Get(id string) (MiniGame, bool) {
	i, ok := c.byID[id]
	if !ok {
		return MiniGame{}, false
	}
	return c.games[i], true
}

// IDs returns every game id in catalog order.
func IDs() []string {
	ids := make([]string, len(c.games))
	for i, g := range c.games {
		ids[i] = g.ID
	}
	return ids
}

// ScoreGames converts games into leaderboard candidates.
func ScoreGames(games []MiniGame) []scores.Game {
	out := make([]scores.Game, len(games))
	for i, g := range games {
		out[i] = scores.Game{ID: g.ID, Name: g.Name}
	}
	return out
}
