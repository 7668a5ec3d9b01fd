package registry

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/kidarcade/internal/game"
)

// Validate checks the built-in catalog for structural problems.
func Validate() error {
	return validateGames(c.games)
}

// validateGames performs all structural checks on the given catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateGames(games []MiniGame) error {
	var errs []string

	ids := make(map[string]bool, len(games))
	bands := make(map[AgeRange]bool)
	for _, g := range games {
		if g.ID == "" {
			errs = append(errs, fmt.Sprintf("game %q has empty ID", g.Name))
			continue
		}
		if ids[g.ID] {
			errs = append(errs, fmt.Sprintf("duplicate game ID: %q", g.ID))
		}
		ids[g.ID] = true
		bands[g.AgeRange] = true

		if !g.AgeRange.Valid() {
			errs = append(errs, fmt.Sprintf("game %q has unknown age range %q", g.ID, g.AgeRange))
		}
		if g.Generator == nil {
			errs = append(errs, fmt.Sprintf("game %q has no generator", g.ID))
			continue
		}

		// One sample per game catches a generator bound to the wrong entry.
		inst := g.Generator(rand.New(rand.NewPCG(1, 2)))
		if string(inst.Type) != g.ID {
			errs = append(errs, fmt.Sprintf("game %q generates type %q", g.ID, inst.Type))
		}
		if err := game.Validate(inst); err != nil {
			errs = append(errs, fmt.Sprintf("game %q: %v", g.ID, err))
		}
	}

	for _, a := range AgeRanges() {
		if !bands[a] {
			errs = append(errs, fmt.Sprintf("age range %q has no games", a))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
