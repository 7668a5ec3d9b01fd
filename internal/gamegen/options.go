// Package gamegen holds the instance generators for every mini-game, grouped
// by age band. Generators draw only from the random source they are given.
package gamegen

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/kidarcade/internal/game"
)

// Generator produces one instance per call.
type Generator func(r *rand.Rand) game.Instance

const (
	// maxDistractorTries bounds collision re-rolls before the
	// neighborhood is widened.
	maxDistractorTries = 24

	// maxWidenings bounds how many times the neighborhood doubles before
	// falling back to a deterministic sweep.
	maxWidenings = 4

	// sweepLimit bounds the final sweep outward from the correct value.
	sweepLimit = 1000
)

// positive accepts values greater than zero.
func positive(v int) bool { return v > 0 }

// between returns an acceptor for values in [lo, hi].
func between(lo, hi int) func(int) bool {
	return func(v int) bool { return v >= lo && v <= hi }
}

// numericOptions returns n distinct values including correct, drawn from
// correct±spread and shuffled. Draws rejected by accept (when non-nil) are
// re-rolled. Persistent collisions widen the neighborhood, and a final sweep
// outward from correct guarantees termination.
func numericOptions(r *rand.Rand, correct, spread, n int, accept func(int) bool) []int {
	if spread < 1 {
		spread = 1
	}
	ok := func(v int) bool { return accept == nil || accept(v) }

	seen := map[int]bool{correct: true}
	vals := []int{correct}
	add := func(v int) {
		if !seen[v] && ok(v) {
			seen[v] = true
			vals = append(vals, v)
		}
	}

	for widen := 0; widen <= maxWidenings && len(vals) < n; widen++ {
		for try := 0; try < maxDistractorTries && len(vals) < n; try++ {
			add(correct + r.IntN(2*spread+1) - spread)
		}
		spread *= 2
	}
	for off := 1; off <= sweepLimit && len(vals) < n; off++ {
		add(correct + off)
		if len(vals) < n {
			add(correct - off)
		}
	}

	shuffle(r, vals)
	return vals
}

// poolOptions returns correct plus up to n-1 distinct other values from pool,
// shuffled.
func poolOptions(r *rand.Rand, correct string, pool []string, n int) []string {
	vals := []string{correct}
	for _, i := range r.Perm(len(pool)) {
		if len(vals) == n {
			break
		}
		if pool[i] != correct && !slices.Contains(vals, pool[i]) {
			vals = append(vals, pool[i])
		}
	}
	shuffle(r, vals)
	return vals
}

func shuffle[T any](r *rand.Rand, s []T) {
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

func pick[T any](r *rand.Rand, s []T) T {
	return s[r.IntN(len(s))]
}

// intRange returns a uniform value in [lo, hi].
func intRange(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

func numbers(vals []int) []game.Answer {
	out := make([]game.Answer, len(vals))
	for i, v := range vals {
		out[i] = game.Number(v)
	}
	return out
}

func texts(vals []string) []game.Answer {
	out := make([]game.Answer, len(vals))
	for i, v := range vals {
		out[i] = game.Text(v)
	}
	return out
}
