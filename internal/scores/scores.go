// Package scores keeps the best score per game and builds the leaderboard.
package scores

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/kidarcade/internal/store"
)

// KeyPrefix prefixes every best-score key.
const KeyPrefix = "best-score-"

// LeaderboardSize is the number of entries shown on the leaderboard.
const LeaderboardSize = 10

// ErrNoScore is returned when a game has no recorded best score.
var ErrNoScore = errors.New("no score recorded")

// Key returns the store key for a game's best score.
func Key(gameID string) string {
	return KeyPrefix + gameID
}

// Store reads and writes best scores through a key/value backend.
type Store struct {
	kv store.KV
}

// NewStore wraps a key/value backend.
func NewStore(kv store.KV) *Store {
	return &Store{kv: kv}
}

// Best returns the stored best score for gameID. ok is false when nothing
// usable is stored; a malformed value counts as no score.
func (s *Store) Best(ctx context.Context, gameID string) (score int, ok bool, err error) {
	raw, err := s.kv.Get(ctx, Key(gameID))
	if errors.Is(err, store.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read best score for %s: %w", gameID, err)
	}
	n, perr := strconv.Atoi(raw)
	if perr != nil || n < 0 {
		log.Warn().Str("game", gameID).Str("value", raw).Msg("ignoring malformed best score")
		return 0, false, nil
	}
	return n, true, nil
}

// SetBest overwrites the best score for gameID.
func (s *Store) SetBest(ctx context.Context, gameID string, score int) error {
	if err := s.kv.Set(ctx, Key(gameID), strconv.Itoa(score)); err != nil {
		return fmt.Errorf("write best score for %s: %w", gameID, err)
	}
	return nil
}

// SetBestIfHigher writes score when it beats the stored best, or when no
// best exists. It reports whether a write happened.
func (s *Store) SetBestIfHigher(ctx context.Context, gameID string, score int) (bool, error) {
	best, ok, err := s.Best(ctx, gameID)
	if err != nil {
		return false, err
	}
	if ok && score <= best {
		return false, nil
	}
	if !ok && score <= 0 {
		return false, nil
	}
	if err := s.SetBest(ctx, gameID, score); err != nil {
		return false, err
	}
	return true, nil
}

// All returns the best score of every id that has one. A game whose score
// cannot be read is treated as having none; only a cancelled ctx is an
// error.
func (s *Store) All(ctx context.Context, gameIDs []string) (map[string]int, error) {
	out := make(map[string]int, len(gameIDs))
	for _, id := range gameIDs {
		best, ok, err := s.readable(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			out[id] = best
		}
	}
	return out, nil
}

// readable is Best with backend failures logged and reported as no score.
func (s *Store) readable(ctx context.Context, gameID string) (int, bool, error) {
	best, ok, err := s.Best(ctx, gameID)
	if err == nil {
		return best, ok, nil
	}
	if cerr := ctx.Err(); cerr != nil {
		return 0, false, cerr
	}
	log.Warn().Err(err).Str("game", gameID).Msg("best score unreadable, treating as none")
	return 0, false, nil
}

// Reset deletes the best score of every listed game.
func (s *Store) Reset(ctx context.Context, gameIDs []string) error {
	for _, id := range gameIDs {
		if err := s.kv.Delete(ctx, Key(id)); err != nil {
			return fmt.Errorf("reset %s: %w", id, err)
		}
	}
	return nil
}

// Game is the part of a catalog entry the leaderboard needs.
type Game struct {
	ID   string
	Name string
}

// Entry is one leaderboard row.
type Entry struct {
	Rank   int    `json:"rank"`
	GameID string `json:"gameId"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
}

// Leaderboard ranks games by best score, highest first. Games without a
// score, or whose score cannot be read, are left out and at most limit rows
// are returned (LeaderboardSize when limit <= 0).
func Leaderboard(ctx context.Context, s *Store, games []Game, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = LeaderboardSize
	}

	var entries []Entry
	for _, g := range games {
		best, ok, err := s.readable(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		entries = append(entries, Entry{GameID: g.ID, Name: g.Name, Score: best})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
