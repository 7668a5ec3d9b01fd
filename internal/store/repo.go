package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by KV.Get when a key has no value.
var ErrNotFound = errors.New("key not found")

// KV is a string key/value store that survives across sessions.
type KV interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	GameID string    // restrict to one game ("" = all)
	From   time.Time // timestamp >= From
}

// SessionEventData captures a play session starting or ending.
type SessionEventData struct {
	SessionID string
	GameID    string
	Action    string // "start" or "end"
	Mode      string // "untimed" or "race"
	Score     int
	Rounds    int
	Correct   int
	NewBest   bool
}

// RoundEventData captures one graded answer.
type RoundEventData struct {
	SessionID    string
	GameID       string
	InstanceID   string
	InstanceType string
	Correct      bool
	Points       int
	Streak       int
	Mode         string
	TimeMs       int64
}

// RoundRecord is a stored round event.
type RoundRecord struct {
	Sequence  int64
	Timestamp time.Time
	RoundEventData
}

// SessionRecord is a stored session event.
type SessionRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// GameStats aggregates the round history of one game.
type GameStats struct {
	GameID   string
	Sessions int
	Rounds   int
	Correct  int
	Points   int
	LastPlay time.Time
}

// Accuracy returns the fraction of correct rounds.
func (s GameStats) Accuracy() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Rounds)
}

// EventRepo provides append and query access to play history.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendRoundEvent records one graded answer.
	AppendRoundEvent(ctx context.Context, data RoundEventData) error

	// QueryRounds returns round events in sequence order.
	QueryRounds(ctx context.Context, opts QueryOpts) ([]RoundRecord, error)

	// QuerySessions returns session events in sequence order.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// Stats aggregates round history per game, most played first.
	Stats(ctx context.Context) ([]GameStats, error)

	// Reset deletes all play history.
	Reset(ctx context.Context) error
}
