package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo over database/sql, with statements built
// by ent's SQL builder.
type eventRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *eventRepo) timestamp() int64 {
	if r.now != nil {
		return r.now().UnixMilli()
	}
	return time.Now().UnixMilli()
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	_, err := insertEvent(ctx, r.db, r.timestamp(), "session_events",
		[]string{"session_id", "game_id", "action", "mode", "score", "rounds", "correct", "new_best"},
		[]any{data.SessionID, data.GameID, data.Action, data.Mode,
			data.Score, data.Rounds, data.Correct, boolToInt(data.NewBest)},
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendRoundEvent(ctx context.Context, data RoundEventData) error {
	_, err := insertEvent(ctx, r.db, r.timestamp(), "round_events",
		[]string{"session_id", "game_id", "instance_id", "instance_type", "correct", "points", "streak", "mode", "time_ms"},
		[]any{data.SessionID, data.GameID, data.InstanceID, data.InstanceType,
			boolToInt(data.Correct), data.Points, data.Streak, data.Mode, data.TimeMs},
	)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

// selectEvents selects cols from an event table with the shared filters
// applied, in sequence order.
func (opts QueryOpts) selectEvents(table string, cols ...string) (string, []any) {
	sel := builder.Select(cols...).From(entsql.Table(table))
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.GameID != "" {
		sel.Where(entsql.EQ("game_id", opts.GameID))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	sel.OrderBy(entsql.Asc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel.Query()
}

func (r *eventRepo) QueryRounds(ctx context.Context, opts QueryOpts) ([]RoundRecord, error) {
	query, args := opts.selectEvents("round_events",
		"sequence", "timestamp", "session_id", "game_id", "instance_id", "instance_type",
		"correct", "points", "streak", "mode", "time_ms")
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query round events: %w", err)
	}
	defer rows.Close()

	var out []RoundRecord
	for rows.Next() {
		var rec RoundRecord
		var ts int64
		var correct int
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.GameID, &rec.InstanceID,
			&rec.InstanceType, &correct, &rec.Points, &rec.Streak, &rec.Mode, &rec.TimeMs); err != nil {
			return nil, fmt.Errorf("scan round event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		rec.Correct = correct != 0
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate round events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	query, args := opts.selectEvents("session_events",
		"sequence", "timestamp", "session_id", "game_id", "action", "mode",
		"score", "rounds", "correct", "new_best")
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var ts int64
		var newBest int
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.GameID, &rec.Action, &rec.Mode,
			&rec.Score, &rec.Rounds, &rec.Correct, &newBest); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		rec.NewBest = newBest != 0
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) Stats(ctx context.Context) ([]GameStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT game_id,
			COUNT(DISTINCT session_id),
			COUNT(*),
			COALESCE(SUM(correct), 0),
			COALESCE(SUM(points), 0),
			MAX(timestamp)
		 FROM round_events
		 GROUP BY game_id
		 ORDER BY COUNT(*) DESC, game_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var out []GameStats
	for rows.Next() {
		var s GameStats
		var last int64
		if err := rows.Scan(&s.GameID, &s.Sessions, &s.Rounds, &s.Correct, &s.Points, &last); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		s.LastPlay = time.UnixMilli(last)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats: %w", err)
	}
	return out, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	for _, table := range []string{"round_events", "session_events"} {
		query, args := builder.Delete(table).Query()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
