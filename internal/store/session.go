package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SessionRecord is one finished practice session.
type SessionRecord struct {
	ID              string
	StartedAt       time.Time
	EndedAt         time.Time
	Advances        int
	Clicks          int
	IntervalSeconds float64 // interval in effect when the session ended
	Tuning          string
	Chords          []string // active set when the session ended
}

// Duration is the wall time between start and end.
func (r SessionRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// QueryOpts filters and limits session queries.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // started_at >= From
	To    time.Time // started_at <= To
}

// Totals aggregates all recorded sessions.
type Totals struct {
	Sessions int
	Duration time.Duration
	Advances int
	Clicks   int
}

// SessionRepo persists practice history.
type SessionRepo interface {
	// Record stores a finished session. An empty ID is replaced with a new
	// UUID.
	Record(ctx context.Context, rec SessionRecord) (string, error)

	// List returns sessions newest first.
	List(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// Totals sums every recorded session.
	Totals(ctx context.Context) (Totals, error)

	// Reset deletes all history and returns the number of removed sessions.
	Reset(ctx context.Context) (int64, error)
}

type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) Record(ctx context.Context, rec SessionRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.EndedAt.Before(rec.StartedAt) {
		return "", fmt.Errorf("session %s ends before it starts", rec.ID)
	}
	chords := rec.Chords
	if chords == nil {
		chords = []string{}
	}
	raw, err := json.Marshal(chords)
	if err != nil {
		return "", fmt.Errorf("encode chords: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO practice_sessions
			(id, started_at, ended_at, duration_ms, advances, clicks, interval_seconds, tuning, chords)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.StartedAt.UnixMilli(),
		rec.EndedAt.UnixMilli(),
		rec.Duration().Milliseconds(),
		rec.Advances,
		rec.Clicks,
		rec.IntervalSeconds,
		rec.Tuning,
		string(raw),
	)
	if err != nil {
		return "", fmt.Errorf("save practice session: %w", err)
	}
	return rec.ID, nil
}

func (r *sessionRepo) List(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	var (
		where []string
		args  []any
	)
	if !opts.From.IsZero() {
		where = append(where, "started_at >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "started_at <= ?")
		args = append(args, opts.To.UnixMilli())
	}

	q := `SELECT id, started_at, ended_at, advances, clicks, interval_seconds, tuning, chords
		FROM practice_sessions`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY started_at DESC, id"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query practice sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec            SessionRecord
			started, ended int64
			chords         string
		)
		if err := rows.Scan(&rec.ID, &started, &ended, &rec.Advances, &rec.Clicks,
			&rec.IntervalSeconds, &rec.Tuning, &chords); err != nil {
			return nil, fmt.Errorf("scan practice session: %w", err)
		}
		rec.StartedAt = time.UnixMilli(started).UTC()
		rec.EndedAt = time.UnixMilli(ended).UTC()
		if err := json.Unmarshal([]byte(chords), &rec.Chords); err != nil {
			return nil, fmt.Errorf("decode chords for session %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate practice sessions: %w", err)
	}
	return out, nil
}

func (r *sessionRepo) Totals(ctx context.Context) (Totals, error) {
	var (
		t  Totals
		ms int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(duration_ms), 0), COALESCE(SUM(advances), 0), COALESCE(SUM(clicks), 0)
		FROM practice_sessions`).Scan(&t.Sessions, &ms, &t.Advances, &t.Clicks)
	if err != nil {
		return Totals{}, fmt.Errorf("query totals: %w", err)
	}
	t.Duration = time.Duration(ms) * time.Millisecond
	return t, nil
}

func (r *sessionRepo) Reset(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM practice_sessions`)
	if err != nil {
		return 0, fmt.Errorf("delete practice sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
