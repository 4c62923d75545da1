// Package sqlite stores events in a SQLite database. The identity key is a
// UNIQUE constraint, so concurrent inserts of one key resolve to one row.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/remedy/internal/domain"
	"github.com/bnema/remedy/internal/ports"
	_ "modernc.org/sqlite"
)

const (
	DefaultListLimit = 1000

	busyTimeoutMillis = 5000
	dirMode           = 0o700
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id            INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
	timestamp     TEXT NOT NULL,
	device        TEXT NOT NULL,
	error_code    TEXT NOT NULL,
	error_message TEXT NOT NULL,
	result        INTEGER NOT NULL DEFAULT 0,
	observed_at   TEXT NOT NULL DEFAULT '',
	UNIQUE(timestamp, device, error_code, error_message)
);
`

type Repository struct {
	db    *sql.DB
	clock ports.Clock
}

var _ ports.EventRepository = (*Repository)(nil)

func Open(path string, clock ports.Clock) (*Repository, error) {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create events table: %w", err)
	}

	return &Repository{db: db, clock: clock}, nil
}

func dsn(path string) string {
	query := url.Values{}
	query.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMillis))
	query.Add("_pragma", "journal_mode(WAL)")

	return "file:" + path + "?" + query.Encode()
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Insert(ctx context.Context, key domain.IdentityKey) (domain.EventID, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (timestamp, device, error_code, error_message, result, observed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(timestamp, device, error_code, error_message) DO NOTHING`,
		key.Timestamp, key.Device, key.ErrorCode, key.ErrorMessage,
		int(domain.ResultUnset), r.clock.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, `
		SELECT id FROM events
		WHERE timestamp = ? AND device = ? AND error_code = ? AND error_message = ?`,
		key.Timestamp, key.Device, key.ErrorCode, key.ErrorMessage,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("select inserted event: %w", err)
	}

	return domain.EventID(id), nil
}

func (r *Repository) GetByID(ctx context.Context, id domain.EventID) (domain.Event, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, timestamp, device, error_code, error_message, result, observed_at
		FROM events WHERE id = ?`, int64(id))

	event, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Event{}, domain.ErrEventNotFound
	}
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}

	return event, nil
}

func (r *Repository) UpdateResult(ctx context.Context, id domain.EventID, result domain.Result) error {
	if !result.Valid() {
		return fmt.Errorf("invalid event result %d", int(result))
	}

	res, err := r.db.ExecContext(ctx, `UPDATE events SET result = ? WHERE id = ?`, int(result), int64(id))
	if err != nil {
		return fmt.Errorf("update event result: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event result: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, timestamp, device, error_code, error_message, result, observed_at
		FROM events ORDER BY id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (domain.Event, error) {
	var (
		event      domain.Event
		id         int64
		result     int
		observedAt string
	)
	if err := row.Scan(&id, &event.Timestamp, &event.Device, &event.ErrorCode, &event.ErrorMessage, &result, &observedAt); err != nil {
		return domain.Event{}, err
	}

	event.ID = domain.EventID(id)
	event.Result = domain.Result(result)
	if observedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, observedAt); err == nil {
			event.ObservedAt = parsed
		}
	}

	return event, nil
}
