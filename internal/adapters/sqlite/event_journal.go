package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/quentinrf/the-light/internal/domain"
)

// Fixed-width UTC layout so lexical order in SQLite matches time order
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// EventJournal implements domain.EventJournal with SQLite
type EventJournal struct {
	db *sql.DB
}

// NewEventJournal creates a SQLite-backed journal
func NewEventJournal(dbPath string) (*EventJournal, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS tap_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		target TEXT NOT NULL,
		mode TEXT NOT NULL,
		screen_on INTEGER NOT NULL,
		camera_on INTEGER NOT NULL,
		traffic_index INTEGER NOT NULL,
		background INTEGER NOT NULL,
		torch_on INTEGER NOT NULL,
		timestamp TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_tap_events_timestamp ON tap_events(timestamp);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &EventJournal{db: db}, nil
}

const selectColumns = `id, session_id, kind, target, mode, screen_on, camera_on, traffic_index, background, torch_on, timestamp`

// SaveEvent stores an event in SQLite
func (j *EventJournal) SaveEvent(ctx context.Context, event *domain.TapEvent) error {
	query := `
		INSERT INTO tap_events (session_id, kind, target, mode, screen_on, camera_on, traffic_index, background, torch_on, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := j.db.ExecContext(ctx, query,
		event.SessionID,
		string(event.Kind),
		event.Target.String(),
		event.State.Mode.String(),
		event.State.IsScreenLightOn,
		event.State.IsCameraLightOn,
		event.State.TrafficLightsIndex,
		packColor(event.Background),
		event.TorchOn,
		event.Timestamp.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert id: %w", err)
	}

	event.ID = id
	return nil
}

// GetEvent retrieves an event by ID
func (j *EventJournal) GetEvent(ctx context.Context, id int64) (*domain.TapEvent, error) {
	query := `SELECT ` + selectColumns + ` FROM tap_events WHERE id = ?`

	event, err := scanEvent(j.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}

	return event, nil
}

// GetEventsInRange returns all events in [start, end), oldest first
func (j *EventJournal) GetEventsInRange(ctx context.Context, start, end time.Time) ([]*domain.TapEvent, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM tap_events
		WHERE timestamp >= ? AND timestamp < ?
		ORDER BY timestamp ASC, id ASC
	`

	rows, err := j.db.QueryContext(ctx, query,
		start.UTC().Format(timestampLayout),
		end.UTC().Format(timestampLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*domain.TapEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

// GetLatestEvent returns the most recent event
func (j *EventJournal) GetLatestEvent(ctx context.Context) (*domain.TapEvent, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM tap_events
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	`

	event, err := scanEvent(j.db.QueryRowContext(ctx, query))
	if err == sql.ErrNoRows {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest event: %w", err)
	}

	return event, nil
}

// DeleteOldEvents removes events older than specified duration
func (j *EventJournal) DeleteOldEvents(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	query := `DELETE FROM tap_events WHERE timestamp < ?`

	_, err := j.db.ExecContext(ctx, query, cutoff.UTC().Format(timestampLayout))
	if err != nil {
		return fmt.Errorf("failed to delete old events: %w", err)
	}

	return nil
}

// Close closes the database connection
func (j *EventJournal) Close() error {
	return j.db.Close()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.TapEvent, error) {
	var (
		event      domain.TapEvent
		kind       string
		target     string
		mode       string
		background uint32
		timestamp  string
	)

	err := row.Scan(
		&event.ID,
		&event.SessionID,
		&kind,
		&target,
		&mode,
		&event.State.IsScreenLightOn,
		&event.State.IsCameraLightOn,
		&event.State.TrafficLightsIndex,
		&background,
		&event.TorchOn,
		&timestamp,
	)
	if err != nil {
		return nil, err
	}

	event.Kind = domain.EventKind(kind)
	event.Background = unpackColor(background)

	if event.State.Mode, err = domain.ParseMode(mode); err != nil {
		return nil, fmt.Errorf("stored mode %q: %w", mode, err)
	}
	if event.Target, err = domain.ParseMode(target); err != nil {
		return nil, fmt.Errorf("stored target %q: %w", target, err)
	}

	event.Timestamp, err = time.Parse(timestampLayout, timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp: %w", err)
	}

	return &event, nil
}

func packColor(c domain.Color) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func unpackColor(v uint32) domain.Color {
	return domain.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}
