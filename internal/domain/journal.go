package domain

import (
	"context"
	"time"
)

// EventJournal defines operations for storing/retrieving tap events
// This is a PORT - adapters (SQLite, Memory) will implement it
type EventJournal interface {
	// SaveEvent persists an event and assigns its ID
	SaveEvent(ctx context.Context, event *TapEvent) error

	// GetEvent retrieves a specific event by ID
	GetEvent(ctx context.Context, id int64) (*TapEvent, error)

	// GetEventsInRange retrieves all events within time range, oldest first.
	// Uses a half-open interval: inclusive start, exclusive end [start, end).
	GetEventsInRange(ctx context.Context, start, end time.Time) ([]*TapEvent, error)

	// GetLatestEvent retrieves the most recent event
	GetLatestEvent(ctx context.Context) (*TapEvent, error)

	// DeleteOldEvents removes events older than specified duration
	DeleteOldEvents(ctx context.Context, olderThan time.Duration) error
}
