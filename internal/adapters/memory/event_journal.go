package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/quentinrf/the-light/internal/domain"
)

// EventJournal implements domain.EventJournal with in-memory storage
// Events live only as long as the process
type EventJournal struct {
	mu     sync.RWMutex
	events map[int64]*domain.TapEvent
	nextID int64
}

// NewEventJournal creates an empty in-memory journal
func NewEventJournal() *EventJournal {
	return &EventJournal{
		events: make(map[int64]*domain.TapEvent),
		nextID: 1,
	}
}

// SaveEvent stores a copy of the event in memory
func (j *EventJournal) SaveEvent(ctx context.Context, event *domain.TapEvent) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if event.ID == 0 {
		event.ID = j.nextID
	}
	j.nextID = max(j.nextID, event.ID+1)

	stored := *event
	j.events[event.ID] = &stored
	return nil
}

// GetEvent retrieves an event by ID
func (j *EventJournal) GetEvent(ctx context.Context, id int64) (*domain.TapEvent, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	event, exists := j.events[id]
	if !exists {
		return nil, domain.ErrEventNotFound
	}

	out := *event
	return &out, nil
}

// GetEventsInRange returns all events in [start, end), oldest first
func (j *EventJournal) GetEventsInRange(ctx context.Context, start, end time.Time) ([]*domain.TapEvent, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var results []*domain.TapEvent
	for _, event := range j.events {
		if !event.Timestamp.Before(start) && event.Timestamp.Before(end) {
			out := *event
			results = append(results, &out)
		}
	}

	// Ties keep insertion order
	sort.Slice(results, func(a, b int) bool {
		if results[a].Timestamp.Equal(results[b].Timestamp) {
			return results[a].ID < results[b].ID
		}
		return results[a].Timestamp.Before(results[b].Timestamp)
	})

	return results, nil
}

// GetLatestEvent returns the most recent event
func (j *EventJournal) GetLatestEvent(ctx context.Context) (*domain.TapEvent, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var latest *domain.TapEvent
	for _, event := range j.events {
		if latest == nil || event.Timestamp.After(latest.Timestamp) ||
			(event.Timestamp.Equal(latest.Timestamp) && event.ID > latest.ID) {
			latest = event
		}
	}
	if latest == nil {
		return nil, domain.ErrEventNotFound
	}

	out := *latest
	return &out, nil
}

// DeleteOldEvents removes events older than specified duration
func (j *EventJournal) DeleteOldEvents(ctx context.Context, olderThan time.Duration) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)

	for id, event := range j.events {
		if event.Timestamp.Before(cutoff) {
			delete(j.events, id)
		}
	}

	return nil
}
