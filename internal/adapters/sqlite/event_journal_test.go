package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/quentinrf/the-light/internal/domain"
)

func newTestJournal(t *testing.T) *EventJournal {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	journal, err := NewEventJournal(dbPath)
	if err != nil {
		t.Fatalf("failed to create SQLite journal: %v", err)
	}
	t.Cleanup(func() { journal.Close() })
	return journal
}

func makeEvent(kind domain.EventKind, ts time.Time) *domain.TapEvent {
	e := domain.NewEngine(domain.DefaultTrafficLights())
	state := e.EnterMode(domain.DefaultState(), domain.ModeScreenTrafficLights)
	event := domain.NewTapEvent("session-1", kind, domain.ModeScreenTrafficLights, state, e.Render(state))
	event.Timestamp = ts
	return event
}

func TestSaveAndGetEvent(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()

	event := makeEvent(domain.EventTapModeButton, time.Now())
	if err := journal.SaveEvent(ctx, event); err != nil {
		t.Fatalf("SaveEvent failed: %v", err)
	}
	if event.ID == 0 {
		t.Fatal("expected ID to be set after save")
	}

	got, err := journal.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if got.State != event.State {
		t.Errorf("got state %+v, want %+v", got.State, event.State)
	}
	if got.Kind != event.Kind || got.Target != event.Target || got.SessionID != event.SessionID {
		t.Errorf("got %+v, want %+v", got, event)
	}
	if got.Background != event.Background {
		t.Errorf("got background %s, want %s", got.Background.Hex(), event.Background.Hex())
	}
	if !got.Timestamp.Equal(event.Timestamp) {
		t.Errorf("got timestamp %v, want %v", got.Timestamp, event.Timestamp)
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	journal := newTestJournal(t)

	_, err := journal.GetEvent(context.Background(), 99)
	if err != domain.ErrEventNotFound {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestGetLatestEvent(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()

	if _, err := journal.GetLatestEvent(ctx); err != domain.ErrEventNotFound {
		t.Errorf("expected ErrEventNotFound on empty journal, got %v", err)
	}

	now := time.Now()
	_ = journal.SaveEvent(ctx, makeEvent(domain.EventActivate, now.Add(-time.Minute)))
	latest := makeEvent(domain.EventTapScreen, now)
	_ = journal.SaveEvent(ctx, latest)

	got, err := journal.GetLatestEvent(ctx)
	if err != nil {
		t.Fatalf("GetLatestEvent failed: %v", err)
	}
	if got.ID != latest.ID {
		t.Errorf("expected event %d, got %d", latest.ID, got.ID)
	}
}

func TestGetEventsInRange_HalfOpen(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()

	ts := time.Now().UTC().Truncate(time.Second)
	_ = journal.SaveEvent(ctx, makeEvent(domain.EventActivate, ts.Add(-time.Hour)))
	atStart := makeEvent(domain.EventTapScreen, ts)
	_ = journal.SaveEvent(ctx, atStart)
	_ = journal.SaveEvent(ctx, makeEvent(domain.EventTapScreen, ts.Add(time.Minute)))

	// [ts, ts+1m): start is inclusive, end is exclusive
	results, err := journal.GetEventsInRange(ctx, ts, ts.Add(time.Minute))
	if err != nil {
		t.Fatalf("GetEventsInRange failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 event, got %d", len(results))
	}
	if results[0].ID != atStart.ID {
		t.Errorf("expected event %d, got %d", atStart.ID, results[0].ID)
	}
}

func TestDeleteOldEvents(t *testing.T) {
	journal := newTestJournal(t)
	ctx := context.Background()

	now := time.Now()
	old := makeEvent(domain.EventActivate, now.Add(-48*time.Hour))
	recent := makeEvent(domain.EventTapScreen, now.Add(-1*time.Hour))
	_ = journal.SaveEvent(ctx, old)
	_ = journal.SaveEvent(ctx, recent)

	if err := journal.DeleteOldEvents(ctx, 24*time.Hour); err != nil {
		t.Fatalf("DeleteOldEvents failed: %v", err)
	}

	// Old event should be gone
	if _, err := journal.GetEvent(ctx, old.ID); err != domain.ErrEventNotFound {
		t.Errorf("expected old event to be deleted, got err: %v", err)
	}

	// Recent event should remain
	if _, err := journal.GetEvent(ctx, recent.ID); err != nil {
		t.Errorf("expected recent event to remain, got err: %v", err)
	}
}
