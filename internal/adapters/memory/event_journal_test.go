package memory

import (
	"context"
	"testing"
	"time"

	"github.com/quentinrf/the-light/internal/domain"
)

func TestEventJournal_RangeAndLatest(t *testing.T) {
	journal := NewEventJournal()
	ctx := context.Background()

	if _, err := journal.GetLatestEvent(ctx); err != domain.ErrEventNotFound {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}

	ts := time.Now().Truncate(time.Second)
	for i, offset := range []time.Duration{-time.Hour, 0, time.Minute} {
		event := &domain.TapEvent{Kind: domain.EventTapScreen, Timestamp: ts.Add(offset)}
		if err := journal.SaveEvent(ctx, event); err != nil {
			t.Fatalf("SaveEvent failed: %v", err)
		}
		if event.ID != int64(i+1) {
			t.Errorf("expected ID %d, got %d", i+1, event.ID)
		}
	}

	results, err := journal.GetEventsInRange(ctx, ts, ts.Add(time.Minute))
	if err != nil {
		t.Fatalf("GetEventsInRange failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != 2 {
		t.Fatalf("expected only event 2 in [ts, ts+1m), got %d events", len(results))
	}

	latest, err := journal.GetLatestEvent(ctx)
	if err != nil {
		t.Fatalf("GetLatestEvent failed: %v", err)
	}
	if latest.ID != 3 {
		t.Errorf("expected latest event 3, got %d", latest.ID)
	}
}

func TestEventJournal_StoresCopies(t *testing.T) {
	journal := NewEventJournal()
	ctx := context.Background()

	event := &domain.TapEvent{Kind: domain.EventActivate, Timestamp: time.Now()}
	_ = journal.SaveEvent(ctx, event)
	event.Kind = domain.EventTapScreen

	got, err := journal.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if got.Kind != domain.EventActivate {
		t.Errorf("expected stored kind %q, got %q", domain.EventActivate, got.Kind)
	}
}

func TestEventJournal_DeleteOldEvents(t *testing.T) {
	journal := NewEventJournal()
	ctx := context.Background()

	old := &domain.TapEvent{Timestamp: time.Now().Add(-48 * time.Hour)}
	recent := &domain.TapEvent{Timestamp: time.Now()}
	_ = journal.SaveEvent(ctx, old)
	_ = journal.SaveEvent(ctx, recent)

	if err := journal.DeleteOldEvents(ctx, 24*time.Hour); err != nil {
		t.Fatalf("DeleteOldEvents failed: %v", err)
	}

	if _, err := journal.GetEvent(ctx, old.ID); err != domain.ErrEventNotFound {
		t.Errorf("expected old event deleted, got %v", err)
	}
	if _, err := journal.GetEvent(ctx, recent.ID); err != nil {
		t.Errorf("expected recent event kept, got %v", err)
	}
}

func TestEventJournal_AssignedIDsSkipCallerIDs(t *testing.T) {
	journal := NewEventJournal()
	ctx := context.Background()
	ts := time.Now()

	fixed := &domain.TapEvent{ID: 2, Kind: domain.EventActivate, Timestamp: ts}
	if err := journal.SaveEvent(ctx, fixed); err != nil {
		t.Fatalf("SaveEvent failed: %v", err)
	}

	var assigned []int64
	for i := 0; i < 2; i++ {
		event := &domain.TapEvent{Kind: domain.EventTapScreen, Timestamp: ts}
		if err := journal.SaveEvent(ctx, event); err != nil {
			t.Fatalf("SaveEvent failed: %v", err)
		}
		assigned = append(assigned, event.ID)
	}

	if assigned[0] != 3 || assigned[1] != 4 {
		t.Errorf("expected IDs [3 4], got %v", assigned)
	}

	got, err := journal.GetEvent(ctx, 2)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if got.Kind != domain.EventActivate {
		t.Errorf("expected event 2 to survive, got kind %s", got.Kind)
	}
}
