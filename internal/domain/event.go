package domain

import (
	"time"
)

// EventKind classifies an accepted input event
type EventKind string

const (
	EventActivate      EventKind = "activate"
	EventTapScreen     EventKind = "tap_screen"
	EventTapModeButton EventKind = "tap_mode_button"
)

// TapEvent is one journal entry: the event that was accepted and what it
// produced. It is history only; UIState is never restored from it.
type TapEvent struct {
	ID         int64
	SessionID  string
	Kind       EventKind
	Target     Mode // tapped button; meaningful for EventTapModeButton only
	State      UIState
	Background Color
	TorchOn    bool
	Timestamp  time.Time
}

// NewTapEvent records the outcome of an event at the current time
func NewTapEvent(sessionID string, kind EventKind, target Mode, state UIState, out RenderInstructions) *TapEvent {
	return &TapEvent{
		SessionID:  sessionID,
		Kind:       kind,
		Target:     target,
		State:      state,
		Background: out.Background,
		TorchOn:    bool(out.Torch),
		Timestamp:  time.Now(),
	}
}
