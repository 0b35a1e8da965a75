package ports

import (
	"context"

	"github.com/quentinrf/the-light/internal/domain"
)

// Display is the surface whose background lights the room
// This is a PORT - adapters (canvas, recording mock) implement it
type Display interface {
	SetBackground(c domain.Color)
}

// ModeButtons receives the look of each mode selector button
type ModeButtons interface {
	SetButton(b domain.ButtonVisual)
}

// Flashlight drives the camera torch
type Flashlight interface {
	// SetTorch turns the torch on or off. Errors wrap
	// domain.ErrDeviceUnavailable or domain.ErrLockAcquisitionFailed and
	// are never fatal.
	SetTorch(ctx context.Context, on bool) error

	// Close releases any resources
	Close() error
}

// Flusher is implemented by effectors that batch updates and present them
// once a full render has been dispatched
type Flusher interface {
	Flush() error
}
