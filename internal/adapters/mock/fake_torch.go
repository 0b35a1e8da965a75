package mock

import (
	"context"
	"fmt"

	"github.com/quentinrf/the-light/internal/domain"
)

// FakeTorch simulates a camera flash for development
// This implements the ports.Flashlight interface
type FakeTorch struct {
	present bool
	busy    bool

	on       bool
	commands []bool
}

// NewFakeTorch creates a torch that accepts every command
func NewFakeTorch() *FakeTorch {
	return &FakeTorch{present: true}
}

// NewMissingTorch simulates a device without flash hardware
func NewMissingTorch() *FakeTorch {
	return &FakeTorch{}
}

// NewBusyTorch simulates flash hardware held by another process
func NewBusyTorch() *FakeTorch {
	return &FakeTorch{present: true, busy: true}
}

// SetTorch records the command and switches the simulated torch
func (t *FakeTorch) SetTorch(ctx context.Context, on bool) error {
	t.commands = append(t.commands, on)

	if !t.present {
		return fmt.Errorf("fake torch: %w", domain.ErrDeviceUnavailable)
	}
	if t.busy {
		return fmt.Errorf("fake torch: %w", domain.ErrLockAcquisitionFailed)
	}

	t.on = on
	return nil
}

// On reports whether the simulated torch is lit
func (t *FakeTorch) On() bool {
	return t.on
}

// Commands returns every command received, in order
func (t *FakeTorch) Commands() []bool {
	return append([]bool(nil), t.commands...)
}

// Close is a no-op for fake torch
func (t *FakeTorch) Close() error {
	return nil
}
