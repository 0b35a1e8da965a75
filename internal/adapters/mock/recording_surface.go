package mock

import (
	"github.com/quentinrf/the-light/internal/domain"
)

// RecordingSurface remembers what it was told to show
// It implements ports.Display, ports.ModeButtons and ports.Flusher
type RecordingSurface struct {
	Background domain.Color
	Buttons    map[domain.Mode]domain.ButtonVisual
	Flushes    int

	// FlushErr is returned from Flush when set
	FlushErr error
}

// NewRecordingSurface creates an empty surface
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{
		Buttons: make(map[domain.Mode]domain.ButtonVisual),
	}
}

// SetBackground records the last background
func (s *RecordingSurface) SetBackground(c domain.Color) {
	s.Background = c
}

// SetButton records the last visual per mode
func (s *RecordingSurface) SetButton(b domain.ButtonVisual) {
	s.Buttons[b.Mode] = b
}

// Flush counts presentations and returns FlushErr
func (s *RecordingSurface) Flush() error {
	s.Flushes++
	return s.FlushErr
}
