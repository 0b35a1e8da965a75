//go:build !unix

package sysfs

import (
	"context"
	"fmt"
	"time"

	"github.com/quentinrf/the-light/internal/domain"
)

const DefaultLockWait = 100 * time.Millisecond

// LEDTorch has no LED class to drive on this platform
type LEDTorch struct {
	dir string
}

func NewLEDTorch(dir string, lockWait time.Duration) *LEDTorch {
	return &LEDTorch{dir: dir}
}

func (t *LEDTorch) SetTorch(ctx context.Context, on bool) error {
	return fmt.Errorf("led %s: %w", t.dir, domain.ErrDeviceUnavailable)
}

func (t *LEDTorch) Close() error {
	return nil
}
