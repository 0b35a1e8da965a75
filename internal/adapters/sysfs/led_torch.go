//go:build unix

package sysfs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"

	"github.com/quentinrf/the-light/internal/domain"
)

const (
	// DefaultLockWait bounds how long SetTorch retries a held lock
	DefaultLockWait = 100 * time.Millisecond
	lockRetry       = 10 * time.Millisecond
)

// LEDTorch drives a flash LED exposed through the Linux LED class,
// e.g. /sys/class/leds/white:flash.
// This implements the ports.Flashlight interface
type LEDTorch struct {
	dir      string
	lockWait time.Duration
}

// NewLEDTorch creates a torch for the LED directory dir
func NewLEDTorch(dir string, lockWait time.Duration) *LEDTorch {
	if lockWait <= 0 {
		lockWait = DefaultLockWait
	}
	return &LEDTorch{dir: dir, lockWait: lockWait}
}

// SetTorch writes max_brightness (on) or 0 (off) while holding an
// exclusive lock on the brightness file
func (t *LEDTorch) SetTorch(ctx context.Context, on bool) error {
	if _, err := os.Stat(t.dir); err != nil {
		return t.classify(err)
	}

	value := 0
	if on {
		full, err := t.maxBrightness()
		if err != nil {
			return err
		}
		value = full
	}

	f, err := os.OpenFile(filepath.Join(t.dir, "brightness"), os.O_WRONLY, 0)
	if err != nil {
		return t.classify(err)
	}
	defer f.Close()

	if err := t.lock(ctx, int(f.Fd())); err != nil {
		return err
	}
	defer unix.Flock(int(f.Fd()), unix.LOCK_UN)

	if err := truncate(f); err != nil {
		return fmt.Errorf("truncate brightness: %w", err)
	}
	if _, err := f.WriteString(strconv.Itoa(value) + "\n"); err != nil {
		return fmt.Errorf("write brightness: %w", err)
	}

	log.Debug().Str("led", t.dir).Int("brightness", value).Msg("torch updated")
	return nil
}

// classify maps a filesystem error on the LED to the torch error kinds.
// A missing LED is unavailable; one we may not touch counts as a failed lock.
func (t *LEDTorch) classify(err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("led %s: %v: %w", t.dir, err, domain.ErrDeviceUnavailable)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("led %s: %v: %w", t.dir, err, domain.ErrLockAcquisitionFailed)
	default:
		return fmt.Errorf("led %s: %w", t.dir, err)
	}
}

// truncate empties f. sysfs attributes reject truncation with EINVAL and
// overwrite on write anyway; plain files need the truncate.
func truncate(f interface{ Truncate(int64) error }) error {
	if err := f.Truncate(0); err != nil && !errors.Is(err, unix.EINVAL) {
		return err
	}
	return nil
}

// lock takes an exclusive flock, retrying until lockWait or ctx runs out
func (t *LEDTorch) lock(ctx context.Context, fd int) error {
	deadline := time.Now().Add(t.lockWait)

	for {
		err := unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EINTR) {
			return fmt.Errorf("flock: %v: %w", err, domain.ErrLockAcquisitionFailed)
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("led %s busy: %w", t.dir, domain.ErrLockAcquisitionFailed)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("led %s: %v: %w", t.dir, ctx.Err(), domain.ErrLockAcquisitionFailed)
		case <-time.After(lockRetry):
		}
	}
}

func (t *LEDTorch) maxBrightness() (int, error) {
	raw, err := os.ReadFile(filepath.Join(t.dir, "max_brightness"))
	if errors.Is(err, os.ErrNotExist) {
		// Some flash LEDs only expose brightness; 1 is "on" for them
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read max_brightness: %w", err)
	}

	full, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("parse max_brightness %q: %w", raw, err)
	}
	return full, nil
}

// Close is a no-op; the brightness file is opened per command
func (t *LEDTorch) Close() error {
	return nil
}
