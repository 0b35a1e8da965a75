//go:build unix

package sysfs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/quentinrf/the-light/internal/domain"
)

// newFakeLED lays out a minimal LED class directory
func newFakeLED(t *testing.T, max string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "white:flash")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "brightness"), []byte("0\n"), 0o644); err != nil {
		t.Fatalf("write brightness: %v", err)
	}
	if max != "" {
		if err := os.WriteFile(filepath.Join(dir, "max_brightness"), []byte(max), 0o644); err != nil {
			t.Fatalf("write max_brightness: %v", err)
		}
	}
	return dir
}

func readBrightness(t *testing.T, dir string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, "brightness"))
	if err != nil {
		t.Fatalf("read brightness: %v", err)
	}
	return string(raw)
}

func TestLEDTorch_OnOff(t *testing.T) {
	tests := []struct {
		name   string
		max    string
		wantOn string
	}{
		{name: "uses max_brightness", max: "255\n", wantOn: "255\n"},
		{name: "falls back to 1", max: "", wantOn: "1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newFakeLED(t, tt.max)
			torch := NewLEDTorch(dir, 0)
			ctx := context.Background()

			if err := torch.SetTorch(ctx, true); err != nil {
				t.Fatalf("SetTorch(on) failed: %v", err)
			}
			if got := readBrightness(t, dir); got != tt.wantOn {
				t.Errorf("expected %q, got %q", tt.wantOn, got)
			}

			if err := torch.SetTorch(ctx, false); err != nil {
				t.Fatalf("SetTorch(off) failed: %v", err)
			}
			if got := readBrightness(t, dir); got != "0\n" {
				t.Errorf("expected %q, got %q", "0\n", got)
			}
		})
	}
}

func TestLEDTorch_Missing(t *testing.T) {
	torch := NewLEDTorch(filepath.Join(t.TempDir(), "nope"), 0)

	err := torch.SetTorch(context.Background(), true)
	if !errors.Is(err, domain.ErrDeviceUnavailable) {
		t.Errorf("expected ErrDeviceUnavailable, got %v", err)
	}
}

func TestLEDTorch_Busy(t *testing.T) {
	dir := newFakeLED(t, "1\n")

	// Hold the lock through a separate open file description
	holder, err := os.OpenFile(filepath.Join(dir, "brightness"), os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer holder.Close()
	if err := unix.Flock(int(holder.Fd()), unix.LOCK_EX); err != nil {
		t.Fatalf("flock: %v", err)
	}

	torch := NewLEDTorch(dir, 30*time.Millisecond)
	err = torch.SetTorch(context.Background(), true)
	if !errors.Is(err, domain.ErrLockAcquisitionFailed) {
		t.Errorf("expected ErrLockAcquisitionFailed, got %v", err)
	}
	if got := readBrightness(t, dir); got != "0\n" {
		t.Errorf("expected brightness untouched, got %q", got)
	}
}

func TestLEDTorch_Classify(t *testing.T) {
	torch := NewLEDTorch("/sys/class/leds/white:flash", 0)

	tests := []struct {
		name    string
		err     error
		want    error
		notWant error
	}{
		{
			name: "missing directory",
			err:  &fs.PathError{Op: "stat", Path: torch.dir, Err: unix.ENOENT},
			want: domain.ErrDeviceUnavailable,
		},
		{
			name: "permission denied on directory",
			err:  &fs.PathError{Op: "stat", Path: torch.dir, Err: unix.EACCES},
			want: domain.ErrLockAcquisitionFailed,
		},
		{
			name: "read-only brightness",
			err:  &fs.PathError{Op: "open", Path: torch.dir + "/brightness", Err: unix.EPERM},
			want: domain.ErrLockAcquisitionFailed,
		},
		{
			name:    "other I/O error",
			err:     &fs.PathError{Op: "stat", Path: torch.dir, Err: unix.EIO},
			want:    unix.EIO,
			notWant: domain.ErrDeviceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := torch.classify(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if tt.notWant != nil && errors.Is(got, tt.notWant) {
				t.Errorf("did not expect %v in %v", tt.notWant, got)
			}
		})
	}
}

type truncateFunc func(int64) error

func (f truncateFunc) Truncate(size int64) error { return f(size) }

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "regular file", err: nil},
		{name: "sysfs attribute", err: &fs.PathError{Op: "truncate", Err: unix.EINVAL}},
		{name: "read-only filesystem", err: &fs.PathError{Op: "truncate", Err: unix.EROFS}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := truncate(truncateFunc(func(int64) error { return tt.err }))
			if tt.wantErr && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
