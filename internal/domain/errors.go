package domain

import "errors"

var (
	// ErrInvalidMode indicates a mode outside the known set
	ErrInvalidMode = errors.New("invalid mode")

	// ErrEmptyPalette indicates a palette with no color pairs
	ErrEmptyPalette = errors.New("palette must have at least one color pair")

	// ErrDeviceUnavailable indicates there is no torch hardware
	ErrDeviceUnavailable = errors.New("torch is not available")

	// ErrLockAcquisitionFailed indicates the torch is busy or access was denied
	ErrLockAcquisitionFailed = errors.New("torch could not be locked")

	// ErrEventNotFound indicates requested journal event doesn't exist
	ErrEventNotFound = errors.New("event not found")
)
