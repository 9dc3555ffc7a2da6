package errors

import "errors"

var (
	// ErrSlotConflict is returned when the requested interval overlaps an
	// existing booking on the same room and date.
	ErrSlotConflict = errors.New("requested interval overlaps an existing booking")

	// ErrLockHeld is returned when another request currently holds the
	// admission lock for the same (roomId, date) slot.
	ErrLockHeld = errors.New("slot lock is held by another request")
)
