package port

import "errors"

var (
	// ErrNotFound is returned when a prospect or slot does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by stores when a compare-and-set update lost
	// against a concurrent write.
	ErrConflict = errors.New("concurrent update conflict")
	// ErrSlotOccupied marks an attempt to give a location a second active
	// holder.
	ErrSlotOccupied = errors.New("slot already held")
	// ErrDeliveryFailed wraps notifier failures, including timeouts.
	ErrDeliveryFailed = errors.New("message delivery failed")
	// ErrTerminalProspect is returned when a signal targets a prospect that
	// already ended in a different terminal stage.
	ErrTerminalProspect = errors.New("prospect is in a terminal stage")
	// ErrInvalidProspect is returned for malformed discovery requests.
	ErrInvalidProspect = errors.New("invalid prospect")
	// ErrSweepInProgress is returned when a sweep is requested while one is
	// still running.
	ErrSweepInProgress = errors.New("sweep already in progress")
)
