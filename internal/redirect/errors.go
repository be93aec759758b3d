package redirect

import "errors"

var (
	// ErrNotFound is returned when a code or entry id has no registered entry.
	ErrNotFound = errors.New("entry not found")

	// ErrStorePoisoned is returned by every operation on a store component after a
	// critical section panicked while holding its lock. It is not recoverable.
	ErrStorePoisoned = errors.New("store poisoned")
)
