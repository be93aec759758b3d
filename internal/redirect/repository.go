package redirect

import (
	"context"
	"net/netip"

	"github.com/google/uuid"
)

// EntryStore holds registered entries in insertion order.
type EntryStore interface {
	Insert(ctx context.Context, code, url string) (Entry, error)

	// LookupByCode returns the first inserted entry with the given code.
	// Returns ErrNotFound if no entry matches.
	LookupByCode(ctx context.Context, code string) (Entry, error)

	// LookupByID returns ErrNotFound if no entry has the given id.
	LookupByID(ctx context.Context, id uuid.UUID) (Entry, error)

	ListAll(ctx context.Context) ([]Entry, error)
}

// VisitLog is the append-only record of visits.
type VisitLog interface {
	// Append records a visit for entryID. Callers must make sure the entry exists.
	Append(ctx context.Context, entryID uuid.UUID, ip netip.Addr) (Visit, error)
	ListAll(ctx context.Context) ([]Visit, error)
	ListByEntry(ctx context.Context, entryID uuid.UUID) ([]Visit, error)
}
