package redirect

import (
	"context"

	"github.com/google/uuid"
)

// QueryService serves the read-only listings.
type QueryService struct {
	entries EntryStore
	visits  VisitLog
}

// NewQueryService creates a query service over the given components.
func NewQueryService(entries EntryStore, visits VisitLog) *QueryService {
	return &QueryService{
		entries: entries,
		visits:  visits,
	}
}

func (q *QueryService) ListEntries(ctx context.Context) ([]Entry, error) {
	return q.entries.ListAll(ctx)
}

func (q *QueryService) ListAllVisits(ctx context.Context) ([]Visit, error) {
	return q.visits.ListAll(ctx)
}

// ListVisitsForEntry returns the visits recorded for entryID in insertion order.
// An unregistered id returns ErrNotFound; a registered entry without visits
// returns an empty slice.
func (q *QueryService) ListVisitsForEntry(ctx context.Context, entryID uuid.UUID) ([]Visit, error) {
	if _, err := q.entries.LookupByID(ctx, entryID); err != nil {
		return nil, err
	}

	return q.visits.ListByEntry(ctx, entryID)
}
