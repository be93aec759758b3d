package store

import (
	"context"
	"net/netip"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/serroba/hop/internal/redirect"
)

// VisitMemoryLog is an in-memory implementation of redirect.VisitLog.
// It grows without bound; nothing is ever evicted.
type VisitMemoryLog struct {
	guard

	visits  []redirect.Visit
	byEntry map[uuid.UUID][]int
	now     func() time.Time
}

// NewVisitMemoryLog creates an empty visit log.
func NewVisitMemoryLog() *VisitMemoryLog {
	return &VisitMemoryLog{
		byEntry: make(map[uuid.UUID][]int),
		now:     time.Now,
	}
}

func (l *VisitMemoryLog) Append(_ context.Context, entryID uuid.UUID, ip netip.Addr) (redirect.Visit, error) {
	var visit redirect.Visit

	err := l.write(func() {
		at := l.now().UTC()

		// Timestamps never go backwards in log order, even if the wall clock does.
		if n := len(l.visits); n > 0 && at.Before(l.visits[n-1].Timestamp) {
			at = l.visits[n-1].Timestamp
		}

		visit = redirect.NewVisit(entryID, ip, at)
		l.visits = append(l.visits, visit)
		l.byEntry[entryID] = append(l.byEntry[entryID], len(l.visits)-1)
	})
	if err != nil {
		return redirect.Visit{}, err
	}

	return visit, nil
}

// ListAll returns a snapshot of all visits in insertion order.
func (l *VisitMemoryLog) ListAll(_ context.Context) ([]redirect.Visit, error) {
	var visits []redirect.Visit

	err := l.read(func() {
		visits = slices.Clone(l.visits)
	})
	if err != nil {
		return nil, err
	}

	if visits == nil {
		visits = []redirect.Visit{}
	}

	return visits, nil
}

func (l *VisitMemoryLog) ListByEntry(_ context.Context, entryID uuid.UUID) ([]redirect.Visit, error) {
	var visits []redirect.Visit

	err := l.read(func() {
		indexes := l.byEntry[entryID]
		visits = make([]redirect.Visit, 0, len(indexes))

		for _, idx := range indexes {
			visits = append(visits, l.visits[idx])
		}
	})
	if err != nil {
		return nil, err
	}

	return visits, nil
}

// Compile-time check.
var _ redirect.VisitLog = (*VisitMemoryLog)(nil)
