package redirect

import (
	"context"
	"net/netip"
)

// Resolution is the outcome of a successful resolve.
type Resolution struct {
	Entry Entry
	Visit Visit
}

// URL returns the stored destination, unmodified.
func (r *Resolution) URL() string {
	return r.Entry.URL
}

// Resolver couples code lookup with visit logging.
//
// The entry store is always consulted before the visit log is touched, so any
// operation needing both components acquires their locks in that order. Entries
// are never mutated or removed, which means an entry seen by the lookup is still
// valid when its visit is appended.
type Resolver struct {
	entries EntryStore
	visits  VisitLog
}

// NewResolver creates a resolver over the given components.
func NewResolver(entries EntryStore, visits VisitLog) *Resolver {
	return &Resolver{
		entries: entries,
		visits:  visits,
	}
}

// Resolve looks up code and, if it is registered, records a visit from ip.
// Unknown codes return ErrNotFound and record nothing.
func (r *Resolver) Resolve(ctx context.Context, code string, ip netip.Addr) (*Resolution, error) {
	entry, err := r.entries.LookupByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	visit, err := r.visits.Append(ctx, entry.ID, ip)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Entry: entry,
		Visit: visit,
	}, nil
}
