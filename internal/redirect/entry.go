package redirect

import (
	"net/netip"
	"time"

	"github.com/google/uuid"
)

// Entry maps a short code to a destination URL.
type Entry struct {
	ID   uuid.UUID
	Code string
	URL  string
}

// NewEntry creates an entry with a fresh random id.
func NewEntry(code, url string) Entry {
	return Entry{
		ID:   uuid.New(),
		Code: code,
		URL:  url,
	}
}

// Visit records one successful redirect through an entry.
type Visit struct {
	ID        uuid.UUID
	EntryID   uuid.UUID
	IP        netip.Addr
	Timestamp time.Time // always UTC
}

// NewVisit creates a visit for entryID observed at the given time.
func NewVisit(entryID uuid.UUID, ip netip.Addr, at time.Time) Visit {
	return Visit{
		ID:        uuid.New(),
		EntryID:   entryID,
		IP:        ip,
		Timestamp: at.UTC(),
	}
}
