package analytics

import (
	"time"

	"github.com/serroba/hop/internal/redirect"
)

const (
	TopicEntryRegistered = "entry.registered"
	TopicVisitRecorded   = "visit.recorded"
)

// EntryRegisteredEvent is emitted after an entry is registered.
type EntryRegisteredEvent struct {
	EntryID      string    `json:"entryId"`
	Code         string    `json:"code"`
	URL          string    `json:"url"`
	RegisteredAt time.Time `json:"registeredAt"`
	ClientIP     string    `json:"clientIp"`
	UserAgent    string    `json:"userAgent"`
}

// VisitRecordedEvent is emitted after a resolve appended a visit.
type VisitRecordedEvent struct {
	VisitID   string    `json:"visitId"`
	EntryID   string    `json:"entryId"`
	Code      string    `json:"code"`
	IP        string    `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
	UserAgent string    `json:"userAgent"`
	Referrer  string    `json:"referrer"`
}

// NewVisitRecordedEvent builds the event for a successful resolve.
func NewVisitRecordedEvent(res *redirect.Resolution, userAgent, referrer string) *VisitRecordedEvent {
	var ip string
	if res.Visit.IP.IsValid() {
		ip = res.Visit.IP.String()
	}

	return &VisitRecordedEvent{
		VisitID:   res.Visit.ID.String(),
		EntryID:   res.Entry.ID.String(),
		Code:      res.Entry.Code,
		IP:        ip,
		Timestamp: res.Visit.Timestamp,
		UserAgent: userAgent,
		Referrer:  referrer,
	}
}
