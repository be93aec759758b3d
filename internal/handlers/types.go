package handlers

import (
	"net/netip"

	"github.com/serroba/hop/internal/redirect"
)

// TimestampLayout renders visit timestamps in UTC without an offset marker.
const TimestampLayout = "2006-01-02T15:04:05.999999999"

// EntryBody is the wire form of an entry.
type EntryBody struct {
	ID   string `doc:"Entry id"         example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427" json:"id"`
	Code string `doc:"Short code"       example:"abc"                                  json:"code"`
	URL  string `doc:"Destination URL"  example:"https://example.com"                  json:"url"`
}

func newEntryBody(e redirect.Entry) EntryBody {
	return EntryBody{
		ID:   e.ID.String(),
		Code: e.Code,
		URL:  e.URL,
	}
}

// VisitBody is the wire form of a visit.
type VisitBody struct {
	ID        string `doc:"Visit id"                  json:"id"`
	EntryID   string `doc:"Id of the entry visited"   json:"entry_id"`
	IP        string `doc:"Visitor address"           example:"203.0.113.5"                   json:"ip"`
	Timestamp string `doc:"UTC time, no offset"       example:"2026-10-18T09:30:00.123456789" json:"timestamp"`
}

func newVisitBodies(visits []redirect.Visit) []VisitBody {
	bodies := make([]VisitBody, 0, len(visits))
	for _, v := range visits {
		bodies = append(bodies, VisitBody{
			ID:        v.ID.String(),
			EntryID:   v.EntryID.String(),
			IP:        addrString(v.IP),
			Timestamp: v.Timestamp.UTC().Format(TimestampLayout),
		})
	}

	return bodies
}

// RegisterEntryRequest is the request body for registering an entry.
type RegisterEntryRequest struct {
	Body struct {
		Code string `doc:"Short code to register" example:"abc"                 json:"code"`
		URL  string `doc:"Redirect destination"   example:"https://example.com" json:"url"`
	}
}

// EntryResponse wraps a single entry.
type EntryResponse struct {
	Body EntryBody
}

// ListEntriesResponse lists entries in registration order.
type ListEntriesResponse struct {
	Body []EntryBody
}

// EntryVisitsRequest selects the entry whose visits are listed.
type EntryVisitsRequest struct {
	EntryID string `doc:"Entry id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427" path:"entry_id"`
}

// ListVisitsResponse lists visits in recording order.
type ListVisitsResponse struct {
	Body []VisitBody
}

// RedirectRequest is the request for resolving a short code.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"abc" path:"code"`
}

// RedirectResponse redirects to the stored destination.
type RedirectResponse struct {
	Status   int
	Location string `doc:"Destination URL" header:"Location"`
}

// addrString renders an unknown address as an empty string rather than "invalid IP".
func addrString(addr netip.Addr) string {
	if !addr.IsValid() {
		return ""
	}

	return addr.String()
}
