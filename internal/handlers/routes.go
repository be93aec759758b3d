package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the entry, visit, and redirect operations.
func RegisterRoutes(api huma.API, entries *EntryHandler, visits *VisitHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "register-entry",
		Method:      http.MethodPost,
		Path:        "/entries",
		Summary:     "Register entry",
		Description: "Maps a short code to a destination URL. Duplicate codes are accepted; the first registration wins on redirect.",
		Tags:        []string{"Entries"},
	}, entries.RegisterEntry)

	huma.Register(api, huma.Operation{
		OperationID: "list-entries",
		Method:      http.MethodGet,
		Path:        "/entries",
		Summary:     "List entries",
		Tags:        []string{"Entries"},
	}, entries.ListEntries)

	huma.Register(api, huma.Operation{
		OperationID: "list-entry-visits",
		Method:      http.MethodGet,
		Path:        "/entries/{entry_id}/visits",
		Summary:     "List visits of an entry",
		Tags:        []string{"Visits"},
	}, entries.ListEntryVisits)

	huma.Register(api, huma.Operation{
		OperationID: "list-visits",
		Method:      http.MethodGet,
		Path:        "/visits",
		Summary:     "List all visits",
		Tags:        []string{"Visits"},
	}, visits.ListVisits)

	// Registered last; chi prefers the static routes above over this pattern.
	huma.Register(api, huma.Operation{
		OperationID:   "redirect",
		Method:        http.MethodGet,
		Path:          "/{code}",
		Summary:       "Redirect to destination",
		Description:   "Records a visit and redirects to the URL registered for the code.",
		Tags:          []string{"Redirect"},
		DefaultStatus: http.StatusSeeOther,
	}, visits.Redirect)
}
