package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/serroba/hop/internal/analytics"
	"github.com/serroba/hop/internal/messaging"
	"github.com/serroba/hop/internal/redirect"
	"go.uber.org/zap"
)

// EntryHandler handles registration and entry listings.
type EntryHandler struct {
	errorMapper

	registrar              *redirect.Registrar
	queries                *redirect.QueryService
	publishEntryRegistered messaging.Publish[analytics.EntryRegisteredEvent]
}

// NewEntryHandler creates a new entry handler.
func NewEntryHandler(
	registrar *redirect.Registrar,
	queries *redirect.QueryService,
	publishEntryRegistered messaging.Publish[analytics.EntryRegisteredEvent],
	logger *zap.Logger,
	onFatal FatalFunc,
) *EntryHandler {
	return &EntryHandler{
		errorMapper:            errorMapper{logger: logger, onFatal: onFatal},
		registrar:              registrar,
		queries:                queries,
		publishEntryRegistered: publishEntryRegistered,
	}
}

func (h *EntryHandler) RegisterEntry(ctx context.Context, req *RegisterEntryRequest) (*EntryResponse, error) {
	entry, err := h.registrar.Register(ctx, req.Body.Code, req.Body.URL)
	if err != nil {
		return nil, h.toHTTP(err, "register", "")
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.EntryRegisteredEvent{
		EntryID:      entry.ID.String(),
		Code:         entry.Code,
		URL:          entry.URL,
		RegisteredAt: time.Now().UTC(),
		ClientIP:     addrString(meta.ClientIP),
		UserAgent:    meta.UserAgent,
	}

	if err := h.publishEntryRegistered(ctx, event); err != nil {
		h.logger.Error("failed to publish entry registered event",
			zap.String("entryId", event.EntryID),
			zap.Error(err),
		)
	}

	return &EntryResponse{Body: newEntryBody(entry)}, nil
}

func (h *EntryHandler) ListEntries(ctx context.Context, _ *struct{}) (*ListEntriesResponse, error) {
	entries, err := h.queries.ListEntries(ctx)
	if err != nil {
		return nil, h.toHTTP(err, "list entries", "")
	}

	resp := &ListEntriesResponse{Body: make([]EntryBody, 0, len(entries))}
	for _, e := range entries {
		resp.Body = append(resp.Body, newEntryBody(e))
	}

	return resp, nil
}

// ListEntryVisits lists the visits of one entry. A malformed id cannot name a
// registered entry, so it is reported as not found too.
func (h *EntryHandler) ListEntryVisits(ctx context.Context, req *EntryVisitsRequest) (*ListVisitsResponse, error) {
	const notFound = "entry not found by that id"

	id, err := uuid.Parse(req.EntryID)
	if err != nil {
		return nil, h.toHTTP(redirect.ErrNotFound, "list entry visits", notFound)
	}

	visits, err := h.queries.ListVisitsForEntry(ctx, id)
	if err != nil {
		return nil, h.toHTTP(err, "list entry visits", notFound)
	}

	return &ListVisitsResponse{Body: newVisitBodies(visits)}, nil
}
