package handlers

import (
	"context"
	"net/http"

	"github.com/serroba/hop/internal/analytics"
	"github.com/serroba/hop/internal/messaging"
	"github.com/serroba/hop/internal/redirect"
	"go.uber.org/zap"
)

// VisitHandler handles redirects and the visit listing.
type VisitHandler struct {
	errorMapper

	resolver             *redirect.Resolver
	queries              *redirect.QueryService
	publishVisitRecorded messaging.Publish[analytics.VisitRecordedEvent]
}

// NewVisitHandler creates a new visit handler.
func NewVisitHandler(
	resolver *redirect.Resolver,
	queries *redirect.QueryService,
	publishVisitRecorded messaging.Publish[analytics.VisitRecordedEvent],
	logger *zap.Logger,
	onFatal FatalFunc,
) *VisitHandler {
	return &VisitHandler{
		errorMapper:          errorMapper{logger: logger, onFatal: onFatal},
		resolver:             resolver,
		queries:              queries,
		publishVisitRecorded: publishVisitRecorded,
	}
}

// Redirect resolves a code and redirects to its destination. Query parameters of
// the incoming request are not forwarded.
func (h *VisitHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	meta := RequestMetaFromContext(ctx)

	res, err := h.resolver.Resolve(ctx, req.Code, meta.ClientIP)
	if err != nil {
		return nil, h.toHTTP(err, "resolve", "not found")
	}

	event := analytics.NewVisitRecordedEvent(res, meta.UserAgent, meta.Referrer)
	if err := h.publishVisitRecorded(ctx, event); err != nil {
		h.logger.Error("failed to publish visit recorded event",
			zap.String("code", event.Code),
			zap.Error(err),
		)
	}

	return &RedirectResponse{
		Status:   http.StatusSeeOther,
		Location: res.URL(),
	}, nil
}

func (h *VisitHandler) ListVisits(ctx context.Context, _ *struct{}) (*ListVisitsResponse, error) {
	visits, err := h.queries.ListAllVisits(ctx)
	if err != nil {
		return nil, h.toHTTP(err, "list visits", "")
	}

	return &ListVisitsResponse{Body: newVisitBodies(visits)}, nil
}
