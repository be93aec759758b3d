package store

import (
	"context"

	"github.com/serroba/hop/internal/analytics"
	"go.uber.org/zap"
)

// Noop is an analytics.Store that only logs events.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a new no-op analytics store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveEntryRegistered(_ context.Context, event *analytics.EntryRegisteredEvent) error {
	n.logger.Info("entry registered",
		zap.String("entryId", event.EntryID),
		zap.String("code", event.Code),
		zap.String("url", event.URL),
		zap.Time("registeredAt", event.RegisteredAt),
	)

	return nil
}

func (n *Noop) SaveVisitRecorded(_ context.Context, event *analytics.VisitRecordedEvent) error {
	n.logger.Info("visit recorded",
		zap.String("visitId", event.VisitID),
		zap.String("entryId", event.EntryID),
		zap.String("ip", event.IP),
		zap.Time("timestamp", event.Timestamp),
	)

	return nil
}

// Compile-time check.
var _ analytics.Store = (*Noop)(nil)
