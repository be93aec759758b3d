package analytics

import "context"

// Store archives events received by the consumer.
type Store interface {
	SaveEntryRegistered(ctx context.Context, event *EntryRegisteredEvent) error
	SaveVisitRecorded(ctx context.Context, event *VisitRecordedEvent) error
}
