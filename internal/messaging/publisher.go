package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// MetadataTopic is the message metadata key carrying the topic an event was published to.
const MetadataTopic = "topic"

// Publish publishes one typed event.
type Publish[T any] func(ctx context.Context, event *T) error

// NewPublishFunc creates a typed publish function for a specific topic.
func NewPublishFunc[T any](publisher message.Publisher, topic string) Publish[T] {
	return func(ctx context.Context, event *T) error {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", topic, err)
		}

		msg := message.NewMessage(watermill.NewUUID(), payload)
		msg.Metadata.Set(MetadataTopic, topic)
		msg.SetContext(ctx)

		return publisher.Publish(topic, msg)
	}
}

// PublisherGroup owns the publisher shared by every typed publish function.
type PublisherGroup struct {
	publisher message.Publisher
	logger    *zap.Logger
}

// NewPublisherGroup creates a new publisher group.
func NewPublisherGroup(publisher message.Publisher, logger *zap.Logger) *PublisherGroup {
	return &PublisherGroup{
		publisher: publisher,
		logger:    logger,
	}
}

// Publisher returns the underlying message publisher for creating typed publish functions.
func (g *PublisherGroup) Publisher() message.Publisher {
	return g.publisher
}

// Shutdown closes the underlying publisher.
func (g *PublisherGroup) Shutdown() error {
	g.logger.Info("closing event publisher")

	return g.publisher.Close()
}
