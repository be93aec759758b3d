package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"
)

// Runnable represents a component that can be started and shut down.
type Runnable interface {
	Start(ctx context.Context) error
	Shutdown() error
}

// ConsumerGroup starts and stops a set of consumers sharing one subscriber.
type ConsumerGroup struct {
	consumers  []Runnable
	subscriber message.Subscriber
	logger     *zap.Logger
	started    int
}

// NewConsumerGroup creates a new consumer group.
func NewConsumerGroup(subscriber message.Subscriber, logger *zap.Logger) *ConsumerGroup {
	return &ConsumerGroup{
		subscriber: subscriber,
		logger:     logger,
	}
}

// Add registers a consumer to the group. Consumers added after Start are not started.
func (g *ConsumerGroup) Add(consumer Runnable) {
	g.consumers = append(g.consumers, consumer)
}

// Start starts all consumers in order, shutting down the ones already started if one fails.
func (g *ConsumerGroup) Start(ctx context.Context) error {
	for i, consumer := range g.consumers {
		if err := consumer.Start(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = g.consumers[j].Shutdown()
			}

			g.started = 0

			return fmt.Errorf("start consumer %d: %w", i, err)
		}

		g.started = i + 1
	}

	g.logger.Info("consumer group started", zap.Int("count", g.started))

	return nil
}

// Shutdown stops the started consumers and closes the subscriber.
func (g *ConsumerGroup) Shutdown() error {
	g.logger.Info("shutting down consumer group")

	var errs []error

	for _, consumer := range g.consumers[:g.started] {
		if err := consumer.Shutdown(); err != nil {
			errs = append(errs, err)
		}
	}

	g.started = 0

	if err := g.subscriber.Close(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
