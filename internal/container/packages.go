package container

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/hop/internal/analytics"
	analyticsstore "github.com/serroba/hop/internal/analytics/store"
	"github.com/serroba/hop/internal/handlers"
	"github.com/serroba/hop/internal/health"
	"github.com/serroba/hop/internal/messaging"
	"github.com/serroba/hop/internal/middleware"
	"github.com/serroba/hop/internal/redirect"
	"github.com/serroba/hop/internal/store"
	"go.uber.org/zap"
)

// RedisPackage provides the Redis client used by the redis events backend.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		opts := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{Addr: opts.RedisAddr}), nil
	})
}

// StorePackage provides the in-memory store and the services layered on it.
// The store is created once and shared by every request.
func StorePackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*store.EntryMemoryStore, error) {
		return store.NewEntryMemoryStore(), nil
	})

	do.Provide(injector, func(_ *do.Injector) (*store.VisitMemoryLog, error) {
		return store.NewVisitMemoryLog(), nil
	})

	do.Provide(injector, func(i *do.Injector) (*redirect.Registrar, error) {
		return redirect.NewRegistrar(do.MustInvoke[*store.EntryMemoryStore](i)), nil
	})

	do.Provide(injector, func(i *do.Injector) (*redirect.Resolver, error) {
		return redirect.NewResolver(
			do.MustInvoke[*store.EntryMemoryStore](i),
			do.MustInvoke[*store.VisitMemoryLog](i),
		), nil
	})

	do.Provide(injector, func(i *do.Injector) (*redirect.QueryService, error) {
		return redirect.NewQueryService(
			do.MustInvoke[*store.EntryMemoryStore](i),
			do.MustInvoke[*store.VisitMemoryLog](i),
		), nil
	})
}

// EventsPackage provides the watermill publisher and subscriber for the
// configured backend. The memory backend shares one GoChannel between both.
func EventsPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*gochannel.GoChannel, error) {
		logger := do.MustInvoke[*zap.Logger](i)

		return gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 256},
			messaging.NewZapLogger(logger),
		), nil
	})

	do.Provide(injector, func(i *do.Injector) (message.Publisher, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		switch opts.EventsBackend {
		case BackendMemory:
			return do.MustInvoke[*gochannel.GoChannel](i), nil
		case BackendRedis:
			return redisstream.NewPublisher(
				redisstream.PublisherConfig{Client: do.MustInvoke[*redis.Client](i)},
				messaging.NewZapLogger(logger),
			)
		default:
			return nil, fmt.Errorf("unknown events backend %q", opts.EventsBackend)
		}
	})

	do.Provide(injector, func(i *do.Injector) (message.Subscriber, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		switch opts.EventsBackend {
		case BackendMemory:
			return do.MustInvoke[*gochannel.GoChannel](i), nil
		case BackendRedis:
			return redisstream.NewSubscriber(
				redisstream.SubscriberConfig{
					Client:        do.MustInvoke[*redis.Client](i),
					ConsumerGroup: opts.ConsumerGroup,
				},
				messaging.NewZapLogger(logger),
			)
		default:
			return nil, fmt.Errorf("unknown events backend %q", opts.EventsBackend)
		}
	})
}

// PublisherGroupPackage provides the publisher lifecycle owner.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		return messaging.NewPublisherGroup(
			do.MustInvoke[message.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
}

// ArchivePackage provides the sink events are archived to: PostgreSQL when a
// database URL is configured, otherwise a logging no-op.
func ArchivePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (analytics.Store, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		if opts.DatabaseURL == "" {
			return analyticsstore.NewNoop(logger), nil
		}

		if err := analyticsstore.Migrate(opts.DatabaseURL); err != nil {
			return nil, err
		}

		pool, err := pgxpool.New(context.Background(), opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect to archive database: %w", err)
		}

		return analyticsstore.NewPostgres(pool), nil
	})
}

// ConsumerGroupPackage provides the consumers archiving both event topics.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		subscriber := do.MustInvoke[message.Subscriber](i)
		archive := do.MustInvoke[analytics.Store](i)
		logger := do.MustInvoke[*zap.Logger](i)

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(messaging.NewConsumer(
			subscriber, analytics.TopicEntryRegistered, archive.SaveEntryRegistered, logger,
		))
		group.Add(messaging.NewConsumer(
			subscriber, analytics.TopicVisitRecorded, archive.SaveVisitRecorded, logger,
		))

		return group, nil
	})
}

// HTTPPackage provides the router and the huma API with every route registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		router := do.MustInvoke[*chi.Mux](i)
		publisher := do.MustInvoke[*messaging.PublisherGroup](i).Publisher()

		api := humachi.New(router, huma.DefaultConfig("Short Code Redirects", "1.0.0"))
		api.UseMiddleware(middleware.RequestMeta(api))

		onFatal := func(err error) {
			logger.Fatal("store consistency lost", zap.Error(err))
		}

		entryHandler := handlers.NewEntryHandler(
			do.MustInvoke[*redirect.Registrar](i),
			do.MustInvoke[*redirect.QueryService](i),
			messaging.NewPublishFunc[analytics.EntryRegisteredEvent](publisher, analytics.TopicEntryRegistered),
			logger,
			onFatal,
		)
		visitHandler := handlers.NewVisitHandler(
			do.MustInvoke[*redirect.Resolver](i),
			do.MustInvoke[*redirect.QueryService](i),
			messaging.NewPublishFunc[analytics.VisitRecordedEvent](publisher, analytics.TopicVisitRecorded),
			logger,
			onFatal,
		)

		checks := map[string]health.Checker{
			"entries": do.MustInvoke[*store.EntryMemoryStore](i),
			"visits":  do.MustInvoke[*store.VisitMemoryLog](i),
		}
		if opts.EventsBackend == BackendRedis {
			checks["redis"] = health.NewRedisChecker(do.MustInvoke[*redis.Client](i))
		}

		health.RegisterRoutes(api, health.NewHandler(checks))
		handlers.RegisterRoutes(api, entryHandler, visitHandler)

		return api, nil
	})
}
