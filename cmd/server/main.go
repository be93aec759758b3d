package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/samber/do"
	"github.com/serroba/hop/internal/container"
	"github.com/serroba/hop/internal/messaging"
	"go.uber.org/zap"
)

func registerPackages(injector *do.Injector, options *container.Options) {
	do.ProvideValue(injector, options)
	container.LoggerPackage(injector)
	container.RedisPackage(injector)
	container.StorePackage(injector)
	container.EventsPackage(injector)
	container.PublisherGroupPackage(injector)
	container.ArchivePackage(injector)
	container.ConsumerGroupPackage(injector)
	container.HTTPPackage(injector)
}

func main() {
	// A missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *container.Options) {
		injector := do.New()
		registerPackages(injector, options)

		logger := do.MustInvoke[*zap.Logger](injector)

		var server *http.Server

		hooks.OnStart(func() {
			router := do.MustInvoke[*chi.Mux](injector)

			// Invoke API to trigger route registration
			_ = do.MustInvoke[huma.API](injector)

			// With the memory bus nothing outside this process can read the
			// events, so the archive consumers run here.
			if options.EventsBackend == container.BackendMemory {
				group := do.MustInvoke[*messaging.ConsumerGroup](injector)
				if err := group.Start(context.Background()); err != nil {
					logger.Fatal("failed to start consumer group", zap.Error(err))
				}
			}

			server = &http.Server{
				Addr:              fmt.Sprintf(":%d", options.Port),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			logger.Info("server starting",
				zap.Int("port", options.Port),
				zap.String("events", options.EventsBackend),
			)

			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal("server failed", zap.Error(err))
			}
		})

		hooks.OnStop(func() {
			logger.Info("shutting down")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if server != nil {
				if err := server.Shutdown(ctx); err != nil {
					logger.Error("server shutdown error", zap.Error(err))
				}
			}

			if err := injector.Shutdown(); err != nil {
				logger.Error("service shutdown error", zap.Error(err))
			}

			logger.Info("shutdown complete")
			_ = logger.Sync()
		})
	})

	cli.Run()
}
