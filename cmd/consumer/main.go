package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/samber/do"
	"github.com/serroba/hop/internal/container"
	"github.com/serroba/hop/internal/messaging"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	// The standalone archiver only makes sense against a shared bus.
	opts := &container.Options{
		EventsBackend: container.BackendRedis,
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		LogFormat:     getEnv("LOG_FORMAT", container.LogFormatConsole),
		LogFile:       getEnv("LOG_FILE", ""),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		ConsumerGroup: getEnv("CONSUMER_GROUP", "hop-archive"),
	}

	injector := do.New()
	do.ProvideValue(injector, opts)
	container.LoggerPackage(injector)
	container.RedisPackage(injector)
	container.EventsPackage(injector)
	container.ArchivePackage(injector)
	container.ConsumerGroupPackage(injector)

	logger := do.MustInvoke[*zap.Logger](injector)
	group := do.MustInvoke[*messaging.ConsumerGroup](injector)

	ctx, cancel := context.WithCancel(context.Background())

	if err := group.Start(ctx); err != nil {
		logger.Fatal("failed to start consumer group", zap.Error(err))
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")
	cancel()

	if err := injector.Shutdown(); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	logger.Info("shutdown complete")
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return defaultValue
}
