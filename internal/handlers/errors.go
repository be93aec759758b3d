package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/hop/internal/redirect"
	"go.uber.org/zap"
)

// FatalFunc is invoked when the store reports it can no longer be trusted.
// In production it terminates the process.
type FatalFunc func(err error)

type errorMapper struct {
	logger  *zap.Logger
	onFatal FatalFunc
}

func (m errorMapper) toHTTP(err error, op, notFound string) error {
	switch {
	case errors.Is(err, redirect.ErrNotFound):
		return huma.Error404NotFound(notFound)
	case errors.Is(err, redirect.ErrStorePoisoned):
		m.logger.Error("store poisoned", zap.String("op", op), zap.Error(err))
		m.onFatal(err)

		return huma.Error500InternalServerError("store unavailable")
	default:
		m.logger.Error("request failed", zap.String("op", op), zap.Error(err))

		return huma.Error500InternalServerError("internal error")
	}
}
