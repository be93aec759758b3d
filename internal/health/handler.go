package health

import (
	"context"
	"maps"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/redis/go-redis/v9"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	Healthy        = "healthy"
	Unhealthy      = "unhealthy"
)

// Checker defines the interface for checking a dependency's health.
type Checker interface {
	Ping(ctx context.Context) error
}

// RedisChecker adapts redis.Client to Checker interface.
type RedisChecker struct {
	client *redis.Client
}

// NewRedisChecker creates a new Redis health checker.
func NewRedisChecker(client *redis.Client) *RedisChecker {
	return &RedisChecker{client: client}
}

// Ping checks Redis connectivity.
func (r *RedisChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Handler reports the health of a set of named dependencies.
type Handler struct {
	checks  map[string]Checker
	timeout time.Duration
}

// NewHandler creates a health handler over the given checks.
func NewHandler(checks map[string]Checker) *Handler {
	return &Handler{
		checks:  maps.Clone(checks),
		timeout: 2 * time.Second,
	}
}

// Response is the response for health check endpoint.
type Response struct {
	Body struct {
		Status       string            `example:"ok" json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
}

// Check pings every dependency. Any failure degrades the overall status.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	resp := &Response{}
	resp.Body.Status = StatusOK
	resp.Body.Dependencies = make(map[string]string, len(h.checks))

	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			resp.Body.Dependencies[name] = Unhealthy
			resp.Body.Status = StatusDegraded

			continue
		}

		resp.Body.Dependencies[name] = Healthy
	}

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
