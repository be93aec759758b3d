package store

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres:// migration driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/hop/internal/analytics"
)

//go:embed migrations/*.sql
var migrationsDir embed.FS

// Postgres archives events into PostgreSQL. Saves are idempotent so redelivered
// events do not create duplicates.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a PostgreSQL-backed analytics store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Migrate applies the embedded schema migrations to the database at dsn.
func Migrate(dsn string) error {
	source, err := iofs.New(migrationsDir, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

func (p *Postgres) SaveEntryRegistered(ctx context.Context, event *analytics.EntryRegisteredEvent) error {
	query := `
		INSERT INTO entry_events (entry_id, code, url, registered_at, client_ip, user_agent)
		VALUES (@entryID, @code, @url, @registeredAt, @clientIP, @userAgent)
		ON CONFLICT (entry_id) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query, pgx.NamedArgs{
		"entryID":      event.EntryID,
		"code":         event.Code,
		"url":          event.URL,
		"registeredAt": event.RegisteredAt.UTC(),
		"clientIP":     event.ClientIP,
		"userAgent":    event.UserAgent,
	})
	if err != nil {
		return fmt.Errorf("save entry event: %w", err)
	}

	return nil
}

func (p *Postgres) SaveVisitRecorded(ctx context.Context, event *analytics.VisitRecordedEvent) error {
	query := `
		INSERT INTO visit_events (visit_id, entry_id, code, ip, visited_at, user_agent, referrer)
		VALUES (@visitID, @entryID, @code, @ip, @visitedAt, @userAgent, @referrer)
		ON CONFLICT (visit_id) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query, pgx.NamedArgs{
		"visitID":   event.VisitID,
		"entryID":   event.EntryID,
		"code":      event.Code,
		"ip":        event.IP,
		"visitedAt": event.Timestamp.UTC(),
		"userAgent": event.UserAgent,
		"referrer":  event.Referrer,
	})
	if err != nil {
		return fmt.Errorf("save visit event: %w", err)
	}

	return nil
}

// CountVisits returns the number of archived visits for an entry.
func (p *Postgres) CountVisits(ctx context.Context, entryID string) (int64, error) {
	var count int64

	err := p.pool.QueryRow(ctx,
		`SELECT count(*) FROM visit_events WHERE entry_id = @entryID`,
		pgx.NamedArgs{"entryID": entryID},
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count visits: %w", err)
	}

	return count, nil
}

// Shutdown closes the connection pool.
func (p *Postgres) Shutdown() error {
	p.pool.Close()

	return nil
}

// Compile-time check.
var _ analytics.Store = (*Postgres)(nil)
