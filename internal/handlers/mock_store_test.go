package handlers_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/serroba/hop/internal/redirect"
)

// failingEntries is an EntryStore whose every call fails with err.
type failingEntries struct {
	err error
}

func (m *failingEntries) Insert(_ context.Context, _, _ string) (redirect.Entry, error) {
	return redirect.Entry{}, m.err
}

func (m *failingEntries) LookupByCode(_ context.Context, _ string) (redirect.Entry, error) {
	return redirect.Entry{}, m.err
}

func (m *failingEntries) LookupByID(_ context.Context, _ uuid.UUID) (redirect.Entry, error) {
	return redirect.Entry{}, m.err
}

func (m *failingEntries) ListAll(_ context.Context) ([]redirect.Entry, error) {
	return nil, m.err
}

// poisonedEntries behaves like an entry store whose lock was poisoned.
type poisonedEntries struct {
	failingEntries
}

func (m *poisonedEntries) LookupByCode(_ context.Context, _ string) (redirect.Entry, error) {
	return redirect.Entry{}, fmt.Errorf("%w: index corrupted", redirect.ErrStorePoisoned)
}
