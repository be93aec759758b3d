package redirect_test

import (
	"context"
	"errors"
	"net/netip"

	"github.com/google/uuid"
	"github.com/serroba/hop/internal/redirect"
)

var errMock = errors.New("mock error")

// mockEntries is a test double for EntryStore that fails every call with err.
type mockEntries struct {
	err error
}

func (m *mockEntries) Insert(_ context.Context, _, _ string) (redirect.Entry, error) {
	return redirect.Entry{}, m.err
}

func (m *mockEntries) LookupByCode(_ context.Context, _ string) (redirect.Entry, error) {
	return redirect.Entry{}, m.err
}

func (m *mockEntries) LookupByID(_ context.Context, _ uuid.UUID) (redirect.Entry, error) {
	return redirect.Entry{}, m.err
}

func (m *mockEntries) ListAll(_ context.Context) ([]redirect.Entry, error) {
	return nil, m.err
}

// mockVisits is a test double for VisitLog that counts appends and fails with err.
type mockVisits struct {
	err     error
	appends int
}

func (m *mockVisits) Append(_ context.Context, _ uuid.UUID, _ netip.Addr) (redirect.Visit, error) {
	m.appends++

	return redirect.Visit{}, m.err
}

func (m *mockVisits) ListAll(_ context.Context) ([]redirect.Visit, error) {
	return nil, m.err
}

func (m *mockVisits) ListByEntry(_ context.Context, _ uuid.UUID) ([]redirect.Visit, error) {
	return nil, m.err
}
