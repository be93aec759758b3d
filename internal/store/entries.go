package store

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/serroba/hop/internal/redirect"
)

// EntryMemoryStore is an in-memory implementation of redirect.EntryStore.
type EntryMemoryStore struct {
	guard

	entries []redirect.Entry
	byCode  map[string]int // code -> index of the first entry with that code
	byID    map[uuid.UUID]int
}

// NewEntryMemoryStore creates an empty entry store.
func NewEntryMemoryStore() *EntryMemoryStore {
	return &EntryMemoryStore{
		byCode: make(map[string]int),
		byID:   make(map[uuid.UUID]int),
	}
}

func (s *EntryMemoryStore) Insert(_ context.Context, code, url string) (redirect.Entry, error) {
	entry := redirect.NewEntry(code, url)

	err := s.write(func() {
		s.entries = append(s.entries, entry)
		idx := len(s.entries) - 1

		// Later duplicates never shadow the first registration of a code.
		if _, ok := s.byCode[code]; !ok {
			s.byCode[code] = idx
		}

		s.byID[entry.ID] = idx
	})
	if err != nil {
		return redirect.Entry{}, err
	}

	return entry, nil
}

func (s *EntryMemoryStore) LookupByCode(_ context.Context, code string) (redirect.Entry, error) {
	var (
		entry redirect.Entry
		found bool
	)

	err := s.read(func() {
		var idx int
		if idx, found = s.byCode[code]; found {
			entry = s.entries[idx]
		}
	})
	if err != nil {
		return redirect.Entry{}, err
	}

	if !found {
		return redirect.Entry{}, redirect.ErrNotFound
	}

	return entry, nil
}

func (s *EntryMemoryStore) LookupByID(_ context.Context, id uuid.UUID) (redirect.Entry, error) {
	var (
		entry redirect.Entry
		found bool
	)

	err := s.read(func() {
		var idx int
		if idx, found = s.byID[id]; found {
			entry = s.entries[idx]
		}
	})
	if err != nil {
		return redirect.Entry{}, err
	}

	if !found {
		return redirect.Entry{}, redirect.ErrNotFound
	}

	return entry, nil
}

// ListAll returns a snapshot of all entries in insertion order.
func (s *EntryMemoryStore) ListAll(_ context.Context) ([]redirect.Entry, error) {
	var entries []redirect.Entry

	err := s.read(func() {
		entries = slices.Clone(s.entries)
	})
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []redirect.Entry{}
	}

	return entries, nil
}

// Compile-time check.
var _ redirect.EntryStore = (*EntryMemoryStore)(nil)
