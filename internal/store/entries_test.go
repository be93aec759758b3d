package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/serroba/hop/internal/redirect"
	"github.com/serroba/hop/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryMemoryStore_Insert(t *testing.T) {
	t.Run("returns entry with fresh id", func(t *testing.T) {
		s := store.NewEntryMemoryStore()

		entry, err := s.Insert(context.Background(), "abc", "https://example.com")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, entry.ID)
		assert.Equal(t, "abc", entry.Code)
		assert.Equal(t, "https://example.com", entry.URL)
	})

	t.Run("accepts empty strings", func(t *testing.T) {
		s := store.NewEntryMemoryStore()

		entry, err := s.Insert(context.Background(), "", "")

		require.NoError(t, err)

		got, err := s.LookupByCode(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, entry, got)
	})

	t.Run("accepts duplicate codes with distinct ids", func(t *testing.T) {
		s := store.NewEntryMemoryStore()

		first, err1 := s.Insert(context.Background(), "x", "https://one.com")
		second, err2 := s.Insert(context.Background(), "x", "https://two.com")

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first.ID, second.ID)

		all, err := s.ListAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestEntryMemoryStore_LookupByCode(t *testing.T) {
	t.Run("returns first inserted match", func(t *testing.T) {
		s := store.NewEntryMemoryStore()
		first, _ := s.Insert(context.Background(), "x", "https://one.com")
		_, _ = s.Insert(context.Background(), "x", "https://two.com")

		got, err := s.LookupByCode(context.Background(), "x")

		require.NoError(t, err)
		assert.Equal(t, first, got)
	})

	t.Run("returns ErrNotFound for unknown code", func(t *testing.T) {
		s := store.NewEntryMemoryStore()
		_, _ = s.Insert(context.Background(), "abc", "https://example.com")

		_, err := s.LookupByCode(context.Background(), "zzz")

		assert.ErrorIs(t, err, redirect.ErrNotFound)
	})
}

func TestEntryMemoryStore_LookupByID(t *testing.T) {
	t.Run("returns entry by id", func(t *testing.T) {
		s := store.NewEntryMemoryStore()
		_, _ = s.Insert(context.Background(), "a", "https://a.com")
		second, _ := s.Insert(context.Background(), "b", "https://b.com")

		got, err := s.LookupByID(context.Background(), second.ID)

		require.NoError(t, err)
		assert.Equal(t, second, got)
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		s := store.NewEntryMemoryStore()

		_, err := s.LookupByID(context.Background(), uuid.New())

		assert.ErrorIs(t, err, redirect.ErrNotFound)
	})
}

func TestEntryMemoryStore_ListAll(t *testing.T) {
	t.Run("returns empty slice when no entries", func(t *testing.T) {
		s := store.NewEntryMemoryStore()

		entries, err := s.ListAll(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		s := store.NewEntryMemoryStore()

		var want []redirect.Entry

		for i := range 5 {
			e, _ := s.Insert(context.Background(), fmt.Sprintf("code%d", i), "https://example.com")
			want = append(want, e)
		}

		entries, err := s.ListAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, want, entries)
	})

	t.Run("returns a snapshot", func(t *testing.T) {
		s := store.NewEntryMemoryStore()
		_, _ = s.Insert(context.Background(), "a", "https://a.com")

		snapshot, _ := s.ListAll(context.Background())
		snapshot[0].URL = "https://changed.com"
		_, _ = s.Insert(context.Background(), "b", "https://b.com")

		got, err := s.LookupByCode(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, "https://a.com", got.URL)
		assert.Len(t, snapshot, 1)
	})
}

func TestEntryMemoryStore_Concurrent(t *testing.T) {
	s := store.NewEntryMemoryStore()

	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			code := fmt.Sprintf("code%d", i)
			entry, err := s.Insert(context.Background(), code, "https://example.com")
			assert.NoError(t, err)

			got, err := s.LookupByCode(context.Background(), code)
			assert.NoError(t, err)
			assert.Equal(t, entry, got)
		}()
	}

	wg.Wait()

	entries, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 50)
}
