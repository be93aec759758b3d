package store_test

import (
	"context"
	"net/netip"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/serroba/hop/internal/redirect"
	"github.com/serroba/hop/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIP = netip.MustParseAddr("203.0.113.5")

func TestVisitMemoryLog_Append(t *testing.T) {
	t.Run("records visit with id and utc timestamp", func(t *testing.T) {
		l := store.NewVisitMemoryLog()
		entryID := uuid.New()

		visit, err := l.Append(context.Background(), entryID, testIP)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, visit.ID)
		assert.Equal(t, entryID, visit.EntryID)
		assert.Equal(t, testIP, visit.IP)
		assert.Equal(t, time.UTC, visit.Timestamp.Location())
		assert.WithinDuration(t, time.Now(), visit.Timestamp, time.Minute)
	})

	t.Run("accepts ipv6 addresses", func(t *testing.T) {
		l := store.NewVisitMemoryLog()
		ip := netip.MustParseAddr("2001:db8::1")

		visit, err := l.Append(context.Background(), uuid.New(), ip)

		require.NoError(t, err)
		assert.Equal(t, "2001:db8::1", visit.IP.String())
	})

	t.Run("timestamps are non-decreasing in append order", func(t *testing.T) {
		l := store.NewVisitMemoryLog()
		entryID := uuid.New()

		for range 20 {
			_, err := l.Append(context.Background(), entryID, testIP)
			require.NoError(t, err)
		}

		visits, err := l.ListAll(context.Background())
		require.NoError(t, err)

		for i := 1; i < len(visits); i++ {
			assert.False(t, visits[i].Timestamp.Before(visits[i-1].Timestamp))
		}
	})
}

func TestVisitMemoryLog_ListAll(t *testing.T) {
	t.Run("returns empty slice when no visits", func(t *testing.T) {
		l := store.NewVisitMemoryLog()

		visits, err := l.ListAll(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, visits)
		assert.Empty(t, visits)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		l := store.NewVisitMemoryLog()
		a, b := uuid.New(), uuid.New()

		v1, _ := l.Append(context.Background(), a, testIP)
		v2, _ := l.Append(context.Background(), b, testIP)
		v3, _ := l.Append(context.Background(), a, testIP)

		visits, err := l.ListAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{v1.ID, v2.ID, v3.ID}, visitIDs(visits))
	})
}

func TestVisitMemoryLog_ListByEntry(t *testing.T) {
	t.Run("filters by entry preserving order", func(t *testing.T) {
		l := store.NewVisitMemoryLog()
		a, b := uuid.New(), uuid.New()

		v1, _ := l.Append(context.Background(), a, testIP)
		_, _ = l.Append(context.Background(), b, testIP)
		v3, _ := l.Append(context.Background(), a, testIP)

		visits, err := l.ListByEntry(context.Background(), a)

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{v1.ID, v3.ID}, visitIDs(visits))
	})

	t.Run("returns empty slice for entry without visits", func(t *testing.T) {
		l := store.NewVisitMemoryLog()
		_, _ = l.Append(context.Background(), uuid.New(), testIP)

		visits, err := l.ListByEntry(context.Background(), uuid.New())

		require.NoError(t, err)
		assert.NotNil(t, visits)
		assert.Empty(t, visits)
	})
}

func TestVisitMemoryLog_Concurrent(t *testing.T) {
	l := store.NewVisitMemoryLog()
	entryID := uuid.New()

	var wg sync.WaitGroup

	for range 100 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := l.Append(context.Background(), entryID, testIP)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	visits, err := l.ListByEntry(context.Background(), entryID)
	require.NoError(t, err)
	assert.Len(t, visits, 100)
}

func visitIDs(visits []redirect.Visit) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(visits))
	for _, v := range visits {
		ids = append(ids, v.ID)
	}

	return ids
}
