package rooms

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/responses"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type memoryCache struct {
	mu      sync.Mutex
	data    map[string]string
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]string{}}
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := gojson.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = string(raw)
	return nil
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, key)
	delete(c.data, key)
	return nil
}

func testGrid(roomID string) *responses.RoomWeeklyGrid {
	return &responses.RoomWeeklyGrid{
		RoomID: roomID,
		Grid: map[string]map[string]*responses.Booking{
			"2": {"M1": {ID: "b1", CourseID: "c1"}},
		},
	}
}

func newGridServer(t *testing.T, roomID string, hits *int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		assert.Equal(t, fmt.Sprintf("/rooms/%s/weekly-grid", roomID), r.URL.Path)
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		gojson.NewEncoder(w).Encode(testGrid(roomID))
	}))
}

func TestFindWeeklyGridByRoomID(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)

	t.Run("serves a readable cached grid without fetching", func(t *testing.T) {
		var hits int64
		server := newGridServer(t, "r1", &hits)
		defer server.Close()

		cache := newMemoryCache()
		cacheKey := fmt.Sprintf(constvars.RoomGridCacheKeyFmt, "r1")
		require.NoError(t, cache.Set(context.Background(), cacheKey, testGrid("r1"), time.Minute))

		client := NewRoomScheduleClient(server.URL, limiter, cache, time.Minute, zap.NewNop())

		grid, err := client.FindWeeklyGridByRoomID(context.Background(), "r1")
		require.NoError(t, err)
		assert.Equal(t, "r1", grid.RoomID)
		assert.Equal(t, int64(0), atomic.LoadInt64(&hits))
	})

	t.Run("drops an unreadable cache entry and refetches", func(t *testing.T) {
		var hits int64
		server := newGridServer(t, "r1", &hits)
		defer server.Close()

		cache := newMemoryCache()
		cacheKey := fmt.Sprintf(constvars.RoomGridCacheKeyFmt, "r1")
		cache.data[cacheKey] = "{not json"

		client := NewRoomScheduleClient(server.URL, limiter, cache, time.Minute, zap.NewNop())

		grid, err := client.FindWeeklyGridByRoomID(context.Background(), "r1")
		require.NoError(t, err)
		assert.Equal(t, "r1", grid.RoomID)
		assert.Equal(t, int64(1), atomic.LoadInt64(&hits))

		// The corrupt entry is purged and replaced by the fresh grid.
		assert.Equal(t, []string{cacheKey}, cache.deleted)
		assert.NotEqual(t, "{not json", cache.data[cacheKey])
		assert.NotEmpty(t, cache.data[cacheKey])
	})

	t.Run("caches a fetched grid for the next call", func(t *testing.T) {
		var hits int64
		server := newGridServer(t, "r2", &hits)
		defer server.Close()

		cache := newMemoryCache()
		client := NewRoomScheduleClient(server.URL, limiter, cache, time.Minute, zap.NewNop())

		_, err := client.FindWeeklyGridByRoomID(context.Background(), "r2")
		require.NoError(t, err)
		_, err = client.FindWeeklyGridByRoomID(context.Background(), "r2")
		require.NoError(t, err)

		assert.Equal(t, int64(1), atomic.LoadInt64(&hits))
	})
}
