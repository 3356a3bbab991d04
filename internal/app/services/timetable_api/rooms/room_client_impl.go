package rooms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"

	gojson "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// roomScheduleClient fetches a room's aggregated weekly grid. Grids change
// rarely compared to how often conflict checks re-read them, so successful
// fetches are cached in Redis with a short TTL. Cache failures degrade to a
// direct fetch, never to an error.
type roomScheduleClient struct {
	BaseUrl  string
	limiter  *rate.Limiter
	cache    contracts.RedisRepository
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewRoomScheduleClient(baseUrl string, limiter *rate.Limiter, cache contracts.RedisRepository, cacheTTL time.Duration, logger *zap.Logger) contracts.RoomScheduleClient {
	return &roomScheduleClient{
		BaseUrl:  baseUrl + "/rooms",
		limiter:  limiter,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      logger,
	}
}

func (c *roomScheduleClient) FindWeeklyGridByRoomID(ctx context.Context, roomID string) (*responses.RoomWeeklyGrid, error) {
	cacheKey := fmt.Sprintf(constvars.RoomGridCacheKeyFmt, roomID)

	if cached, err := c.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		grid := new(responses.RoomWeeklyGrid)
		if err := gojson.Unmarshal([]byte(cached), grid); err == nil {
			return grid, nil
		}
		// An entry that no longer unmarshals would shadow every fresh fetch
		// until its TTL expires, so drop it before refetching.
		c.log.Debug("discarding unreadable cached room grid", zap.String("room_id", roomID))
		if err := c.cache.Delete(ctx, cacheKey); err != nil {
			c.log.Debug("failed to drop unreadable room grid cache entry",
				zap.String("room_id", roomID), zap.Error(err))
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	url := fmt.Sprintf("%s/%s/weekly-grid", c.BaseUrl, roomID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrTimetableGetResource(fmt.Errorf("unexpected status %d", resp.StatusCode), constvars.TimetableResourceRoom)
	}

	result := new(responses.RoomWeeklyGrid)
	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return nil, exceptions.ErrTimetableDecodeResponse(err, constvars.TimetableResourceRoom)
	}

	if err := c.cache.Set(ctx, cacheKey, result, c.cacheTTL); err != nil {
		c.log.Debug("failed to cache room grid", zap.String("room_id", roomID), zap.Error(err))
	}

	return result, nil
}
