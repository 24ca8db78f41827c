package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/class-booking-service/internal/domain"
	"github.com/spec-kit/class-booking-service/internal/persistence"
)

const popularClassesKey = "classes:popular"

// PopularClassCache caches the popular-classes listing in Redis. The cache
// is advisory: any miss or Redis failure falls through to the database, and
// status changes invalidate the key.
type PopularClassCache struct {
	redis  *persistence.Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewPopularClassCache builds the cache.
func NewPopularClassCache(redis *persistence.Redis, ttl time.Duration, logger *zap.Logger) *PopularClassCache {
	return &PopularClassCache{redis: redis, ttl: ttl, logger: logger}
}

// Get returns the cached listing, reporting whether it was present.
func (c *PopularClassCache) Get(ctx context.Context) ([]domain.Class, bool) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil, false
	}
	raw, err := c.redis.Client.Get(ctx, popularClassesKey).Bytes()
	if err != nil {
		return nil, false
	}
	var classes []domain.Class
	if err := json.Unmarshal(raw, &classes); err != nil {
		c.logger.Warn("corrupt popular-classes cache entry", zap.Error(err))
		_ = c.redis.Client.Del(ctx, popularClassesKey).Err()
		return nil, false
	}
	return classes, true
}

// Set stores the listing with the configured TTL.
func (c *PopularClassCache) Set(ctx context.Context, classes []domain.Class) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	raw, err := json.Marshal(classes)
	if err != nil {
		return
	}
	if err := c.redis.Client.Set(ctx, popularClassesKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache popular classes", zap.Error(err))
	}
}

// Invalidate drops the cached listing.
func (c *PopularClassCache) Invalidate(ctx context.Context) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	if err := c.redis.Client.Del(ctx, popularClassesKey).Err(); err != nil {
		c.logger.Warn("failed to invalidate popular classes", zap.Error(err))
	}
}
