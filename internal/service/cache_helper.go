package service

import (
	"context"
	"time"

	"github.com/venomous-dashboard/notes-service/pkg/cache"
	"github.com/venomous-dashboard/notes-service/pkg/logger"
)

// cacheHelper wraps cache.Service with the degradation policy shared by
// all resource services: cache failures are logged and swallowed so the
// persistent store stays authoritative.
type cacheHelper struct {
	cache cache.Service
}

func (h *cacheHelper) cacheAvailable() bool {
	return h.cache != nil && h.cache.IsAvailable()
}

// cacheGet returns true on a usable hit. Errors other than a miss are
// logged and treated as a miss.
func (h *cacheHelper) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if !h.cacheAvailable() {
		return false
	}
	err := h.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if err != cache.ErrCacheMiss {
		logger.Get().Warn().Err(err).Str("key", key).Msg("cache get failed")
	}
	return false
}

func (h *cacheHelper) cacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if !h.cacheAvailable() {
		return
	}
	if err := h.cache.Set(ctx, key, value, ttl); err != nil {
		logger.Get().Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (h *cacheHelper) cacheDelete(ctx context.Context, keys ...string) {
	if !h.cacheAvailable() {
		return
	}
	if err := h.cache.Delete(ctx, keys...); err != nil {
		logger.Get().Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
