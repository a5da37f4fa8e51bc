package quote

import (
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"
)

const (
	localCacheSize = 1000
	localCacheTTL  = time.Minute
)

// NewCache создает кеш котировок. Если redisAddr пуст, используется только локальный in-memory кеш.
func NewCache(redisAddr string) *cache.Cache {
	opts := &cache.Options{
		LocalCache: cache.NewTinyLFU(localCacheSize, localCacheTTL),
	}
	if redisAddr != "" {
		opts.Redis = redis.NewClient(&redis.Options{Addr: redisAddr})
	}
	return cache.New(opts)
}
