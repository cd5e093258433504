package memcache_fx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"match2b/internal/config"
	mem "match2b/pkg/memcache"
)

var Module = fx.Provide(provideCatalogCache)

func provideCatalogCache(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) mem.CatalogCache {
	switch cfg.Cache.Driver {
	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					log.Warn("redis unreachable, catalog reads will hit postgres", zap.Error(err))
				}
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		log.Info("catalog cache: redis", zap.String("addr", cfg.Cache.Redis.Address))
		return mem.NewRedisCatalog(client, cfg.Cache.Redis.Key, cfg.Cache.TTL, log)
	case config.CacheNone:
		log.Info("catalog cache disabled")
		return mem.NoopCatalog{}
	default:
		log.Info("catalog cache: memory", zap.Duration("ttl", cfg.Cache.TTL))
		return mem.NewMemoryCatalog(cfg.Cache.TTL)
	}
}
