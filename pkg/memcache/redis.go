package mem

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"match2b/internal/matching"
)

var errStaleGeneration = errors.New("catalog generation changed")

// RedisCatalog shares one catalog snapshot between replicas. The generation
// lives next to the snapshot under <key>:gen so invalidations from any replica
// fence in-flight loads on every other. Redis failures degrade to cache misses.
type RedisCatalog struct {
	client *redis.Client
	key    string
	genKey string
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisCatalog(client *redis.Client, key string, ttl time.Duration, log *zap.Logger) *RedisCatalog {
	return &RedisCatalog{client: client, key: key, genKey: key + ":gen", ttl: ttl, log: log}
}

func (r *RedisCatalog) Get(ctx context.Context) ([]matching.Solution, bool) {
	val, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var catalog []matching.Solution
	if err := json.Unmarshal(val, &catalog); err != nil {
		r.log.Warn("catalog cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return catalog, true
}

func (r *RedisCatalog) Generation(ctx context.Context) uint64 {
	gen, err := readGeneration(ctx, r.client, r.genKey)
	if err != nil {
		r.log.Warn("catalog cache generation read failed", zap.Error(err))
	}
	return gen
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, c getter, key string) (uint64, error) {
	gen, err := c.Get(ctx, key).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set writes the snapshot inside WATCH on the generation key, so a concurrent
// Invalidate aborts the write.
func (r *RedisCatalog) Set(ctx context.Context, gen uint64, catalog []matching.Solution) bool {
	data, err := json.Marshal(catalog)
	if err != nil {
		r.log.Warn("catalog cache encode failed", zap.Error(err))
		return false
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := readGeneration(ctx, tx, r.genKey)
		if err != nil {
			return err
		}
		if cur != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, r.key, data, r.ttl)
			return nil
		})
		return err
	}, r.genKey)

	switch {
	case err == nil:
		return true
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		return false
	default:
		r.log.Warn("catalog cache write failed", zap.Error(err))
		return false
	}
}

func (r *RedisCatalog) Invalidate(ctx context.Context) {
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, r.genKey)
		p.Del(ctx, r.key)
		return nil
	})
	if err != nil {
		r.log.Warn("catalog cache invalidate failed", zap.Error(err))
	}
}
