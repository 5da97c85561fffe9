package repository

import (
	"context"
	"time"

	"shortlink/internal/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the link cache. The caller treats a failure as "run
// without cache", so the ping is bounded rather than retried.
func InitRedis(cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
