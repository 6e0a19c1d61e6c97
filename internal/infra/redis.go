package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects the job-queue Redis client from a redis:// URL.
// An unreachable instance fails startup rather than the first enqueue.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}
