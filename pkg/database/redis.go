package database

import (
	"context"
	"errors"
	"time"

	"customers-backend/pkg/config"

	"github.com/redis/go-redis/v9"
)

var ErrRedisNotReady = errors.New("failed to connect to redis")

const redisConnectTimeout = 5 * time.Second

// NewRedisConnection connects to the Redis session database and verifies
// the connection with a ping.
func NewRedisConnection(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisSessionDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrRedisNotReady, err)
	}

	return client, nil
}
