package database

import (
	"context"
	"fmt"
	"time"

	"yoga-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis creates a redis client and verifies connectivity with a few
// ping retries before giving up.
func InitRedis(ctx context.Context, config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	var lastErr error
	for attempt := 0; attempt <= 3; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Second)
		}

		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
	}

	client.Close()
	return nil, fmt.Errorf("connect redis %s:%d: %w", config.Host, config.Port, lastErr)
}
