package services

import (
	"fmt"

	"main/config"

	"github.com/redis/go-redis/v9"
)

// redisOptions builds client options from the shared Redis config: the URL
// carries address, credentials, and database, the remaining fields tune the
// connection behavior.
func redisOptions(cfg config.RedisConfig) (*redis.Options, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout
	opts.PoolSize = cfg.PoolSize

	return opts, nil
}
