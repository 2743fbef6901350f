package config

import (
	"main/utils"
	"time"
)

type RedisConfig struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

func LoadRedisConfig() RedisConfig {
	return RedisConfig{
		URL:          utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
		DialTimeout:  utils.GetEnvAsDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		ReadTimeout:  utils.GetEnvAsDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		WriteTimeout: utils.GetEnvAsDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		PoolSize:     utils.GetEnvAsInt("REDIS_POOL_SIZE", 10),
	}
}
