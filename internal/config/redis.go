package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	LockTTL  time.Duration
}

var (
	redisConfig *RedisConfig
	redisOnce   sync.Once
)

func LoadRedisConfig() *RedisConfig {
	redisOnce.Do(func() {
		db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		ttl, err := time.ParseDuration(os.Getenv("SUBMISSION_LOCK_TTL"))
		if err != nil || ttl <= 0 {
			ttl = 30 * time.Second
		}
		redisConfig = &RedisConfig{
			Addr:     getenv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
			LockTTL:  ttl,
		}
	})
	return redisConfig
}
