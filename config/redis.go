package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// InitRedis creates a single Redis client and verifies connectivity with Ping.
// It returns nil when redis_enabled is false; every consumer treats nil as "off".
func InitRedis(cfg *Config) *redis.Client {
	if !cfg.RedisEnabled {
		logrus.Info("[redis] disabled, cache and events run in no-op mode")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPass,
		DB:           cfg.RedisDB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	// fail fast when Redis was asked for but is unreachable
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("[redis] ping failed: %v (addr=%s db=%d)", err, cfg.RedisAddr, cfg.RedisDB)
	}
	logrus.WithFields(logrus.Fields{"addr": cfg.RedisAddr, "db": cfg.RedisDB}).Info("[redis] connected")
	return rdb
}
