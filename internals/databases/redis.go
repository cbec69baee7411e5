package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"ksms_backend/internals/configs"
)

// ConnectRedis returns nil when Redis is disabled or unreachable; callers fall back to the database.
func ConnectRedis(cfg *configs.Settings) *redis.Client {
	if !cfg.RedisEnabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] redis ping failed (%s): %v", cfg.RedisAddr, err)
		_ = client.Close()
		return nil
	}
	log.Printf("[INFO] redis connected at %s", cfg.RedisAddr)
	return client
}
