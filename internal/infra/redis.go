package infra

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"authhub/internal/config"
)

func InitRedis(cfg config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Error connecting to redis: %v", err)
		log.Fatal("Error connecting to redis")
	}

	return rdb
}

func CloseRedis(rdb *redis.Client) {
	if err := rdb.Close(); err != nil {
		log.Printf("Error closing redis connection: %v", err)
	}
}
