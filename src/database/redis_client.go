package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisURI    string
	RedisCtx    = context.Background()
)

// InitRedis connects the shared Redis client. Redis backs the Asynq queue
// and parks OAuth state during the login round trip; the service degrades
// (no write-back retries, no login) without it, so a failed ping is fatal.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI")
	if RedisURI == "" {
		RedisURI = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := RedisClient.Ping(RedisCtx).Result(); err != nil {
		log.Fatal("Failed to connect Redis: ", err)
	}
	log.Println("Redis connected successfully")
}
