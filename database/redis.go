package database

import (
	"context"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
)

var redisClient *redis.Client

// OpenRedisConnection pools the connection to the analytics cache
func OpenRedisConnection() error {
	dsn := os.Getenv("CACHE_HOST") + ":" + os.Getenv("CACHE_PORT")

	dbID, err := strconv.Atoi(os.Getenv("ANALYTICS_DB"))
	if err != nil {
		return err
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     dsn,
		Password: os.Getenv("CACHE_PASS"),
		DB:       dbID,
	})

	ctx := context.Background()
	_, err = redisClient.Ping(ctx).Result()
	if err != nil {
		return err
	}

	return nil
}

// GetRedisConnection returns a reference to the shared connection
func GetRedisConnection() *redis.Client {
	return redisClient
}

// CloseRedisConnection closes the connection to the store
func CloseRedisConnection() error {
	return redisClient.Close()
}
