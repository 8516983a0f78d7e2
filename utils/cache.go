// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"bookexpert/config"

	"github.com/go-redis/redis/v8"
)

// EventsClient is the Redis client carrying the slot availability pub/sub
// channel between server instances.
var EventsClient *redis.Client

// InitEvents initializes the Redis client for the event bridge.
func InitEvents() {
	EventsClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := EventsClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Events): %v", err)
	}
}

// GetEventsClient returns the Redis client for the event bridge.
func GetEventsClient() *redis.Client {
	if EventsClient == nil {
		InitEvents()
	}
	return EventsClient
}
