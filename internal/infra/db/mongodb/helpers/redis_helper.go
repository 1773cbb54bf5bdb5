package helpers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	redisClients     = make(map[string]*redis.Client)
	redisClientMutex sync.Mutex
)

var RedisTimeout = 5 * time.Second

// RedisHelper returns a pooled client for the connection URL, dialing on first
// use. Redis is an optional collaborator here, so failures surface as errors
// instead of aborting the process.
func RedisHelper(connectionUrl string) (*redis.Client, error) {
	redisClientMutex.Lock()
	if client, exists := redisClients[connectionUrl]; exists {
		redisClientMutex.Unlock()
		return client, nil
	}
	redisClientMutex.Unlock()

	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), RedisTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	redisClientMutex.Lock()
	redisClients[connectionUrl] = client
	redisClientMutex.Unlock()

	log.Printf("Connected to Redis: %s", connectionUrl)

	return client, nil
}
