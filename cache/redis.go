package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/pressfeed/pressfeed/utils/log"
)

// Redis backs the response cache with a shared redis instance, so every
// replica of the service observes the same cached feed.
type Redis struct {
	inner *redis.Client
}

// NewRedis connects to the redis instance named by REDIS_HOST, REDIS_PORT
// and REDIS_PASSWD.
func NewRedis() *Redis {
	return &Redis{
		inner: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT")),
			Password: os.Getenv("REDIS_PASSWD"),
			DB:       0, // use default DB
		})}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := r.inner.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		// A broken cache degrades to recomputing the feed, never to a
		// failed request.
		log.Log.Warn("redis get failed: ", err)
		return nil, false
	}
	return value, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.inner.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Log.Warn("redis set failed: ", err)
	}
}
