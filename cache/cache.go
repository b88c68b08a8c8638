// Package cache provides the short-lived response cache in front of the
// global feed. Entries expire purely by TTL; nothing invalidates them when
// posts are written.
package cache

import (
	"context"
	"time"
)

// KeyGlobalFeed is the single key the global feed response is memoized
// under. The key is a static prefix on purpose: it ignores the page query
// parameter, so two different page numbers requested inside the TTL window
// serve identical bytes. That coarseness is inherited behavior, kept as is.
const KeyGlobalFeed = "index_page"

// Cache memoizes rendered response bodies for a bounded time window.
type Cache interface {
	// Get returns the cached value for key and whether it was present and
	// unexpired.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores value under key for ttl. Overwriting an existing entry is
	// fine, concurrent writers simply race to the same content.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
