package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the command surface the repositories use. Both *redis.Client and
// the miniredis-backed test client satisfy it.
type Client interface {
	redis.UniversalClient
}
