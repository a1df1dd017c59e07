package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/listingpage/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
)

// Service is the subset of redis commands the cache layers need
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, keys ...string) (int, error)
	Exists(c ctx.Ctx, key string) (bool, error)
	// TTL returns the remaining time to live in seconds
	TTL(c ctx.Ctx, key string) (int, error)
	Ping(c ctx.Ctx) error
}
