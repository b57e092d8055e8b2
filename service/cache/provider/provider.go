package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/listingapi/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// raw cache implementation
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	// Set stores value for ttl, rounded down to whole seconds by some providers
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
