package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/listingapi/base/ctx"
)

const (
	// Forever means the key never expires
	Forever time.Duration = -1
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrKeyExists is returned by SetNX when the key is already set
	ErrKeyExists = errors.New("redis: key exists")
)

// Service is the key value store used for locks and cache
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets key only when it is absent, ErrKeyExists otherwise
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	// DelIfEqual deletes key only when it still holds val
	DelIfEqual(context ctx.Ctx, key string, val []byte) (bool, error)
	Ping(context ctx.Ctx) error
}
