package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive is an in process cache of size MB
func NewPrimitive(name string, size int) provider.Provider {
	return &impl{name, freecache.NewCache(size * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, error) {
	val, err := im.cache.Get([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.Get failed")
		return nil, err
	}
	return val, nil
}

// Set with ttl under a second stores nothing, freecache treats 0 as no expiry
func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	seconds := int(ttl / time.Second)
	if seconds <= 0 {
		return nil
	}
	if err := im.cache.Set([]byte(key), value, seconds); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
