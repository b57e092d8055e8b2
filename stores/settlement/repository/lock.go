package repository

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/keys"
	"github.com/x-xyz/listingapi/domain/settlement"
	"github.com/x-xyz/listingapi/service/redis"
)

type locker struct {
	redis redis.Service
}

// NewLocker locks keys with redis SET NX, each lock holding a random token so
// only its owner releases it
func NewLocker(redis redis.Service) settlement.Locker {
	return &locker{redis: redis}
}

func (l *locker) Lock(c ctx.Ctx, key string, ttl time.Duration) (func(), error) {
	rKey := keys.RedisKey(keys.PfxReceiptSlot, key)
	token := []byte(uuid.NewString())

	if err := l.redis.SetNX(c, rKey, token, ttl); err == redis.ErrKeyExists {
		return nil, xerrors.Errorf("%s is locked: %w", key, domain.ErrConflict)
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": rKey}).Error("redis.SetNX failed")
		return nil, err
	}

	unlock := func() {
		// the request may be gone by now
		dc := ctx.Detach(c)
		if ok, err := l.redis.DelIfEqual(dc, rKey, token); err != nil {
			dc.WithFields(log.Fields{"err": err, "key": rKey}).Error("redis.DelIfEqual failed")
		} else if !ok {
			dc.WithField("key", rKey).Warn("lock expired before unlock")
		}
	}
	return unlock, nil
}
