package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/service/redis"
	"github.com/x-xyz/listingapi/service/redis/mocks"
)

func TestLock(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	r := &mocks.Service{}
	l := NewLocker(r)

	var token []byte
	r.On("SetNX", c, "receiptSlot:0x01", mock.Anything, 5*time.Second).
		Run(func(args mock.Arguments) { token = args.Get(2).([]byte) }).
		Return(nil).Once()
	unlock, err := l.Lock(c, "0x01", 5*time.Second)
	req.NoError(err)
	req.NotEmpty(token)

	r.On("DelIfEqual", mock.Anything, "receiptSlot:0x01", mock.MatchedBy(func(v []byte) bool {
		return string(v) == string(token)
	})).Return(true, nil).Once()
	unlock()
	r.AssertExpectations(t)
}

func TestLockBusy(t *testing.T) {
	c := ctx.Background()
	r := &mocks.Service{}
	r.On("SetNX", c, "receiptSlot:0x01", mock.Anything, time.Second).Return(redis.ErrKeyExists).Once()

	_, err := NewLocker(r).Lock(c, "0x01", time.Second)
	require.True(t, errors.Is(err, domain.ErrConflict))
}
