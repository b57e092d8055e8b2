package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	repo := &mocks.HealthCheckRepo{}
	repo.On("PingDB", mock.Anything).Return(nil).Once()
	repo.On("PingCache", mock.Anything).Return(nil).Once()
	req.NoError(New(repo).Check(c))
	repo.AssertExpectations(t)

	errDB := errors.New("no primary")
	repo = &mocks.HealthCheckRepo{}
	repo.On("PingDB", mock.Anything).Return(errDB).Once()
	req.Equal(errDB, New(repo).Check(c))
	repo.AssertNotCalled(t, "PingCache", mock.Anything)
}
