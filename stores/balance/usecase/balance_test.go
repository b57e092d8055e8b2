package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/balance"
	"github.com/x-xyz/listingapi/domain/balance/mocks"
)

const addr = domain.Address("0x71c7656ec7ab88b098defb751b7401b5f6d8976f")

func TestGet(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := &mocks.Repo{}
	im := New(repo)

	repo.On("FindOne", mock.Anything, addr).Return(nil, domain.ErrNotFound).Once()
	res, err := im.Get(c, addr)
	req.NoError(err)
	req.Equal(&balance.Account{Address: addr}, res)

	repo.On("FindOne", mock.Anything, addr).Return(&balance.Account{Address: addr, Balance: 7}, nil).Once()
	res, err = im.Get(c, addr)
	req.NoError(err)
	req.Equal(uint64(7), res.Balance)

	_, err = im.Get(c, "0x12")
	req.Equal(domain.ErrInvalidAddress, err)
	repo.AssertExpectations(t)
}

func TestDeposit(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := &mocks.Repo{}
	im := New(repo)

	repo.On("Credit", mock.Anything, addr, uint64(1_000_000_000), "").Return(nil).Once()
	repo.On("FindOne", mock.Anything, addr).Return(&balance.Account{Address: addr, Balance: 1_000_000_000}, nil).Once()
	res, err := im.Deposit(c, addr, 1_000_000_000)
	req.NoError(err)
	req.Equal(uint64(1_000_000_000), res.Balance)

	_, err = im.Deposit(c, addr, 0)
	req.Equal(domain.ErrBadParamInput, err)

	repo.On("Credit", mock.Anything, addr, balance.MaxAmount, "").Return(domain.ErrMathOverflow).Once()
	_, err = im.Deposit(c, addr, balance.MaxAmount)
	req.Equal(domain.ErrMathOverflow, err)
	repo.AssertExpectations(t)
}
