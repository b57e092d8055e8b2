package usecase

import (
	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/balance"
)

type impl struct {
	repo balance.Repo
}

func New(repo balance.Repo) balance.Usecase {
	return &impl{repo: repo}
}

// Get returns a zero balance for addresses never funded
func (im *impl) Get(c ctx.Ctx, address domain.Address) (*balance.Account, error) {
	if !address.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	account, err := im.repo.FindOne(c, address)
	if err == domain.ErrNotFound {
		return &balance.Account{Address: address.ToLower()}, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "address": address}).Error("repo.FindOne failed")
		return nil, err
	}
	return account, nil
}

func (im *impl) Deposit(c ctx.Ctx, address domain.Address, amount uint64) (*balance.Account, error) {
	if !address.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	if amount == 0 {
		return nil, domain.ErrBadParamInput
	}
	if err := im.repo.Credit(c, address, amount, ""); err != nil {
		c.WithFields(log.Fields{"err": err, "address": address, "amount": amount}).Error("repo.Credit failed")
		return nil, err
	}
	c.WithFields(log.Fields{"address": address, "amount": amount}).Info("deposited")
	return im.Get(c, address)
}
