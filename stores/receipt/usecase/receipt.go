package usecase

import (
	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/receipt"
)

type impl struct {
	repo receipt.Repo
}

func New(repo receipt.Repo) receipt.Usecase {
	return &impl{repo: repo}
}

func (im *impl) Get(c ctx.Ctx, id string) (*receipt.Receipt, error) {
	res, err := im.repo.FindOne(c, id)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindByBuyer(c ctx.Ctx, buyer domain.Address, page domain.Pagination) ([]*receipt.Receipt, error) {
	if !buyer.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	res, err := im.repo.FindByBuyer(c, buyer, page)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "buyer": buyer}).Error("repo.FindByBuyer failed")
		return nil, err
	}
	return res, nil
}
