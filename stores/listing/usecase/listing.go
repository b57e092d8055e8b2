package usecase

import (
	"time"
	"unicode/utf8"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/balance"
	"github.com/x-xyz/listingapi/domain/event"
	"github.com/x-xyz/listingapi/domain/keys"
	"github.com/x-xyz/listingapi/domain/listing"
)

var timeNow = time.Now

type ListingUseCaseCfg struct {
	Repo       listing.Repo
	Transactor domain.Transactor
	Emitter    event.Emitter
}

type impl struct {
	repo    listing.Repo
	tx      domain.Transactor
	emitter event.Emitter
}

func New(cfg *ListingUseCaseCfg) listing.Usecase {
	return &impl{
		repo:    cfg.Repo,
		tx:      cfg.Transactor,
		emitter: cfg.Emitter,
	}
}

func validateName(name string) error {
	if len(name) > listing.NameMaxBytes {
		return domain.ErrNameTooLong
	}
	if !utf8.ValidString(name) {
		return domain.ErrBadParamInput
	}
	return nil
}

func validateImageUrl(url string) error {
	if len(url) > listing.ImageUrlMaxBytes {
		return domain.ErrUrlTooLong
	}
	if !utf8.ValidString(url) {
		return domain.ErrBadParamInput
	}
	return nil
}

// validatePrice keeps prices within what the ledger can store
func validatePrice(priceUsd uint64) error {
	if priceUsd > balance.MaxAmount {
		return domain.ErrMathOverflow
	}
	return nil
}

func (im *impl) Create(c ctx.Ctx, params listing.CreateParams) (*listing.Listing, error) {
	if err := validateName(params.Name); err != nil {
		return nil, err
	}
	if err := validateImageUrl(params.ImageUrl); err != nil {
		return nil, err
	}
	if err := validatePrice(params.PriceUsd); err != nil {
		return nil, err
	}
	if !params.Owner.IsValid() || !params.Treasury.IsValid() {
		return nil, domain.ErrInvalidAddress
	}

	now := timeNow()
	l := &listing.Listing{
		Id:        keys.ListingId(params.Owner, params.Name),
		Owner:     params.Owner.ToLower(),
		Treasury:  params.Treasury.ToLower(),
		Name:      params.Name,
		ImageUrl:  params.ImageUrl,
		PriceUsd:  params.PriceUsd,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.repo.Create(c, l); err != nil {
			c.WithFields(log.Fields{"err": err, "id": l.Id}).Error("repo.Create failed")
			return err
		}
		evt := event.NewListingInitialized(l.Id, l.Owner, l.Name, l.PriceUsd, l.ImageUrl, now)
		if err := im.emitter.Emit(c, evt); err != nil {
			c.WithFields(log.Fields{"err": err, "id": l.Id}).Error("emitter.Emit failed")
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (im *impl) Update(c ctx.Ctx, caller, owner domain.Address, name string, params listing.UpdateParams) (*listing.Listing, error) {
	if !caller.Equals(owner) {
		return nil, domain.ErrUnauthorized
	}
	if params.ImageUrl != nil {
		if err := validateImageUrl(*params.ImageUrl); err != nil {
			return nil, err
		}
	}
	if params.PriceUsd != nil {
		if err := validatePrice(*params.PriceUsd); err != nil {
			return nil, err
		}
	}

	id := keys.ListingId(owner, name)
	now := timeNow()
	var res *listing.Listing
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		l, err := im.repo.FindOne(c, id)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.FindOne failed")
			return err
		}

		patch := listing.Patchable{
			ImageUrl:  params.ImageUrl,
			PriceUsd:  params.PriceUsd,
			UpdatedAt: &now,
		}
		if err := im.repo.Update(c, id, patch); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.Update failed")
			return err
		}

		evt := event.NewListingUpdated(id, l.Owner, l.Name, params.PriceUsd, params.ImageUrl, now)
		if err := im.emitter.Emit(c, evt); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("emitter.Emit failed")
			return err
		}
		res = l.Apply(patch)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) Deactivate(c ctx.Ctx, caller, owner domain.Address, name string) (*listing.Listing, error) {
	if !caller.Equals(owner) {
		return nil, domain.ErrUnauthorized
	}

	id := keys.ListingId(owner, name)
	now := timeNow()
	var res *listing.Listing
	err := im.tx.RunWithTransaction(c, func(c ctx.Ctx) error {
		l, err := im.repo.FindOne(c, id)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.FindOne failed")
			return err
		}
		if !l.IsActive {
			res = l
			return nil
		}

		inactive := false
		patch := listing.Patchable{IsActive: &inactive, UpdatedAt: &now}
		if err := im.repo.Update(c, id, patch); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.Update failed")
			return err
		}
		if err := im.emitter.Emit(c, event.NewListingDeactivated(id, l.Owner, l.Name, now)); err != nil {
			c.WithFields(log.Fields{"err": err, "id": id}).Error("emitter.Emit failed")
			return err
		}
		res = l.Apply(patch)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) Get(c ctx.Ctx, owner domain.Address, name string) (*listing.Listing, error) {
	id := keys.ListingId(owner, name)
	l, err := im.repo.FindOne(c, id)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("repo.FindOne failed")
		return nil, err
	}
	return l, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...listing.FindAllOptions) ([]*listing.Listing, error) {
	res, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return res, nil
}
