package usecase

import (
	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/event"
)

type impl struct {
	repo event.Repo
}

func New(repo event.Repo) event.Usecase {
	return &impl{repo: repo}
}

// Emit appends evt to the listing's history, joining the caller's transaction if any
func (im *impl) Emit(c ctx.Ctx, evt *event.Event) error {
	if err := im.repo.Insert(c, evt); err != nil {
		c.WithFields(log.Fields{"err": err, "type": evt.Type, "listingId": evt.ListingId}).Error("repo.Insert failed")
		return err
	}
	c.WithFields(log.Fields{
		"type":      evt.Type,
		"listingId": evt.ListingId,
		"admin":     evt.Admin,
		"name":      evt.Name,
		"receiptId": evt.ReceiptId,
	}).Info("event emitted")
	return nil
}

func (im *impl) FindByListing(c ctx.Ctx, listingId string, page domain.Pagination) ([]*event.Event, error) {
	res, err := im.repo.FindByListing(c, listingId, page)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "listingId": listingId}).Error("repo.FindByListing failed")
		return nil, err
	}
	return res, nil
}
