package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/database/mongoclient"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/event"
	"github.com/x-xyz/listingapi/service/query"
)

// Indexes of the listing_events collection
var Indexes = []mongoclient.IndexSpec{
	{Collection: string(domain.TableListingEvents), Keys: bson.D{{Key: "listingId", Value: 1}, {Key: "timestamp", Value: 1}}},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) event.Repo {
	return &impl{q: q}
}

func (im *impl) Insert(c ctx.Ctx, evt *event.Event) error {
	if err := im.q.Insert(c, domain.TableListingEvents, evt); err != nil {
		c.WithFields(log.Fields{"err": err, "event": evt}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindByListing(c ctx.Ctx, listingId string, page domain.Pagination) ([]*event.Event, error) {
	qry := bson.M{"listingId": listingId}
	res := []*event.Event{}
	if err := im.q.Search(c, domain.TableListingEvents, page.Offset, page.Limit, "timestamp", qry, &res); err != nil {
		c.WithFields(log.Fields{"err": err, "query": qry}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
