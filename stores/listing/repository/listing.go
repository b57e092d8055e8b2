package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/database/mongoclient"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/listing"
	"github.com/x-xyz/listingapi/service/query"
)

// Indexes of the listings collection
var Indexes = []mongoclient.IndexSpec{
	{Collection: string(domain.TableListings), Keys: bson.D{{Key: "id", Value: 1}}, Unique: true},
	{Collection: string(domain.TableListings), Keys: bson.D{{Key: "owner", Value: 1}, {Key: "name", Value: 1}}, Unique: true},
	{Collection: string(domain.TableListings), Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "createdAt", Value: -1}}},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) listing.Repo {
	return &impl{q: q}
}

func (im *impl) FindOne(c ctx.Ctx, id string) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := im.q.FindOne(c, domain.TableListings, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...listing.FindAllOptions) ([]*listing.Listing, error) {
	opts, err := listing.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("listing.GetFindAllOptions failed")
		return nil, err
	}

	qry := bson.M{}
	if opts.Owner != nil {
		qry["owner"] = *opts.Owner
	}
	if opts.IsActive != nil {
		qry["isActive"] = *opts.IsActive
	}

	res := []*listing.Listing{}
	if err := im.q.Search(c, domain.TableListings, opts.Page.Offset, opts.Page.Limit, "-createdAt", qry, &res); err != nil {
		c.WithFields(log.Fields{"err": err, "query": qry}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Create(c ctx.Ctx, l *listing.Listing) error {
	l.Owner = l.Owner.ToLower()
	l.Treasury = l.Treasury.ToLower()
	if err := im.q.Insert(c, domain.TableListings, l); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "listing": l}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Update(c ctx.Ctx, id string, patchable listing.Patchable) error {
	update, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if len(update) == 0 {
		return nil
	}
	if err := im.q.Patch(c, domain.TableListings, bson.M{"id": id}, update); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id, "update": update}).Error("q.Patch failed")
		return err
	}
	return nil
}
