package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/database/mongoclient"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/receipt"
	"github.com/x-xyz/listingapi/service/query"
)

// Indexes of the receipts collection, the unique id is the receipt slot
var Indexes = []mongoclient.IndexSpec{
	{Collection: string(domain.TableReceipts), Keys: bson.D{{Key: "id", Value: 1}}, Unique: true},
	{Collection: string(domain.TableReceipts), Keys: bson.D{{Key: "buyer", Value: 1}, {Key: "timestamp", Value: -1}}},
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) receipt.Repo {
	return &impl{q: q}
}

func (im *impl) Create(c ctx.Ctx, r *receipt.Receipt) error {
	r.Buyer = r.Buyer.ToLower()
	if err := im.q.Insert(c, domain.TableReceipts, r); err == query.ErrDuplicateKey {
		return domain.ErrReceiptExists
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "receipt": r}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, id string) (*receipt.Receipt, error) {
	res := &receipt.Receipt{}
	if err := im.q.FindOne(c, domain.TableReceipts, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindByBuyer(c ctx.Ctx, buyer domain.Address, page domain.Pagination) ([]*receipt.Receipt, error) {
	qry := bson.M{"buyer": buyer.ToLower()}
	res := []*receipt.Receipt{}
	if err := im.q.Search(c, domain.TableReceipts, page.Offset, page.Limit, "-timestamp", qry, &res); err != nil {
		c.WithFields(log.Fields{"err": err, "query": qry}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
