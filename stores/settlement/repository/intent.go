package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/listingapi/base/ctx"
	"github.com/x-xyz/listingapi/base/database/mongoclient"
	"github.com/x-xyz/listingapi/base/log"
	"github.com/x-xyz/listingapi/domain"
	"github.com/x-xyz/listingapi/domain/settlement"
	"github.com/x-xyz/listingapi/service/query"
)

// Indexes of the settlement_intents collection
var Indexes = []mongoclient.IndexSpec{
	{Collection: string(domain.TableSettlementIntents), Keys: bson.D{{Key: "id", Value: 1}}, Unique: true},
	{Collection: string(domain.TableSettlementIntents), Keys: bson.D{{Key: "state", Value: 1}, {Key: "createdAt", Value: 1}}},
}

type intentRepo struct {
	q query.Mongo
}

func NewIntentRepo(q query.Mongo) settlement.IntentRepo {
	return &intentRepo{q: q}
}

func (r *intentRepo) Create(c ctx.Ctx, intent *settlement.Intent) error {
	if err := r.q.Insert(c, domain.TableSettlementIntents, intent); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "intent": intent}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *intentRepo) FindOne(c ctx.Ctx, id string) (*settlement.Intent, error) {
	res := &settlement.Intent{}
	if err := r.q.FindOne(c, domain.TableSettlementIntents, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

// Update only moves prepared intents, so a resolved intent keeps its outcome
func (r *intentRepo) Update(c ctx.Ctx, id string, patchable settlement.IntentPatchable) error {
	update, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	selector := bson.M{"id": id, "state": settlement.IntentStatePrepared}
	if err := r.q.Patch(c, domain.TableSettlementIntents, selector, update); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "id": id, "update": update}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (r *intentRepo) FindPrepared(c ctx.Ctx, before time.Time, limit int64) ([]*settlement.Intent, error) {
	qry := bson.M{
		"state":     settlement.IntentStatePrepared,
		"createdAt": bson.M{"$lt": before},
	}
	res := []*settlement.Intent{}
	if err := r.q.Search(c, domain.TableSettlementIntents, 0, limit, "createdAt", qry, &res); err != nil {
		c.WithFields(log.Fields{"err": err, "query": qry}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
